// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/ava-labs/avalanche-stakes/pkg/constants"
	"github.com/ava-labs/avalanche-stakes/pkg/models"
	"github.com/spf13/afero"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartWidth  = 1400
	chartHeight = 600

	fileCreateFlags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
)

var (
	darkRed    = drawing.ColorFromHex("8b0000")
	darkBlue   = drawing.ColorFromHex("00008b")
	darkGreen  = drawing.ColorFromHex("006400")
	darkOrange = drawing.ColorFromHex("ff8c00")
	darkViolet = drawing.ColorFromHex("9400d3")
	steelBlue  = drawing.ColorFromHex("4682b4")
	coral      = drawing.ColorFromHex("ff7f50")
	refGray    = drawing.ColorFromHex("808080")
)

// RenderChart writes the chart next to basePath in both vector (.svg) and
// raster (.png) form.
func RenderChart(fs afero.Fs, graph chart.Chart, basePath string) error {
	for ext, provider := range map[string]chart.RendererProvider{
		".svg": chart.SVG,
		".png": chart.PNG,
	} {
		path := basePath + ext
		f, err := fs.OpenFile(path, fileCreateFlags, constants.WriteReadReadPerms)
		if err != nil {
			return fmt.Errorf("failed creating chart file %s: %w", path, err)
		}
		err = graph.Render(provider, f)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return fmt.Errorf("failed rendering chart %s: %w", path, err)
		}
	}
	return nil
}

// GiniHistoryChart plots both GINI variants over time, with the uniform
// (33.3%) and log-logistic (66.6%) reference levels.
func GiniHistoryChart(results []models.MetricResult) chart.Chart {
	times := metricTimes(results)
	graph := chart.Chart{
		Title:  "Validator Stake GINI Coefficient Over Time",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:  "GINI (%)",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "GINI (incl. delegations)",
				XValues: times,
				YValues: metricValues(results, models.MetricResult.GiniTotalPct),
				Style:   lineStyle(darkRed),
			},
			chart.TimeSeries{
				Name:    "GINI (excl. delegations)",
				XValues: times,
				YValues: metricValues(results, models.MetricResult.GiniOwnPct),
				Style:   lineStyle(darkBlue),
			},
			constantSeries("Uniform random (33.3%)", times, 100.0/3),
			constantSeries("Log-logistic (66.6%)", times, 200.0/3),
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph
}

// NakamotoHistoryChart plots the Nakamoto coefficient at all reported
// thresholds over time.
func NakamotoHistoryChart(results []models.MetricResult) chart.Chart {
	times := metricTimes(results)
	graph := chart.Chart{
		Title:  "Nakamoto Coefficient Over Time",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Entities",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Nakamoto @ 30%",
				XValues: times,
				YValues: metricValuesInt(results, func(r models.MetricResult) int { return r.Nakamoto30 }),
				Style:   lineStyle(darkGreen),
			},
			chart.TimeSeries{
				Name:    "Nakamoto @ 33%",
				XValues: times,
				YValues: metricValuesInt(results, func(r models.MetricResult) int { return r.Nakamoto33 }),
				Style:   lineStyle(darkOrange),
			},
			chart.TimeSeries{
				Name:    "Nakamoto @ 50%",
				XValues: times,
				YValues: metricValuesInt(results, func(r models.MetricResult) int { return r.Nakamoto50 }),
				Style:   lineStyle(darkViolet),
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph
}

// CombinedHistoryChart plots GINI on the primary axis and the 30% Nakamoto
// coefficient on the secondary axis.
func CombinedHistoryChart(results []models.MetricResult) chart.Chart {
	times := metricTimes(results)
	graph := chart.Chart{
		Title:  "Decentralization Metrics Over Time",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:  "GINI (%)",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		YAxisSecondary: chart.YAxis{
			Name: "Nakamoto @ 30%",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "GINI (incl. delegations)",
				XValues: times,
				YValues: metricValues(results, models.MetricResult.GiniTotalPct),
				Style:   lineStyle(darkRed),
			},
			chart.TimeSeries{
				Name:    "Nakamoto @ 30%",
				XValues: times,
				YValues: metricValuesInt(results, func(r models.MetricResult) int { return r.Nakamoto30 }),
				YAxis:   chart.YAxisSecondary,
				Style:   lineStyle(darkGreen),
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph
}

// EntitiesHistoryChart plots validator versus entity counts over time.
func EntitiesHistoryChart(results []models.MetricResult) chart.Chart {
	times := metricTimes(results)
	graph := chart.Chart{
		Title:  "Validators vs Entities Over Time",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Count",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Validators (nodes)",
				XValues: times,
				YValues: metricValuesInt(results, func(r models.MetricResult) int { return r.Validators }),
				Style:   lineStyle(steelBlue),
			},
			chart.TimeSeries{
				Name:    "Entities (by reward address)",
				XValues: times,
				YValues: metricValuesInt(results, func(r models.MetricResult) int { return r.Entities }),
				Style:   lineStyle(coral),
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph
}

// NakamotoGeographyChart plots the covering set's unique country and ASN
// counts over time.
func NakamotoGeographyChart(results []models.NakamotoSetResult) chart.Chart {
	times := make([]time.Time, len(results))
	countries := make([]float64, len(results))
	asns := make([]float64, len(results))
	for i, r := range results {
		times[i] = r.Time()
		countries[i] = float64(r.CountryCount())
		asns[i] = float64(r.ASNCount())
	}
	graph := chart.Chart{
		Title:  "Geographic Diversity of the Covering Set",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Count",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Unique Countries",
				XValues: times,
				YValues: countries,
				Style:   lineStyle(darkGreen),
			},
			chart.TimeSeries{
				Name:    "Unique ASNs (Hosting Providers)",
				XValues: times,
				YValues: asns,
				Style:   lineStyle(darkOrange),
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph
}

func metricTimes(results []models.MetricResult) []time.Time {
	times := make([]time.Time, len(results))
	for i, r := range results {
		times[i] = r.Time()
	}
	return times
}

func metricValues(results []models.MetricResult, get func(models.MetricResult) float64) []float64 {
	values := make([]float64, len(results))
	for i, r := range results {
		values[i] = get(r)
	}
	return values
}

func metricValuesInt(results []models.MetricResult, get func(models.MetricResult) int) []float64 {
	values := make([]float64, len(results))
	for i, r := range results {
		values[i] = float64(get(r))
	}
	return values
}

func lineStyle(c drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: c,
		StrokeWidth: 2,
	}
}

func constantSeries(name string, times []time.Time, level float64) chart.TimeSeries {
	values := make([]float64, len(times))
	for i := range values {
		values[i] = level
	}
	return chart.TimeSeries{
		Name:    name,
		XValues: times,
		YValues: values,
		Style: chart.Style{
			StrokeColor:     refGray,
			StrokeWidth:     1,
			StrokeDashArray: []float64{3, 3},
		},
	}
}
