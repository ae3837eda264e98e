// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package report

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/units"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ava-labs/avalanche-stakes/pkg/constants"
)

// ReferenceCurve is a labeled cumulative reference line, already rescaled so
// its maximum matches the real data's cumulative maximum.
type ReferenceCurve struct {
	Name   string
	Values []float64
}

// DistributionData holds everything the single-date distribution plot shows.
// Cumulative series are over weights sorted ascending, in nAVAX.
type DistributionData struct {
	Date         string
	Grouped      bool
	CumTotal     []float64
	CumOwn       []float64
	GiniTotalPct float64
	GiniOwnPct   float64
	References   []ReferenceCurve
}

// DistributionChart plots the cumulative stake distribution of one snapshot
// against the reference curves, with vertical markers at the quorum splits.
// The left-hand side of the 30%-vs-70% marker controls 30% of the stake.
func DistributionChart(data DistributionData) chart.Chart {
	n := len(data.CumTotal)
	xs := indexValues(n)
	maxStake := 0.0
	if n > 0 {
		maxStake = data.CumTotal[n-1]
	}

	subject := "Validators"
	if data.Grouped {
		subject = "Validators by Reward Address"
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    fmt.Sprintf("cum. stake incl. delegations (GINI=%04.1f%%)", data.GiniTotalPct),
			XValues: xs,
			YValues: toMillions(data.CumTotal),
			Style:   lineStyle(darkRed),
		},
		chart.ContinuousSeries{
			Name:    fmt.Sprintf("cum. stake excl. delegations (GINI=%04.1f%%)", data.GiniOwnPct),
			XValues: indexValues(len(data.CumOwn)),
			YValues: toMillions(data.CumOwn),
			Style:   lineStyle(darkBlue),
		},
	}
	for _, ref := range data.References {
		series = append(series, chart.ContinuousSeries{
			Name:    ref.Name,
			XValues: indexValues(len(ref.Values)),
			YValues: toMillions(ref.Values),
			Style: chart.Style{
				StrokeColor:     refGray,
				StrokeWidth:     1,
				StrokeDashArray: []float64{2, 2},
			},
		})
	}
	series = append(series,
		quorumMarker(data.CumTotal, constants.QuorumFraction, maxStake,
			"30%-vs-70% split: LHS controls 30% & RHS 70%"),
		quorumMarker(data.CumTotal, 1-constants.QuorumFraction, maxStake,
			"70%-vs-30% split: LHS controls 70% & RHS 30%"),
	)

	graph := chart.Chart{
		Title:  fmt.Sprintf("(Cumulative) Stake Distribution of Avalanche Validators [%s]", data.Date),
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Name: fmt.Sprintf("%s [%d]", subject, n),
		},
		YAxis: chart.YAxis{
			Name: "Cum. Stake [M AVAX]",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph
}

// quorumMarker builds a vertical line at the index splitting the ascending
// cumulative series so that everything to the right controls the given
// fraction of the total.
func quorumMarker(cum []float64, fraction float64, maxStake float64, label string) chart.Series {
	idx := QuorumSplitIndex(cum, fraction)
	return chart.ContinuousSeries{
		Name:    label,
		XValues: []float64{float64(idx), float64(idx)},
		YValues: []float64{0, maxStake / millionAvax},
		Style: chart.Style{
			StrokeColor:     drawing.ColorBlack,
			StrokeWidth:     2,
			StrokeDashArray: []float64{6, 2, 1, 2},
		},
	}
}

// QuorumSplitIndex returns the number of leading entries of the ascending
// cumulative series whose stake the given fraction's complement covers.
func QuorumSplitIndex(cum []float64, fraction float64) int {
	if len(cum) == 0 {
		return 0
	}
	cutoff := cum[len(cum)-1] * (1 - fraction)
	above := 0
	for _, v := range cum {
		if v > cutoff {
			above++
		}
	}
	return len(cum) - above
}

const millionAvax = float64(units.Avax) * 1e6

func toMillions(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v / millionAvax
	}
	return out
}

func indexValues(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}
