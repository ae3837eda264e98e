// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package metricscmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/ava-labs/avalanche-stakes/pkg/cobrautils"
	"github.com/ava-labs/avalanche-stakes/pkg/constants"
	"github.com/ava-labs/avalanche-stakes/pkg/history"
	"github.com/ava-labs/avalanche-stakes/pkg/models"
	"github.com/ava-labs/avalanche-stakes/pkg/report"
	"github.com/ava-labs/avalanche-stakes/pkg/snapshot"
	"github.com/ava-labs/avalanche-stakes/pkg/ux"
)

var skipCharts bool

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Analyze the last snapshot of every quarter",
		Long: `This command computes GINI and Nakamoto coefficients for the last
available snapshot of every quarter, prints the series and writes the
CSV, markdown and chart reports to the output directory.`,
		RunE: runHistory,
		Args: cobrautils.ExactArgs(0),
	}
	cmd.Flags().BoolVar(&skipCharts, "skip-charts", false, "do not render chart files")
	return cmd
}

func runHistory(*cobra.Command, []string) error {
	store := app.SnapshotStore()
	dates, err := store.Dates()
	if err != nil {
		return err
	}
	quarters := snapshot.QuarterlyDates(dates)
	if len(quarters) == 0 {
		return fmt.Errorf("no snapshot dates found in %s", app.GetDataDir())
	}

	analyzer := history.NewAnalyzer(store, app.Log)
	bar := ux.SnapshotProgressBar(len(quarters), "Analyzing quarterly snapshots")
	results, err := analyzer.QuarterlySeries(func(string) {
		_ = bar.Add(1)
	})
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no loadable snapshot data in %s", app.GetDataDir())
	}

	ux.Logger.PrintToUser("")
	report.PrintHistoryTable(ux.Logger.Writer, results)

	if err := writeHistoryReports(results); err != nil {
		return err
	}
	if !skipCharts {
		if err := renderHistoryCharts(results); err != nil {
			return err
		}
	}
	return nil
}

func writeHistoryReports(results []models.MetricResult) error {
	var csvBuf bytes.Buffer
	if err := report.WriteCSV(&csvBuf, results); err != nil {
		return err
	}
	if err := app.WriteOutputFile(app.GetMetricsCSVPath(), csvBuf.Bytes()); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Wrote %s", app.GetMetricsCSVPath())

	var mdBuf bytes.Buffer
	if err := report.WriteSummaryMarkdown(&mdBuf, results); err != nil {
		return err
	}
	if err := app.WriteOutputFile(app.GetSummaryMarkdownPath(), mdBuf.Bytes()); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Wrote %s", app.GetSummaryMarkdownPath())
	return nil
}

func renderHistoryCharts(results []models.MetricResult) error {
	if err := app.EnsureOutputDir(); err != nil {
		return err
	}
	charts := map[string]chart.Chart{
		constants.GiniChartName:     report.GiniHistoryChart(results),
		constants.NakamotoChartName: report.NakamotoHistoryChart(results),
		constants.CombinedChartName: report.CombinedHistoryChart(results),
		constants.EntitiesChartName: report.EntitiesHistoryChart(results),
	}
	for name, graph := range charts {
		basePath := app.GetChartBasePath(name)
		if err := report.RenderChart(app.Fs, graph, basePath); err != nil {
			return err
		}
		ux.Logger.GreenCheckmarkToUser("Wrote %s.{svg,png}", basePath)
	}
	return nil
}
