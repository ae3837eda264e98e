// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nakamotocmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanche-stakes/pkg/cobrautils"
	"github.com/ava-labs/avalanche-stakes/pkg/constants"
	"github.com/ava-labs/avalanche-stakes/pkg/history"
	"github.com/ava-labs/avalanche-stakes/pkg/report"
	"github.com/ava-labs/avalanche-stakes/pkg/snapshot"
	"github.com/ava-labs/avalanche-stakes/pkg/ux"
)

var (
	historyThreshold float64
	skipCharts       bool
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Track the covering set across quarters",
		Long: `This command resolves the covering set for the last extended snapshot
of every quarter, tracks which entities persist in it, and writes the
CSV, markdown and chart reports to the output directory.`,
		RunE: runHistory,
		Args: cobrautils.ExactArgs(0),
	}
	cmd.Flags().Float64Var(&historyThreshold, "threshold", constants.NakamotoThreshold30, "stake share the set must control")
	cmd.Flags().BoolVar(&skipCharts, "skip-charts", false, "do not render chart files")
	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if err := validateThreshold(cmd, historyThreshold); err != nil {
		return err
	}

	store := app.SnapshotStore()
	dates, err := store.DatesWithExtended()
	if err != nil {
		return err
	}
	quarters := snapshot.QuarterlyDates(dates)
	if len(quarters) == 0 {
		return fmt.Errorf("no extended snapshot data found in %s", app.GetDataDir())
	}

	analyzer := history.NewAnalyzer(store, app.Log)
	bar := ux.SnapshotProgressBar(len(quarters), "Resolving covering sets")
	results, err := analyzer.NakamotoSeries(historyThreshold, func(string) {
		_ = bar.Add(1)
	})
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no loadable extended snapshot data in %s", app.GetDataDir())
	}

	ux.Logger.PrintToUser("")
	report.PrintNakamotoHistoryTable(ux.Logger.Writer, results)

	persistence := history.TrackPersistence(results)
	ux.Logger.PrintToUser("%d unique entities ever in the set: %d persistent, %d occasional, %d transient",
		persistence.TotalUnique, len(persistence.Persistent),
		len(persistence.Occasional), len(persistence.Transient))

	var csvBuf bytes.Buffer
	if err := report.WriteNakamotoCSV(&csvBuf, results); err != nil {
		return err
	}
	if err := app.WriteOutputFile(app.GetNakamotoCSVPath(), csvBuf.Bytes()); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Wrote %s", app.GetNakamotoCSVPath())

	var mdBuf bytes.Buffer
	if err := report.WriteNakamotoMarkdown(&mdBuf, results, persistence); err != nil {
		return err
	}
	if err := app.WriteOutputFile(app.GetNakamotoMarkdownPath(), mdBuf.Bytes()); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Wrote %s", app.GetNakamotoMarkdownPath())

	if !skipCharts {
		if err := app.EnsureOutputDir(); err != nil {
			return err
		}
		basePath := app.GetChartBasePath(constants.GeographyChartName)
		if err := report.RenderChart(app.Fs, report.NakamotoGeographyChart(results), basePath); err != nil {
			return err
		}
		ux.Logger.GreenCheckmarkToUser("Wrote %s.{svg,png}", basePath)
	}
	return nil
}
