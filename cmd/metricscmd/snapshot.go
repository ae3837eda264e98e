// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package metricscmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanche-stakes/pkg/cobrautils"
	"github.com/ava-labs/avalanche-stakes/pkg/history"
	"github.com/ava-labs/avalanche-stakes/pkg/report"
	"github.com/ava-labs/avalanche-stakes/pkg/ux"
)

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot [date]",
		Short: "Analyze a single snapshot date",
		Long: `This command computes GINI and Nakamoto coefficients for one snapshot,
given as a YYYY-MM-DD date. Without an argument the latest available
snapshot is analyzed.`,
		RunE: runSnapshot,
		Args: cobrautils.MaximumNArgs(1),
	}
	return cmd
}

func runSnapshot(_ *cobra.Command, args []string) error {
	store := app.SnapshotStore()

	var (
		date string
		err  error
	)
	if len(args) == 1 {
		date = args[0]
	} else {
		date, err = store.LatestDate()
		if err != nil {
			return err
		}
	}

	analyzer := history.NewAnalyzer(store, app.Log)
	result, err := analyzer.AnalyzeDate(date)
	if err != nil {
		return err
	}

	t := report.SnapshotTable(result)
	ux.Logger.PrintToUser("%s", t.Render())
	return nil
}
