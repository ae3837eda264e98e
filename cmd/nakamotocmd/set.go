// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nakamotocmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanche-stakes/pkg/cobrautils"
	"github.com/ava-labs/avalanche-stakes/pkg/constants"
	"github.com/ava-labs/avalanche-stakes/pkg/history"
	"github.com/ava-labs/avalanche-stakes/pkg/report"
	"github.com/ava-labs/avalanche-stakes/pkg/ux"
)

var threshold float64

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [date]",
		Short: "Show the covering set of one snapshot",
		Long: `This command resolves the minimal set of entities controlling the
threshold share of the stake on one snapshot date and prints its
membership with geographic context. Without an argument the latest
extended snapshot is used.`,
		RunE: runSet,
		Args: cobrautils.MaximumNArgs(1),
	}
	cmd.Flags().Float64Var(&threshold, "threshold", constants.NakamotoThreshold30, "stake share the set must control")
	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	if err := validateThreshold(cmd, threshold); err != nil {
		return err
	}

	store := app.SnapshotStore()
	date, err := extendedDate(args)
	if err != nil {
		return err
	}

	analyzer := history.NewAnalyzer(store, app.Log)
	result, err := analyzer.NakamotoSetForDate(date, threshold)
	if err != nil {
		return err
	}

	t := report.NakamotoSetTable(result)
	ux.Logger.PrintToUser("%s", t.Render())
	ux.Logger.PrintToUser("%d of %d entities control %.1f%% of the stake (%s validators)",
		result.Size(), result.TotalEntities, result.StakeSharePct(),
		ux.ThousandsSeparated(uint64(result.SetValidators)))
	ux.Logger.PrintToUser("Spread over %d countries and %d ASNs, HHI %.0f",
		result.CountryCount(), result.ASNCount(), result.HHI())
	return nil
}

// extendedDate resolves the date argument against the snapshots that carry
// extended data.
func extendedDate(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	dates, err := app.SnapshotStore().DatesWithExtended()
	if err != nil {
		return "", err
	}
	if len(dates) == 0 {
		return "", fmt.Errorf("no extended snapshot data found in %s", app.GetDataDir())
	}
	return dates[len(dates)-1], nil
}
