// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nakamotocmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanche-stakes/pkg/application"
	"github.com/ava-labs/avalanche-stakes/pkg/cobrautils"
)

var app *application.Stakes

// avalanche-stakes nakamoto
func NewCmd(injectedApp *application.Stakes) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nakamoto",
		Short: "Analyze the minimal stake-controlling entity set",
		Long: `The nakamoto command suite resolves the minimal set of entities that
together control a threshold share of the total stake, and cross-checks
it against hosting providers and countries using extended validator data
with GeoIP metadata.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// nakamoto set
	cmd.AddCommand(newSetCmd())
	// nakamoto history
	cmd.AddCommand(newHistoryCmd())
	// nakamoto concentration
	cmd.AddCommand(newConcentrationCmd())
	return cmd
}

// validateThreshold rejects thresholds outside (0, 1] before any snapshot
// data is loaded. Every subcommand of the suite takes --threshold.
func validateThreshold(cmd *cobra.Command, threshold float64) error {
	if threshold <= 0 || threshold > 1 {
		return cobrautils.NewUsageError(cmd,
			fmt.Errorf("threshold must be in (0, 1], got %v", threshold))
	}
	return nil
}
