// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package metricscmd

import (
	"github.com/ava-labs/avalanche-stakes/pkg/application"
	"github.com/ava-labs/avalanche-stakes/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.Stakes

// avalanche-stakes metrics
func NewCmd(injectedApp *application.Stakes) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Compute GINI and Nakamoto coefficients",
		Long: `The metrics command suite computes decentralization metrics of the
Avalanche validator set, with validators grouped into ownership entities
by their reward addresses.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// metrics history
	cmd.AddCommand(newHistoryCmd())
	// metrics snapshot
	cmd.AddCommand(newSnapshotCmd())
	return cmd
}
