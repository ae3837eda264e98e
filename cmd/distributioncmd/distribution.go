// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package distributioncmd

import (
	"github.com/ava-labs/avalanche-stakes/pkg/application"
	"github.com/ava-labs/avalanche-stakes/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.Stakes

// avalanche-stakes distribution
func NewCmd(injectedApp *application.Stakes) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distribution",
		Short: "Plot the validator stake distribution",
		Long: `The distribution command suite renders the cumulative stake
distribution of a snapshot against synthetic reference distributions.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// distribution plot
	cmd.AddCommand(newPlotCmd())
	return cmd
}
