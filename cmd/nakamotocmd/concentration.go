// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nakamotocmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanche-stakes/pkg/cobrautils"
	"github.com/ava-labs/avalanche-stakes/pkg/constants"
	"github.com/ava-labs/avalanche-stakes/pkg/history"
	"github.com/ava-labs/avalanche-stakes/pkg/ux"
)

// Group stakes below this share are noise for the risk discussion.
const minGroupStakePct = 1.0

var concentrationThreshold float64

func newConcentrationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concentration [date]",
		Short: "Cross-check the covering set for shared infrastructure",
		Long: `This command checks whether covering-set entities share hosting
providers or IP subnets, breaks the set's stake down by provider and
country, and estimates effective coefficients under those coarser
groupings. Without an argument the latest extended snapshot is used.`,
		RunE: runConcentration,
		Args: cobrautils.MaximumNArgs(1),
	}
	cmd.Flags().Float64Var(&concentrationThreshold, "threshold", constants.NakamotoThreshold30, "stake share the set must control")
	return cmd
}

func runConcentration(cmd *cobra.Command, args []string) error {
	if err := validateThreshold(cmd, concentrationThreshold); err != nil {
		return err
	}

	date, err := extendedDate(args)
	if err != nil {
		return err
	}

	analyzer := history.NewAnalyzer(app.SnapshotStore(), app.Log)
	result, err := analyzer.Concentration(date, concentrationThreshold)
	if err != nil {
		return err
	}

	t := ux.DefaultTable(
		fmt.Sprintf("Nakamoto-%.0f Set Concentration [%s]", result.Threshold*100, result.Date),
		table.Row{"Rank", "Address", "Stake %", "Validators", "Countries", "ASNs"},
	)
	for _, e := range result.Entities {
		t.AppendRow(table.Row{
			e.Rank,
			e.Address,
			fmt.Sprintf("%.2f", e.StakeSharePct),
			e.Validators,
			ux.JoinOrUnknown(e.Countries),
			ux.JoinOrUnknown(e.ASNs),
		})
	}
	ux.Logger.PrintToUser("%s", t.Render())

	printSharedGroups(result)
	printGroupStakes("Stake by hosting provider", result.ASNStakes)
	printGroupStakes("Stake by country", result.CountryStakes)

	ux.Logger.PrintLineSeparator()
	ux.Logger.PrintToUser("Nakamoto coefficient by reward address: %d", result.SetSize)
	ux.Logger.PrintToUser("Effective coefficient by hosting provider: %d", result.EffectiveByASN)
	ux.Logger.PrintToUser("Effective coefficient by country: %d", result.EffectiveByCountry)
	return nil
}

func printSharedGroups(result history.ConcentrationReport) {
	if len(result.SharedASNs) == 0 {
		ux.Logger.GreenCheckmarkToUser("No covering-set entities share a hosting provider")
	} else {
		ux.Logger.RedXToUser("%d covering-set entities share hosting providers:", result.EntitiesSharingASN)
		for _, g := range result.SharedASNs {
			ux.Logger.PrintToUser("  %s spans entities ranked %v", g.Name, g.Ranks)
		}
	}
	if len(result.SharedSubnets) > 0 {
		ux.Logger.RedXToUser("Shared /24 subnets:")
		for _, g := range result.SharedSubnets {
			ux.Logger.PrintToUser("  %s spans entities ranked %v", g.Name, g.Ranks)
		}
	}
}

func printGroupStakes(title string, stakes []history.GroupStake) {
	ux.Logger.PrintToUser("")
	ux.Logger.PrintToUser("%s:", title)
	for _, g := range stakes {
		if g.StakePct < minGroupStakePct {
			continue
		}
		ux.Logger.PrintToUser("  %-32s %6.2f%% (%d validators)", g.Name, g.StakePct, g.Validators)
	}
}
