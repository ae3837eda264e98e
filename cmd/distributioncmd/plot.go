// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package distributioncmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"

	"github.com/ava-labs/avalanche-stakes/pkg/cobrautils"
	"github.com/ava-labs/avalanche-stakes/pkg/config"
	"github.com/ava-labs/avalanche-stakes/pkg/constants"
	"github.com/ava-labs/avalanche-stakes/pkg/models"
	"github.com/ava-labs/avalanche-stakes/pkg/report"
	"github.com/ava-labs/avalanche-stakes/pkg/stake"
	"github.com/ava-labs/avalanche-stakes/pkg/ux"
)

var (
	group     bool
	extended  bool
	seed      uint64
	exponent  float64
	reference string
)

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [date]",
		Short: "Render the cumulative stake distribution of a snapshot",
		Long: `This command renders the cumulative stake distribution of one snapshot
against equal, uniform and log-logistic reference distributions, with
markers at the quorum stake splits. Without an argument the latest
available snapshot is plotted.`,
		RunE: runPlot,
		Args: cobrautils.MaximumNArgs(1),
	}
	cmd.Flags().BoolVarP(&group, "group", "g", false, "group validators by reward address")
	cmd.Flags().BoolVarP(&extended, "extended", "e", false, "use extended validator data")
	cmd.Flags().Uint64Var(&seed, "seed", constants.DefaultReferenceSeed, "random generator seed (0 for time-based)")
	cmd.Flags().Float64VarP(&exponent, "exponent", "x", 1.0, "distribution exponent mapper")
	cmd.Flags().StringVar(&reference, "reference", "", "plot a synthetic distribution instead of the real data (equal|uniform|loglogistic)")
	return cmd
}

func runPlot(cmd *cobra.Command, args []string) error {
	seed = resolveSeed(cmd, app.Conf)
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

	var validators []models.ValidatorRecord
	if extended {
		validators, err = store.LoadExtended(date)
	} else {
		validators, err = store.Load(date)
	}
	if err != nil {
		return err
	}

	totals, owns := plotWeights(validators)
	totals, err = substitute(cmd, totals)
	if err != nil {
		return err
	}
	owns, err = substitute(cmd, owns)
	if err != nil {
		return err
	}
	slices.Sort(totals)
	slices.Sort(owns)

	data := report.DistributionData{
		Date:         date,
		Grouped:      group,
		CumTotal:     cumulative(totals),
		CumOwn:       cumulative(owns),
		GiniTotalPct: stake.GiniPercent(totals),
		GiniOwnPct:   stake.GiniPercent(owns),
	}
	maxCum := 0.0
	if n := len(data.CumTotal); n > 0 {
		maxCum = data.CumTotal[n-1]
	}
	for _, ref := range []struct {
		name string
		dist stake.Distribution
	}{
		{"equal", stake.Equal(len(totals))},
		{"uniform", stake.Uniform(len(totals), seed)},
		{"log-logistic", stake.LogLogistic(len(totals), seed)},
	} {
		data.References = append(data.References, report.ReferenceCurve{
			Name:   fmt.Sprintf("%s (GINI=%.1f%%)", ref.name, stake.GiniPercent(ref.dist.Values)),
			Values: ref.dist.Cumulative(maxCum),
		})
	}

	if err := app.EnsureOutputDir(); err != nil {
		return err
	}
	name := fmt.Sprintf("%s_%s", constants.DistributionChartName, date)
	if group {
		name += "G"
	}
	basePath := app.GetChartBasePath(name)
	if err := report.RenderChart(app.Fs, report.DistributionChart(data), basePath); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Wrote %s.{svg,png}", basePath)
	return nil
}

// resolveSeed applies the configured reference seed unless the flag was set
// explicitly; flags win over config.
func resolveSeed(cmd *cobra.Command, conf *config.Config) uint64 {
	if !cmd.Flags().Changed("seed") && conf.ConfigValueIsSet(constants.ConfigSeedKey) {
		return conf.GetConfigUint64Value(constants.ConfigSeedKey)
	}
	return seed
}

// plotWeights extracts per-validator or per-entity weight vectors, total
// (delegations included) and own.
func plotWeights(validators []models.ValidatorRecord) ([]float64, []float64) {
	if group {
		entities := stake.Group(validators)
		return stake.TotalWeights(entities), stake.OwnWeights(entities)
	}
	totals := make([]float64, len(validators))
	owns := make([]float64, len(validators))
	for i := range validators {
		totals[i] = float64(validators[i].TotalWeight)
		owns[i] = float64(validators[i].Weight)
	}
	return totals, owns
}

// substitute replaces the real weights with a synthetic reference rescaled
// to the real sum, or applies the exponent mapper when no reference is
// requested.
func substitute(cmd *cobra.Command, weights []float64) ([]float64, error) {
	sum := floats.Sum(weights)
	switch reference {
	case "":
		if exponent != 1.0 {
			return stake.ApplyExponent(weights, exponent), nil
		}
		return weights, nil
	case "equal":
		return stake.Equal(len(weights)).Rescaled(sum), nil
	case "uniform":
		return stake.Uniform(len(weights), seed).Rescaled(sum), nil
	case "loglogistic":
		return stake.LogLogistic(len(weights), seed).Rescaled(sum), nil
	default:
		return nil, cobrautils.NewUsageError(cmd,
			fmt.Errorf("invalid reference distribution %q", reference))
	}
}

func cumulative(weights []float64) []float64 {
	if len(weights) == 0 {
		return nil
	}
	cum := make([]float64, len(weights))
	floats.CumSum(cum, weights)
	return cum
}
