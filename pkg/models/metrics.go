// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/utils/units"
)

const snapshotDateLayout = "2006-01-02"

// MetricResult holds the decentralization metrics of one snapshot date.
// Computed once per date and collected chronologically.
type MetricResult struct {
	Date       string
	Validators int
	Entities   int

	// TotalStake is the summed validator stake in nAVAX.
	TotalStake uint64

	// GiniTotal includes delegations, GiniOwn excludes them.
	// Both are fractions in [0,1].
	GiniTotal float64
	GiniOwn   float64

	Nakamoto30 int
	Nakamoto33 int
	Nakamoto50 int
}

// Quarter formats the snapshot date as e.g. 2024Q1.
func (r MetricResult) Quarter() string {
	t, err := time.Parse(snapshotDateLayout, r.Date)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%dQ%d", t.Year(), (int(t.Month())-1)/3+1)
}

// Time parses the snapshot date; the zero time on malformed input.
func (r MetricResult) Time() time.Time {
	t, _ := time.Parse(snapshotDateLayout, r.Date)
	return t
}

// StakeAvax converts the total stake from nAVAX to AVAX.
func (r MetricResult) StakeAvax() float64 {
	return float64(r.TotalStake) / float64(units.Avax)
}

// StakeMillions converts the total stake to millions of AVAX for display.
func (r MetricResult) StakeMillions() float64 {
	return r.StakeAvax() / 1e6
}

// GiniTotalPct and GiniOwnPct are the GINI fractions as percentages.
func (r MetricResult) GiniTotalPct() float64 { return 100 * r.GiniTotal }

func (r MetricResult) GiniOwnPct() float64 { return 100 * r.GiniOwn }
