// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricResultQuarter(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-01-15", "2024Q1"},
		{"2024-03-31", "2024Q1"},
		{"2024-04-01", "2024Q2"},
		{"2024-12-31", "2024Q4"},
		{"not-a-date", ""},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			require.Equal(t, tt.want, MetricResult{Date: tt.date}.Quarter())
		})
	}
}

func TestMetricResultUnits(t *testing.T) {
	require := require.New(t)

	// 2.5M AVAX in nAVAX
	r := MetricResult{TotalStake: 2_500_000_000_000_000, GiniTotal: 0.45, GiniOwn: 0.4}
	require.InDelta(2_500_000, r.StakeAvax(), 1e-6)
	require.InDelta(2.5, r.StakeMillions(), 1e-9)
	require.InDelta(45.0, r.GiniTotalPct(), 1e-9)
	require.InDelta(40.0, r.GiniOwnPct(), 1e-9)
}

func TestNakamotoSetResultAggregates(t *testing.T) {
	require := require.New(t)

	r := NakamotoSetResult{
		Date:       "2024-06-30",
		TotalStake: 100,
		SetStake:   32,
		Entities:   []SetEntity{{}, {}, {}},
		Countries:  map[string]int{"US": 5, "DE": 3},
		ASNs:       map[string]int{"AS1": 6, "AS2": 2},
	}
	require.Equal(3, r.Size())
	require.InDelta(32.0, r.StakeSharePct(), 1e-9)
	require.Equal(2, r.CountryCount())
	require.Equal(2, r.ASNCount())
	require.Equal("US", r.TopCountry())
	require.Equal("AS1", r.TopASN())
	require.InDelta(75.0, r.TopASNShare(), 1e-9)
	// (6/8)^2 + (2/8)^2 = 0.625
	require.InDelta(6250.0, r.HHI(), 1e-6)
	require.Equal("2024Q2", r.Quarter())
}
