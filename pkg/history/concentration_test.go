// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package history

import (
	"testing"

	"github.com/ava-labs/avalanche-stakes/internal/testutils"
)

// Two entities host on the same provider and /24 subnet, so the covering
// set's nominal size overstates the infrastructure diversity.
const sharedInfraJSON = `[
	{"id": "NodeID-1", "rewardAddresses": ["op-a"], "weight": 40, "totalWeight": 40,
	 "ip": "10.0.0.1:9651",
	 "geo": {"country": {"code": "DE"}, "asnum": {"name": "AS24940 Hetzner Online GmbH"}}},
	{"id": "NodeID-2", "rewardAddresses": ["op-b"], "weight": 40, "totalWeight": 40,
	 "ip": "10.0.0.2:9651",
	 "geo": {"country": {"code": "DE"}, "asnum": {"name": "AS24940 Hetzner Online GmbH"}}},
	{"id": "NodeID-3", "rewardAddresses": ["op-c"], "weight": 20, "totalWeight": 20,
	 "ip": "10.9.0.1:9651",
	 "geo": {"country": {"code": "US"}, "asnum": {"name": "AS16509 Amazon.com, Inc."}}}
]`

func TestConcentration(t *testing.T) {
	require := testutils.SetupTest(t)
	analyzer, fs := newTestAnalyzer(t)

	testutils.WriteExtendedSnapshot(t, fs, dataDir, "2024-03-31", sharedInfraJSON)

	report, err := analyzer.Concentration("2024-03-31", 0.50)
	require.NoError(err)
	require.Equal("2024-03-31", report.Date)

	// op-a and op-b (40 each) cover 50% together
	require.Equal(2, report.SetSize)
	require.Len(report.Entities, 2)
	require.Equal(1, report.Entities[0].Rank)

	// both set members sit on Hetzner and in the same /24
	require.Len(report.SharedASNs, 1)
	require.Equal("AS24940 Hetzner Online GmbH", report.SharedASNs[0].Name)
	require.Equal([]int{1, 2}, report.SharedASNs[0].Ranks)
	require.Equal(2, report.EntitiesSharingASN)

	require.Len(report.SharedSubnets, 1)
	require.Equal("10.0.0.0/24", report.SharedSubnets[0].Name)

	// stake at risk aggregates over the covering set only
	require.Equal("AS24940 Hetzner Online GmbH", report.ASNStakes[0].Name)
	require.InDelta(80.0, report.ASNStakes[0].StakePct, 1e-9)
	require.Equal("DE", report.CountryStakes[0].Name)
	require.InDelta(80.0, report.CountryStakes[0].StakePct, 1e-9)

	// treating the provider as the owner halves the coefficient
	require.Equal(1, report.EffectiveByASN)
	require.Equal(1, report.EffectiveByCountry)
}

func TestConcentrationDisjointInfra(t *testing.T) {
	require := testutils.SetupTest(t)
	analyzer, fs := newTestAnalyzer(t)

	testutils.WriteExtendedSnapshot(t, fs, dataDir, "2024-03-31", extendedJSON)

	report, err := analyzer.Concentration("2024-03-31", 0.30)
	require.NoError(err)
	require.Equal(1, report.SetSize)
	require.Empty(report.SharedASNs)
	require.Empty(report.SharedSubnets)
	require.Zero(report.EntitiesSharingASN)
	require.Equal(1, report.EffectiveByASN)
}
