// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package stake

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-stakes/pkg/models"
)

func TestGroupMergesIdenticalAddressSets(t *testing.T) {
	require := require.New(t)

	validators := []models.ValidatorRecord{
		{IDs: []string{"A"}, RewardAddresses: []string{"X"}, Weight: 5, TotalWeight: 5},
		{IDs: []string{"B"}, RewardAddresses: []string{"X"}, Weight: 7, TotalWeight: 7},
	}
	entities := Group(validators)
	require.Len(entities, 1)
	require.Equal(uint64(12), entities[0].TotalWeight)
	require.Equal(uint64(12), entities[0].Weight)
	require.True(entities[0].IDs.Contains("A"))
	require.True(entities[0].IDs.Contains("B"))
}

func TestGroupKeyIsOrderIndependent(t *testing.T) {
	require := require.New(t)

	validators := []models.ValidatorRecord{
		{IDs: []string{"A"}, RewardAddresses: []string{"X", "Y"}, TotalWeight: 1},
		{IDs: []string{"B"}, RewardAddresses: []string{"Y", "X"}, TotalWeight: 2},
	}
	entities := Group(validators)
	require.Len(entities, 1)
	require.Equal(uint64(3), entities[0].TotalWeight)
}

func TestGroupOverlappingSetsStaySeparate(t *testing.T) {
	require := require.New(t)

	validators := []models.ValidatorRecord{
		{IDs: []string{"A"}, RewardAddresses: []string{"X"}, TotalWeight: 1},
		{IDs: []string{"B"}, RewardAddresses: []string{"X", "Y"}, TotalWeight: 2},
	}
	require.Len(Group(validators), 2)
}

func TestGroupEmptyAddressSets(t *testing.T) {
	require := require.New(t)

	validators := []models.ValidatorRecord{
		{IDs: []string{"A"}, RewardAddresses: nil, TotalWeight: 3},
		{IDs: []string{"B"}, RewardAddresses: nil, TotalWeight: 4},
		{IDs: []string{"C"}, RewardAddresses: []string{"X"}, TotalWeight: 5},
	}

	// the basic grouper collapses empty address sets into one entity
	entities := Group(validators)
	require.Len(entities, 2)

	// the extended grouper drops them
	extended := GroupExtended(validators)
	require.Len(extended, 1)
	require.Equal("X", extended[0].PrimaryAddress())
}

func TestGroupExtendedGeoCounters(t *testing.T) {
	require := require.New(t)

	validators := []models.ValidatorRecord{
		{
			IDs:             []string{"A"},
			RewardAddresses: []string{"X"},
			Weight:          5,
			TotalWeight:     8,
			IP:              "10.1.2.3:9651",
			Version:         "avalanche/1.10.0",
			Geo: models.Geo{
				Country: models.GeoCountry{Code: "DE"},
				ASNum:   models.GeoASNum{Name: "AS24940 Hetzner Online GmbH"},
				City:    models.GeoCity{Name: "Frankfurt", Region: "HE"},
			},
		},
		{
			IDs:             []string{"B"},
			RewardAddresses: []string{"X"},
			Weight:          2,
			TotalWeight:     2,
			IP:              "10.1.2.77:9651",
			Version:         "avalanche/1.10.0",
			Geo: models.Geo{
				Country: models.GeoCountry{Code: "DE"},
				ASNum:   models.GeoASNum{Name: "AS24940 Hetzner Online GmbH"},
			},
		},
	}
	entities := GroupExtended(validators)
	require.Len(entities, 1)

	e := entities[0]
	require.Len(e.Members, 2)
	require.Equal(2, e.Countries["DE"])
	require.Equal(2, e.ASNs["AS24940 Hetzner Online GmbH"])
	require.Equal(1, e.Cities["Frankfurt, HE"])
	require.Equal(2, e.Versions["avalanche/1.10.0"])
	require.True(e.IPs.Contains("10.1.2.3"))
	require.True(e.IPs.Contains("10.1.2.77"))
}

func TestSortEntitiesStableOrder(t *testing.T) {
	require := require.New(t)

	validators := []models.ValidatorRecord{
		{IDs: []string{"A"}, RewardAddresses: []string{"low"}, TotalWeight: 1},
		{IDs: []string{"B"}, RewardAddresses: []string{"big"}, TotalWeight: 9},
		{IDs: []string{"C"}, RewardAddresses: []string{"b-tie"}, TotalWeight: 5},
		{IDs: []string{"D"}, RewardAddresses: []string{"a-tie"}, TotalWeight: 5},
	}
	entities := Group(validators)
	require.Equal("big", entities[0].PrimaryAddress())
	require.Equal("a-tie", entities[1].PrimaryAddress())
	require.Equal("b-tie", entities[2].PrimaryAddress())
	require.Equal("low", entities[3].PrimaryAddress())
}

func TestWeightExtraction(t *testing.T) {
	require := require.New(t)

	validators := []models.ValidatorRecord{
		{IDs: []string{"A"}, RewardAddresses: []string{"X"}, Weight: 3, DelegatedWeight: 2, TotalWeight: 5},
		{IDs: []string{"B"}, RewardAddresses: []string{"Y"}, Weight: 1, TotalWeight: 1},
	}
	entities := Group(validators)
	require.Equal([]float64{5, 1}, TotalWeights(entities))
	require.Equal([]float64{3, 1}, OwnWeights(entities))
	require.Equal(uint64(6), SumWeights(entities))
}
