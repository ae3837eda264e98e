// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"encoding/json"
	"testing"

	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/stretchr/testify/require"
)

func TestValidatorRecordUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		data string
		want ValidatorRecord
	}{
		{
			name: "scalar id",
			data: `{"id":"NodeID-1","rewardAddresses":["X"],"weight":5,"totalWeight":5}`,
			want: ValidatorRecord{
				IDs:             []string{"NodeID-1"},
				RewardAddresses: []string{"X"},
				Weight:          5,
				TotalWeight:     5,
			},
		},
		{
			name: "array id",
			data: `{"id":["NodeID-1","NodeID-2"],"rewardAddresses":["X"],"weight":5,"totalWeight":5}`,
			want: ValidatorRecord{
				IDs:             []string{"NodeID-1", "NodeID-2"},
				RewardAddresses: []string{"X"},
				Weight:          5,
				TotalWeight:     5,
			},
		},
		{
			name: "current delegated weight field",
			data: `{"id":"N","rewardAddresses":["X"],"weight":5,"delegatorWeight":3,"totalWeight":8}`,
			want: ValidatorRecord{
				IDs:             []string{"N"},
				RewardAddresses: []string{"X"},
				Weight:          5,
				DelegatedWeight: 3,
				TotalWeight:     8,
			},
		},
		{
			name: "legacy delegated weight field",
			data: `{"id":"N","rewardAddresses":["X"],"weight":5,"delegatedWeight":2,"totalWeight":7}`,
			want: ValidatorRecord{
				IDs:             []string{"N"},
				RewardAddresses: []string{"X"},
				Weight:          5,
				DelegatedWeight: 2,
				TotalWeight:     7,
			},
		},
		{
			name: "current field wins over legacy",
			data: `{"id":"N","rewardAddresses":["X"],"weight":5,"delegatorWeight":3,"delegatedWeight":2,"totalWeight":8}`,
			want: ValidatorRecord{
				IDs:             []string{"N"},
				RewardAddresses: []string{"X"},
				Weight:          5,
				DelegatedWeight: 3,
				TotalWeight:     8,
			},
		},
		{
			name: "no delegated weight defaults to zero",
			data: `{"id":"N","rewardAddresses":["X"],"weight":5,"totalWeight":5}`,
			want: ValidatorRecord{
				IDs:             []string{"N"},
				RewardAddresses: []string{"X"},
				Weight:          5,
				TotalWeight:     5,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ValidatorRecord
			require.NoError(t, json.Unmarshal([]byte(tt.data), &got))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestValidatorRecordUnmarshalExtended(t *testing.T) {
	require := require.New(t)

	data := `{
		"id": "NodeID-1",
		"rewardAddresses": ["X"],
		"weight": 5,
		"totalWeight": 5,
		"ip": "10.0.0.1:9651",
		"version": "avalanche/1.10.0",
		"geo": {
			"country": {"code": "DE", "name": "Germany"},
			"asnum": {"name": "AS24940 Hetzner Online GmbH"},
			"city": {"name": "Frankfurt", "region": "HE"}
		}
	}`
	var got ValidatorRecord
	require.NoError(json.Unmarshal([]byte(data), &got))
	require.Equal("10.0.0.1:9651", got.IP)
	require.Equal("10.0.0.1", got.BareIP())
	require.Equal("DE", got.Geo.Country.Code)
	require.Equal("AS24940 Hetzner Online GmbH", got.Geo.ASNum.Name)
	require.Equal("Frankfurt, HE", got.CityLabel())
}

func TestValidatorRecordUnmarshalBadID(t *testing.T) {
	var got ValidatorRecord
	err := json.Unmarshal([]byte(`{"id":7,"rewardAddresses":["X"]}`), &got)
	require.Error(t, err)
}

func TestEntityKey(t *testing.T) {
	tests := []struct {
		name      string
		addresses []string
		want      string
	}{
		{"empty", nil, ""},
		{"single", []string{"X"}, "X"},
		{"sorted", []string{"Y", "X"}, "X,Y"},
		{"deduplicated", []string{"X", "Y", "X"}, "X,Y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EntityKey(tt.addresses))
		})
	}
}

func TestShortAddress(t *testing.T) {
	require := require.New(t)

	e := Entity{RewardAddresses: set.Of("P-avax1l0rdv9qtr7qsklcnhp7zw22kqgzfn43av5fq63")}
	require.Equal("P-avax1l0rdv...fq63", e.ShortAddress())

	short := Entity{RewardAddresses: set.Of("P-avax1short")}
	require.Equal("P-avax1short", short.ShortAddress())
}

func TestStakeShare(t *testing.T) {
	require := require.New(t)

	e := Entity{TotalWeight: 30}
	require.InDelta(0.3, e.StakeShare(100), 1e-12)
	require.Zero(e.StakeShare(0))
}
