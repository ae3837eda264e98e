// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package stake

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ava-labs/avalanche-stakes/pkg/models"
)

func weightVectors() gopter.Gen {
	return gen.SliceOf(gen.Float64Range(0, 1e9))
}

func TestGiniProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("gini stays within [0,1]", prop.ForAll(
		func(weights []float64) bool {
			g := Gini(weights)
			return g >= 0 && g <= 1
		},
		weightVectors(),
	))

	properties.Property("gini is scale invariant", prop.ForAll(
		func(weights []float64, scale float64) bool {
			scaled := make([]float64, len(weights))
			for i, w := range weights {
				scaled[i] = w * scale
			}
			diff := Gini(weights) - Gini(scaled)
			return diff < 1e-9 && diff > -1e-9
		},
		weightVectors(),
		gen.Float64Range(0.001, 1000),
	))

	properties.TestingRun(t)
}

func TestNakamotoProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("nakamoto grows with the threshold", prop.ForAll(
		func(weights []float64, lo float64, hi float64) bool {
			if lo > hi {
				lo, hi = hi, lo
			}
			return Nakamoto(weights, lo) <= Nakamoto(weights, hi)
		},
		weightVectors(),
		gen.Float64Range(0.01, 1),
		gen.Float64Range(0.01, 1),
	))

	properties.Property("full threshold counts the nonzero weights", prop.ForAll(
		func(weights []float64) bool {
			nonzero := 0
			for _, w := range weights {
				if w > 0 {
					nonzero++
				}
			}
			if nonzero == 0 {
				return true
			}
			return Nakamoto(weights, 1.0) == nonzero
		},
		weightVectors(),
	))

	properties.Property("nakamoto never exceeds the vector length", prop.ForAll(
		func(weights []float64, threshold float64) bool {
			return Nakamoto(weights, threshold) <= len(weights)
		},
		weightVectors(),
		gen.Float64Range(0.01, 1),
	))

	properties.TestingRun(t)
}

func TestGroupProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	addresses := gen.OneConstOf("X", "Y", "Z", "W")

	validators := gen.SliceOf(gopter.CombineGens(
		addresses,
		gen.UInt64Range(0, 1e12),
		gen.UInt64Range(0, 1e12),
	).Map(func(values []interface{}) models.ValidatorRecord {
		own := values[1].(uint64)
		delegated := values[2].(uint64)
		return models.ValidatorRecord{
			RewardAddresses: []string{values[0].(string)},
			Weight:          own,
			DelegatedWeight: delegated,
			TotalWeight:     own + delegated,
		}
	}))

	properties.Property("grouping preserves the total stake", prop.ForAll(
		func(records []models.ValidatorRecord) bool {
			total := uint64(0)
			for _, v := range records {
				total += v.TotalWeight
			}
			return SumWeights(Group(records)) == total
		},
		validators,
	))

	properties.Property("grouping never increases the entity count", prop.ForAll(
		func(records []models.ValidatorRecord) bool {
			return len(Group(records)) <= len(records)
		},
		validators,
	))

	properties.TestingRun(t)
}
