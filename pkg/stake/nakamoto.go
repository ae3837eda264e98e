// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package stake

import (
	"sort"

	"github.com/ava-labs/avalanche-stakes/pkg/models"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
)

// Nakamoto returns the minimum number of entities whose combined weight
// reaches the threshold fraction of the total. Weights are ranked
// descending; the result is the length of the shortest prefix whose
// cumulative sum meets threshold * total (left-biased search, so exact hits
// count the minimal prefix). An empty vector yields 0.
func Nakamoto(weights []float64, threshold float64) int {
	n := len(weights)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(weights)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	cum := make([]float64, n)
	floats.CumSum(cum, sorted)

	target := threshold * cum[n-1]
	idx := sort.Search(n, func(i int) bool { return cum[i] >= target })
	if idx == n {
		// Unreachable for threshold <= 1, kept as a float guard.
		return n
	}
	return idx + 1
}

// NakamotoSet returns the minimal covering set itself: the shortest prefix
// of the stably ordered entities whose combined stake reaches the threshold
// share. Entities with equal weight are interchangeable for the count, but
// the reported membership follows SortEntities so repeated runs return the
// same set.
func NakamotoSet(entities []models.Entity, threshold float64) []models.Entity {
	if len(entities) == 0 {
		return nil
	}
	ordered := slices.Clone(entities)
	SortEntities(ordered)

	total := uint64(0)
	for i := range ordered {
		total += ordered[i].TotalWeight
	}
	target := threshold * float64(total)

	cum := uint64(0)
	for i := range ordered {
		cum += ordered[i].TotalWeight
		if float64(cum) >= target {
			return ordered[:i+1]
		}
	}
	return ordered
}
