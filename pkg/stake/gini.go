// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stake implements the statistical core of the analysis: grouping
// validators into ownership entities and computing inequality and
// concentration metrics over their stake weights. The package is pure
// computation; it performs no I/O.
package stake

import (
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
)

// Gini returns the GINI coefficient of inequality of the given non-negative
// weights as a fraction in [0,1]: the mean absolute difference over all
// ordered pairs (self-pairs included), divided by twice the arithmetic mean.
//
// The computation uses the equivalent sorted closed form
//
//	G = (2 * sum(i * x_i)) / (n * sum(x)) - (n+1)/n
//
// with x ascending and i starting at 1, which matches the pairwise
// definition to float precision in O(n log n).
//
// An empty vector yields 0. A nonzero-length all-zero vector also yields 0:
// the distribution is degenerate but perfectly equal, so reporting zero
// inequality is well defined and avoids the division by zero.
func Gini(weights []float64) float64 {
	n := len(weights)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(weights)
	slices.Sort(sorted)

	total := floats.Sum(sorted)
	if total == 0 {
		return 0
	}

	indexWeighted := 0.0
	for i, w := range sorted {
		indexWeighted += float64(i+1) * w
	}
	nf := float64(n)
	return (2*indexWeighted)/(nf*total) - (nf+1)/nf
}

// GiniPercent returns the GINI coefficient in percent.
func GiniPercent(weights []float64) float64 {
	return 100 * Gini(weights)
}
