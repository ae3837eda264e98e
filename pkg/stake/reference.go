// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package stake

import (
	"math"
	"time"

	"github.com/ava-labs/avalanche-stakes/pkg/constants"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
)

// Distribution is a synthetic weight vector used as a visual and numeric
// reference against the real stake distribution. Values are max-normalized;
// Rescaled and Cumulative map them onto the real data's total and maximum.
type Distribution struct {
	Values []float64

	// curve holds the values in the order the cumulative reference line is
	// drawn in (ascending for the uniform distribution).
	curve []float64
}

// Rescaled renormalizes the values so that their sum matches the given
// total stake.
func (d Distribution) Rescaled(total float64) []float64 {
	sum := floats.Sum(d.Values)
	out := make([]float64, len(d.Values))
	if sum == 0 {
		return out
	}
	for i, v := range d.Values {
		out[i] = v / sum * total
	}
	return out
}

// Cumulative returns the running sum of the reference curve, renormalized
// so that its maximum matches the given value.
func (d Distribution) Cumulative(max float64) []float64 {
	if len(d.curve) == 0 {
		return nil
	}
	cum := make([]float64, len(d.curve))
	floats.CumSum(cum, d.curve)
	peak := cum[len(cum)-1]
	if peak == 0 {
		return cum
	}
	for i := range cum {
		cum[i] = cum[i] / peak * max
	}
	return cum
}

// Equal produces the perfectly equal reference distribution, GINI ~ 0%.
func Equal(n int) Distribution {
	values := make([]float64, n)
	for i := range values {
		values[i] = 1
	}
	return Distribution{Values: values, curve: values}
}

// Uniform produces i.i.d. draws from a continuous uniform distribution,
// GINI ~ 33.3% in the large-sample limit. A zero seed gives run-to-run
// varying output; any other seed is reproducible.
func Uniform(n int, seed uint64) Distribution {
	rng := newRNG(seed)
	values := make([]float64, n)
	for i := range values {
		values[i] = rng.Float64()
	}
	maxNormalize(values)

	curve := slices.Clone(values)
	slices.Sort(curve)
	return Distribution{Values: values, curve: curve}
}

// LogLogistic applies the log-logistic density with the configured shape
// parameter to sorted uniform draws, GINI ~ 66.6%. Seed semantics as for
// Uniform.
func LogLogistic(n int, seed uint64) Distribution {
	rng := newRNG(seed)
	draws := make([]float64, n)
	for i := range draws {
		draws[i] = rng.Float64() / float64(n)
	}
	slices.Sort(draws)

	values := make([]float64, n)
	for i, a := range draws {
		values[i] = logLogisticDensity(a, constants.LogLogisticShape)
	}
	maxNormalize(values)
	return Distribution{Values: values, curve: values}
}

// ApplyExponent raises every weight to the given power and rescales the
// result so its maximum matches the original maximum. Exponents below 1
// flatten the distribution, above 1 sharpen it.
func ApplyExponent(weights []float64, exponent float64) []float64 {
	out := make([]float64, len(weights))
	if len(weights) == 0 {
		return out
	}
	for i, w := range weights {
		out[i] = math.Pow(w, exponent)
	}
	peak := floats.Max(out)
	if peak == 0 {
		return out
	}
	scale := floats.Max(weights) / peak
	for i := range out {
		out[i] *= scale
	}
	return out
}

// logLogisticDensity is f(a) = b*a^(b-1) / (1 + a^b)^2.
func logLogisticDensity(a float64, b float64) float64 {
	ab := math.Pow(a, b)
	return b * math.Pow(a, b-1) / ((1 + ab) * (1 + ab))
}

func maxNormalize(values []float64) {
	if len(values) == 0 {
		return
	}
	max := floats.Max(values)
	if max == 0 {
		return
	}
	for i := range values {
		values[i] /= max
	}
}

func newRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
