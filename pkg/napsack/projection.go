// Package napsack implements the bound-constrained continuous napsack
// projection at the heart of the QP relaxation: projecting y onto
// {x in [0,1]^n : lo <= a'x <= hi} via dual search over a scalar
// multiplier lambda. Despite the name this is a quadratic projection,
// not the 0/1 knapsack problem.
package napsack

import "math"

// clamp01 is the scalar projection onto [0,1]. NaN propagates.
func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Project computes x_i = clamp(y_i - lambda*a_i, 0, 1) for every i,
// writing into x (which may alias y). a == nil means unit weights.
func Project(x, y []float64, a []float64, lambda float64) {
	if lambda == 0 {
		for i, yi := range y {
			x[i] = clamp01(yi)
		}
		return
	}
	if a == nil {
		for i, yi := range y {
			x[i] = clamp01(yi - lambda)
		}
		return
	}
	for i, yi := range y {
		x[i] = clamp01(yi - lambda*a[i])
	}
}

// weightAt returns a_i, defaulting to 1 when a is nil.
func weightAt(a []float64, i int) float64 {
	if a == nil {
		return 1
	}
	return a[i]
}
