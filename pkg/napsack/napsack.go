package napsack

import (
	"math"

	"github.com/lintang-b-s/edgesep/pkg"
	"github.com/lintang-b-s/edgesep/pkg/datastructure"
)

// Napsack projects y onto {x in [0,1]^n : lo <= a'x <= hi}, writing
// the result into x (which may alias y) and returning the dual
// multiplier lambda that produced it.
//
// The dual L(lambda) is concave and piecewise linear in its
// derivative, differentiable everywhere except lambda = 0, where the
// left and right slopes differ by hi - lo. The search therefore never
// crosses zero inside a single directional sweep: the case dispatch
// below decides the sweep direction, the starting point, and which
// bound (lo or hi) the sweep targets, then clamps the result back to
// the correct sign.
//
// lambda0 is the starting guess, typically the multiplier returned by
// the previous call on a nearby y. freeset is an optional boundary
// snapshot from a previous iterate; when present together with a
// nonzero lambda0 it refines the guess with the closed-form root of
// the slope under the assumption that the snapshot's free set is
// already correct. Pass 0 and nil on a cold start.
//
// scratch is caller-owned, reused across calls, and exclusively held
// for the duration of one call. sink may be nil. a == nil means unit
// vertex weights.
//
// Returns ErrDegenerate if n == 0 or some a_i <= 0, ErrInfeasible if
// no point of [0,1]^n can satisfy the bounds.
func Napsack(x, y, a []float64, lo, hi float64, lambda0 float64, freeset *datastructure.FreeSet, scratch *Scratch, sink Sink) (float64, error) {
	n := len(y)
	if n == 0 {
		return 0, ErrDegenerate
	}
	totalWeight := 0.0
	for i := 0; i < n; i++ {
		ai := weightAt(a, i)
		if ai <= 0 {
			return 0, ErrDegenerate
		}
		totalWeight += ai
	}
	if lo > hi || hi < 0 || lo > totalWeight {
		return 0, ErrInfeasible
	}

	lambda := lambda0
	if freeset != nil && lambda != 0 {
		lambda = seedLambda(freeset, y, a, lambda, lo, hi)
	}

	slope := dualSlope(y, a, lambda)

	var label CaseLabel
	switch {
	case lambda >= 0 && slope >= hi:
		if slope > hi {
			label = Case1Up
			lambda = NapUp(y, a, lambda, hi, scratch)
			if lambda < 0 {
				lambda = 0
			}
		} else {
			label = Case1Noop
		}

	case lambda <= 0 && slope <= lo:
		if slope < lo {
			label = Case2Down
			lambda = NapDown(y, a, lambda, lo, scratch)
			if lambda > 0 {
				lambda = 0
			}
		} else {
			label = Case2Noop
		}

	case lambda != 0:
		// The guess landed on the wrong side of its own bound. Whether
		// the root lies beyond zero, between zero and the guess, or at
		// zero itself is decided by the slope at zero.
		slope0 := dualSlope(y, a, 0)
		if lambda > 0 {
			switch {
			case slope0 < lo:
				label = Case3aDown
				lambda = NapDown(y, a, 0, lo, scratch)
				if lambda > 0 {
					lambda = 0
				}
			case slope0 > hi:
				// Kept from the source solver: the sweep restarts at
				// the current guess and targets hi, and a negative
				// result is clamped to zero rather than re-searched
				// against lo. Here the slope is above hi at zero and
				// below hi at the guess, so the root lies between the
				// two and the clamp only absorbs rounding.
				label = Case3bDown
				lambda = NapDown(y, a, lambda, hi, scratch)
				if lambda < 0 {
					lambda = 0
				}
			default:
				label = Case3cNoop
				lambda = 0
			}
		} else {
			switch {
			case slope0 > hi:
				label = Case4aUp
				lambda = NapUp(y, a, 0, hi, scratch)
				if lambda < 0 {
					lambda = 0
				}
			case slope0 < lo:
				label = Case4bUp
				lambda = NapUp(y, a, lambda, lo, scratch)
				if lambda > 0 {
					lambda = 0
				}
			default:
				label = Case4cNoop
				lambda = 0
			}
		}

	default: // lambda == 0, lo < slope < hi
		if slope < hi {
			if slope < lo {
				label = Case3dDown
				lambda = NapDown(y, a, 0, lo, scratch)
				if lambda > 0 {
					lambda = 0
				}
			} else {
				label = Case3eNoop
			}
		} else {
			if slope > hi {
				label = Case4dUp
				lambda = NapUp(y, a, 0, hi, scratch)
				if lambda < 0 {
					lambda = 0
				}
			} else {
				label = Case4eNoop
			}
		}
	}

	Project(x, y, a, lambda)
	report(sink, label, lambda)
	if err := checkFeasible(x, a, lo, hi); err != nil {
		return lambda, err
	}
	return lambda, nil
}

// dualSlope evaluates a'clamp(y - lambda*a, 0, 1), the weighted
// constraint sum before subtracting hi or lo.
func dualSlope(y, a []float64, lambda float64) float64 {
	slope := 0.0
	for i, yi := range y {
		ai := weightAt(a, i)
		xi := yi - ai*lambda
		if xi >= 1 {
			slope += ai
		} else if xi > 0 {
			slope += ai * xi
		}
	}
	return slope
}

// seedLambda refines a nonzero starting guess from a FreeSet
// snapshot: treating at-upper members as pinned contributions and
// free members as the linear part, solve for the lambda that zeroes
// the slope outright. The sign of the incoming guess picks which
// bound the slope is measured against. Falls back to the unrefined
// guess when the snapshot has no free components to calibrate on.
func seedLambda(freeset *datastructure.FreeSet, y, a []float64, lambda, lo, hi float64) float64 {
	asum := -hi
	if lambda < 0 {
		asum = -lo
	}
	a2sum := 0.0
	for i, s := range freeset.Status {
		ai := weightAt(a, i)
		switch s {
		case datastructure.FreeSetAtUpper:
			asum += ai
		case datastructure.FreeSetFree:
			asum += ai * y[i]
			a2sum += ai * ai
		}
	}
	if a2sum == 0 {
		return lambda
	}
	return asum / a2sum
}

// checkFeasible verifies the post-conditions a correct dual search
// must satisfy: every x_i in [0,1], and a'x within [lo, hi] up to a
// slack that scales with the magnitude of the bounds. A failure here
// is a bug in the sweep, not a data problem.
func checkFeasible(x, a []float64, lo, hi float64) error {
	for i, xi := range x {
		if xi < 0 || xi > 1 {
			return &InvariantError{Lo: lo, Hi: hi, Index: i}
		}
	}
	atx := 0.0
	for i, xi := range x {
		atx += weightAt(a, i) * xi
	}
	eps := FeasibilityEps(lo, hi)
	if atx < lo-eps || atx > hi+eps {
		return &InvariantError{Lo: lo, Hi: hi, Atx: atx, Eps: eps, Index: -1}
	}
	return nil
}

// FeasibilityEps is the slack used by checkFeasible: 1e-3 scaled by
// the larger of 1 and the magnitude of either bound, so a projection
// against bounds in the thousands isn't held to the same absolute
// tolerance as one against bounds near zero.
func FeasibilityEps(lo, hi float64) float64 {
	scale := 1.0
	if v := math.Abs(lo); v > scale {
		scale = v
	}
	if v := math.Abs(hi); v > scale {
		scale = v
	}
	return pkg.FeasibilitySlackBase * scale
}
