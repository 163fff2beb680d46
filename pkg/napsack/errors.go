package napsack

import (
	"errors"
	"fmt"
)

// ErrInfeasible is returned when lo > hi, lo exceeds the sum of vertex
// weights, or hi < 0.
var ErrInfeasible = errors.New("napsack: infeasible constraint bounds")

// ErrDegenerate is returned when n == 0 or some a_i <= 0.
var ErrDegenerate = errors.New("napsack: degenerate input")

// InvariantError reports a post-condition failure: 0<=x_i<=1 or
// lo-eps <= a'x <= hi+eps violated after a call. This indicates a bug
// in the dual search itself, not a data problem, so callers should
// treat it as fatal rather than retry.
type InvariantError struct {
	Lo, Hi, Atx, Eps float64
	Index            int // offending variable, or -1 if the violation is the aggregate constraint
}

func (e *InvariantError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("napsack: invariant violation: x[%d] out of [0,1]", e.Index)
	}
	return fmt.Sprintf("napsack: invariant violation: a'x=%g outside [%g, %g] (eps=%g)", e.Atx, e.Lo, e.Hi, e.Eps)
}
