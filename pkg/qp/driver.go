package qp

import (
	"math"

	"github.com/lintang-b-s/edgesep/pkg"
	"github.com/lintang-b-s/edgesep/pkg/datastructure"
	"github.com/lintang-b-s/edgesep/pkg/napsack"
	"github.com/lintang-b-s/edgesep/pkg/options"
	"gonum.org/v1/gonum/floats"
)

// Driver runs the projected-gradient loop: gradient step, napsack
// projection back onto the feasible band, backtracking on the step
// size until the sufficient-decrease test passes, FreeSet refresh,
// repeat until the iterate stops moving or the iteration cap is hit.
//
// All buffers are allocated once in NewDriver and reused every Solve
// call; the napsack's scratch in particular is lent out per call and
// carries no meaning between calls.
type Driver struct {
	graph   *datastructure.Graph
	cost    *Cost
	opts    options.Options
	scratch *napsack.Scratch
	freeset *datastructure.FreeSet
	sink    napsack.Sink

	grad   []float64
	y      []float64
	xNext  []float64
	lo, hi float64
}

// NewDriver builds a Driver for g under opts. sink may be nil to
// discard napsack case diagnostics.
func NewDriver(g *datastructure.Graph, opts options.Options, sink napsack.Sink) *Driver {
	n := g.NumberOfVertices()
	lo, hi := opts.Bounds(g.W)
	return &Driver{
		graph:   g,
		cost:    NewCost(g, opts),
		opts:    opts,
		scratch: napsack.NewScratch(n),
		freeset: datastructure.NewFreeSet(n),
		sink:    sink,
		grad:    make([]float64, n),
		y:       make([]float64, n),
		xNext:   make([]float64, n),
		lo:      lo,
		hi:      hi,
	}
}

// Solve runs the projected-gradient loop from the given starting
// point (not mutated; the result carries its own copy) and returns
// the best feasible iterate found.
//
// The multiplier and FreeSet from each accepted step seed the next
// napsack call: successive iterates are close, so the dual search
// usually starts within a few breakpoints of its root and the heap
// stays small.
func (d *Driver) Solve(x0 []float64) (Result, error) {
	n := d.graph.NumberOfVertices()
	x := make([]float64, n)
	copy(x, x0)

	if !d.opts.UseQPGradProj {
		lambda, err := napsack.Napsack(x, x, d.graph.VertexWeight, d.lo, d.hi, 0, nil, d.scratch, d.sink)
		if err != nil {
			return Result{Status: pkg.StatusInfeasible}, err
		}
		return Result{X: x, Lambda: lambda, Status: pkg.StatusConverged, Cost: d.cost.Value(x)}, nil
	}

	step := pkg.DefaultInitialStep
	var lambda float64

	for iter := 0; iter < d.opts.GradProjIterationLimit; iter++ {
		d.cost.Gradient(x, d.grad)
		f0 := d.cost.Value(x)

		accepted := false
		for tries := 0; tries < 64; tries++ {
			for i := 0; i < n; i++ {
				d.y[i] = x[i] - step*d.grad[i]
			}
			l, err := napsack.Napsack(d.xNext, d.y, d.graph.VertexWeight, d.lo, d.hi, lambda, d.freeset, d.scratch, d.sink)
			if err != nil {
				return Result{Status: pkg.StatusInfeasible}, err
			}
			// Sufficient decrease against the projected gradient
			// (x - xNext)/step, not the raw gradient: on the boundary
			// the raw gradient overstates how much progress a step can
			// make.
			dist := floats.Distance(d.xNext, x, 2)
			f1 := d.cost.Value(d.xNext)
			if f1 <= f0-pkg.DefaultArmijoSigma*dist*dist/step {
				lambda = l
				accepted = true
				break
			}
			step *= pkg.DefaultBacktrackFactor
		}
		if !accepted {
			// Step shrank past usefulness without satisfying the
			// decrease test; treat the current iterate as the best we
			// can do rather than looping forever.
			return Result{X: x, Lambda: lambda, Status: pkg.StatusIterationLimit, Iterations: iter, Cost: f0}, nil
		}

		delta := floats.Distance(d.xNext, x, math.Inf(1))
		copy(x, d.xNext)
		d.freeset.Update(x)

		if delta < d.opts.GradProjTolerance {
			return Result{X: x, Lambda: lambda, Status: pkg.StatusConverged, Iterations: iter + 1, Cost: d.cost.Value(x)}, nil
		}
	}

	return Result{X: x, Lambda: lambda, Status: pkg.StatusIterationLimit, Iterations: d.opts.GradProjIterationLimit, Cost: d.cost.Value(x)}, nil
}
