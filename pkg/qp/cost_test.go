package qp

import (
	"testing"

	"github.com/lintang-b-s/edgesep/pkg/datastructure"
	"github.com/lintang-b-s/edgesep/pkg/options"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func pathGraph() *datastructure.Graph {
	// 0-1-2 path, unit weights.
	ptr := []int32{0, 1, 3, 4}
	idx := []int32{1, 0, 2, 1}
	w := []float64{1, 1, 1, 1}
	return datastructure.NewGraph(ptr, idx, w, nil)
}

func TestCostValueMatchesQuadraticForm(t *testing.T) {
	g := pathGraph()
	cost := NewCost(g, options.Default())

	x := []float64{1, 0, 1}
	// L = [[1,-1,0],[-1,2,-1],[0,-1,1]]; x'Lx = 1*1 + 1*1 = 2 for this x
	// (vertex 1 disagrees with both its neighbors).
	assert.InDelta(t, 2.0, cost.Value(x), 1e-9)
}

func TestCostValueZeroForUniformAssignment(t *testing.T) {
	g := pathGraph()
	cost := NewCost(g, options.Default())
	x := []float64{0.5, 0.5, 0.5}
	assert.InDelta(t, 0.0, cost.Value(x), 1e-9)
}

func TestCostValueMatchesDenseLaplacian(t *testing.T) {
	g := pathGraph()
	n := g.NumberOfVertices()

	laplacian := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		deg := 0.0
		g.ForEachNeighbor(i, func(j int, w float64) {
			deg += w
			laplacian.SetSym(i, j, -w)
		})
		laplacian.SetSym(i, i, deg)
	}

	xs := []float64{0.3, 0.6, 0.8}
	x := mat.NewVecDense(n, xs)
	assert.InDelta(t, mat.Inner(x, laplacian, x), NewCost(g, options.Default()).Value(xs), 1e-12)
}

func TestCostLinearTermEncodesTargetSplit(t *testing.T) {
	// Path graph: X = 4, W = 3. With targetSplit = 0.25 the bias is
	// (4/6)*(1 - 0.5) = 1/3 per unit vertex weight, pushing mass away
	// from side B.
	g := pathGraph()
	opts := options.Default()
	opts.TargetSplit = 0.25
	cost := NewCost(g, opts)

	// All-ones has zero Laplacian term, so only c'x remains.
	assert.InDelta(t, 1.0, cost.Value([]float64{1, 1, 1}), 1e-12)

	// At a uniform interior point 2Lx vanishes and the gradient is
	// exactly the bias.
	grad := make([]float64, 3)
	cost.Gradient([]float64{0.5, 0.5, 0.5}, grad)
	for _, gi := range grad {
		assert.InDelta(t, 1.0/3.0, gi, 1e-12)
	}
}

func TestCostEvenSplitHasNoLinearTerm(t *testing.T) {
	g := pathGraph()
	cost := NewCost(g, options.Default())

	// targetSplit = 0.5: the all-ones vector cuts nothing and carries
	// no bias.
	assert.InDelta(t, 0.0, cost.Value([]float64{1, 1, 1}), 1e-12)
}

func TestCostGradientMatchesFiniteDifference(t *testing.T) {
	g := pathGraph()
	opts := options.Default()
	opts.TargetSplit = 0.3
	cost := NewCost(g, opts)

	x := []float64{0.3, 0.6, 0.8}
	grad := make([]float64, 3)
	cost.Gradient(x, grad)

	const h = 1e-6
	for i := 0; i < 3; i++ {
		xp := append([]float64(nil), x...)
		xm := append([]float64(nil), x...)
		xp[i] += h
		xm[i] -= h
		numeric := (cost.Value(xp) - cost.Value(xm)) / (2 * h)
		assert.InDelta(t, numeric, grad[i], 1e-3)
	}
}
