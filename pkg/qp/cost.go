// Package qp drives the projected-gradient relaxation that separates
// a graph's vertices into two fractional groups: minimize the
// Laplacian quadratic form subject to the napsack's [lo, hi] weight
// band.
package qp

import (
	"github.com/lintang-b-s/edgesep/pkg/datastructure"
	"github.com/lintang-b-s/edgesep/pkg/options"
	"gonum.org/v1/gonum/floats"
)

// Cost is the quadratic objective f(x) = x'Lx + c'x. The Laplacian
// term L = D - A is evaluated directly against the graph's CSC
// storage rather than materializing L (gonum's mat package has no
// sparse CSC/CSR matrix type to delegate to). The linear term encodes
// the target split: c_i = (X/(2W))*(1 - 2*targetSplit)*a_i, zero for
// an even 1:1 split, otherwise biasing weighted mass toward the
// requested side. X/(2W) puts the bias on the same scale as the cut
// term; the napsack band stays the hard balance constraint.
type Cost struct {
	g *datastructure.Graph
	c []float64 // nil when the split bias is identically zero
}

// NewCost binds a Cost to a graph and the split target for the
// lifetime of one QP solve.
func NewCost(g *datastructure.Graph, opts options.Options) *Cost {
	cost := &Cost{g: g}
	bias := g.X / (2 * g.W) * (1 - 2*opts.TargetSplit)
	if bias != 0 {
		cost.c = make([]float64, g.NumberOfVertices())
		for i := range cost.c {
			cost.c[i] = bias * g.VertexWeightAt(i)
		}
	}
	return cost
}

// Value returns x'Lx + c'x.
func (c *Cost) Value(x []float64) float64 {
	n := c.g.NumberOfVertices()
	total := 0.0
	for i := 0; i < n; i++ {
		xi := x[i]
		di := 0.0
		rowTerm := 0.0
		c.g.ForEachNeighbor(i, func(j int, w float64) {
			di += w
			rowTerm += w * xi * x[j]
		})
		total += di*xi*xi - rowTerm
	}
	if c.c != nil {
		total += floats.Dot(c.c, x)
	}
	return total
}

// Gradient writes grad = 2*L*x + c into grad (which must have length
// n and must not alias x).
func (c *Cost) Gradient(x, grad []float64) {
	n := c.g.NumberOfVertices()
	for i := 0; i < n; i++ {
		xi := x[i]
		di := 0.0
		neigh := 0.0
		c.g.ForEachNeighbor(i, func(j int, w float64) {
			di += w
			neigh += w * x[j]
		})
		grad[i] = 2 * (di*xi - neigh)
	}
	if c.c != nil {
		floats.Add(grad, c.c)
	}
}
