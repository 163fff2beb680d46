package datastructure

import (
	"fmt"
)

// Index is the 32-bit vertex index type; kept narrow since
// partitioned graphs rarely exceed a few hundred million nodes and
// the CSC arrays dominate memory.
type Index = uint32

// Graph is the read-only weighted undirected graph the QP core
// operates on: compressed sparse columns, symmetric, no diagonal.
// Ptr has length n+1, Idx and EdgeWeight have length Ptr[n] (nnz).
// VertexWeight is nil when every vertex has unit weight.
type Graph struct {
	n            int
	Ptr          []int32
	Idx          []int32
	EdgeWeight   []float64
	VertexWeight []float64 // nil => all 1
	W            float64   // sum of vertex weights
	X            float64   // sum of edge weights (each undirected edge counted twice, matching Ptr/Idx symmetry)
}

// NewGraph builds a Graph from CSC arrays. It does not copy: the
// caller must not mutate ptr/idx/w/vertexWeight afterward.
func NewGraph(ptr []int32, idx []int32, w []float64, vertexWeight []float64) *Graph {
	n := len(ptr) - 1
	g := &Graph{
		n:            n,
		Ptr:          ptr,
		Idx:          idx,
		EdgeWeight:   w,
		VertexWeight: vertexWeight,
	}
	for _, wt := range w {
		g.X += wt
	}
	if vertexWeight == nil {
		g.W = float64(n)
	} else {
		for _, a := range vertexWeight {
			g.W += a
		}
	}
	return g
}

// NumberOfVertices returns n.
func (g *Graph) NumberOfVertices() int {
	return g.n
}

// VertexWeightAt returns a_i, defaulting to 1 when VertexWeight is nil.
func (g *Graph) VertexWeightAt(i int) float64 {
	if g.VertexWeight == nil {
		return 1
	}
	return g.VertexWeight[i]
}

// ForEachNeighbor calls handle(j, weight) for every column-j neighbor
// of vertex i, in CSC storage order.
func (g *Graph) ForEachNeighbor(i int, handle func(j int, weight float64)) {
	for e := g.Ptr[i]; e < g.Ptr[i+1]; e++ {
		handle(int(g.Idx[e]), g.EdgeWeight[e])
	}
}

// Degree returns the number of incident edges of vertex i.
func (g *Graph) Degree(i int) int {
	return int(g.Ptr[i+1] - g.Ptr[i])
}

// Validate rejects degenerate or malformed graphs: n == 0, any
// non-positive vertex weight, or any negative edge weight.
func (g *Graph) Validate() error {
	if g.n == 0 {
		return fmt.Errorf("datastructure: degenerate graph: n == 0")
	}
	if len(g.Ptr) != g.n+1 {
		return fmt.Errorf("datastructure: malformed graph: len(Ptr)=%d, want %d", len(g.Ptr), g.n+1)
	}
	if g.VertexWeight != nil {
		for i, a := range g.VertexWeight {
			if a <= 0 {
				return fmt.Errorf("datastructure: degenerate graph: vertex weight a[%d]=%g is not strictly positive", i, a)
			}
		}
	}
	for e, w := range g.EdgeWeight {
		if w < 0 {
			return fmt.Errorf("datastructure: malformed graph: edge weight w[%d]=%g is negative", e, w)
		}
	}
	return nil
}
