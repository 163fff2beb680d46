package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleGraph() *Graph {
	// 0-1-2 triangle, unit edge weights.
	ptr := []int32{0, 2, 4, 6}
	idx := []int32{1, 2, 0, 2, 0, 1}
	w := []float64{1, 1, 1, 1, 1, 1}
	return NewGraph(ptr, idx, w, nil)
}

func TestGraphUnitWeights(t *testing.T) {
	g := triangleGraph()
	assert.Equal(t, 3, g.NumberOfVertices())
	assert.Equal(t, 1.0, g.VertexWeightAt(0))
	assert.Equal(t, 3.0, g.W)
	assert.Equal(t, 6.0, g.X)
	assert.Equal(t, 2, g.Degree(0))
}

func TestGraphNeighborIteration(t *testing.T) {
	g := triangleGraph()
	var seen []int
	g.ForEachNeighbor(0, func(j int, w float64) {
		seen = append(seen, j)
		assert.Equal(t, 1.0, w)
	})
	assert.ElementsMatch(t, []int{1, 2}, seen)
}

func TestGraphCustomVertexWeights(t *testing.T) {
	ptr := []int32{0, 1, 2}
	idx := []int32{1, 0}
	w := []float64{2, 2}
	g := NewGraph(ptr, idx, w, []float64{3, 5})
	assert.Equal(t, 8.0, g.W)
	assert.Equal(t, 3.0, g.VertexWeightAt(0))
	assert.Equal(t, 5.0, g.VertexWeightAt(1))
}

func TestGraphValidateRejectsEmptyGraph(t *testing.T) {
	g := NewGraph([]int32{0}, nil, nil, nil)
	err := g.Validate()
	require.Error(t, err)
}

func TestGraphValidateRejectsNonPositiveVertexWeight(t *testing.T) {
	ptr := []int32{0, 1, 2}
	idx := []int32{1, 0}
	w := []float64{1, 1}
	g := NewGraph(ptr, idx, w, []float64{1, 0})
	err := g.Validate()
	require.Error(t, err)
}

func TestGraphValidateRejectsNegativeEdgeWeight(t *testing.T) {
	ptr := []int32{0, 1, 2}
	idx := []int32{1, 0}
	w := []float64{1, -1}
	g := NewGraph(ptr, idx, w, nil)
	err := g.Validate()
	require.Error(t, err)
}

func TestGraphValidateAcceptsWellFormedGraph(t *testing.T) {
	g := triangleGraph()
	assert.NoError(t, g.Validate())
}
