package napsack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNapUpFindsExactBreakpointSolution(t *testing.T) {
	y := []float64{0.2, 0.5, 0.9, 1.3}
	scratch := NewScratch(4)

	lambda := NapUp(y, nil, 0, 1.5, scratch)
	assert.InDelta(t, 0.4, lambda, 1e-9)
}

func TestNapUpIsMonotoneNonIncreasingInTarget(t *testing.T) {
	y := []float64{0.1, 0.4, 0.7, 1.1, 1.6}
	scratch := NewScratch(5)

	lowTarget := NapUp(y, nil, 0, 1.0, scratch)
	highTarget := NapUp(y, nil, 0, 2.0, scratch)
	assert.Less(t, highTarget, lowTarget)
}

func TestNapUpStartingPointDoesNotChangeTheRoot(t *testing.T) {
	y := []float64{0.2, 0.5, 0.9, 1.3}
	scratch := NewScratch(4)

	fromZero := NapUp(y, nil, 0, 1.5, scratch)
	fromSeed := NapUp(y, nil, 0.2, 1.5, scratch)
	assert.InDelta(t, fromZero, fromSeed, 1e-9)
}
