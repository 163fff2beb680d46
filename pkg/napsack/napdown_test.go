package napsack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNapDownFindsExactBreakpointSolution(t *testing.T) {
	y := []float64{-0.5, 0.1, 0.3}
	scratch := NewScratch(3)

	lambda := NapDown(y, nil, 0, 1.0, scratch)
	assert.InDelta(t, -0.3, lambda, 1e-9)
}

func TestNapDownIsMonotoneInTarget(t *testing.T) {
	// A higher target sum requires the multiplier to drop further
	// (slope rises as lambda falls), so the root for the larger
	// target must be the smaller lambda.
	y := []float64{-0.2, 0.1, 0.4, 0.9}
	scratch := NewScratch(4)

	rootForLowTarget := NapDown(y, nil, 0, 0.5, scratch)
	rootForHighTarget := NapDown(y, nil, 0, 1.0, scratch)
	assert.Less(t, rootForHighTarget, rootForLowTarget)
}

func TestNapUpAndNapDownAgreeAtTheSameTarget(t *testing.T) {
	// Starting exactly at the root of a given target, both sweeps
	// should report back that same lambda without moving.
	y := []float64{0.1, 0.4, 0.8, 1.2}
	scratch := NewScratch(4)

	root := NapUp(y, nil, 0, 1.0, scratch)
	atRoot := NapDown(y, nil, root, 1.0, scratch)
	assert.InDelta(t, root, atRoot, 1e-9)
}
