package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsOutOfRangeTargetSplit(t *testing.T) {
	o := Default()
	o.TargetSplit = 1.2
	assert.Error(t, o.Validate())

	o.TargetSplit = 0
	assert.Error(t, o.Validate())
}

func TestValidateRejectsNonPositiveTolerance(t *testing.T) {
	o := Default()
	o.GradProjTolerance = 0
	assert.Error(t, o.Validate())
}

func TestValidateRejectsNonPositiveIterationLimit(t *testing.T) {
	o := Default()
	o.GradProjIterationLimit = 0
	assert.Error(t, o.Validate())
}

func TestBoundsCentersOnTargetSplit(t *testing.T) {
	o := Default()
	o.TargetSplit = 0.4
	o.SoftSplitTolerance = 0
	lo, hi := o.Bounds(100)
	assert.Equal(t, 40.0, lo)
	assert.Equal(t, 40.0, hi)
}

func TestBoundsWidensWithSoftSplitTolerance(t *testing.T) {
	o := Default()
	o.TargetSplit = 0.5
	o.SoftSplitTolerance = 0.1
	lo, hi := o.Bounds(100)
	assert.Equal(t, 40.0, lo)
	assert.Equal(t, 60.0, hi)
}

func TestBoundsClampsToWeightRange(t *testing.T) {
	o := Default()
	o.TargetSplit = 0.05
	o.SoftSplitTolerance = 0.2
	lo, hi := o.Bounds(100)
	assert.Equal(t, 0.0, lo)
	assert.GreaterOrEqual(t, hi, 0.0)
}

func TestLoadReturnsValidOptions(t *testing.T) {
	opts, err := Load()
	require.NoError(t, err)
	assert.NoError(t, opts.Validate())
}
