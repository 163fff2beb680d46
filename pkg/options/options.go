// Package options resolves the knobs the projected-gradient driver
// needs, loaded the same viper-with-defaults way the rest of the
// ambient stack loads configuration.
package options

import (
	"fmt"

	"github.com/lintang-b-s/edgesep/pkg"
	"github.com/spf13/viper"
)

// Options is the set of knobs governing the QP relaxation: how hard
// the dual search tries, and where the target split sits.
type Options struct {
	// UseQPGradProj gates the whole relaxation; false means the driver
	// should fall back to a trivial feasible point without running
	// the projected-gradient loop at all.
	UseQPGradProj bool

	// GradProjTolerance is the ||x_new - x||inf threshold for
	// declaring convergence.
	GradProjTolerance float64

	// GradProjIterationLimit bounds the outer loop.
	GradProjIterationLimit int

	// TargetSplit is the desired fraction of total vertex weight on
	// one side of the cut, in (0, 1).
	TargetSplit float64

	// SoftSplitTolerance widens [lo, hi] around TargetSplit*W by this
	// fraction of W, allowing the relaxation some slack before the
	// discrete refiner takes over.
	SoftSplitTolerance float64
}

// Default returns values that work without any env/config override.
func Default() Options {
	return Options{
		UseQPGradProj:          true,
		GradProjTolerance:      pkg.DefaultGradProjTolerance,
		GradProjIterationLimit: pkg.DefaultGradProjIterationLimit,
		TargetSplit:            pkg.DefaultTargetSplit,
		SoftSplitTolerance:     pkg.DefaultSoftSplitTolerance,
	}
}

// Load resolves Options from EDGESEP_-prefixed environment variables
// over the Default() baseline, validating the result before handing
// it back so a bad override fails at startup.
func Load() (Options, error) {
	v := viper.New()
	v.SetEnvPrefix("EDGESEP")
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("use_qp_grad_proj", def.UseQPGradProj)
	v.SetDefault("grad_proj_tolerance", def.GradProjTolerance)
	v.SetDefault("grad_proj_iteration_limit", def.GradProjIterationLimit)
	v.SetDefault("target_split", def.TargetSplit)
	v.SetDefault("soft_split_tolerance", def.SoftSplitTolerance)

	opts := Options{
		UseQPGradProj:          v.GetBool("use_qp_grad_proj"),
		GradProjTolerance:      v.GetFloat64("grad_proj_tolerance"),
		GradProjIterationLimit: v.GetInt("grad_proj_iteration_limit"),
		TargetSplit:            v.GetFloat64("target_split"),
		SoftSplitTolerance:     v.GetFloat64("soft_split_tolerance"),
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate rejects settings the driver can't do anything useful with.
func (o Options) Validate() error {
	if o.GradProjTolerance <= 0 {
		return fmt.Errorf("options: grad proj tolerance must be positive, got %g", o.GradProjTolerance)
	}
	if o.GradProjIterationLimit <= 0 {
		return fmt.Errorf("options: grad proj iteration limit must be positive, got %d", o.GradProjIterationLimit)
	}
	if o.TargetSplit <= 0 || o.TargetSplit >= 1 {
		return fmt.Errorf("options: target split must be in (0,1), got %g", o.TargetSplit)
	}
	if o.SoftSplitTolerance < 0 {
		return fmt.Errorf("options: soft split tolerance must be non-negative, got %g", o.SoftSplitTolerance)
	}
	return nil
}

// Bounds derives the napsack's [lo, hi] window from TargetSplit and
// SoftSplitTolerance against the graph's total vertex weight W.
func (o Options) Bounds(totalWeight float64) (lo, hi float64) {
	center := o.TargetSplit * totalWeight
	slack := o.SoftSplitTolerance * totalWeight
	lo = center - slack
	if lo < 0 {
		lo = 0
	}
	hi = center + slack
	if hi > totalWeight {
		hi = totalWeight
	}
	return lo, hi
}
