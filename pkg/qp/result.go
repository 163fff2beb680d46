package qp

import "github.com/lintang-b-s/edgesep/pkg"

// Result is the outcome of a Driver.Solve call.
type Result struct {
	X          []float64
	Lambda     float64
	Status     pkg.Status
	Iterations int
	Cost       float64
}
