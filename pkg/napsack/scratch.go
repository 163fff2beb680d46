package napsack

import "github.com/lintang-b-s/edgesep/pkg/datastructure"

// Scratch bundles the three work buffers a Napsack call needs: w[n]
// (the breakpoint heap's key array), heap1[n+1] and heap2[n+1] (the
// heap's position<->index buffers). Exclusively owned by the current call;
// the caller must not alias these across concurrent invocations.
// There is exactly one Scratch per qp.Driver, reused every iteration,
// which is what makes repeated napsack calls allocation-free.
type Scratch struct {
	n     int
	W     []float64
	Heap1 []int32 // position -> index
	Heap2 []int32 // index -> position (0 = absent)
	class []sweepClass
}

// NewScratch allocates the buffers for a graph of size n. This is the
// only allocation in the napsack's lifetime; every subsequent call
// reuses it.
func NewScratch(n int) *Scratch {
	return &Scratch{
		n:     n,
		W:     make([]float64, n),
		Heap1: make([]int32, n+1),
		Heap2: make([]int32, n+1),
		class: make([]sweepClass, n),
	}
}

// ascendingHeap wraps the scratch buffers as a min-heap. NapUp sweeps
// lambda upward, so every breakpoint still on the heap lies ahead of
// the current lambda; the nearest one is the smallest, which is what
// needs to pop first.
func (s *Scratch) ascendingHeap() *datastructure.Heap {
	return datastructure.NewHeap(s.Heap1, s.Heap2, s.W, false)
}

// descendingHeap wraps the scratch buffers as a max-heap. NapDown
// sweeps lambda downward, so every breakpoint still on the heap lies
// behind the current lambda; the nearest one is the largest.
func (s *Scratch) descendingHeap() *datastructure.Heap {
	return datastructure.NewHeap(s.Heap1, s.Heap2, s.W, true)
}
