package napsack

// NapUp increases lambda from start until the dual slope L'(lambda)
// falls to target. It is called when the slope at start still exceeds
// target: as lambda grows, every x_i = y_i - lambda*a_i only shrinks,
// so variables migrate boundary -> free -> settled and never back,
// which is what lets a single forward sweep over a heap of
// breakpoints find the root.
//
// Classification at start:
//   - x_i >= 1: classBoundary, next event at b_i = (y_i-1)/a_i  (drops to free)
//   - 0 < x_i < 1: classFree, next event at b_i = y_i/a_i        (drops to zero)
//   - x_i <= 0: classSettled, stays at zero for every larger lambda
//
// Both kinds of breakpoints lie at or ahead of start, so the sweep
// pops them in ascending order (Scratch.ascendingHeap).
func NapUp(y, a []float64, start, target float64, scratch *Scratch) float64 {
	n := len(y)
	heap := scratch.ascendingHeap()
	heap.Reset()
	class := scratch.class

	var aconst, alin float64
	for i := 0; i < n; i++ {
		ai := weightAt(a, i)
		xi := y[i] - ai*start
		switch {
		case xi >= 1:
			class[i] = classBoundary
			aconst += ai
			heap.Load(int32(i), (y[i]-1)/ai)
		case xi > 0:
			class[i] = classFree
			aconst += ai * y[i]
			alin += ai * ai
			heap.Load(int32(i), y[i]/ai)
		default:
			class[i] = classSettled
		}
	}
	heap.Heapify()

	lambda := start
	for {
		nextIdx, nextBP, hasNext := heap.Top()
		if alin > 0 {
			lhat := (aconst - target) / alin
			if !hasNext || lhat <= nextBP {
				return lhat
			}
		} else if aconst == target {
			return lambda
		} else if !hasNext {
			return lambda
		}

		heap.Pop()
		lambda = nextBP
		i := int(nextIdx)
		ai := weightAt(a, i)

		switch class[i] {
		case classBoundary:
			aconst += -ai + ai*y[i]
			alin += ai * ai
			class[i] = classFree
			heap.Push(nextIdx, y[i]/ai)
		case classFree:
			aconst -= ai * y[i]
			alin -= ai * ai
			class[i] = classSettled
		}
	}
}
