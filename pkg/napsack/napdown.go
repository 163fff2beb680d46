package napsack

// NapDown decreases lambda from start until the dual slope L'(lambda)
// rises to target. It is the mirror image of NapUp: as lambda shrinks,
// every x_i = y_i - lambda*a_i only grows, so variables migrate
// settled -> free -> boundary and never back.
//
// Classification at start:
//   - x_i <= 0: classSettled (not boundary — see below), next event at b_i = y_i/a_i      (rises off zero)
//   - 0 < x_i < 1: classFree, next event at b_i = (y_i-1)/a_i                              (rises to one)
//   - x_i >= 1: fixed at one for every smaller lambda, tracked as a flat accumulator
//
// Both kinds of breakpoints lie at or behind start, so the sweep pops
// them in descending order (Scratch.descendingHeap). classSettled does
// double duty here for "currently at zero, still reachable" — NapDown
// only ever pushes zero- and free-state variables onto the heap, so
// there is no ambiguity with NapUp's "permanently dormant" meaning of
// the same label within a single call.
func NapDown(y, a []float64, start, target float64, scratch *Scratch) float64 {
	n := len(y)
	heap := scratch.descendingHeap()
	heap.Reset()
	class := scratch.class

	var fixedUpper, aconst, alin float64
	for i := 0; i < n; i++ {
		ai := weightAt(a, i)
		xi := y[i] - ai*start
		switch {
		case xi >= 1:
			fixedUpper += ai
		case xi > 0:
			class[i] = classFree
			aconst += ai * y[i]
			alin += ai * ai
			heap.Load(int32(i), (y[i]-1)/ai)
		default:
			class[i] = classSettled
			heap.Load(int32(i), y[i]/ai)
		}
	}
	heap.Heapify()
	aconst += fixedUpper

	lambda := start
	for {
		nextIdx, nextBP, hasNext := heap.Top()
		if alin > 0 {
			lhat := (aconst - target) / alin
			if !hasNext || lhat >= nextBP {
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
		case classSettled:
			aconst += ai * y[i]
			alin += ai * ai
			class[i] = classFree
			heap.Push(nextIdx, (y[i]-1)/ai)
		case classFree:
			aconst += -ai*y[i] + ai
			alin -= ai * ai
			class[i] = classBoundary
		}
	}
}
