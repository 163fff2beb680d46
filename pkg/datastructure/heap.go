package datastructure

// Heap is an indexed max- or min-heap over breakpoint keys, backed by
// two caller-provided integer arrays of length n+1: order maps heap
// position -> variable index, pos maps variable index -> heap
// position (0 meaning absent). No allocation happens on the hot path;
// Load/Heapify/Push/Pop/Update only touch the caller-owned buffers
// and the key slice.
type Heap struct {
	order []int32   // order[p], p in [1,size] -> variable index
	pos   []int32   // pos[idx+1], 0 => idx not in heap, else 1-based position
	key   []float64 // key[idx], valid only while idx is in the heap
	size  int
	max   bool // true: max-heap; false: min-heap
}

// NewHeap wraps caller-owned buffers. order and pos must both have
// length n+1; key must have length n. max selects max-heap or
// min-heap ordering; ties break toward the smaller variable index so
// pop order is deterministic.
func NewHeap(order []int32, pos []int32, key []float64, max bool) *Heap {
	return &Heap{order: order, pos: pos, key: key, max: max}
}

// Len reports the number of entries currently in the heap.
func (h *Heap) Len() int { return h.size }

// Contains reports whether idx currently occupies a heap slot.
func (h *Heap) Contains(idx int) bool {
	return h.pos[idx+1] != 0
}

// Reset empties the heap without touching key values, clearing the
// pos entry of every index still in the heap.
func (h *Heap) Reset() {
	for p := 1; p <= h.size; p++ {
		h.pos[h.order[p]+1] = 0
	}
	h.size = 0
}

// greater reports whether index i has strictly higher heap priority
// than index j under the configured max/min ordering, tie-breaking on
// the smaller index.
func (h *Heap) greater(i, j int32) bool {
	ki, kj := h.key[i], h.key[j]
	if ki != kj {
		if h.max {
			return ki > kj
		}
		return ki < kj
	}
	return i < j
}

func (h *Heap) swap(p, q int) {
	h.order[p], h.order[q] = h.order[q], h.order[p]
	h.pos[h.order[p]+1] = int32(p)
	h.pos[h.order[q]+1] = int32(q)
}

func (h *Heap) siftUp(p int) {
	for p > 1 {
		parent := p / 2
		if !h.greater(h.order[p], h.order[parent]) {
			break
		}
		h.swap(p, parent)
		p = parent
	}
}

func (h *Heap) siftDown(p int) {
	for {
		largest := p
		if l := 2 * p; l <= h.size && h.greater(h.order[l], h.order[largest]) {
			largest = l
		}
		if r := 2*p + 1; r <= h.size && h.greater(h.order[r], h.order[largest]) {
			largest = r
		}
		if largest == p {
			break
		}
		h.swap(p, largest)
		p = largest
	}
}

// Load appends idx with the given key without restoring heap order.
// A sequence of Loads must be sealed with Heapify before Top, Pop, or
// Update are used; the pair gives O(m) bulk construction instead of
// O(m log m) repeated Push.
func (h *Heap) Load(idx int32, key float64) {
	h.size++
	h.order[h.size] = idx
	h.key[idx] = key
	h.pos[idx+1] = int32(h.size)
}

// Heapify restores heap order over everything Loaded so far, in O(m).
func (h *Heap) Heapify() {
	for p := h.size / 2; p >= 1; p-- {
		h.siftDown(p)
	}
}

// Build loads indices with the given keys in O(m), replacing any
// existing contents.
func (h *Heap) Build(indices []int32, keys []float64) {
	h.size = 0
	for p, idx := range indices {
		h.order[p+1] = idx
		h.key[idx] = keys[p]
		h.pos[idx+1] = int32(p + 1)
	}
	h.size = len(indices)
	h.Heapify()
}

// Push inserts idx with the given key in O(log m). idx must not
// already be in the heap.
func (h *Heap) Push(idx int32, key float64) {
	h.size++
	h.order[h.size] = idx
	h.key[idx] = key
	h.pos[idx+1] = int32(h.size)
	h.siftUp(h.size)
}

// Top returns the highest-priority (idx, key) without removing it.
func (h *Heap) Top() (idx int32, key float64, ok bool) {
	if h.size == 0 {
		return 0, 0, false
	}
	idx = h.order[1]
	return idx, h.key[idx], true
}

// Pop removes and returns the highest-priority (idx, key) in
// O(log m).
func (h *Heap) Pop() (idx int32, key float64, ok bool) {
	if h.size == 0 {
		return 0, 0, false
	}
	idx = h.order[1]
	key = h.key[idx]
	h.pos[idx+1] = 0
	last := h.order[h.size]
	h.size--
	if h.size > 0 {
		h.order[1] = last
		h.pos[last+1] = 1
		h.siftDown(1)
	}
	return idx, key, true
}

// Update changes idx's key in O(log m). idx must already be in the
// heap.
func (h *Heap) Update(idx int32, newKey float64) {
	p := int(h.pos[idx+1])
	old := h.key[idx]
	h.key[idx] = newKey
	if h.max == (newKey > old) {
		h.siftUp(p)
	} else {
		h.siftDown(p)
	}
}
