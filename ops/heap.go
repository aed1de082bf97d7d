package ops

// mergeEntry is one live cursor in a k-way merge: the value currently at the
// front of chunk chunkIdx's sorted-index stream, and cursor's position
// within that stream. Argsort drives the merge over an explicit min-heap of
// these (chunk_idx, pos_in_chunk) cursors, ordered by value; the order of
// entries with equal values is not defined. This is a bespoke slice-backed
// binary heap, not container/heap — grounded on Sneller's own vm-sort.go,
// which rolls its own heap rather than adopting container/heap's
// interface-method shape for the same kind of merge.
type mergeEntry[T any] struct {
	value    T
	chunkIdx int
	cursor   int
}

type mergeHeap[T any] struct {
	entries []mergeEntry[T]
	less    func(a, b T) bool
}

func newMergeHeap[T any](less func(a, b T) bool) *mergeHeap[T] {
	return &mergeHeap[T]{less: less}
}

func (h *mergeHeap[T]) Len() int { return len(h.entries) }

func (h *mergeHeap[T]) push(e mergeEntry[T]) {
	h.entries = append(h.entries, e)
	h.siftUp(len(h.entries) - 1)
}

func (h *mergeHeap[T]) pop() mergeEntry[T] {
	top := h.entries[0]
	last := len(h.entries) - 1
	h.entries[0] = h.entries[last]
	h.entries = h.entries[:last]
	if len(h.entries) > 0 {
		h.siftDown(0)
	}
	return top
}

func (h *mergeHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.entries[i].value, h.entries[parent].value) {
			return
		}
		h.entries[i], h.entries[parent] = h.entries[parent], h.entries[i]
		i = parent
	}
}

func (h *mergeHeap[T]) siftDown(i int) {
	n := len(h.entries)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.less(h.entries[left].value, h.entries[smallest].value) {
			smallest = left
		}
		if right < n && h.less(h.entries[right].value, h.entries[smallest].value) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.entries[i], h.entries[smallest] = h.entries[smallest], h.entries[i]
		i = smallest
	}
}
