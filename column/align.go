package column

import "unsafe"

// CacheLineSize is the byte alignment every chunk buffer and the scratch
// temp-chunk buffer are guaranteed to start on.
const CacheLineSize = 64

// newAligned returns a slice of length n whose backing array starts at a
// CacheLineSize-aligned address. It over-allocates and slices forward to
// the first aligned element, the same "allocate slack, slice to the
// boundary" technique go-highway's lane-aligned load helpers in memory.go
// rely on, generalized here from vector-lane width to cache-line width.
func newAligned[T any](n int) []T {
	var zero T
	elemSize := unsafe.Sizeof(zero)
	if elemSize == 0 {
		return make([]T, n)
	}
	slack := int(CacheLineSize / elemSize)
	if slack == 0 {
		slack = 1
	}
	buf := make([]T, n+slack)
	if n == 0 {
		return buf[:0]
	}
	addr := uintptr(unsafe.Pointer(&buf[0]))
	misalignment := addr % CacheLineSize
	if misalignment == 0 {
		return buf[:n:n]
	}
	offsetBytes := CacheLineSize - misalignment
	offsetElems := int(offsetBytes / elemSize)
	return buf[offsetElems : offsetElems+n : offsetElems+n]
}

// isAligned reports whether data's backing array starts on a CacheLineSize
// boundary. Used only by tests to assert the alignment invariant.
func isAligned[T any](data []T) bool {
	if len(data) == 0 {
		return true
	}
	addr := uintptr(unsafe.Pointer(&data[0]))
	return addr%CacheLineSize == 0
}
