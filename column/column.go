// Copyright 2026 galleon-core Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package column implements cache-aligned, fixed-size chunked columnar
// storage for the analytics core.
package column

import (
	"errors"

	"github.com/galleon-db/galleon-core/simd"
)

// ChunkSize is the maximum number of elements held by any one chunk buffer.
const ChunkSize = 65536

// Element constrains the primitive column element types:
// f32, f64, i32, i64, u32, u64, bool.
type Element interface {
	simd.Numeric | ~bool
}

// ErrChunkSizeExceeded is returned by operations that would need to grow a
// chunk beyond ChunkSize; it never happens in this package's own code
// (chunks are always allocated at exactly ChunkSize capacity) but is
// exposed for constructors callers might write themselves.
var ErrChunkSizeExceeded = errors.New("column: chunk size exceeds ChunkSize")

// Column is a chunked, cache-aligned array of T.
// It owns its chunk buffers and any scratch space exclusively; there is no
// sharing between columns.
type Column[T Element] struct {
	chunks      [][]T
	chunkSizes  []int
	totalLength int
	scratch     *Scratch[T]
}

// FromSlice copies data into a new column, splitting it into ChunkSize-sized
// chunks.
func FromSlice[T Element](data []T) *Column[T] {
	numChunks := (len(data) + ChunkSize - 1) / ChunkSize
	if len(data) == 0 {
		numChunks = 0
	}
	c := &Column[T]{
		chunks:      make([][]T, numChunks),
		chunkSizes:  make([]int, numChunks),
		totalLength: len(data),
	}
	for i := 0; i < numChunks; i++ {
		start := i * ChunkSize
		end := start + ChunkSize
		if end > len(data) {
			end = len(data)
		}
		buf := newAligned[T](ChunkSize)
		copy(buf, data[start:end])
		c.chunks[i] = buf
		c.chunkSizes[i] = end - start
	}
	return c
}

// WithCapacity pre-allocates enough ChunkSize-sized chunk buffers to hold n
// elements, with every chunk's logical size set to zero.
func WithCapacity[T Element](n int) *Column[T] {
	numChunks := (n + ChunkSize - 1) / ChunkSize
	c := &Column[T]{
		chunks:     make([][]T, numChunks),
		chunkSizes: make([]int, numChunks),
	}
	for i := 0; i < numChunks; i++ {
		c.chunks[i] = newAligned[T](ChunkSize)
	}
	return c
}

// Len returns total_length, the sum of all chunk_sizes.
func (c *Column[T]) Len() int {
	return c.totalLength
}

// NumChunks returns the number of chunk buffers.
func (c *Column[T]) NumChunks() int {
	return len(c.chunks)
}

// ChunkSizes returns the logical element count of each chunk. The returned
// slice is owned by the column; callers must not mutate it.
func (c *Column[T]) ChunkSizes() []int {
	return c.chunkSizes
}

// Get returns the element at the given logical index, or (zero, false) when
// i is out of range.
func (c *Column[T]) Get(i int) (T, bool) {
	if i < 0 || i >= c.totalLength {
		var zero T
		return zero, false
	}
	chunkIdx := i / ChunkSize
	local := i % ChunkSize
	return c.chunks[chunkIdx][local], true
}

// Set overwrites the element at the given logical index, returning false
// (and making no change) when i is out of range. Set never resizes the
// column.
func (c *Column[T]) Set(i int, v T) bool {
	if i < 0 || i >= c.totalLength {
		return false
	}
	chunkIdx := i / ChunkSize
	local := i % ChunkSize
	c.chunks[chunkIdx][local] = v
	return true
}

// Append grows the column by one element, writing into the chunk that owns
// position totalLength (materializing it if WithCapacity didn't already
// pre-allocate that far). It's the write path WithCapacity-constructed
// columns use to fill themselves after allocation; writing by position
// rather than always targeting the last chunk is what lets a
// WithCapacity(n) column's pre-allocated chunks fill in order instead of
// leaving the leading ones at size 0.
func (c *Column[T]) Append(v T) {
	chunkIdx := c.totalLength / ChunkSize
	local := c.totalLength % ChunkSize
	if chunkIdx >= len(c.chunks) {
		c.chunks = append(c.chunks, newAligned[T](ChunkSize))
		c.chunkSizes = append(c.chunkSizes, 0)
	}
	c.chunks[chunkIdx][local] = v
	c.chunkSizes[chunkIdx] = local + 1
	c.totalLength++
}

// GetChunk returns the logical view chunks[i][0:chunk_sizes[i]]. The
// returned slice aliases the column's storage; callers must not retain it
// past further mutation of the column.
func (c *Column[T]) GetChunk(i int) []T {
	if i < 0 || i >= len(c.chunks) {
		return nil
	}
	return c.chunks[i][:c.chunkSizes[i]]
}

// CopyTo copies every element, in storage order, into dest. It returns the
// number of elements copied, min(c.Len(), len(dest)), satisfying the
// round-trip property FromSlice(x).CopyTo(y) => y == x when len(dest) >= len(x).
func (c *Column[T]) CopyTo(dest []T) int {
	n := 0
	for i, chunk := range c.chunks {
		sz := c.chunkSizes[i]
		if n+sz > len(dest) {
			sz = len(dest) - n
		}
		if sz <= 0 {
			break
		}
		copy(dest[n:n+sz], chunk[:sz])
		n += sz
	}
	return n
}

// Destroy releases the column's chunk buffers, size array and scratch space
// for garbage collection.
func (c *Column[T]) Destroy() {
	c.chunks = nil
	c.chunkSizes = nil
	c.totalLength = 0
	c.scratch = nil
}
