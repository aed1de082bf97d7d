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

package column

// Scratch holds a column's reusable per-chunk buffers for sort keys,
// indices and temporaries, plus a single chunk-sized temp buffer.
// It's lazily materialized and lives for the column's lifetime; operations
// that need working space ask the column for it instead of allocating their
// own, the same "caller-owned destination, never per-call allocation"
// posture go-highway's compress.go and gather.go take for their own
// scratch-free APIs.
type Scratch[T Element] struct {
	sortKeys    [][]uint64
	sortIndices [][]uint32
	tempKeys    [][]uint64
	tempIndices [][]uint32
	tempChunk   []T
}

// EnsureScratch materializes an empty Scratch struct for the column if one
// doesn't already exist, and returns it.
func (c *Column[T]) EnsureScratch() *Scratch[T] {
	if c.scratch == nil {
		c.scratch = &Scratch[T]{}
	}
	return c.scratch
}

// EnsureSortBuffers allocates, per chunk, a u64 key buffer, a u32 index
// buffer, and same-sized temp copies of both, sized from chunkSizes. Buffers
// already large enough are left untouched so repeated sorts reuse them.
func (c *Column[T]) EnsureSortBuffers(chunkSizes []int) *Scratch[T] {
	s := c.EnsureScratch()
	if len(s.sortKeys) < len(chunkSizes) {
		grow := len(chunkSizes) - len(s.sortKeys)
		s.sortKeys = append(s.sortKeys, make([][]uint64, grow)...)
		s.sortIndices = append(s.sortIndices, make([][]uint32, grow)...)
		s.tempKeys = append(s.tempKeys, make([][]uint64, grow)...)
		s.tempIndices = append(s.tempIndices, make([][]uint32, grow)...)
	}
	for i, sz := range chunkSizes {
		if len(s.sortKeys[i]) < sz {
			s.sortKeys[i] = make([]uint64, sz)
			s.tempKeys[i] = make([]uint64, sz)
		}
		if len(s.sortIndices[i]) < sz {
			s.sortIndices[i] = make([]uint32, sz)
			s.tempIndices[i] = make([]uint32, sz)
		}
	}
	return s
}

// EnsureTempChunk materializes the single ChunkSize-length temp buffer of T
// used by operations (e.g. filter gather) that need one chunk of scratch
// space, reusing it across calls.
func (c *Column[T]) EnsureTempChunk() []T {
	s := c.EnsureScratch()
	if len(s.tempChunk) < ChunkSize {
		s.tempChunk = newAligned[T](ChunkSize)
	}
	return s.tempChunk
}

// SortKeys returns the u64 key scratch buffer for chunk i, or nil if
// EnsureSortBuffers hasn't been called for at least i+1 chunks.
func (c *Column[T]) SortKeys(i int) []uint64 {
	if c.scratch == nil || i >= len(c.scratch.sortKeys) {
		return nil
	}
	return c.scratch.sortKeys[i]
}

// SortIndices returns the u32 index scratch buffer for chunk i.
func (c *Column[T]) SortIndices(i int) []uint32 {
	if c.scratch == nil || i >= len(c.scratch.sortIndices) {
		return nil
	}
	return c.scratch.sortIndices[i]
}
