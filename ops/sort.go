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

package ops

import (
	"sort"

	"github.com/galleon-db/galleon-core/column"
)

// Argsort returns the permutation of col's global indices that sorts its
// values ascending (e.g. argsort([5,2,8,1,9]) => [3,1,0,2,4]).
//
// A single-chunk column sorts its index array directly against the value
// predicate using sort.Slice — the standard library's Sort has used a
// pattern-defeating quicksort (pdqsort) since Go 1.19, which is exactly the
// algorithm this needs, so there's no third-party sort to reach for here. A
// multi-chunk column sorts each chunk's indices independently the same way,
// then performs a k-way merge over an explicit min-heap of
// (chunk_idx, pos_in_chunk), emitting global indices as local index plus the
// sum of prior chunks' sizes. Each chunk's working index array is col's
// reusable sort-index scratch buffer rather than a fresh allocation, so
// repeated Argsort calls on the same column don't keep re-allocating it.
func Argsort[T Numeric](col *column.Column[T]) []int32 {
	numChunks := col.NumChunks()
	col.EnsureSortBuffers(col.ChunkSizes())
	if numChunks <= 1 {
		return argsortChunk(col, 0)
	}

	localSorted := make([][]int32, numChunks)
	for i := 0; i < numChunks; i++ {
		localSorted[i] = argsortChunk(col, i)
	}

	prefix := make([]int32, numChunks)
	for i := 1; i < numChunks; i++ {
		prefix[i] = prefix[i-1] + int32(col.ChunkSizes()[i-1])
	}

	h := newMergeHeap(func(a, b T) bool { return a < b })
	for chunkIdx, order := range localSorted {
		if len(order) == 0 {
			continue
		}
		v, _ := col.Get(int(prefix[chunkIdx]) + int(order[0]))
		h.push(mergeEntry[T]{value: v, chunkIdx: chunkIdx, cursor: 0})
	}

	result := make([]int32, 0, col.Len())
	for h.Len() > 0 {
		top := h.pop()
		order := localSorted[top.chunkIdx]
		localIdx := order[top.cursor]
		result = append(result, prefix[top.chunkIdx]+localIdx)

		next := top.cursor + 1
		if next < len(order) {
			v, _ := col.Get(int(prefix[top.chunkIdx]) + int(order[next]))
			h.push(mergeEntry[T]{value: v, chunkIdx: top.chunkIdx, cursor: next})
		}
	}
	return result
}

func argsortChunk[T Numeric](col *column.Column[T], chunkIdx int) []int32 {
	chunk := col.GetChunk(chunkIdx)
	n := len(chunk)

	buf := col.SortIndices(chunkIdx)
	if len(buf) < n {
		buf = make([]uint32, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = uint32(i)
	}
	sort.Slice(buf, func(a, b int) bool {
		return chunk[buf[a]] < chunk[buf[b]]
	})

	idx := make([]int32, n)
	for i, v := range buf {
		idx[i] = int32(v)
	}
	return idx
}

// Sort returns a fresh column holding col's elements in ascending order. The
// gather spans chunk boundaries in col (source indices are global, not
// chunk-local), so it's done with a plain index walk rather than the
// dispatch table's intra-chunk Gather kernels, into a contiguous buffer
// handed to column.FromSlice.
func Sort[T Numeric](col *column.Column[T]) *column.Column[T] {
	order := Argsort(col)
	out := make([]T, len(order))
	for j, i := range order {
		out[j], _ = col.Get(int(i))
	}
	return column.FromSlice(out)
}
