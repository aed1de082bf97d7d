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
	"github.com/galleon-db/galleon-core/column"
	"github.com/galleon-db/galleon-core/parallel"
	"github.com/galleon-db/galleon-core/simd"
)

// Filter returns a fresh column holding, in input order, every element of
// col for which op(element, threshold) holds. It runs two passes per
// chunk: a parallelizable pass that computes each chunk's matching indices,
// then a sequential gather pass that copies the matches into a contiguous
// buffer (reusing col's scratch temp-chunk buffer as the per-chunk gather
// staging area) before handing the result to column.FromSlice, so the
// result column's chunks come out exactly ChunkSize-sized like any other
// column instead of depending on Append's incremental fill order. FilterGt
// and FilterLt cover the common comparisons directly via the fast kernel
// paths.
func Filter[T Numeric](col *column.Column[T], threshold T, op simd.CompareOp, pool *parallel.Pool) *column.Column[T] {
	tbl := simd.Dispatch()
	numChunks := col.NumChunks()

	perChunk := make([][]int32, numChunks)
	count := func(chunkIdx int) int {
		idx := filterChunk(tbl, col.GetChunk(chunkIdx), threshold, op)
		perChunk[chunkIdx] = idx
		return len(idx)
	}

	total := 0
	if pool != nil && numChunks >= parallel.MinParallelChunks {
		pool.ParallelForWithGrain(numChunks, 1, func(start, end int) {
			for i := start; i < end; i++ {
				count(i)
			}
		})
		for _, idx := range perChunk {
			total += len(idx)
		}
	} else {
		for i := 0; i < numChunks; i++ {
			total += count(i)
		}
	}

	out := make([]T, 0, total)
	staging := col.EnsureTempChunk()
	for chunkIdx, idx := range perChunk {
		if len(idx) == 0 {
			continue
		}
		chunk := col.GetChunk(chunkIdx)
		gathered := staging[:len(idx)]
		for j, i := range idx {
			gathered[j] = chunk[i]
		}
		out = append(out, gathered...)
	}
	return column.FromSlice(out)
}

// FilterGt returns the elements of col strictly greater than threshold
// (e.g. filter_gt([1,5,2,8,3,9,4], 4) => [5,8,9]).
func FilterGt[T Numeric](col *column.Column[T], threshold T, pool *parallel.Pool) *column.Column[T] {
	return Filter(col, threshold, simd.OpGT, pool)
}

// FilterLt returns the elements of col strictly less than threshold.
func FilterLt[T Numeric](col *column.Column[T], threshold T, pool *parallel.Pool) *column.Column[T] {
	return Filter(col, threshold, simd.OpLT, pool)
}
