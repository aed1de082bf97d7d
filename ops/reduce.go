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

// Sum returns the sum of every element in col, or the additive identity (0)
// for an empty column. Below parallel.MinParallelChunks chunks, or with a
// nil pool, it runs a plain sequential per-chunk loop; otherwise it uses
// ParallelChunkReduce with the dispatch table's SIMD kernel as the
// per-chunk process step and `+` as combine.
func Sum[T Numeric](col *column.Column[T], pool *parallel.Pool) T {
	tbl := simd.Dispatch()
	numChunks := col.NumChunks()
	if pool == nil || numChunks < parallel.MinParallelChunks {
		var total T
		for i := 0; i < numChunks; i++ {
			total += sumChunk(tbl, col.GetChunk(i))
		}
		return total
	}
	return parallel.ParallelChunkReduce[T, int](pool, chunkIndices(numChunks), T(0),
		func(idx int, chunkIdx int) T {
			return sumChunk(tbl, col.GetChunk(chunkIdx))
		},
		func(a, b T) T { return a + b },
	)
}

// Min returns the minimum element and true, or (zero, false) for an empty
// column.
func Min[T Numeric](col *column.Column[T], pool *parallel.Pool) (T, bool) {
	return minOrMax(col, pool, false)
}

// Max returns the maximum element and true, or (zero, false) for an empty
// column.
func Max[T Numeric](col *column.Column[T], pool *parallel.Pool) (T, bool) {
	return minOrMax(col, pool, true)
}

func minOrMax[T Numeric](col *column.Column[T], pool *parallel.Pool, isMax bool) (T, bool) {
	tbl := simd.Dispatch()
	numChunks := col.NumChunks()
	if numChunks == 0 {
		var zero T
		return zero, false
	}

	type acc struct {
		v  T
		ok bool
	}
	combine := func(a, b acc) acc {
		switch {
		case !a.ok:
			return b
		case !b.ok:
			return a
		case isMax && b.v > a.v, !isMax && b.v < a.v:
			return b
		default:
			return a
		}
	}

	if pool == nil || numChunks < parallel.MinParallelChunks {
		result := acc{}
		for i := 0; i < numChunks; i++ {
			v, ok := minMaxChunk(tbl, col.GetChunk(i), isMax)
			result = combine(result, acc{v, ok})
		}
		return result.v, result.ok
	}

	result := parallel.ParallelChunkReduce[acc, int](pool, chunkIndices(numChunks), acc{},
		func(idx int, chunkIdx int) acc {
			v, ok := minMaxChunk(tbl, col.GetChunk(chunkIdx), isMax)
			return acc{v, ok}
		},
		combine,
	)
	return result.v, result.ok
}

// Mean returns the arithmetic mean of col's elements as a float64, and
// true, or (0, false) for an empty column — the same "none" contract as
// Min/Max. The sum is taken by Sum in T (so integer sums wrap on overflow)
// and only the division is done in float64.
func Mean[T Numeric](col *column.Column[T], pool *parallel.Pool) (float64, bool) {
	if col.Len() == 0 {
		return 0, false
	}
	return float64(Sum(col, pool)) / float64(col.Len()), true
}

// chunkIndices builds [0, n) so ParallelChunkReduce's generic slice
// parameter can carry chunk indices rather than the chunk data itself —
// chunk data is fetched from col inside the leaf closures, which keeps a
// single source of truth for chunk lifetime.
func chunkIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
