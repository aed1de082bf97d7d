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

package parallel

// DefaultGrain is the range size parallel_for stops splitting at when no
// explicit grain is given.
const DefaultGrain = 65536

// ParallelFor partitions [0, n) by recursive halving, stopping once a range
// is at most DefaultGrain wide, and runs body(start, end) on each leaf range.
// Leaves may run on different worker goroutines; body must not assume any
// particular goroutine runs every leaf.
func (p *Pool) ParallelFor(n int, body func(start, end int)) {
	p.ParallelForWithGrain(n, DefaultGrain, body)
}

// ParallelForWithGrain is ParallelFor with an explicit grain (leaf range
// width) instead of DefaultGrain.
func (p *Pool) ParallelForWithGrain(n, grain int, body func(start, end int)) {
	if n <= 0 {
		return
	}
	if grain < 1 {
		grain = 1
	}
	var rec func(lo, hi int)
	rec = func(lo, hi int) {
		if hi-lo <= grain {
			body(lo, hi)
			return
		}
		mid := lo + (hi-lo)/2
		p.Join(
			func() { rec(lo, mid) },
			func() { rec(mid, hi) },
		)
	}
	rec(0, n)
}

// ParallelReduce partitions [0, n) the same way as ParallelFor, maps each
// leaf index with mapFn, and folds results with combine. combine must be
// associative; it need not be commutative, and results are combined in
// left-to-right index order regardless of which leaves ran in parallel.
func ParallelReduce[T any](p *Pool, n int, identity T, mapFn func(i int) T, combine func(a, b T) T) T {
	return ParallelReduceWithGrain(p, n, DefaultGrain, identity, mapFn, combine)
}

// ParallelReduceWithGrain is ParallelReduce with an explicit grain.
func ParallelReduceWithGrain[T any](p *Pool, n, grain int, identity T, mapFn func(i int) T, combine func(a, b T) T) T {
	if n <= 0 {
		return identity
	}
	if grain < 1 {
		grain = 1
	}
	var rec func(lo, hi int) T
	rec = func(lo, hi int) T {
		if hi-lo <= grain {
			acc := identity
			for i := lo; i < hi; i++ {
				acc = combine(acc, mapFn(i))
			}
			return acc
		}
		mid := lo + (hi-lo)/2
		var left, right T
		p.Join(
			func() { left = rec(lo, mid) },
			func() { right = rec(mid, hi) },
		)
		return combine(left, right)
	}
	return rec(0, n)
}

// ParallelChunkReduce reduces over a column's chunks directly rather than
// over a flat index range: each leaf processes one whole chunk via
// processFn(chunkIndex, chunk), and results combine the same way as
// ParallelReduce. It's the entry point ops.Sum and friends use so a
// reduction's leaf grain is naturally "one chunk," matching the column
// layout instead of an arbitrary index grain.
func ParallelChunkReduce[T any, C any](p *Pool, chunks []C, identity T, processFn func(chunkIndex int, chunk C) T, combine func(a, b T) T) T {
	n := len(chunks)
	if n == 0 {
		return identity
	}
	var rec func(lo, hi int) T
	rec = func(lo, hi int) T {
		if hi-lo <= 1 {
			return processFn(lo, chunks[lo])
		}
		mid := lo + (hi-lo)/2
		var left, right T
		p.Join(
			func() { left = rec(lo, mid) },
			func() { right = rec(mid, hi) },
		)
		return combine(left, right)
	}
	return rec(0, n)
}
