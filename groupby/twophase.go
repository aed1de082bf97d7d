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

package groupby

import "github.com/galleon-db/galleon-core/simd"

// GroupBySumResult is groupby_sum_i64_f64's return shape.
type GroupBySumResult struct {
	Keys []int64
	Sums []float64
	N    int
}

// GroupByMultiAggResult is groupby_multiagg_i64_f64's return shape.
type GroupByMultiAggResult struct {
	Keys   []int64
	Sums   []float64
	Mins   []float64
	Maxs   []float64
	Counts []int64
	N      int
}

// SumByGroup runs the dense Phase 2 fused sum/min/max/count kernel and
// returns only the sums, keyed by group id (e.g.
// sum_by_group(data=[1,2,3,4,5,6], gids=[0,1,0,2,1,0], num_groups=3) =>
// [10, 7, 4]).
func SumByGroup(values []int64, groupIDs []int32, numGroups int) []int64 {
	tbl := simd.Dispatch()
	sums := make([]int64, numGroups)
	mins := make([]int64, numGroups)
	maxs := make([]int64, numGroups)
	counts := make([]int64, numGroups)
	tbl.GroupAggI64(values, groupIDs, numGroups, sums, mins, maxs, counts)
	return sums
}

// GroupBySumI64F64 implements groupby_sum_i64_f64: rows are assigned
// dense group ids by key equality (Phase 1), then summed per group with the
// dispatch table's fused group-aggregation kernel (Phase 2). Result order is
// first-seen-key order, matching groupIdTable's assignment order.
func GroupBySumI64F64(keys []int64, values []float64) GroupBySumResult {
	hashes := make([]uint64, len(keys))
	for i, k := range keys {
		hashes[i] = hashKey(k)
	}
	assign := ComputeGroupIDsWithKeys(hashes, keys)

	tbl := simd.Dispatch()
	sums := make([]float64, assign.NumGroups)
	mins := make([]float64, assign.NumGroups)
	maxs := make([]float64, assign.NumGroups)
	counts := make([]int64, assign.NumGroups)
	tbl.GroupAggF64(values, assign.GroupIDs, assign.NumGroups, sums, mins, maxs, counts)

	outKeys := make([]int64, assign.NumGroups)
	for g, row := range assign.FirstRowIdx {
		outKeys[g] = keys[row]
	}
	return GroupBySumResult{Keys: outKeys, Sums: sums, N: assign.NumGroups}
}

// GroupByMultiAggI64F64 implements groupby_multiagg_i64_f64: same
// Phase 1 assignment as GroupBySumI64F64, then the fused kernel's full
// sum/min/max/count output.
func GroupByMultiAggI64F64(keys []int64, values []float64) GroupByMultiAggResult {
	hashes := make([]uint64, len(keys))
	for i, k := range keys {
		hashes[i] = hashKey(k)
	}
	assign := ComputeGroupIDsWithKeys(hashes, keys)

	tbl := simd.Dispatch()
	sums := make([]float64, assign.NumGroups)
	mins := make([]float64, assign.NumGroups)
	maxs := make([]float64, assign.NumGroups)
	counts := make([]int64, assign.NumGroups)
	tbl.GroupAggF64(values, assign.GroupIDs, assign.NumGroups, sums, mins, maxs, counts)

	outKeys := make([]int64, assign.NumGroups)
	for g, row := range assign.FirstRowIdx {
		outKeys[g] = keys[row]
	}
	return GroupByMultiAggResult{Keys: outKeys, Sums: sums, Mins: mins, Maxs: maxs, Counts: counts, N: assign.NumGroups}
}
