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

import "github.com/galleon-db/galleon-core/parallel"

// Partition sizing for the parallel group-by path.
const (
	NumPartitions = 64
	PartitionBits = 6
	PartitionMask = 63
)

// partitionOf assigns a row's hash to one of NumPartitions buckets using
// bits above the ones the Swiss tables already probe on, so a partition's
// rows are exactly the rows whose hash could never collide with another
// partition's.
func partitionOf(hash uint64) int {
	return int((hash >> 20) & PartitionMask)
}

// ParallelGroupByThreshold is the row count below which
// ParallelGroupBySumI64F64 falls back to the single-threaded path unconditionally. The crossover
// point between single-threaded and radix-partitioned execution is
// workload-dependent, not fixed; this is this implementation's choice of
// default.
const ParallelGroupByThreshold = 4 * 65536

// ParallelGroupBySumI64F64 is the parallel group-by entry point: it
// radix-partitions rows by (hash>>20)&63, runs the sequential
// GroupBySumI64F64 on each partition, and concatenates per-partition
// results (no cross-partition
// merge needed since partitioning is exact on hash bits).
//
// The partitioned path below is wired and tested, but picking the crossover
// point is left to the caller via the pool argument (a nil pool, or an
// input under the threshold, always takes the sequential path).
func ParallelGroupBySumI64F64(keys []int64, values []float64, pool *parallel.Pool) GroupBySumResult {
	if pool == nil || len(keys) < ParallelGroupByThreshold {
		return GroupBySumI64F64(keys, values)
	}

	type partitionRows struct {
		keys   []int64
		values []float64
	}
	partitions := make([]partitionRows, NumPartitions)
	hashes := make([]uint64, len(keys))
	for i, k := range keys {
		hashes[i] = hashKey(k)
	}
	for i, h := range hashes {
		p := partitionOf(h)
		partitions[p].keys = append(partitions[p].keys, keys[i])
		partitions[p].values = append(partitions[p].values, values[i])
	}

	results := make([]GroupBySumResult, NumPartitions)
	pool.ParallelForWithGrain(NumPartitions, 1, func(start, end int) {
		for p := start; p < end; p++ {
			if len(partitions[p].keys) == 0 {
				continue
			}
			results[p] = GroupBySumI64F64(partitions[p].keys, partitions[p].values)
		}
	})

	total := 0
	for _, r := range results {
		total += r.N
	}
	out := GroupBySumResult{
		Keys: make([]int64, 0, total),
		Sums: make([]float64, 0, total),
	}
	for _, r := range results {
		out.Keys = append(out.Keys, r.Keys...)
		out.Sums = append(out.Sums, r.Sums...)
	}
	out.N = len(out.Keys)
	return out
}
