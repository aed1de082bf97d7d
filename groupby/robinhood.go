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

// maxLoadRobinHoodNum is the Robin-Hood variant's load-factor numerator
// over 100.
//
// Robin-Hood tables are preserved as an alternative to the Swiss variants
// with the same external contract, kept for benchmarking; they are not on
// the default path (GroupBySumI64F64 and GroupByMultiAggI64F64 use the
// Swiss-probed groupIdTable).
const maxLoadRobinHoodNum = 70

type rhSumEntry struct {
	key      int64
	sum      float64
	probeLen int32
	occupied bool
}

// RobinHoodTableSum is the Robin-Hood open-addressed alternative to
// SwissHashTableSum: insertion displaces ("steals from") whichever resident
// has a shorter probe distance than the entry being inserted, bounding
// worst-case probe length instead of Swiss's control-byte group scan.
type RobinHoodTableSum struct {
	entries  []rhSumEntry
	capacity int
	count    int
}

// NewRobinHoodTableSum creates a table with initialCapacity slots rounded
// up to a power of two (at least 16); it grows once more than 70% of the
// slots are occupied.
func NewRobinHoodTableSum(initialCapacity int) *RobinHoodTableSum {
	cap := nextPow2(initialCapacity)
	return &RobinHoodTableSum{entries: make([]rhSumEntry, cap), capacity: cap}
}

// Add accumulates value into key's running sum, inserting a new group if
// key hasn't been seen before.
func (t *RobinHoodTableSum) Add(key int64, value float64) {
	mask := uint64(t.capacity - 1)
	pos := hashKey(key) & mask
	cur := rhSumEntry{key: key, sum: value, occupied: true}

	for {
		e := &t.entries[pos]
		if !e.occupied {
			*e = cur
			t.count++
			if overLoad(t.count, t.capacity, maxLoadRobinHoodNum) {
				t.grow()
			}
			return
		}
		if e.key == cur.key {
			e.sum += cur.sum
			return
		}
		if e.probeLen < cur.probeLen {
			*e, cur = cur, *e
		}
		cur.probeLen++
		pos = (pos + 1) & mask
	}
}

func (t *RobinHoodTableSum) grow() {
	old := t.entries
	t.capacity *= 2
	t.entries = make([]rhSumEntry, t.capacity)
	t.count = 0
	for _, e := range old {
		if e.occupied {
			t.Add(e.key, e.sum)
		}
	}
}

// Len returns the number of distinct groups inserted.
func (t *RobinHoodTableSum) Len() int { return t.count }

// Cap returns the number of slots currently allocated.
func (t *RobinHoodTableSum) Cap() int { return t.capacity }

// LoadFactor returns the fraction of slots currently occupied.
func (t *RobinHoodTableSum) LoadFactor() float64 { return float64(t.count) / float64(t.capacity) }

// Extract returns every occupied (key, sum) pair in table scan order.
func (t *RobinHoodTableSum) Extract() (keys []int64, sums []float64) {
	keys = make([]int64, 0, t.count)
	sums = make([]float64, 0, t.count)
	for _, e := range t.entries {
		if e.occupied {
			keys = append(keys, e.key)
			sums = append(sums, e.sum)
		}
	}
	return keys, sums
}

type rhMultiAggEntry struct {
	key      int64
	sum      float64
	min      float64
	max      float64
	count    int64
	probeLen int32
	occupied bool
}

// RobinHoodTableMultiAgg is the Robin-Hood alternative to
// SwissHashTableMultiAgg, carrying sum/min/max/count per group.
type RobinHoodTableMultiAgg struct {
	entries  []rhMultiAggEntry
	capacity int
	count    int
}

// NewRobinHoodTableMultiAgg creates a table with initialCapacity slots
// rounded up to a power of two (at least 16); it grows once more than 70%
// of the slots are occupied.
func NewRobinHoodTableMultiAgg(initialCapacity int) *RobinHoodTableMultiAgg {
	cap := nextPow2(initialCapacity)
	return &RobinHoodTableMultiAgg{entries: make([]rhMultiAggEntry, cap), capacity: cap}
}

// Add folds value into key's running sum/min/max/count.
func (t *RobinHoodTableMultiAgg) Add(key int64, value float64) {
	mask := uint64(t.capacity - 1)
	pos := hashKey(key) & mask
	cur := rhMultiAggEntry{key: key, sum: value, min: value, max: value, count: 1, occupied: true}

	for {
		e := &t.entries[pos]
		if !e.occupied {
			*e = cur
			t.count++
			if overLoad(t.count, t.capacity, maxLoadRobinHoodNum) {
				t.grow()
			}
			return
		}
		if e.key == cur.key {
			e.sum += cur.sum
			if cur.min < e.min {
				e.min = cur.min
			}
			if cur.max > e.max {
				e.max = cur.max
			}
			e.count += cur.count
			return
		}
		if e.probeLen < cur.probeLen {
			*e, cur = cur, *e
		}
		cur.probeLen++
		pos = (pos + 1) & mask
	}
}

func (t *RobinHoodTableMultiAgg) grow() {
	old := t.entries
	t.capacity *= 2
	t.entries = make([]rhMultiAggEntry, t.capacity)
	t.count = 0
	for _, e := range old {
		if e.occupied {
			t.addAggregate(e)
		}
	}
}

// addAggregate re-inserts an already-aggregated entry wholesale during grow,
// as opposed to Add, which folds in one raw value.
func (t *RobinHoodTableMultiAgg) addAggregate(src rhMultiAggEntry) {
	mask := uint64(t.capacity - 1)
	pos := hashKey(src.key) & mask
	cur := src
	cur.probeLen = 0

	for {
		e := &t.entries[pos]
		if !e.occupied {
			*e = cur
			t.count++
			return
		}
		if e.probeLen < cur.probeLen {
			*e, cur = cur, *e
		}
		cur.probeLen++
		pos = (pos + 1) & mask
	}
}

// Len returns the number of distinct groups inserted.
func (t *RobinHoodTableMultiAgg) Len() int { return t.count }

// Cap returns the number of slots currently allocated.
func (t *RobinHoodTableMultiAgg) Cap() int { return t.capacity }

// LoadFactor returns the fraction of slots currently occupied.
func (t *RobinHoodTableMultiAgg) LoadFactor() float64 { return float64(t.count) / float64(t.capacity) }

// Extract returns every occupied group's key and aggregates in table scan
// order.
func (t *RobinHoodTableMultiAgg) Extract() (keys []int64, sums, mins, maxs []float64, counts []int64) {
	keys = make([]int64, 0, t.count)
	sums = make([]float64, 0, t.count)
	mins = make([]float64, 0, t.count)
	maxs = make([]float64, 0, t.count)
	counts = make([]int64, 0, t.count)
	for _, e := range t.entries {
		if !e.occupied {
			continue
		}
		keys = append(keys, e.key)
		sums = append(sums, e.sum)
		mins = append(mins, e.min)
		maxs = append(maxs, e.max)
		counts = append(counts, e.count)
	}
	return keys, sums, mins, maxs, counts
}
