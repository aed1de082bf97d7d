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

import "go.uber.org/zap"

// multiAggEntry is the single-pass Swiss multi-aggregate table's per-group
// storage, 40 bytes: key, running sum, min, max, and row count.
type multiAggEntry struct {
	key   int64
	sum   float64
	min   float64
	max   float64
	count int64
}

// SwissHashTableMultiAgg is SwissHashTableSum's sibling for callers that
// need sum, min, max and count together in one pass. It shares the same
// Swiss probe protocol and load factor; the two types are kept separate
// rather than parameterized over an aggregate set, matching the public
// surface naming them as distinct tables.
type SwissHashTableMultiAgg struct {
	ctrl     []byte
	entries  []multiAggEntry
	capacity int
	count    int
}

// NewSwissHashTableMultiAgg creates a table with initialCapacity slots
// rounded up to a power of two (at least 16); it grows once more than 87%
// of the slots are occupied.
func NewSwissHashTableMultiAgg(initialCapacity int) *SwissHashTableMultiAgg {
	cap := nextPow2(initialCapacity)
	return &SwissHashTableMultiAgg{
		ctrl:     newCtrl(cap),
		entries:  make([]multiAggEntry, cap),
		capacity: cap,
	}
}

// Add folds value into key's running sum/min/max/count, seeding a new
// group's min and max from its first value.
func (t *SwissHashTableMultiAgg) Add(key int64, value float64) {
	hash := hashKey(key)
	res := probe(t.ctrl, t.capacity, hash, func(slot int) bool {
		return (t.ctrl[slot]&occupiedBit) != 0 && t.entries[slot].key == key
	})
	if res.found {
		e := &t.entries[res.slot]
		e.sum += value
		if value < e.min {
			e.min = value
		}
		if value > e.max {
			e.max = value
		}
		e.count++
		return
	}
	markOccupied(t.ctrl, t.capacity, res.slot, res.h2)
	t.entries[res.slot] = multiAggEntry{key: key, sum: value, min: value, max: value, count: 1}
	t.count++
	if overLoad(t.count, t.capacity, maxLoadSwissNum) {
		t.grow()
	}
}

func (t *SwissHashTableMultiAgg) grow() {
	old := t.entries
	oldCtrl := t.ctrl
	newCap := t.capacity * 2
	log.Debug("swiss multiagg table grown", zap.Int("old_capacity", t.capacity), zap.Int("new_capacity", newCap))

	t.capacity = newCap
	t.ctrl = newCtrl(newCap)
	t.entries = make([]multiAggEntry, newCap)

	for slot, c := range oldCtrl[:len(oldCtrl)-groupWidth] {
		if c&occupiedBit == 0 {
			continue
		}
		e := old[slot]
		hash := hashKey(e.key)
		res := probe(t.ctrl, t.capacity, hash, func(int) bool { return false })
		markOccupied(t.ctrl, t.capacity, res.slot, res.h2)
		t.entries[res.slot] = e
	}
}

// Len returns the number of distinct groups inserted.
func (t *SwissHashTableMultiAgg) Len() int { return t.count }

// Cap returns the number of slots currently allocated.
func (t *SwissHashTableMultiAgg) Cap() int { return t.capacity }

// LoadFactor returns the fraction of slots currently occupied.
func (t *SwissHashTableMultiAgg) LoadFactor() float64 { return float64(t.count) / float64(t.capacity) }

// Extract scans ctrl[0:capacity] in scan order and returns every occupied
// group's key and aggregates.
func (t *SwissHashTableMultiAgg) Extract() (keys []int64, sums, mins, maxs []float64, counts []int64) {
	keys = make([]int64, 0, t.count)
	sums = make([]float64, 0, t.count)
	mins = make([]float64, 0, t.count)
	maxs = make([]float64, 0, t.count)
	counts = make([]int64, 0, t.count)
	for slot := 0; slot < t.capacity; slot++ {
		if t.ctrl[slot]&occupiedBit == 0 {
			continue
		}
		e := t.entries[slot]
		keys = append(keys, e.key)
		sums = append(sums, e.sum)
		mins = append(mins, e.min)
		maxs = append(maxs, e.max)
		counts = append(counts, e.count)
	}
	return keys, sums, mins, maxs, counts
}
