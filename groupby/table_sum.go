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

// maxLoadSwissNum is the Swiss variants' load-factor numerator over 100.
const maxLoadSwissNum = 87

// sumEntry is the single-pass Swiss sum table's per-group storage: a key and
// its running sum, tuned to 16 bytes for cache friendliness.
type sumEntry struct {
	key int64
	sum float64
}

// SwissHashTableSum is the single-pass group-by variant: a row scan
// accumulates directly into the matching entry's sum, with no separate
// group-ids buffer. Callers use it directly; GroupBySumI64F64 does not use
// it and runs the two-phase path instead.
type SwissHashTableSum struct {
	ctrl     []byte
	entries  []sumEntry
	capacity int
	count    int
}

// NewSwissHashTableSum creates a table with initialCapacity slots rounded
// up to a power of two (at least 16); it grows once more than 87% of the
// slots are occupied.
func NewSwissHashTableSum(initialCapacity int) *SwissHashTableSum {
	cap := nextPow2(initialCapacity)
	return &SwissHashTableSum{
		ctrl:     newCtrl(cap),
		entries:  make([]sumEntry, cap),
		capacity: cap,
	}
}

// Add accumulates value into the running sum for key, creating a new group
// (initialized to value) if key hasn't been seen before.
func (t *SwissHashTableSum) Add(key int64, value float64) {
	hash := hashKey(key)
	res := probe(t.ctrl, t.capacity, hash, func(slot int) bool {
		return (t.ctrl[slot]&occupiedBit) != 0 && t.entries[slot].key == key
	})
	if res.found {
		t.entries[res.slot].sum += value
		return
	}
	markOccupied(t.ctrl, t.capacity, res.slot, res.h2)
	t.entries[res.slot] = sumEntry{key: key, sum: value}
	t.count++
	if overLoad(t.count, t.capacity, maxLoadSwissNum) {
		t.grow()
	}
}

// grow doubles capacity and re-inserts every live entry, recomputing
// rapid_hash64(key) and linear-probing until an empty slot is found.
func (t *SwissHashTableSum) grow() {
	old := t.entries
	oldCtrl := t.ctrl
	newCap := t.capacity * 2
	log.Debug("swiss sum table grown", zap.Int("old_capacity", t.capacity), zap.Int("new_capacity", newCap))

	t.capacity = newCap
	t.ctrl = newCtrl(newCap)
	t.entries = make([]sumEntry, newCap)

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
func (t *SwissHashTableSum) Len() int { return t.count }

// Cap returns the number of slots currently allocated.
func (t *SwissHashTableSum) Cap() int { return t.capacity }

// LoadFactor returns the fraction of slots currently occupied.
func (t *SwissHashTableSum) LoadFactor() float64 { return float64(t.count) / float64(t.capacity) }

// Extract scans ctrl[0:capacity] in order and returns every occupied
// (key, sum) pair in scan order — implementation-defined, not hash order.
func (t *SwissHashTableSum) Extract() (keys []int64, sums []float64) {
	keys = make([]int64, 0, t.count)
	sums = make([]float64, 0, t.count)
	for slot := 0; slot < t.capacity; slot++ {
		if t.ctrl[slot]&occupiedBit == 0 {
			continue
		}
		keys = append(keys, t.entries[slot].key)
		sums = append(sums, t.entries[slot].sum)
	}
	return keys, sums
}
