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

// Package groupby implements the Swiss-table and Robin-Hood group-by hash
// tables and the two-phase group-by engine built on top of them.
package groupby

import "github.com/galleon-db/galleon-core/simd"

const (
	emptyCtrl    byte = 0x00
	deletedCtrl  byte = 0x7F // reserved; groupby never deletes, so never written
	occupiedBit  byte = 0x80
	groupWidth        = 16 // control bytes examined per probe group
	initialCap        = 16
)

// hashKey mixes an i64 key through rapid_hash64, the same mix the SIMD
// kernel layer uses for hashing columns.
func hashKey(key int64) uint64 {
	return simd.RapidHash64(uint64(key))
}

// h2Of extracts the 7 distinguishing hash bits a control byte stores,
// keeping the occupied bit set.
func h2Of(hash uint64) byte {
	return byte(hash>>57) | occupiedBit
}

// probeResult is what walking the Swiss probe protocol finds: either an
// existing occupied slot whose key matches (found=true), or the first empty
// slot the key should be inserted into (found=false).
type probeResult struct {
	slot  int
	h2    byte
	found bool
}

// probe walks ctrl starting at hash&mask in groups of groupWidth, invoking
// keyMatch(slot) for every control byte equal to h2 until it finds a match
// or an empty slot. ctrl must have
// capacity+groupWidth bytes so a group read starting at any group offset in
// [0, capacity) never runs off the end — the last groupWidth bytes mirror
// the first, giving wrap-free reads without a branch per byte.
func probe(ctrl []byte, capacity int, hash uint64, keyMatch func(slot int) bool) probeResult {
	mask := uint64(capacity - 1)
	h2 := h2Of(hash)
	group := hash & mask

	for {
		for bit := 0; bit < groupWidth; bit++ {
			if ctrl[int(group)+bit] == h2 {
				slot := int((group + uint64(bit)) & mask)
				if keyMatch(slot) {
					return probeResult{slot: slot, h2: h2, found: true}
				}
			}
		}
		for bit := 0; bit < groupWidth; bit++ {
			if ctrl[int(group)+bit] == emptyCtrl {
				slot := int((group + uint64(bit)) & mask)
				return probeResult{slot: slot, h2: h2, found: false}
			}
		}
		group = (group + groupWidth) & mask
	}
}

// markOccupied writes h2 into ctrl[slot], mirroring it into
// ctrl[capacity+slot] when slot < groupWidth so the wrap-free group read at
// the end of ctrl stays consistent with the real slot.
func markOccupied(ctrl []byte, capacity, slot int, h2 byte) {
	ctrl[slot] = h2
	if slot < groupWidth {
		ctrl[capacity+slot] = h2
	}
}

// overLoad reports whether count occupied slots out of capacity exceeds
// maxLoadNum/100.
func overLoad(count, capacity, maxLoadNum int) bool {
	return count*100 > capacity*maxLoadNum
}

func newCtrl(capacity int) []byte {
	return make([]byte, capacity+groupWidth)
}

func nextPow2(n int) int {
	c := initialCap
	for c < n {
		c *= 2
	}
	return c
}
