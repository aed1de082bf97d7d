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

package simd

import "math/bits"

// Rapid-hash secrets: fixed 64-bit constants used to mix a single
// 64-bit key into a well-distributed hash via a wide multiply, the same
// seeded-multiply-and-fold shape as the AES-free hash mixer in
// SnellerInc/sneller's internal/aes hash_generic.go (folding the high and
// low halves of a 128-bit product with XOR).
const (
	rapidS0 uint64 = 0x2d358dccaa6c78a5
	rapidS1 uint64 = 0x8bb84b93962eacc9
	rapidS2 uint64 = 0x4b33a62ed433d4a3
)

// RapidHash64 mixes a single 64-bit key into a 64-bit hash using a 128-bit
// multiply over (x^S0, x^S1), folding the high and low halves of the
// product with XOR and finally XOR-ing in S2. Used both as the dispatched
// per-lane hash kernel and internally by groupby's Swiss-table probing.
func RapidHash64(x uint64) uint64 {
	a := x ^ rapidS0
	b := x ^ rapidS1
	hi, lo := bits.Mul64(a, b)
	return (hi ^ lo) ^ rapidS2
}

// CombineHashes folds a second hash into a running seed, used when hashing
// composite keys. It's a second application of the rapid mix over the
// XOR-combination of the two inputs, keeping the same secret-based mixing
// the single-key hash uses rather than a different ad hoc combiner.
func CombineHashes(seed, h uint64) uint64 {
	return RapidHash64(seed ^ h)
}
