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

import "math"

// This file holds the type- and unroll-width-generic kernel bodies shared by
// every dispatch level. Each level's constructor (kernels_sse4.go,
// kernels_avx2.go, kernels_avx512.go) instantiates these with the unroll
// factor matching its vector width, mirroring the "vector body + scalar
// tail" shape go-highway's ops_avx2.go / ops_avx512.go implement the exact
// same reduction logic at every width, differing only in how many lanes are
// processed per iteration.

// sumGeneric reduces data with the given unroll factor, processing unroll
// elements per iteration before falling to a scalar tail. Integer sums wrap
// using Go's native two's-complement overflow.
func sumGeneric[T Numeric](data []T, unroll int) T {
	var acc T
	n := len(data)
	i := 0
	for ; i+unroll <= n; i += unroll {
		for j := 0; j < unroll; j++ {
			acc += data[i+j]
		}
	}
	for ; i < n; i++ {
		acc += data[i]
	}
	return acc
}

// minMaxGeneric returns (extreme, true) or (zero, false) for an empty slice,
// returning the empty (zero, false) result for an empty slice.
func minMaxGeneric[T Numeric](data []T, isMax bool, unroll int) (T, bool) {
	if len(data) == 0 {
		var zero T
		return zero, false
	}
	best := data[0]
	n := len(data)
	i := 1
	for ; i+unroll <= n; i += unroll {
		for j := 0; j < unroll; j++ {
			v := data[i+j]
			if (isMax && v > best) || (!isMax && v < best) {
				best = v
			}
		}
	}
	for ; i < n; i++ {
		v := data[i]
		if (isMax && v > best) || (!isMax && v < best) {
			best = v
		}
	}
	return best, true
}

// binOp enumerates the elementwise arithmetic kernels.
type binOp int

const (
	binAdd binOp = iota
	binSub
	binMul
	binDiv
)

func elementwiseGeneric[T Numeric](a, b, out []T, op binOp, unroll int) {
	n := len(out)
	if len(a) < n {
		n = len(a)
	}
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for ; i+unroll <= n; i += unroll {
		for j := 0; j < unroll; j++ {
			out[i+j] = applyBinOp(a[i+j], b[i+j], op)
		}
	}
	for ; i < n; i++ {
		out[i] = applyBinOp(a[i], b[i], op)
	}
}

func applyBinOp[T Numeric](a, b T, op binOp) T {
	switch op {
	case binAdd:
		return a + b
	case binSub:
		return a - b
	case binMul:
		return a * b
	case binDiv:
		return a / b
	default:
		return a
	}
}

func scalarBinOpGeneric[T Numeric](a []T, scalar T, out []T, op binOp, unroll int) {
	n := len(out)
	if len(a) < n {
		n = len(a)
	}
	i := 0
	for ; i+unroll <= n; i += unroll {
		for j := 0; j < unroll; j++ {
			out[i+j] = applyBinOp(a[i+j], scalar, op)
		}
	}
	for ; i < n; i++ {
		out[i] = applyBinOp(a[i], scalar, op)
	}
}

// compareGeneric writes a 0/1 mask, one byte per element.
func compareGeneric[T Numeric](a, b []T, op CompareOp, out []uint8, unroll int) {
	n := len(out)
	if len(a) < n {
		n = len(a)
	}
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for ; i+unroll <= n; i += unroll {
		for j := 0; j < unroll; j++ {
			if compareNumeric(a[i+j], b[i+j], op) {
				out[i+j] = 1
			} else {
				out[i+j] = 0
			}
		}
	}
	for ; i < n; i++ {
		if compareNumeric(a[i], b[i], op) {
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
}

// filterGeneric is the predicate-scan kernel: it emits the row
// indices for which data[i] `op` threshold holds, in input order.
func filterGeneric[T Numeric](data []T, threshold T, op CompareOp, unroll int) []int32 {
	var out []int32
	n := len(data)
	i := 0
	for ; i+unroll <= n; i += unroll {
		for j := 0; j < unroll; j++ {
			if compareNumeric(data[i+j], threshold, op) {
				out = append(out, int32(i+j))
			}
		}
	}
	for ; i < n; i++ {
		if compareNumeric(data[i], threshold, op) {
			out = append(out, int32(i))
		}
	}
	return out
}

// gatherGeneric is the bounds-checked indexed load, grounded on
// go-highway's gather.go: an out-of-range index yields the zero value for
// that lane rather than faulting.
func gatherGeneric[T Numeric](src []T, indices []int32, out []T, unroll int) {
	n := len(out)
	if len(indices) < n {
		n = len(indices)
	}
	i := 0
	for ; i+unroll <= n; i += unroll {
		for j := 0; j < unroll; j++ {
			idx := int(indices[i+j])
			if idx >= 0 && idx < len(src) {
				out[i+j] = src[idx]
			} else {
				var zero T
				out[i+j] = zero
			}
		}
	}
	for ; i < n; i++ {
		idx := int(indices[i])
		if idx >= 0 && idx < len(src) {
			out[i] = src[idx]
		} else {
			var zero T
			out[i] = zero
		}
	}
}

// groupAggGeneric is the dense per-group aggregate kernel:
// it fuses sum/min/max/count into a single pass over values, writing into
// caller-owned dense arrays indexed by group id. Software prefetch isn't
// expressible in portable Go, so the unroll factor stands in for it (the
// same substitution go-highway makes for its contrib kernels absent real
// intrinsics): processing `unroll` group-id lookups per iteration keeps
// consecutive loads in flight for the Go runtime's own prefetcher.
func groupAggGeneric[T Numeric](values []T, groupIDs []int32, numGroups int, sums []T, mins []T, maxs []T, counts []int64, unroll int) {
	for g := 0; g < numGroups; g++ {
		var zero T
		sums[g] = zero
		counts[g] = 0
	}
	for g := 0; g < numGroups; g++ {
		mins[g] = positiveInfinity[T]()
		maxs[g] = negativeInfinity[T]()
	}

	n := len(values)
	if len(groupIDs) < n {
		n = len(groupIDs)
	}
	i := 0
	for ; i+unroll <= n; i += unroll {
		for j := 0; j < unroll; j++ {
			v := values[i+j]
			g := groupIDs[i+j]
			sums[g] += v
			counts[g]++
			if v < mins[g] {
				mins[g] = v
			}
			if v > maxs[g] {
				maxs[g] = v
			}
		}
	}
	for ; i < n; i++ {
		v := values[i]
		g := groupIDs[i]
		sums[g] += v
		counts[g]++
		if v < mins[g] {
			mins[g] = v
		}
		if v > maxs[g] {
			maxs[g] = v
		}
	}
}

func positiveInfinity[T Numeric]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(math.Inf(1))).(T)
	case float64:
		return any(math.Inf(1)).(T)
	default:
		return maxValue[T]()
	}
}

func negativeInfinity[T Numeric]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(math.Inf(-1))).(T)
	case float64:
		return any(math.Inf(-1)).(T)
	default:
		return minValue[T]()
	}
}

func maxValue[T Numeric]() T {
	var zero T
	switch any(zero).(type) {
	case int32:
		return any(int32(math.MaxInt32)).(T)
	case int64:
		return any(int64(math.MaxInt64)).(T)
	case uint32:
		return any(uint32(math.MaxUint32)).(T)
	case uint64:
		return any(uint64(math.MaxUint64)).(T)
	default:
		return zero
	}
}

func minValue[T Numeric]() T {
	var zero T
	switch any(zero).(type) {
	case int32:
		return any(int32(math.MinInt32)).(T)
	case int64:
		return any(int64(math.MinInt64)).(T)
	default:
		return zero
	}
}

// hashGeneric computes rapidHash64 for each i64 lane. Kept here (rather than
// in hash.go) because it's one of the dispatched kernels; the
// underlying mix function is shared with groupby's table probing.
func hashGeneric(data []int64, out []uint64, unroll int) {
	n := len(out)
	if len(data) < n {
		n = len(data)
	}
	i := 0
	for ; i+unroll <= n; i += unroll {
		for j := 0; j < unroll; j++ {
			out[i+j] = RapidHash64(uint64(data[i+j]))
		}
	}
	for ; i < n; i++ {
		out[i] = RapidHash64(uint64(data[i]))
	}
}
