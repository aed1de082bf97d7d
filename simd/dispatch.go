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

import (
	"sync"
	"sync/atomic"
)

// Table is a function-pointer vtable: one field per
// (operation, element-type) pair, populated atomically from the detected
// Level. Every field is monomorphized to a concrete primitive type, so
// there is no dynamic dispatch on element type inside any hot loop, only on
// Level, and only once.
type Table struct {
	Level Level

	SumF32 func(data []float32) float32
	SumF64 func(data []float64) float64
	SumI32 func(data []int32) int32
	SumI64 func(data []int64) int64

	MinMaxF32 func(data []float32, isMax bool) (float32, bool)
	MinMaxF64 func(data []float64, isMax bool) (float64, bool)
	MinMaxI32 func(data []int32, isMax bool) (int32, bool)
	MinMaxI64 func(data []int64, isMax bool) (int64, bool)

	AddF64, SubF64, MulF64, DivF64 func(a, b, out []float64)
	AddF32, SubF32, MulF32, DivF32 func(a, b, out []float32)
	AddI64, SubI64, MulI64         func(a, b, out []int64)
	AddI32, SubI32, MulI32         func(a, b, out []int32)

	AddScalarF64, MulScalarF64 func(a []float64, s float64, out []float64)
	AddScalarI64, MulScalarI64 func(a []int64, s int64, out []int64)

	CompareF64 func(a, b []float64, op CompareOp, out []uint8)
	CompareI64 func(a, b []int64, op CompareOp, out []uint8)

	FilterF64 func(data []float64, threshold float64, op CompareOp) []int32
	FilterI64 func(data []int64, threshold int64, op CompareOp) []int32

	HashI64       func(data []int64, out []uint64)
	CombineHashes func(seed, h uint64) uint64

	GatherF32 func(src []float32, indices []int32, out []float32)
	GatherF64 func(src []float64, indices []int32, out []float64)
	GatherI32 func(src []int32, indices []int32, out []int32)
	GatherI64 func(src []int64, indices []int32, out []int64)

	GroupAggF64 func(values []float64, groupIDs []int32, numGroups int, sums, mins, maxs []float64, counts []int64)
	GroupAggI64 func(values []int64, groupIDs []int32, numGroups int, sums, mins, maxs []int64, counts []int64)
}

var (
	tablePtr  atomic.Pointer[Table]
	tableInit sync.Mutex
)

// Dispatch returns the process-wide kernel table, initializing it exactly
// once from GetSIMDLevel()'s result. The fast path is a single atomic load;
// the slow path double-checks under tableInit, matching go-highway's
// atomic-publish pattern for currentLevel/currentWidth generalized from two
// package vars to one table pointer because this table carries function
// values rather than two scalars.
func Dispatch() *Table {
	if t := tablePtr.Load(); t != nil {
		return t
	}
	tableInit.Lock()
	defer tableInit.Unlock()
	if t := tablePtr.Load(); t != nil {
		return t
	}
	t := buildTable(GetSIMDLevel())
	tablePtr.Store(t)
	return t
}

// ReinitDispatch forces the dispatch table to be rebuilt from the current
// GetSIMDLevel() result. Callers must invoke this after SetSIMDLevel so the
// kernels actually in use reflect the new level.
func ReinitDispatch() {
	tableInit.Lock()
	defer tableInit.Unlock()
	tablePtr.Store(buildTable(GetSIMDLevel()))
}

// buildTable maps a Level to one of the three kernel sets. Scalar falls
// through to the SSE4 set, which is always available.
func buildTable(level Level) *Table {
	switch level {
	case LevelAVX512:
		return avx512Kernels()
	case LevelAVX2:
		return avx2Kernels()
	default:
		return sse4Kernels()
	}
}
