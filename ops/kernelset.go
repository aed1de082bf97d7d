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

// Package ops implements the chunked operations composed from the SIMD
// kernel layer and the fork-join parallel runtime: reductions,
// filters, and sort/argsort over column.Column.
package ops

import (
	"github.com/galleon-db/galleon-core/simd"
)

// Numeric is the closed set of element types the dispatch table's kernels
// are monomorphized over. ops operates on exactly these four; column.Element is
// broader (it also stores u32/u64/bool) because storage has no such
// restriction, but reductions/filters/sort do.
type Numeric interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// sumChunk dispatches to the right Table field for T via a type switch on a
// zero value, converting through `any` since Go generics can't select a
// struct field by type parameter directly. The switch is closed over
// Numeric's four cases, so the default panic is unreachable for any type
// that satisfies the constraint.
func sumChunk[T Numeric](tbl *simd.Table, data []T) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(tbl.SumF32(any(data).([]float32))).(T)
	case float64:
		return any(tbl.SumF64(any(data).([]float64))).(T)
	case int32:
		return any(tbl.SumI32(any(data).([]int32))).(T)
	case int64:
		return any(tbl.SumI64(any(data).([]int64))).(T)
	default:
		panic("ops: unsupported element type")
	}
}

func minMaxChunk[T Numeric](tbl *simd.Table, data []T, isMax bool) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case float32:
		v, ok := tbl.MinMaxF32(any(data).([]float32), isMax)
		return any(v).(T), ok
	case float64:
		v, ok := tbl.MinMaxF64(any(data).([]float64), isMax)
		return any(v).(T), ok
	case int32:
		v, ok := tbl.MinMaxI32(any(data).([]int32), isMax)
		return any(v).(T), ok
	case int64:
		v, ok := tbl.MinMaxI64(any(data).([]int64), isMax)
		return any(v).(T), ok
	default:
		panic("ops: unsupported element type")
	}
}

// widenCompare evaluates op on two float64 operands; it's the fallback path
// for f32/i32, whose dispatch table has no dedicated compare/filter kernel.
func widenCompare(a, b float64, op simd.CompareOp) bool {
	switch op {
	case simd.OpGT:
		return a > b
	case simd.OpGE:
		return a >= b
	case simd.OpLT:
		return a < b
	case simd.OpLE:
		return a <= b
	case simd.OpEQ:
		return a == b
	case simd.OpNE:
		return a != b
	default:
		return false
	}
}

// filterChunk returns the indices (relative to data) where data[i] op
// threshold holds, order-preserving.
func filterChunk[T Numeric](tbl *simd.Table, data []T, threshold T, op simd.CompareOp) []int32 {
	var zero T
	switch any(zero).(type) {
	case float64:
		return tbl.FilterF64(any(data).([]float64), any(threshold).(float64), op)
	case int64:
		return tbl.FilterI64(any(data).([]int64), any(threshold).(int64), op)
	default:
		var indices []int32
		th := float64(anyToFloat(threshold))
		for i, v := range data {
			if widenCompare(anyToFloat(v), th, op) {
				indices = append(indices, int32(i))
			}
		}
		return indices
	}
}

// anyToFloat widens a float32 or int32 Numeric value to float64 for the
// scalar-fallback compare path.
func anyToFloat[T Numeric](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case int32:
		return float64(x)
	case float64:
		return x
	case int64:
		return float64(x)
	default:
		return 0
	}
}

func gatherChunk[T Numeric](tbl *simd.Table, src []T, indices []int32, out []T) {
	var zero T
	switch any(zero).(type) {
	case float32:
		tbl.GatherF32(any(src).([]float32), indices, any(out).([]float32))
	case float64:
		tbl.GatherF64(any(src).([]float64), indices, any(out).([]float64))
	case int32:
		tbl.GatherI32(any(src).([]int32), indices, any(out).([]int32))
	case int64:
		tbl.GatherI64(any(src).([]int64), indices, any(out).([]int64))
	default:
		panic("ops: unsupported element type")
	}
}
