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

package column

// Iterator yields a column's elements in storage order across chunks.
// It is restartable only by calling NewIterator again; there is no
// Reset method.
type Iterator[T Element] struct {
	col      *Column[T]
	chunkIdx int
	localIdx int
}

// NewIterator returns an Iterator positioned before the column's first
// element.
func NewIterator[T Element](c *Column[T]) *Iterator[T] {
	return &Iterator[T]{col: c}
}

// Next returns the next element and true, or (zero, false) once exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	for it.chunkIdx < len(it.col.chunks) {
		if it.localIdx < it.col.chunkSizes[it.chunkIdx] {
			v := it.col.chunks[it.chunkIdx][it.localIdx]
			it.localIdx++
			return v, true
		}
		it.chunkIdx++
		it.localIdx = 0
	}
	var zero T
	return zero, false
}

// Collect drains the iterator into a freshly allocated slice. Intended for
// tests and small columns; large columns should prefer CopyTo.
func (it *Iterator[T]) Collect() []T {
	out := make([]T, 0, it.col.Len())
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
