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

package parallel

// Join runs a and b, potentially concurrently, and returns only once both
// have completed. The calling
// goroutine always executes a directly; b is pushed onto a worker's deque so
// any idle worker can steal it, while the caller helps drain the pool until
// b finishes.
//
// With a single-worker pool (or after Close), Join degrades to running a
// then b sequentially on the calling goroutine.
func (p *Pool) Join(a, b func()) {
	if p.numWorkers <= 1 || p.closed() {
		a()
		b()
		return
	}

	done := make(chan struct{})
	p.submit(func() {
		b()
		close(done)
	})

	a()
	p.helpUntil(done)
}

// JoinErr is Join for closures that report an error. Both run to completion
// regardless of whether one errors; JoinErr returns
// a's error if non-nil, else b's.
func (p *Pool) JoinErr(a, b func() error) error {
	var aErr, bErr error
	p.Join(
		func() { aErr = a() },
		func() { bErr = b() },
	)
	if aErr != nil {
		return aErr
	}
	return bErr
}
