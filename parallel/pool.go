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

// Package parallel implements the fork-join parallel runtime the analytics
// engine schedules its chunked operations on: a persistent pool of
// worker goroutines, each with a local work-stealing deque, exposing Join,
// ParallelFor, ParallelReduce and ParallelChunkReduce on top of it.
//
// The pool shape is grounded on go-highway's contrib workerpool (a fixed set
// of long-lived worker goroutines consuming from a shared task source rather
// than one goroutine per call); the recursive split/steal/join discipline
// and the should-parallelize cost model are grounded on galleon's
// go-parallel.go.
package parallel

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// MaxThreads bounds the worker count regardless of GOMAXPROCS or a caller's
// requested size.
const MaxThreads = 32

// pollBackoff is how long an idle worker waits on the wake signal before
// re-scanning deques; it bounds wake-up latency without busy-spinning.
const pollBackoff = 50 * time.Microsecond

// Pool is a fixed-size, persistent set of worker goroutines. Create one with
// New and reuse it across many operations; unlike spawning a goroutine per
// call, construction cost (worker goroutine startup) is paid once.
type Pool struct {
	numWorkers int
	workers    []*worker
	next       atomic.Uint64 // round-robins external submissions across workers
	wake       chan struct{} // non-blocking "there may be new work" signal
	stop       chan struct{}
	closeOnce  sync.Once
	log        *zap.Logger
}

type worker struct {
	id    int
	pool  *Pool
	deque *deque
}

// New creates a Pool with numWorkers persistent workers, clamped to
// [1, MaxThreads]. A nil logger falls back to zap.NewNop().
func New(numWorkers int, log *zap.Logger) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > MaxThreads {
		numWorkers = MaxThreads
	}
	if log == nil {
		log = zap.NewNop()
	}
	p := &Pool{
		numWorkers: numWorkers,
		wake:       make(chan struct{}, MaxThreads),
		stop:       make(chan struct{}),
		log:        log,
	}
	p.workers = make([]*worker, numWorkers)
	for i := range p.workers {
		w := &worker{id: i, pool: p, deque: newDeque()}
		p.workers[i] = w
		go w.run()
	}
	log.Debug("parallel pool started", zap.Int("workers", numWorkers))
	return p
}

// NumWorkers returns the pool's worker count.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops every worker goroutine. Outstanding Join calls that haven't
// yet observed their task being stolen fall back to running it inline.
// Close is idempotent.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.stop)
	})
}

func (p *Pool) closed() bool {
	select {
	case <-p.stop:
		return true
	default:
		return false
	}
}

func (p *Pool) wakeOne() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// submit places fn onto a worker's deque in round-robin order so concurrent
// submissions spread across the pool instead of piling onto one worker.
func (p *Pool) submit(fn func()) {
	idx := int(p.next.Add(1)-1) % p.numWorkers
	p.workers[idx].deque.pushBottom(fn)
	p.wakeOne()
}

// steal scans every worker but excludeID for stealable work, starting from a
// rotating offset so no single worker is hammered by every thief.
func (p *Pool) steal(excludeID int) (func(), bool) {
	start := int(p.next.Load()) % p.numWorkers
	for i := 0; i < p.numWorkers; i++ {
		idx := (start + i) % p.numWorkers
		if idx == excludeID {
			continue
		}
		if fn, ok := p.workers[idx].deque.popTop(); ok {
			return fn, true
		}
	}
	return nil, false
}

func (w *worker) run() {
	for {
		if fn, ok := w.deque.popBottom(); ok {
			fn()
			continue
		}
		if fn, ok := w.pool.steal(w.id); ok {
			fn()
			continue
		}
		select {
		case <-w.pool.stop:
			return
		case <-w.pool.wake:
		case <-time.After(pollBackoff):
		}
	}
}

// helpUntil runs a worker-like steal loop until done is closed. It's how a
// Join caller (whether or not it is itself a pool worker) stays busy instead
// of blocking passively while its stolen half runs elsewhere: "suspension
// only at the join point" becomes "the join point helps drain the pool
// instead of idling."
func (p *Pool) helpUntil(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		default:
		}
		if fn, ok := p.steal(-1); ok {
			fn()
			continue
		}
		select {
		case <-done:
			return
		case <-p.wake:
		case <-time.After(pollBackoff):
		}
	}
}
