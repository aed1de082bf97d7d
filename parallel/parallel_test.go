package parallel

import (
	"sync/atomic"
	"testing"
)

func TestJoinRunsBothClosures(t *testing.T) {
	p := New(4, nil)
	defer p.Close()

	var a, b int32
	p.Join(
		func() { atomic.AddInt32(&a, 1) },
		func() { atomic.AddInt32(&b, 1) },
	)
	if a != 1 || b != 1 {
		t.Fatalf("a=%d b=%d, want 1,1", a, b)
	}
}

func TestJoinSingleWorkerRunsSequentially(t *testing.T) {
	p := New(1, nil)
	defer p.Close()

	var order []int
	p.Join(
		func() { order = append(order, 1) },
		func() { order = append(order, 2) },
	)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("order = %v, want [1 2]", order)
	}
}

func TestParallelForCoversEveryIndexExactlyOnce(t *testing.T) {
	p := New(8, nil)
	defer p.Close()

	const n = 100_000
	hits := make([]int32, n)
	p.ParallelForWithGrain(n, 997, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})
	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, h)
		}
	}
}

func TestParallelForEmptyRangeNoop(t *testing.T) {
	p := New(4, nil)
	defer p.Close()

	called := false
	p.ParallelFor(0, func(start, end int) { called = true })
	if called {
		t.Error("ParallelFor(0, ...) should not invoke body")
	}
}

func TestParallelReduceSum(t *testing.T) {
	p := New(4, nil)
	defer p.Close()

	const n = 50_000
	got := ParallelReduceWithGrain(p, n, 1000, 0,
		func(i int) int { return i },
		func(a, b int) int { return a + b })

	want := n * (n - 1) / 2
	if got != want {
		t.Fatalf("ParallelReduce sum = %d, want %d", got, want)
	}
}

func TestParallelReduceRespectsLeftToRightOrder(t *testing.T) {
	p := New(4, nil)
	defer p.Close()

	// String concatenation is associative but not commutative; the
	// combined result must equal the sequential left-to-right concatenation
	// regardless of how leaves were scheduled.
	const n = 2000
	got := ParallelReduceWithGrain(p, n, 37, "",
		func(i int) string { return string(rune('a' + i%26)) },
		func(a, b string) string { return a + b })

	want := ""
	for i := 0; i < n; i++ {
		want += string(rune('a' + i%26))
	}
	if got != want {
		t.Fatalf("ParallelReduce did not preserve left-to-right order")
	}
}

func TestParallelChunkReduce(t *testing.T) {
	p := New(4, nil)
	defer p.Close()

	chunks := [][]int64{{1, 2, 3}, {4, 5}, {6, 7, 8, 9}}
	got := ParallelChunkReduce[int64, []int64](p, chunks, 0,
		func(_ int, chunk []int64) int64 {
			var sum int64
			for _, v := range chunk {
				sum += v
			}
			return sum
		},
		func(a, b int64) int64 { return a + b })

	if got != 45 {
		t.Fatalf("ParallelChunkReduce = %d, want 45", got)
	}
}

func TestParallelChunkReduceEmpty(t *testing.T) {
	p := New(4, nil)
	defer p.Close()

	got := ParallelChunkReduce[int, []int](p, nil, -1,
		func(_ int, chunk []int) int { return 0 },
		func(a, b int) int { return a + b })
	if got != -1 {
		t.Fatalf("ParallelChunkReduce(nil) = %d, want identity -1", got)
	}
}

func TestShouldParallelizeScalesWithRows(t *testing.T) {
	p := New(8, nil)
	defer p.Close()

	if p.ShouldParallelize(OpCheapScan, 10) {
		t.Error("10 rows of cheap work should not parallelize")
	}
	if !p.ShouldParallelize(OpHeavyScan, 1_000_000) {
		t.Error("1M rows of heavy work should parallelize")
	}
}

func TestShouldParallelizeSingleWorkerAlwaysFalse(t *testing.T) {
	p := New(1, nil)
	defer p.Close()

	if p.ShouldParallelize(OpHeavyScan, 10_000_000) {
		t.Error("a single-worker pool should never parallelize")
	}
}

func TestDequeLIFOBottomFIFOTop(t *testing.T) {
	d := newDeque()
	var order []int
	push := func(i int) func() { return func() { order = append(order, i) } }
	d.pushBottom(push(1))
	d.pushBottom(push(2))
	d.pushBottom(push(3))

	// Owner pops from the bottom: most recently pushed first.
	fn, ok := d.popBottom()
	if !ok {
		t.Fatal("popBottom on non-empty deque failed")
	}
	fn()
	if len(order) != 1 || order[0] != 3 {
		t.Fatalf("popBottom did not return the most recent push")
	}

	// A thief pops from the top: oldest surviving push first.
	fn, ok = d.popTop()
	if !ok {
		t.Fatal("popTop on non-empty deque failed")
	}
	fn()
	if len(order) != 2 || order[1] != 1 {
		t.Fatalf("popTop did not return the oldest surviving push")
	}
}

func TestPoolCloseIsIdempotent(t *testing.T) {
	p := New(4, nil)
	p.Close()
	p.Close()
}

func TestNewClampsWorkerCount(t *testing.T) {
	p := New(0, nil)
	defer p.Close()
	if p.NumWorkers() != 1 {
		t.Errorf("New(0).NumWorkers() = %d, want 1", p.NumWorkers())
	}

	p2 := New(1000, nil)
	defer p2.Close()
	if p2.NumWorkers() != MaxThreads {
		t.Errorf("New(1000).NumWorkers() = %d, want %d", p2.NumWorkers(), MaxThreads)
	}
}
