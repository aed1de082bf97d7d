package ops

import (
	"testing"

	"github.com/galleon-db/galleon-core/column"
	"github.com/galleon-db/galleon-core/parallel"
)

func TestSumEmptyColumnReturnsIdentity(t *testing.T) {
	col := column.FromSlice([]float64{})
	if got := Sum(col, nil); got != 0 {
		t.Errorf("Sum(empty) = %v, want 0", got)
	}
}

func TestSumSequential(t *testing.T) {
	col := column.FromSlice([]int64{1, 2, 3, 4, 5})
	if got := Sum(col, nil); got != 15 {
		t.Errorf("Sum = %v, want 15", got)
	}
}

// TestSumCrossChunk checks a column spanning three chunks: CHUNK_SIZE*2+100
// elements (i mod CHUNK_SIZE) mod 100, so each full chunk holds the same
// values; sum == 2*(sum_{i=0..CHUNK_SIZE-1} i mod 100) + (sum_{i=0..99} i).
func TestSumCrossChunk(t *testing.T) {
	n := column.ChunkSize*2 + 100
	data := make([]int64, n)
	for i := range data {
		data[i] = int64((i % column.ChunkSize) % 100)
	}
	col := column.FromSlice(data)

	var perChunkSum int64
	for i := 0; i < column.ChunkSize; i++ {
		perChunkSum += int64(i % 100)
	}
	var tailSum int64
	for i := 0; i < 100; i++ {
		tailSum += int64(i)
	}
	want := 2*perChunkSum + tailSum

	pool := parallel.New(4, nil)
	defer pool.Close()

	if got := Sum(col, pool); got != want {
		t.Errorf("Sum(cross-chunk) = %d, want %d", got, want)
	}
	if got := Sum(col, nil); got != want {
		t.Errorf("Sum(cross-chunk, sequential) = %d, want %d", got, want)
	}
}

func TestParallelSumMatchesSequentialSum(t *testing.T) {
	n := column.ChunkSize*3 + 7
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i%37) - 18
	}
	col := column.FromSlice(data)

	pool := parallel.New(8, nil)
	defer pool.Close()

	seq := Sum(col, nil)
	par := Sum(col, pool)
	diff := seq - par
	if diff < 0 {
		diff = -diff
	}
	if diff > 1e-6 {
		t.Errorf("parallel sum %v diverges from sequential sum %v beyond FP tolerance", par, seq)
	}
}

func TestMinMaxEmpty(t *testing.T) {
	col := column.FromSlice([]float64{})
	if _, ok := Min(col, nil); ok {
		t.Error("Min(empty) should return ok=false")
	}
	if _, ok := Max(col, nil); ok {
		t.Error("Max(empty) should return ok=false")
	}
}

func TestMinMax(t *testing.T) {
	col := column.FromSlice([]int32{5, -3, 8, 1, -9, 4})
	min, ok := Min(col, nil)
	if !ok || min != -9 {
		t.Errorf("Min = %v,%v want -9,true", min, ok)
	}
	max, ok := Max(col, nil)
	if !ok || max != 8 {
		t.Errorf("Max = %v,%v want 8,true", max, ok)
	}
}

func TestMean(t *testing.T) {
	col := column.FromSlice([]float64{2, 4, 6})
	mean, ok := Mean(col, nil)
	if !ok || mean != 4 {
		t.Errorf("Mean = %v,%v want 4,true", mean, ok)
	}
	empty := column.FromSlice([]float64{})
	if _, ok := Mean(empty, nil); ok {
		t.Error("Mean(empty) should return ok=false")
	}
}

// TestFilterGt checks a small filter_gt example by hand.
func TestFilterGt(t *testing.T) {
	col := column.FromSlice([]int64{1, 5, 2, 8, 3, 9, 4})
	out := FilterGt(col, int64(4), nil)
	got := column.NewIterator(out).Collect()
	want := []int64{5, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("FilterGt len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FilterGt[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFilterPreservesOrderAcrossChunks(t *testing.T) {
	n := column.ChunkSize + 20
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(i)
	}
	col := column.FromSlice(data)
	pool := parallel.New(4, nil)
	defer pool.Close()

	threshold := int64(column.ChunkSize - 5)
	out := FilterGt(col, threshold, pool)
	got := column.NewIterator(out).Collect()
	for i, v := range got {
		if v != threshold+1+int64(i) {
			t.Fatalf("FilterGt result not in input order at %d: got %d", i, v)
		}
	}
}

// TestFilterResultSpansMultipleChunks checks that a filter result larger
// than ChunkSize comes back with every intermediate chunk exactly
// ChunkSize-sized, not left at size 0 by a WithCapacity/Append fill-order
// bug.
func TestFilterResultSpansMultipleChunks(t *testing.T) {
	n := column.ChunkSize*2 + 10
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(i)
	}
	col := column.FromSlice(data)

	out := FilterGt(col, int64(-1), nil)
	if out.Len() != n {
		t.Fatalf("FilterGt len = %d, want %d", out.Len(), n)
	}
	if out.NumChunks() != 3 {
		t.Fatalf("FilterGt NumChunks = %d, want 3", out.NumChunks())
	}
	sizes := out.ChunkSizes()
	for i := 0; i < len(sizes)-1; i++ {
		if sizes[i] != column.ChunkSize {
			t.Fatalf("FilterGt chunk[%d] size = %d, want %d (every intermediate chunk must be full)", i, sizes[i], column.ChunkSize)
		}
	}
	for i := 0; i < n; i++ {
		v, ok := out.Get(i)
		if !ok || v != int64(i) {
			t.Fatalf("FilterGt.Get(%d) = %v,%v, want %d,true", i, v, ok, i)
		}
	}
}

func TestFilterLt(t *testing.T) {
	col := column.FromSlice([]float64{1, 5, 2, 8, 3})
	out := FilterLt(col, 4.0, nil)
	got := column.NewIterator(out).Collect()
	want := []float64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("FilterLt len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FilterLt[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestArgsort checks a small argsort example by hand.
func TestArgsort(t *testing.T) {
	col := column.FromSlice([]int32{5, 2, 8, 1, 9})
	got := Argsort(col)
	want := []int32{3, 1, 0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("Argsort len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Argsort[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestArgsortMultiChunkMatchesSortedOrder(t *testing.T) {
	n := column.ChunkSize*2 + 37
	data := make([]int64, n)
	for i := range data {
		data[i] = int64((i*7919 + 13) % 1000)
	}
	col := column.FromSlice(data)

	order := Argsort(col)
	if len(order) != n {
		t.Fatalf("Argsort len = %d, want %d", len(order), n)
	}
	seen := make([]bool, n)
	for i, idx := range order {
		if idx < 0 || int(idx) >= n || seen[idx] {
			t.Fatalf("Argsort produced an invalid or duplicate index %d at position %d", idx, i)
		}
		seen[idx] = true
		if i > 0 {
			prev, _ := col.Get(int(order[i-1]))
			cur, _ := col.Get(int(idx))
			if cur < prev {
				t.Fatalf("Argsort result not sorted at position %d: %d before %d", i, prev, cur)
			}
		}
	}
}

func TestSortRoundTrip(t *testing.T) {
	col := column.FromSlice([]float64{5, 2, 8, 1, 9})
	sorted := Sort(col)
	got := column.NewIterator(sorted).Collect()
	want := []float64{1, 2, 5, 8, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sort[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestSortResultSpansMultipleChunks checks that sorting a column larger
// than ChunkSize produces a result with every intermediate chunk exactly
// ChunkSize-sized, not left at size 0 by a WithCapacity/Append fill-order
// bug.
func TestSortResultSpansMultipleChunks(t *testing.T) {
	n := column.ChunkSize*2 + 10
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(n - i)
	}
	col := column.FromSlice(data)

	sorted := Sort(col)
	if sorted.Len() != n {
		t.Fatalf("Sort len = %d, want %d", sorted.Len(), n)
	}
	if sorted.NumChunks() != 3 {
		t.Fatalf("Sort NumChunks = %d, want 3", sorted.NumChunks())
	}
	sizes := sorted.ChunkSizes()
	for i := 0; i < len(sizes)-1; i++ {
		if sizes[i] != column.ChunkSize {
			t.Fatalf("Sort chunk[%d] size = %d, want %d (every intermediate chunk must be full)", i, sizes[i], column.ChunkSize)
		}
	}
	for i := 0; i < n; i++ {
		v, ok := sorted.Get(i)
		if !ok || v != int64(i+1) {
			t.Fatalf("Sort.Get(%d) = %v,%v, want %d,true", i, v, ok, i+1)
		}
	}
}

// TestSortIdempotent checks that sort(sort(col)) == sort(col).
func TestSortIdempotent(t *testing.T) {
	col := column.FromSlice([]int64{9, -2, 4, 4, 0, 17, -8})
	once := Sort(col)
	twice := Sort(once)
	a := column.NewIterator(once).Collect()
	b := column.NewIterator(twice).Collect()
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sort(sort(col)) != sort(col) at %d: %d vs %d", i, a[i], b[i])
		}
	}
}
