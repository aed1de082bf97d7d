package column

import "testing"

func TestFromSliceRoundTrip(t *testing.T) {
	data := make([]float64, ChunkSize*2+100)
	for i := range data {
		data[i] = float64(i % 97)
	}
	c := FromSlice(data)
	if c.Len() != len(data) {
		t.Fatalf("Len() = %d, want %d", c.Len(), len(data))
	}
	out := make([]float64, len(data))
	n := c.CopyTo(out)
	if n != len(data) {
		t.Fatalf("CopyTo returned %d, want %d", n, len(data))
	}
	for i := range data {
		if out[i] != data[i] {
			t.Fatalf("CopyTo[%d] = %v, want %v", i, out[i], data[i])
		}
	}
}

func TestChunkSizeInvariant(t *testing.T) {
	data := make([]int32, ChunkSize*3-5)
	c := FromSlice(data)
	sizes := c.ChunkSizes()
	sum := 0
	for i, sz := range sizes {
		sum += sz
		if i < len(sizes)-1 && sz != ChunkSize {
			t.Errorf("non-last chunk %d has size %d, want %d", i, sz, ChunkSize)
		}
	}
	if sizes[len(sizes)-1] > ChunkSize {
		t.Errorf("last chunk size %d exceeds ChunkSize", sizes[len(sizes)-1])
	}
	if sum != c.Len() {
		t.Errorf("sum(chunk_sizes) = %d, want total_length %d", sum, c.Len())
	}
}

func TestChunksAreAligned(t *testing.T) {
	c := FromSlice([]float64{1, 2, 3})
	for i := 0; i < c.NumChunks(); i++ {
		if !isAligned(c.chunks[i]) {
			t.Errorf("chunk %d is not %d-byte aligned", i, CacheLineSize)
		}
	}
}

func TestGetOutOfRange(t *testing.T) {
	c := FromSlice([]int64{1, 2, 3})
	if _, ok := c.Get(-1); ok {
		t.Error("Get(-1) should fail")
	}
	if _, ok := c.Get(3); ok {
		t.Error("Get(3) should fail on a 3-element column")
	}
	v, ok := c.Get(1)
	if !ok || v != 2 {
		t.Errorf("Get(1) = %v,%v want 2,true", v, ok)
	}
}

func TestSetNeverResizes(t *testing.T) {
	c := FromSlice([]int64{1, 2, 3})
	if c.Set(10, 99) {
		t.Error("Set out of range should return false")
	}
	if c.Len() != 3 {
		t.Errorf("Set out of range must not resize, Len() = %d", c.Len())
	}
	if !c.Set(0, 42) {
		t.Error("Set in range should succeed")
	}
	v, _ := c.Get(0)
	if v != 42 {
		t.Errorf("Get(0) after Set = %v, want 42", v)
	}
}

func TestWithCapacityStartsEmpty(t *testing.T) {
	c := WithCapacity[float32](ChunkSize + 10)
	if c.Len() != 0 {
		t.Errorf("WithCapacity column should start at length 0, got %d", c.Len())
	}
	if c.NumChunks() != 2 {
		t.Errorf("WithCapacity(ChunkSize+10) should allocate 2 chunks, got %d", c.NumChunks())
	}
	for _, sz := range c.ChunkSizes() {
		if sz != 0 {
			t.Errorf("WithCapacity chunk size = %d, want 0", sz)
		}
	}
}

func TestAppendGrowsAcrossChunks(t *testing.T) {
	c := WithCapacity[int32](0)
	for i := 0; i < ChunkSize+5; i++ {
		c.Append(int32(i))
	}
	if c.Len() != ChunkSize+5 {
		t.Fatalf("Len() = %d, want %d", c.Len(), ChunkSize+5)
	}
	if c.NumChunks() != 2 {
		t.Fatalf("NumChunks() = %d, want 2", c.NumChunks())
	}
	v, _ := c.Get(ChunkSize)
	if v != ChunkSize {
		t.Errorf("Get(ChunkSize) = %v, want %v", v, ChunkSize)
	}
}

// TestAppendFillsPreallocatedChunksInOrder checks that Append on a
// WithCapacity-constructed column fills the pre-allocated chunks in order
// (every intermediate chunk ends up exactly ChunkSize) instead of leaving
// leading chunks at size 0 while writing past them into newly-appended
// ones.
func TestAppendFillsPreallocatedChunksInOrder(t *testing.T) {
	n := ChunkSize + 5
	c := WithCapacity[int32](n)
	for i := 0; i < n; i++ {
		c.Append(int32(i))
	}
	if c.Len() != n {
		t.Fatalf("Len() = %d, want %d", c.Len(), n)
	}
	if c.NumChunks() != 2 {
		t.Fatalf("NumChunks() = %d, want 2", c.NumChunks())
	}
	sizes := c.ChunkSizes()
	if sizes[0] != ChunkSize {
		t.Fatalf("chunk[0] size = %d, want %d", sizes[0], ChunkSize)
	}
	if sizes[1] != 5 {
		t.Fatalf("chunk[1] size = %d, want 5", sizes[1])
	}
	for i := 0; i < n; i++ {
		v, ok := c.Get(i)
		if !ok || v != int32(i) {
			t.Fatalf("Get(%d) = %v,%v, want %d,true", i, v, ok, i)
		}
	}
}

func TestIteratorStorageOrder(t *testing.T) {
	data := make([]float64, ChunkSize+50)
	for i := range data {
		data[i] = float64(i)
	}
	c := FromSlice(data)
	it := NewIterator(c)
	got := it.Collect()
	if len(got) != len(data) {
		t.Fatalf("Collect() len = %d, want %d", len(got), len(data))
	}
	for i := range data {
		if got[i] != data[i] {
			t.Fatalf("Collect()[%d] = %v, want %v", i, got[i], data[i])
		}
	}
}

func TestGetChunkLogicalView(t *testing.T) {
	data := []int64{1, 2, 3, 4, 5}
	c := FromSlice(data)
	chunk := c.GetChunk(0)
	if len(chunk) != 5 {
		t.Fatalf("GetChunk(0) len = %d, want 5", len(chunk))
	}
	if c.GetChunk(1) != nil {
		t.Error("GetChunk(1) on a single-chunk column should be nil")
	}
}

func TestScratchBuffersReused(t *testing.T) {
	c := FromSlice([]float64{1, 2, 3})
	s1 := c.EnsureSortBuffers(c.ChunkSizes())
	keys := c.SortKeys(0)
	keys[0] = 42
	s2 := c.EnsureSortBuffers(c.ChunkSizes())
	if s1 != s2 {
		t.Error("EnsureSortBuffers should reuse the same Scratch struct")
	}
	if c.SortKeys(0)[0] != 42 {
		t.Error("sort key buffer should be reused, not reallocated, across calls")
	}
}

func TestDestroyReleasesState(t *testing.T) {
	c := FromSlice([]float64{1, 2, 3})
	c.Destroy()
	if c.Len() != 0 || c.NumChunks() != 0 {
		t.Error("Destroy should reset length and chunk count")
	}
}
