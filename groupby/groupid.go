package groupby

// groupIdTable assigns each distinct key (or, in hash-only mode, each
// distinct hash) a dense id in [0, numGroups) in first-seen order.
//
// When keys is nil the table runs in hash-only mode: an entry stores only
// its full 64-bit hash, and equality is hash-to-hash, not a key dereference.
// This lets a caller assign group ids from hashes alone when it has no
// original keys to dereference. When keys is non-nil the table stores the
// key directly and compares on it, the Swiss tables' fast path.
type groupIdTable struct {
	ctrl     []byte
	hashes   []uint64
	keys     []int64 // nil in hash-only mode
	groupIDs []int32
	capacity int
	count    int
}

func newGroupIdTable(initialCapacity int, withKeys bool) *groupIdTable {
	cap := nextPow2(initialCapacity)
	t := &groupIdTable{
		ctrl:     newCtrl(cap),
		hashes:   make([]uint64, cap),
		groupIDs: make([]int32, cap),
		capacity: cap,
	}
	if withKeys {
		t.keys = make([]int64, cap)
	}
	return t
}

// assign returns the dense group id for (hash, key), inserting a new group
// if this is the first time it's been seen. key is ignored in hash-only
// mode.
func (t *groupIdTable) assign(hash uint64, key int64) int32 {
	var keyMatch func(slot int) bool
	if t.keys != nil {
		keyMatch = func(slot int) bool {
			return (t.ctrl[slot]&occupiedBit) != 0 && t.keys[slot] == key
		}
	} else {
		keyMatch = func(slot int) bool {
			return (t.ctrl[slot]&occupiedBit) != 0 && t.hashes[slot] == hash
		}
	}

	res := probe(t.ctrl, t.capacity, hash, keyMatch)
	if res.found {
		return t.groupIDs[res.slot]
	}

	id := int32(t.count)
	markOccupied(t.ctrl, t.capacity, res.slot, res.h2)
	t.hashes[res.slot] = hash
	if t.keys != nil {
		t.keys[res.slot] = key
	}
	t.groupIDs[res.slot] = id
	t.count++
	if overLoad(t.count, t.capacity, maxLoadSwissNum) {
		t.grow()
	}
	return id
}

func (t *groupIdTable) grow() {
	oldCtrl, oldHashes, oldKeys, oldIDs := t.ctrl, t.hashes, t.keys, t.groupIDs
	newCap := t.capacity * 2

	t.capacity = newCap
	t.ctrl = newCtrl(newCap)
	t.hashes = make([]uint64, newCap)
	t.groupIDs = make([]int32, newCap)
	if oldKeys != nil {
		t.keys = make([]int64, newCap)
	}

	for slot, c := range oldCtrl[:len(oldCtrl)-groupWidth] {
		if c&occupiedBit == 0 {
			continue
		}
		hash := oldHashes[slot]
		res := probe(t.ctrl, t.capacity, hash, func(int) bool { return false })
		markOccupied(t.ctrl, t.capacity, res.slot, res.h2)
		t.hashes[res.slot] = hash
		if oldKeys != nil {
			t.keys[res.slot] = oldKeys[slot]
		}
		t.groupIDs[res.slot] = oldIDs[slot]
	}
}

// GroupIDsResult is compute_group_ids's return shape.
type GroupIDsResult struct {
	GroupIDs  []int32
	NumGroups int
}

// GroupIDsExtResult additionally carries first_row_idx[g], the index of the
// first row observed for each group — Phase 1's other output.
type GroupIDsExtResult struct {
	GroupIDs    []int32
	FirstRowIdx []int32
	NumGroups   int
}

// ComputeGroupIDs assigns a dense group id to each hash, treating equal
// hashes as the same group without dereferencing any original key. A caller
// with raw values it wants grouped by identity can pass them directly as
// hashes, since equality there coincides with hash equality.
func ComputeGroupIDs(hashes []uint64) GroupIDsResult {
	t := newGroupIdTable(nextPow2(len(hashes)/2+1), false)
	ids := make([]int32, len(hashes))
	for i, h := range hashes {
		ids[i] = t.assign(h, 0)
	}
	return GroupIDsResult{GroupIDs: ids, NumGroups: t.count}
}

// ComputeGroupIDsExt is ComputeGroupIDs plus first_row_idx[g].
func ComputeGroupIDsExt(hashes []uint64) GroupIDsExtResult {
	t := newGroupIdTable(nextPow2(len(hashes)/2+1), false)
	ids := make([]int32, len(hashes))
	var firstRow []int32
	for i, h := range hashes {
		before := t.count
		ids[i] = t.assign(h, 0)
		if t.count > before {
			firstRow = append(firstRow, int32(i))
		}
	}
	return GroupIDsExtResult{GroupIDs: ids, FirstRowIdx: firstRow, NumGroups: t.count}
}

// ComputeGroupIDsWithKeys is ComputeGroupIDsExt but dereferences the actual
// key on a hash match instead of trusting hash equality alone.
func ComputeGroupIDsWithKeys(hashes []uint64, keys []int64) GroupIDsExtResult {
	t := newGroupIdTable(nextPow2(len(hashes)/2+1), true)
	ids := make([]int32, len(hashes))
	var firstRow []int32
	for i := range hashes {
		before := t.count
		ids[i] = t.assign(hashes[i], keys[i])
		if t.count > before {
			firstRow = append(firstRow, int32(i))
		}
	}
	return GroupIDsExtResult{GroupIDs: ids, FirstRowIdx: firstRow, NumGroups: t.count}
}
