package arena

import "github.com/RoaringBitmap/roaring/v2"

// allocTable tracks live allocations. Start offsets live in a roaring bitmap,
// which gives membership checks for Free and ascending iteration for
// snapshots; lengths are kept alongside keyed by the same offset.
type allocTable struct {
	starts  *roaring.Bitmap
	lengths map[uint32]int
	inUse   int
}

func newAllocTable() *allocTable {
	return &allocTable{
		starts:  roaring.New(),
		lengths: make(map[uint32]int),
	}
}

func (t *allocTable) add(offset, length int) {
	key := uint32(offset)
	t.starts.Add(key)
	t.lengths[key] = length
	t.inUse += length
}

// remove deletes the allocation starting at offset and returns its length.
func (t *allocTable) remove(offset int) (int, bool) {
	key := uint32(offset)
	if !t.starts.Contains(key) {
		return 0, false
	}
	length := t.lengths[key]
	t.starts.Remove(key)
	delete(t.lengths, key)
	t.inUse -= length
	return length, true
}

func (t *allocTable) len() int { return len(t.lengths) }

// regions returns the live allocations in ascending-offset order.
func (t *allocTable) regions() []Region {
	out := make([]Region, 0, len(t.lengths))
	it := t.starts.Iterator()
	for it.HasNext() {
		key := it.Next()
		out = append(out, Region{Offset: int(key), Length: t.lengths[key]})
	}
	return out
}
