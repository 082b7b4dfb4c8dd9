package arena

import (
	"cmp"
	"slices"
	"sort"
)

// freeList holds the unallocated regions ordered by (Length, Offset).
// The first region with Length >= n is therefore the best fit for n, with
// ties broken by the lowest offset.
type freeList struct {
	regions []Region
}

func newFreeList(capacity int) *freeList {
	return &freeList{regions: []Region{{Offset: 0, Length: capacity}}}
}

func bySize(a, b Region) int {
	if c := cmp.Compare(a.Length, b.Length); c != 0 {
		return c
	}
	return cmp.Compare(a.Offset, b.Offset)
}

func byOffset(a, b Region) int {
	return cmp.Compare(a.Offset, b.Offset)
}

func (fl *freeList) len() int { return len(fl.regions) }

// bestFit returns the index of the smallest region of at least n units, or -1.
func (fl *freeList) bestFit(n int) int {
	i := sort.Search(len(fl.regions), func(i int) bool {
		return fl.regions[i].Length >= n
	})
	if i == len(fl.regions) {
		return -1
	}
	return i
}

// take carves n units from the front of the region at index i and
// returns the offset of the carved block.
func (fl *freeList) take(i, n int) int {
	r := fl.regions[i]
	fl.regions = slices.Delete(fl.regions, i, i+1)
	if r.Length > n {
		fl.insert(Region{Offset: r.Offset + n, Length: r.Length - n})
	}
	return r.Offset
}

func (fl *freeList) insert(r Region) {
	i, _ := slices.BinarySearchFunc(fl.regions, r, bySize)
	fl.regions = slices.Insert(fl.regions, i, r)
}

// largest returns the length of the biggest free region, 0 when there is none.
func (fl *freeList) largest() int {
	if len(fl.regions) == 0 {
		return 0
	}
	return fl.regions[len(fl.regions)-1].Length
}

// coalesce merges every pair of adjacent regions and returns the number of merges.
func (fl *freeList) coalesce() int {
	if len(fl.regions) < 2 {
		return 0
	}
	slices.SortFunc(fl.regions, byOffset)

	merged := fl.regions[:1]
	for _, r := range fl.regions[1:] {
		last := &merged[len(merged)-1]
		if last.End() == r.Offset {
			last.Length += r.Length
			continue
		}
		merged = append(merged, r)
	}
	n := len(fl.regions) - len(merged)
	fl.regions = merged

	slices.SortFunc(fl.regions, bySize)
	return n
}

// sorted returns a copy of the regions in ascending-offset order.
func (fl *freeList) sorted() []Region {
	out := slices.Clone(fl.regions)
	slices.SortFunc(out, byOffset)
	return out
}
