package arena

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Region is a contiguous range [Offset, Offset+Length) of the arena.
type Region struct {
	Offset int
	Length int
}

// End returns the first offset past the region.
func (r Region) End() int {
	return r.Offset + r.Length
}

func (r Region) String() string {
	return fmt.Sprintf("(%d,%d)", r.Offset, r.Length)
}

// Snapshot is a read-only copy of the arena layout. Both lists are in
// ascending-offset order and share no memory with the arena.
type Snapshot struct {
	Capacity    int
	Allocations []Region
	FreeRegions []Region
}

// Snapshot returns the current layout. It never mutates the arena.
func (a *Arena) Snapshot() Snapshot {
	return Snapshot{
		Capacity:    a.capacity,
		Allocations: a.allocs.regions(),
		FreeRegions: a.free.sorted(),
	}
}

// Dump writes a human-readable layout to w.
func (a *Arena) Dump(w io.Writer) error {
	_, err := io.WriteString(w, a.Snapshot().String())
	return err
}

func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "capacity: %d\n", s.Capacity)
	fmt.Fprintf(&b, "allocations: %s\n", formatRegions(s.Allocations))
	fmt.Fprintf(&b, "free regions: %s\n", formatRegions(s.FreeRegions))
	return b.String()
}

func formatRegions(rs []Region) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Verify checks that the allocations and free regions tile [0, Capacity)
// exactly: positive lengths, unique allocation offsets, no overlap and no
// gap. It returns an error describing the first violation found.
func (s Snapshot) Verify() error {
	all := make([]Region, 0, len(s.Allocations)+len(s.FreeRegions))
	seen := make(map[int]struct{}, len(s.Allocations))
	for _, r := range s.Allocations {
		if _, dup := seen[r.Offset]; dup {
			return fmt.Errorf("arena: duplicate allocation offset %d", r.Offset)
		}
		seen[r.Offset] = struct{}{}
	}
	all = append(all, s.Allocations...)
	all = append(all, s.FreeRegions...)
	slices.SortFunc(all, byOffset)

	next := 0
	for _, r := range all {
		if r.Length <= 0 {
			return fmt.Errorf("arena: region %v has non-positive length", r)
		}
		switch {
		case r.Offset < next:
			return fmt.Errorf("arena: region %v overlaps previous region ending at %d", r, next)
		case r.Offset > next:
			return fmt.Errorf("arena: gap [%d,%d) not covered", next, r.Offset)
		}
		next = r.End()
	}
	if next != s.Capacity {
		return fmt.Errorf("arena: coverage ends at %d, capacity %d", next, s.Capacity)
	}
	return nil
}

// Coalesced reports whether no two free regions are adjacent.
func (s Snapshot) Coalesced() bool {
	free := slices.Clone(s.FreeRegions)
	slices.SortFunc(free, byOffset)
	for i := 1; i < len(free); i++ {
		if free[i-1].End() == free[i].Offset {
			return false
		}
	}
	return true
}
