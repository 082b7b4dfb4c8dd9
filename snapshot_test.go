package arena

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotIsACopy(t *testing.T) {
	a := newTestArena(t, 50)
	mustAllocate(t, a, 10)

	snap := a.Snapshot()
	snap.Allocations[0].Length = 99
	snap.FreeRegions[0].Offset = 0

	fresh := a.Snapshot()
	assert.Equal(t, []Region{{0, 10}}, fresh.Allocations)
	assert.Equal(t, []Region{{10, 40}}, fresh.FreeRegions)
}

func TestSnapshotOrderedByOffset(t *testing.T) {
	a := buildGaps(t)
	snap := a.Snapshot()

	assert.Equal(t, 23, snap.Capacity)
	assert.Equal(t, []Region{{10, 1}, {14, 1}, {22, 1}}, snap.Allocations)
	assert.Equal(t, []Region{{0, 10}, {11, 3}, {15, 7}}, snap.FreeRegions)
	assert.NoError(t, snap.Verify())
}

func TestSnapshotVerify(t *testing.T) {
	tests := []struct {
		name    string
		snap    Snapshot
		wantErr string
	}{
		{
			name: "valid",
			snap: Snapshot{Capacity: 10, Allocations: []Region{{0, 4}}, FreeRegions: []Region{{4, 6}}},
		},
		{
			name:    "gap",
			snap:    Snapshot{Capacity: 10, Allocations: []Region{{0, 4}}, FreeRegions: []Region{{5, 5}}},
			wantErr: "arena: gap [4,5) not covered",
		},
		{
			name:    "overlap",
			snap:    Snapshot{Capacity: 10, Allocations: []Region{{0, 5}}, FreeRegions: []Region{{4, 6}}},
			wantErr: "arena: region (4,6) overlaps previous region ending at 5",
		},
		{
			name:    "short coverage",
			snap:    Snapshot{Capacity: 10, Allocations: []Region{{0, 5}}},
			wantErr: "arena: coverage ends at 5, capacity 10",
		},
		{
			name:    "past capacity",
			snap:    Snapshot{Capacity: 10, FreeRegions: []Region{{0, 12}}},
			wantErr: "arena: coverage ends at 12, capacity 10",
		},
		{
			name:    "duplicate allocation",
			snap:    Snapshot{Capacity: 10, Allocations: []Region{{0, 5}, {0, 5}}, FreeRegions: []Region{{5, 5}}},
			wantErr: "arena: duplicate allocation offset 0",
		},
		{
			name:    "zero length",
			snap:    Snapshot{Capacity: 10, Allocations: []Region{{0, 10}}, FreeRegions: []Region{{10, 0}}},
			wantErr: "arena: region (10,0) has non-positive length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snap.Verify()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestSnapshotCoalesced(t *testing.T) {
	assert.True(t, Snapshot{FreeRegions: []Region{{0, 5}, {6, 4}}}.Coalesced())
	assert.False(t, Snapshot{FreeRegions: []Region{{5, 5}, {0, 5}}}.Coalesced())
	assert.True(t, Snapshot{}.Coalesced())
}

func TestDump(t *testing.T) {
	a := newTestArena(t, 16)
	first := mustAllocate(t, a, 4)
	mustAllocate(t, a, 4)
	require.NoError(t, a.Free(first))

	var buf bytes.Buffer
	require.NoError(t, a.Dump(&buf))

	want := "capacity: 16\n" +
		"allocations: [(4,4)]\n" +
		"free regions: [(0,4) (8,8)]\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, want, a.Snapshot().String())
}
