package arena_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arena "github.com/pavanmanishd/freelist"
)

// TestEdgeCases covers boundary behavior through the public API only.
func TestEdgeCases(t *testing.T) {
	t.Run("SingleUnitArena", func(t *testing.T) {
		a, err := arena.New(1)
		require.NoError(t, err)

		off, err := a.Allocate(1)
		require.NoError(t, err)
		assert.Equal(t, 0, off)

		_, err = a.Allocate(1)
		assert.ErrorIs(t, err, arena.ErrOutOfMemory)
		_, err = a.Allocate(2)
		assert.ErrorIs(t, err, arena.ErrCapacityExceeded)

		require.NoError(t, a.Free(0))
		assert.Equal(t, []arena.Region{{Offset: 0, Length: 1}}, a.Snapshot().FreeRegions)
	})

	t.Run("WholeArenaAllocation", func(t *testing.T) {
		a, err := arena.New(512)
		require.NoError(t, err)

		off, err := a.Allocate(512)
		require.NoError(t, err)
		assert.Equal(t, 0, off)
		assert.Empty(t, a.Snapshot().FreeRegions)
		require.NoError(t, a.Snapshot().Verify())
	})

	t.Run("LastOffsetOfLargestArena", func(t *testing.T) {
		a, err := arena.New(arena.MaxCapacity)
		require.NoError(t, err)

		_, err = a.Allocate(arena.MaxCapacity - 1)
		require.NoError(t, err)
		last, err := a.Allocate(1)
		require.NoError(t, err)
		assert.Equal(t, arena.MaxCapacity-1, last)

		require.NoError(t, a.Free(last))
		require.ErrorIs(t, a.Free(last), arena.ErrInvalidPointer)
		require.NoError(t, a.Snapshot().Verify())
	})

	t.Run("FreeOfNeverAllocatedOffset", func(t *testing.T) {
		a, err := arena.New(64)
		require.NoError(t, err)

		for _, off := range []int{0, 1, 63} {
			assert.ErrorIs(t, a.Free(off), arena.ErrInvalidPointer)
		}
	})

	t.Run("ErrorsUnwrapToSentinels", func(t *testing.T) {
		_, err := arena.New(-5)
		var se *arena.SizeError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, -5, se.Size)
		assert.EqualError(t, err, "arena: invalid size: got -5")
	})
}

// TestFragmentation shows that enough total free space does not imply a
// successful allocation.
func TestFragmentation(t *testing.T) {
	a, err := arena.New(100)
	require.NoError(t, err)

	offsets := make([]int, 10)
	for i := range offsets {
		offsets[i], err = a.Allocate(10)
		require.NoError(t, err)
	}
	for i := 0; i < len(offsets); i += 2 {
		require.NoError(t, a.Free(offsets[i]))
	}

	assert.Equal(t, 50, a.FreeSize())
	assert.Equal(t, 10, a.LargestFreeRegion())

	_, err = a.Allocate(11)
	var oom *arena.OutOfMemoryError
	require.ErrorAs(t, err, &oom)
	assert.Equal(t, 10, oom.LargestFree)

	for i := 1; i < len(offsets); i += 2 {
		require.NoError(t, a.Free(offsets[i]))
	}
	off, err := a.Allocate(100)
	require.NoError(t, err)
	assert.Equal(t, 0, off)
}
