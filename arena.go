// Package arena implements a best-fit free-list allocator over a fixed-size
// index space.
package arena

import (
	"math"
	"time"
)

// MaxCapacity is the largest capacity New accepts.
const MaxCapacity = math.MaxUint32

// DefaultDefragmentFactor is the load factor of the automatic defragmentation
// trigger: a pass runs after Free once the free list holds more than this many
// regions per live allocation.
const DefaultDefragmentFactor = 2

// Arena manages allocation and release of blocks within [0, Capacity()).
// Not goroutine-safe. Use SafeArena for concurrent access.
type Arena struct {
	capacity int
	allocs   *allocTable
	free     *freeList
	opts     options
}

// New creates an Arena of the given capacity with a single free region
// spanning the whole range.
func New(capacity int, opts ...Option) (*Arena, error) {
	if capacity <= 0 || capacity > MaxCapacity {
		return nil, &SizeError{Size: capacity, err: ErrInvalidSize}
	}
	return &Arena{
		capacity: capacity,
		allocs:   newAllocTable(),
		free:     newFreeList(capacity),
		opts:     applyOptions(opts),
	}, nil
}

// Allocate reserves size units from the smallest free region that can hold
// them and returns the offset of the block. The block is carved from the
// front of the chosen region. On failure the offset is -1.
func (a *Arena) Allocate(size int) (int, error) {
	start := time.Now()
	offset, err := a.allocate(size)
	a.opts.metrics.RecordAllocate(size, time.Since(start), err)
	a.opts.logger.LogAllocate(size, offset, err)
	return offset, err
}

func (a *Arena) allocate(size int) (int, error) {
	if size <= 0 {
		return -1, &SizeError{Size: size, Capacity: a.capacity, err: ErrInvalidSize}
	}
	if size > a.capacity {
		return -1, &SizeError{Size: size, Capacity: a.capacity, err: ErrCapacityExceeded}
	}

	i := a.free.bestFit(size)
	if i < 0 {
		return -1, &OutOfMemoryError{Size: size, LargestFree: a.free.largest()}
	}
	offset := a.free.take(i, size)
	a.allocs.add(offset, size)
	return offset, nil
}

// Free releases the allocation starting at offset. Only the exact start
// offset of a live allocation is accepted, so double frees and interior
// offsets fail with ErrInvalidPointer.
func (a *Arena) Free(offset int) error {
	start := time.Now()
	err := a.release(offset)
	a.opts.metrics.RecordFree(time.Since(start), err)
	a.opts.logger.LogFree(offset, err)
	if err != nil {
		return err
	}
	if a.opts.autoDefragment && a.needsDefragment() {
		a.Defragment()
	}
	return nil
}

func (a *Arena) release(offset int) error {
	if offset < 0 || offset >= a.capacity {
		return &PointerError{Offset: offset}
	}
	length, ok := a.allocs.remove(offset)
	if !ok {
		return &PointerError{Offset: offset}
	}
	a.free.insert(Region{Offset: offset, Length: length})
	return nil
}

// needsDefragment reports whether the free list has outgrown the live
// allocation count. With nothing allocated, any split free space qualifies.
func (a *Arena) needsDefragment() bool {
	n := a.allocs.len()
	if n == 0 {
		return a.free.len() > 1
	}
	return a.free.len() > a.opts.defragmentFactor*n
}

// Defragment merges adjacent free regions. Running it again immediately
// changes nothing.
func (a *Arena) Defragment() {
	start := time.Now()
	merged := a.free.coalesce()
	a.opts.metrics.RecordDefragment(merged, time.Since(start))
	a.opts.logger.LogDefragment(merged, a.free.len())
}

// Capacity returns the fixed size of the arena.
func (a *Arena) Capacity() int {
	return a.capacity
}
