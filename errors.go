package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a requested size or capacity that is not a positive integer.
	ErrInvalidSize = errors.New("arena: invalid size")

	// ErrCapacityExceeded indicates a single request larger than the whole arena.
	ErrCapacityExceeded = errors.New("arena: requested size exceeds capacity")

	// ErrOutOfMemory indicates that no free region is currently large enough.
	ErrOutOfMemory = errors.New("arena: out of memory")

	// ErrInvalidPointer indicates a free of an offset that is not the start of a live allocation.
	ErrInvalidPointer = errors.New("arena: invalid pointer")
)

// SizeError reports a rejected size or capacity.
// It unwraps to ErrInvalidSize or ErrCapacityExceeded.
type SizeError struct {
	Size     int
	Capacity int
	err      error
}

func (e *SizeError) Error() string {
	if errors.Is(e.err, ErrCapacityExceeded) {
		return fmt.Sprintf("%v: %d > %d", e.err, e.Size, e.Capacity)
	}
	return fmt.Sprintf("%v: got %d", e.err, e.Size)
}

func (e *SizeError) Unwrap() error { return e.err }

// OutOfMemoryError reports an allocation that fits the arena but no free region.
type OutOfMemoryError struct {
	Size        int
	LargestFree int
}

func (e *OutOfMemoryError) Error() string {
	return fmt.Sprintf("%v: need %d, largest free region %d", ErrOutOfMemory, e.Size, e.LargestFree)
}

func (e *OutOfMemoryError) Unwrap() error { return ErrOutOfMemory }

// PointerError reports a free of an offset that does not start a live allocation.
type PointerError struct {
	Offset int
}

func (e *PointerError) Error() string {
	return fmt.Sprintf("%v: %d", ErrInvalidPointer, e.Offset)
}

func (e *PointerError) Unwrap() error { return ErrInvalidPointer }
