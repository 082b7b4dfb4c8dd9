package arena

import (
	"io"
	"sync"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena of the given capacity.
func NewSafeArena(capacity int, opts ...Option) (*SafeArena, error) {
	a, err := New(capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &SafeArena{a: a}, nil
}

// Allocate thread-safely reserves size units and returns the block offset.
func (s *SafeArena) Allocate(size int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(size)
}

// Free thread-safely releases the allocation starting at offset.
func (s *SafeArena) Free(offset int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Free(offset)
}

// Defragment thread-safely merges adjacent free regions.
func (s *SafeArena) Defragment() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Defragment()
}

// Snapshot thread-safely returns a copy of the arena layout.
func (s *SafeArena) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Snapshot()
}

// Dump thread-safely writes a human-readable layout to w.
func (s *SafeArena) Dump(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Dump(w)
}

// Capacity returns the fixed size of the arena.
func (s *SafeArena) Capacity() int {
	return s.a.Capacity()
}
