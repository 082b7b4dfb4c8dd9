// Package arena implements a best-fit free-list allocator over a fixed-size
// index space.
//
// # Overview
//
// An Arena manages a single linear range of N units. It hands out blocks as
// integer offsets into that range and takes them back by the same offset.
// No real memory backs the range, so the package is useful for:
//
//   - Modelling manual memory management and fragmentation
//   - Managing slots in an externally owned buffer or file region
//   - Testing allocation policies against recorded workloads
//
// # Basic Usage
//
//	a, err := arena.New(1024)
//	if err != nil {
//	    return err
//	}
//
//	off, err := a.Allocate(64)
//	if err != nil {
//	    return err
//	}
//
//	// ... use [off, off+64) ...
//
//	if err := a.Free(off); err != nil {
//	    return err
//	}
//
// # Allocation Policy
//
// Allocate is best-fit: among the free regions at least as long as the
// request it picks the shortest, and among equally short ones the lowest
// offset. The block is carved from the front of that region. The free list
// is kept ordered by length, so the search is a binary search.
//
// # Defragmentation
//
// Free does not merge the released block with its neighbours. Instead, after
// each successful Free the arena checks the free list against the number of
// live allocations and runs Defragment once it holds more than two regions
// per allocation (or more than one region when nothing is allocated).
// Defragment can also be called at any time; it is idempotent.
//
// The load factor is configurable with WithDefragmentFactor and the automatic
// pass can be turned off with WithAutoDefragment(false).
//
// # Errors
//
// Failures are reported as errors matching one of the sentinels with
// errors.Is:
//
//   - ErrInvalidSize: size or capacity is not positive, or capacity exceeds MaxCapacity
//   - ErrCapacityExceeded: the request is larger than the whole arena
//   - ErrOutOfMemory: no single free region is large enough
//   - ErrInvalidPointer: the offset is not the start of a live allocation
//
// A failed call leaves the arena unchanged.
//
// # Thread Safety
//
// The basic Arena type is not thread-safe. For concurrent access, use SafeArena:
//
//	s, _ := arena.NewSafeArena(1 << 20)
//	off, err := s.Allocate(128)
//
// # Introspection
//
// Snapshot returns the capacity, live allocations and free regions in
// ascending-offset order. Snapshot.Verify checks that they tile the arena
// exactly, and Dump writes a readable layout:
//
//	a.Dump(os.Stdout)
//	fmt.Printf("Utilization: %.2f%%\n", a.Utilization()*100)
//	fmt.Printf("Fragmentation: %.2f\n", a.Fragmentation())
package arena
