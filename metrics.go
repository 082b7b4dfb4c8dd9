package arena

import (
	"sync/atomic"
	"time"
)

// SizeInUse returns the total number of units held by live allocations.
func (a *Arena) SizeInUse() int {
	return a.allocs.inUse
}

// FreeSize returns the total number of unallocated units across all free regions.
func (a *Arena) FreeSize() int {
	return a.capacity - a.allocs.inUse
}

// NumAllocations returns the number of live allocations.
func (a *Arena) NumAllocations() int {
	return a.allocs.len()
}

// NumFreeRegions returns the number of regions in the free list.
func (a *Arena) NumFreeRegions() int {
	return a.free.len()
}

// LargestFreeRegion returns the length of the biggest free region.
// This is the largest request Allocate can currently satisfy.
func (a *Arena) LargestFreeRegion() int {
	return a.free.largest()
}

// Utilization returns the ratio of units in use to capacity (0.0 to 1.0).
func (a *Arena) Utilization() float64 {
	return float64(a.SizeInUse()) / float64(a.capacity)
}

// Fragmentation returns 1 - largest/free, the share of free space that is
// not reachable by a single request. Returns 0.0 if nothing is free.
func (a *Arena) Fragmentation() float64 {
	free := a.FreeSize()
	if free == 0 {
		return 0
	}
	return 1 - float64(a.LargestFreeRegion())/float64(free)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Capacity:          a.capacity,
		SizeInUse:         a.SizeInUse(),
		FreeSize:          a.FreeSize(),
		NumAllocations:    a.NumAllocations(),
		NumFreeRegions:    a.NumFreeRegions(),
		LargestFreeRegion: a.LargestFreeRegion(),
		Utilization:       a.Utilization(),
		Fragmentation:     a.Fragmentation(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Capacity          int     // Fixed arena size
	SizeInUse         int     // Units held by live allocations
	FreeSize          int     // Units in free regions
	NumAllocations    int     // Live allocations
	NumFreeRegions    int     // Entries in the free list
	LargestFreeRegion int     // Length of the biggest free region
	Utilization       float64 // SizeInUse / Capacity
	Fragmentation     float64 // 1 - LargestFreeRegion / FreeSize
}

// Thread-safe metrics for SafeArena

// SizeInUse thread-safely returns the number of units held by live allocations.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// FreeSize thread-safely returns the number of unallocated units.
func (s *SafeArena) FreeSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.FreeSize()
}

// Utilization thread-safely returns the ratio of units in use to capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// MetricsCollector receives a record of every allocator operation.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAllocate is called after each Allocate. err is nil if successful.
	RecordAllocate(size int, duration time.Duration, err error)

	// RecordFree is called after each Free. err is nil if successful.
	RecordFree(duration time.Duration, err error)

	// RecordDefragment is called after each defragmentation pass, automatic
	// or explicit. merged is the number of regions folded into a neighbour.
	RecordDefragment(merged int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocate(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordFree(time.Duration, error)          {}
func (NoopMetricsCollector) RecordDefragment(int, time.Duration)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	AllocateCount      atomic.Int64
	AllocateErrors     atomic.Int64
	AllocatedUnits     atomic.Int64
	AllocateTotalNanos atomic.Int64
	FreeCount          atomic.Int64
	FreeErrors         atomic.Int64
	FreeTotalNanos     atomic.Int64
	DefragmentCount    atomic.Int64
	MergedRegions      atomic.Int64
}

// RecordAllocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocate(size int, duration time.Duration, err error) {
	b.AllocateCount.Add(1)
	b.AllocateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AllocateErrors.Add(1)
		return
	}
	b.AllocatedUnits.Add(int64(size))
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(duration time.Duration, err error) {
	b.FreeCount.Add(1)
	b.FreeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FreeErrors.Add(1)
	}
}

// RecordDefragment implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDefragment(merged int, _ time.Duration) {
	b.DefragmentCount.Add(1)
	b.MergedRegions.Add(int64(merged))
}

// CollectorStats is a point-in-time copy of a BasicMetricsCollector.
type CollectorStats struct {
	AllocateCount    int64
	AllocateErrors   int64
	AllocatedUnits   int64
	AllocateAvgNanos int64
	FreeCount        int64
	FreeErrors       int64
	FreeAvgNanos     int64
	DefragmentCount  int64
	MergedRegions    int64
}

// GetStats returns the current counters with averages computed.
func (b *BasicMetricsCollector) GetStats() CollectorStats {
	stats := CollectorStats{
		AllocateCount:   b.AllocateCount.Load(),
		AllocateErrors:  b.AllocateErrors.Load(),
		AllocatedUnits:  b.AllocatedUnits.Load(),
		FreeCount:       b.FreeCount.Load(),
		FreeErrors:      b.FreeErrors.Load(),
		DefragmentCount: b.DefragmentCount.Load(),
		MergedRegions:   b.MergedRegions.Load(),
	}
	if stats.AllocateCount > 0 {
		stats.AllocateAvgNanos = b.AllocateTotalNanos.Load() / stats.AllocateCount
	}
	if stats.FreeCount > 0 {
		stats.FreeAvgNanos = b.FreeTotalNanos.Load() / stats.FreeCount
	}
	return stats
}
