package lru

import "sync/atomic"

// stats holds cache counters. They are atomic so a metrics scraper can read
// them while the owning goroutine keeps using the cache.
type stats struct {
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

func (s *stats) hit() {
	s.hits.Add(1)
}

func (s *stats) miss() {
	s.misses.Add(1)
}

func (s *stats) evict() {
	s.evictions.Add(1)
}

func (s *stats) snapshot() Snapshot {
	return Snapshot{
		Hits:      s.hits.Load(),
		Misses:    s.misses.Load(),
		Evictions: s.evictions.Load(),
	}
}

// Snapshot is a point-in-time copy of cache statistics.
type Snapshot struct {
	Hits      int64
	Misses    int64
	Evictions int64
}

// HitRate returns the cache hit rate as a value between 0 and 1.
// Returns 0 if there have been no accesses.
func (s Snapshot) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
