package ledger

import "sync/atomic"

// Stats holds in-process PageCache statistics using atomic counters.
// It is owned by the caller and attached with WithStats; the authoritative
// per-URL access counts live in the store. A nil *Stats reads as all zeros.
type Stats struct {
	hits    atomic.Int64
	misses  atomic.Int64
	fetches atomic.Int64
}

// Hits returns the number of pages served from the cache.
func (s *Stats) Hits() int64 {
	if s == nil {
		return 0
	}
	return s.hits.Load()
}

// Misses returns the number of lookups that found no cached page.
func (s *Stats) Misses() int64 {
	if s == nil {
		return 0
	}
	return s.misses.Load()
}

// Fetches returns the number of successful fetches written to the cache.
// With single-flight enabled this can be lower than Misses.
func (s *Stats) Fetches() int64 {
	if s == nil {
		return 0
	}
	return s.fetches.Load()
}

// HitRate returns the cache hit rate as a value between 0 and 1.
// Returns 0 if there have been no accesses.
func (s *Stats) HitRate() float64 {
	return s.Snapshot().HitRate()
}

func (s *Stats) hit() {
	if s != nil {
		s.hits.Add(1)
	}
}

func (s *Stats) miss() {
	if s != nil {
		s.misses.Add(1)
	}
}

func (s *Stats) fetch() {
	if s != nil {
		s.fetches.Add(1)
	}
}

// Snapshot is a point-in-time copy of cache statistics.
type Snapshot struct {
	Hits    int64
	Misses  int64
	Fetches int64
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

// Snapshot returns a point-in-time copy of the stats.
func (s *Stats) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	return Snapshot{
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
		Fetches: s.fetches.Load(),
	}
}
