package memo

import "sync/atomic"

// Stats holds cache statistics using atomic counters for lock-free updates.
type Stats struct {
	hits     atomic.Int64
	misses   atomic.Int64
	inits    atomic.Int64
	failures atomic.Int64
}

func (s *Stats) hit()         { s.hits.Add(1) }
func (s *Stats) miss()        { s.misses.Add(1) }
func (s *Stats) initialized() { s.inits.Add(1) }
func (s *Stats) failure()     { s.failures.Add(1) }

// Snapshot is a point-in-time copy of cache statistics.
//
// A hit is a lookup served by an existing entry, including one still being
// initialized by another caller. A miss is a lookup that found no entry.
type Snapshot struct {
	Hits            int64
	Misses          int64
	Initializations int64
	Failures        int64
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

func (s *Stats) snapshot() Snapshot {
	return Snapshot{
		Hits:            s.hits.Load(),
		Misses:          s.misses.Load(),
		Initializations: s.inits.Load(),
		Failures:        s.failures.Load(),
	}
}
