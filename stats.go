package lrucache

// Stats is a point-in-time snapshot of cache activity counters.
// Counters accumulate from construction and are never reset, not even by
// Purge or Resize.
//
// Only Get participates in hit/miss accounting; Peek and Contains never
// touch the counters.
type Stats struct {
	// Hits counts Get calls that found their key resident.
	Hits uint64
	// Misses counts Get calls that did not.
	Misses uint64
	// Insertions counts Put calls that created a new entry.
	Insertions uint64
	// Updates counts Put calls that replaced the value of a resident key.
	Updates uint64
	// Evictions counts entries dropped to make room: capacity evictions
	// during Put and entries shed by a shrinking Resize.
	Evictions uint64
	// Removals counts entries removed on request: Remove, RemoveOldest
	// and Purge.
	Removals uint64
}

// HitRate returns the fraction of Get calls served from the cache,
// or 0 when no lookups have happened yet.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns a snapshot of the cache's activity counters.
func (c *Cache[K, V]) Stats() Stats {
	return c.stats
}
