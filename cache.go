package lrucache

import (
	"fmt"

	"github.com/hupe1980/lrucache/internal/recency"
)

// Cache is a fixed-capacity key-value cache with least-recently-used
// eviction. Every Get and every Put of a resident key marks the entry most
// recently used; when an insertion would exceed the capacity, the entry
// that has gone unused the longest is dropped to make room.
//
// All operations run in O(1) expected time. The zero value is not valid;
// create caches with New.
//
// Cache is not safe for concurrent use. Callers that share a Cache across
// goroutines must provide their own synchronization.
type Cache[K comparable, V any] struct {
	limit int
	list  *recency.List[K, V]
	index map[K]recency.Handle

	onEvict func(key K, value V)
	logger  *Logger
	stats   Stats
}

// New creates a Cache that holds at most limit entries. limit must be
// positive; ErrInvalidLimit is returned otherwise. There is no
// zero-capacity mode: a limit of 0 is rejected, never treated as an
// always-empty cache.
//
// Storage for limit entries is reserved up front, so a cache performs no
// further allocations once it has been full, however hard it churns. Debug
// logging is the one exception: emitting an eviction record allocates.
func New[K comparable, V any](limit int, optFns ...Option[K, V]) (*Cache[K, V], error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}

	o := applyOptions(optFns)

	return &Cache[K, V]{
		limit:   limit,
		list:    recency.New[K, V](limit),
		index:   make(map[K]recency.Handle, limit),
		onEvict: o.onEvict,
		logger:  o.logger,
	}, nil
}

// Get returns the value stored for key and marks the entry most recently
// used. It reports false when key is not resident, either because it was
// never inserted or because it has been evicted since.
//
// Get is the only read that counts toward the hit/miss statistics; use
// Peek for a lookup with no side effects at all.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if h, ok := c.index[key]; ok {
		c.stats.Hits++
		c.list.MoveToFront(h)
		return c.list.Value(h), true
	}

	c.stats.Misses++
	var zero V
	return zero, false
}

// Put stores value under key. If key is already resident its value is
// replaced in place and the entry becomes most recently used; the cache
// never holds two entries for one key. Otherwise a new entry is inserted,
// evicting the least recently used entry first when the cache is full.
func (c *Cache[K, V]) Put(key K, value V) {
	if h, ok := c.index[key]; ok {
		c.list.MoveToFront(h)
		c.list.SetValue(h, value)
		c.stats.Updates++
		return
	}

	if c.list.Len() == c.limit {
		c.evict()
	}

	c.index[key] = c.list.PushFront(key, value)
	c.stats.Insertions++
}

// Contains reports whether key is resident, without marking it used.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Peek returns the value stored for key without marking the entry used and
// without counting a hit or a miss. It reports false when key is not
// resident.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	if h, ok := c.index[key]; ok {
		return c.list.Value(h), true
	}

	var zero V
	return zero, false
}

// Remove deletes key from the cache, reporting whether it was resident.
// The eviction callback, if any, observes the removed entry.
func (c *Cache[K, V]) Remove(key K) bool {
	h, ok := c.index[key]
	if !ok {
		return false
	}

	c.stats.Removals++
	c.removeEntry(h)
	return true
}

// RemoveOldest removes and returns the least recently used entry. It
// reports false on an empty cache.
func (c *Cache[K, V]) RemoveOldest() (K, V, bool) {
	h, ok := c.list.Back()
	if !ok {
		var key K
		var value V
		return key, value, false
	}

	c.stats.Removals++
	key, value := c.removeEntry(h)
	return key, value, true
}

// GetOldest returns the least recently used entry without removing it and
// without marking it used. It reports false on an empty cache.
func (c *Cache[K, V]) GetOldest() (K, V, bool) {
	h, ok := c.list.Back()
	if !ok {
		var key K
		var value V
		return key, value, false
	}

	return c.list.Key(h), c.list.Value(h), true
}

// Keys returns the resident keys ordered from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.list.Len())
	for h, ok := c.list.Front(); ok; h, ok = c.list.Next(h) {
		keys = append(keys, c.list.Key(h))
	}
	return keys
}

// Values returns the resident values ordered from most to least recently
// used.
func (c *Cache[K, V]) Values() []V {
	values := make([]V, 0, c.list.Len())
	for h, ok := c.list.Front(); ok; h, ok = c.list.Next(h) {
		values = append(values, c.list.Value(h))
	}
	return values
}

// Len returns the number of resident entries. It never exceeds Cap.
func (c *Cache[K, V]) Len() int {
	return c.list.Len()
}

// Cap returns the capacity the cache was created or last resized with.
func (c *Cache[K, V]) Cap() int {
	return c.limit
}

// Purge removes every entry, invoking the eviction callback per entry in
// eviction order, least recently used first. Capacity, statistics and the
// configured options are retained.
func (c *Cache[K, V]) Purge() {
	removed := c.list.Len()
	for {
		h, ok := c.list.Back()
		if !ok {
			break
		}
		c.stats.Removals++
		c.removeEntry(h)
	}
	c.logger.LogPurge(removed)
}

// Resize changes the capacity to limit, evicting least recently used
// entries when the cache currently holds more than the new capacity allows.
// It returns the number of entries evicted. limit must be positive;
// ErrInvalidLimit is returned otherwise and the cache is left unchanged.
func (c *Cache[K, V]) Resize(limit int) (int, error) {
	if limit < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}

	evicted := 0
	for c.list.Len() > limit {
		c.evict()
		evicted++
	}
	c.limit = limit
	c.logger.LogResize(limit, evicted)
	return evicted, nil
}

// evict drops the least recently used entry to make room.
func (c *Cache[K, V]) evict() {
	h, ok := c.list.Back()
	if !ok {
		return
	}

	c.stats.Evictions++
	key, _ := c.removeEntry(h)
	if c.logger.DebugEnabled() {
		c.logger.LogEvict(key, c.list.Len())
	}
}

// removeEntry drops the entry at h from both the recency list and the key
// index, then notifies the eviction callback. The two structures change
// together so that the callback always observes a consistent cache.
func (c *Cache[K, V]) removeEntry(h recency.Handle) (K, V) {
	key, value := c.list.Remove(h)
	delete(c.index, key)
	if c.onEvict != nil {
		c.onEvict(key, value)
	}
	return key, value
}
