// Package lrucache provides a fast fixed-capacity in-memory cache with
// least-recently-used eviction.
//
// The cache keeps at most a configured number of key/value entries. Reads
// and writes of a key mark its entry most recently used; when an insertion
// would exceed the capacity, the entry that has gone unused the longest is
// evicted. Get, Put and all removal operations run in O(1) expected time.
//
// Entries are stored in a preallocated slot arena addressed by integer
// handles rather than per-entry heap nodes, so a cache at its working size
// performs no allocations on the hot path. Debug logging is the one
// exception: emitting an eviction record allocates.
//
// # Quick Start
//
//	cache, err := lrucache.New[string, int](128)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cache.Put("a", 1)
//	cache.Put("b", 2)
//
//	if v, ok := cache.Get("a"); ok {
//	    fmt.Println(v) // 1
//	}
//
// # Recency
//
// Get and Put are the operations that refresh an entry's recency. Peek,
// Contains, GetOldest, Keys and Values inspect the cache without touching
// the eviction order, which makes them safe for debugging and metrics
// collection in the middle of a workload:
//
//	v, ok := cache.Peek("a") // no recency update, no hit/miss accounting
//
// # Capacity
//
// The capacity is fixed at construction and must be positive; a cache that
// can hold nothing is rejected with ErrInvalidLimit rather than treated as
// an "always empty" cache. Resize changes the capacity later, evicting the
// least recently used entries if the cache has to shrink.
//
// # Eviction Callback
//
// WithOnEvict registers a callback that observes every entry leaving the
// cache, including explicit removals:
//
//	cache, _ := lrucache.New[string, *Conn](64,
//	    lrucache.WithOnEvict(func(key string, conn *Conn) {
//	        conn.Close()
//	    }),
//	)
//
// # Concurrency
//
// A Cache is not safe for concurrent use. Callers that share one across
// goroutines must serialize access, typically with a sync.Mutex around the
// cache operations.
package lrucache
