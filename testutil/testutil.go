package testutil

import (
	"math"
	"math/rand"
	"strconv"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Key returns a random key drawn uniformly from a space of n keys
// ("k0" .. "k<n-1>").
func (r *RNG) Key(n int) string {
	return "k" + strconv.Itoa(r.Intn(n))
}

// UniformKeys generates a workload of count keys drawn uniformly from a
// space of n keys.
func (r *RNG) UniformKeys(count, n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, count)
	for i := range keys {
		keys[i] = "k" + strconv.Itoa(r.rand.Intn(n))
	}
	return keys
}

// ZipfKeys generates a workload of count keys drawn from a space of n keys
// with Zipfian popularity: P(k) ∝ 1/k^s. s=1.0 gives standard Zipf,
// s=1.5 a heavy tail where a few keys receive most of the traffic, which
// is how real-world cache workloads are distributed (power law).
func (r *RNG) ZipfKeys(count, n int, s float64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n <= 1 {
		keys := make([]string, count)
		for i := range keys {
			keys[i] = "k0"
		}
		return keys
	}

	// Normalization constant (harmonic number with exponent s), computed
	// once for the whole workload.
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	keys := make([]string, count)
	for i := range keys {
		// Inverse transform sampling.
		u := r.rand.Float64() * hns
		var cumulative float64
		k := n - 1
		for j := 1; j <= n; j++ {
			cumulative += 1.0 / math.Pow(float64(j), s)
			if u <= cumulative {
				k = j - 1
				break
			}
		}
		keys[i] = "k" + strconv.Itoa(k)
	}
	return keys
}

// entry is one key/value pair tracked by a Model.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Model is a naive reference LRU used as ground truth when cross-checking
// an optimized implementation. Entries live in a plain slice ordered from
// most to least recently used, so every operation is O(n) and trivially
// auditable.
//
// Model is not safe for concurrent use.
type Model[K comparable, V any] struct {
	limit   int
	entries []entry[K, V]
}

// NewModel creates a reference LRU holding at most limit entries.
// limit must be positive.
func NewModel[K comparable, V any](limit int) *Model[K, V] {
	if limit < 1 {
		panic("testutil: model limit must be positive")
	}
	return &Model[K, V]{limit: limit}
}

// Get returns the value stored for key and moves the entry to the front.
func (m *Model[K, V]) Get(key K) (V, bool) {
	for i, e := range m.entries {
		if e.key == key {
			m.promote(i)
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Put stores value under key, replacing and promoting a resident entry,
// or inserting at the front and dropping the last entry when full.
func (m *Model[K, V]) Put(key K, value V) {
	for i := range m.entries {
		if m.entries[i].key == key {
			m.entries[i].value = value
			m.promote(i)
			return
		}
	}

	if len(m.entries) == m.limit {
		m.entries = m.entries[:len(m.entries)-1]
	}
	m.entries = append([]entry[K, V]{{key: key, value: value}}, m.entries...)
}

// Peek returns the value stored for key without reordering.
func (m *Model[K, V]) Peek(key K) (V, bool) {
	for _, e := range m.entries {
		if e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key is resident, without reordering.
func (m *Model[K, V]) Contains(key K) bool {
	_, ok := m.Peek(key)
	return ok
}

// Remove deletes key, reporting whether it was resident.
func (m *Model[K, V]) Remove(key K) bool {
	for i := range m.entries {
		if m.entries[i].key == key {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveOldest removes and returns the last (least recently used) entry.
func (m *Model[K, V]) RemoveOldest() (K, V, bool) {
	if len(m.entries) == 0 {
		var key K
		var value V
		return key, value, false
	}

	last := m.entries[len(m.entries)-1]
	m.entries = m.entries[:len(m.entries)-1]
	return last.key, last.value, true
}

// Len returns the number of resident entries.
func (m *Model[K, V]) Len() int {
	return len(m.entries)
}

// Keys returns the resident keys ordered from most to least recently used.
func (m *Model[K, V]) Keys() []K {
	keys := make([]K, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// promote moves the entry at index i to the front, keeping the relative
// order of everything else.
func (m *Model[K, V]) promote(i int) {
	e := m.entries[i]
	copy(m.entries[1:i+1], m.entries[:i])
	m.entries[0] = e
}
