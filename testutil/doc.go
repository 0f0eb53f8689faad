// Package testutil provides testing utilities for the cache.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic random source, generators for uniform and
// Zipfian key workloads, and a naive reference LRU for differential
// testing.
//
// # Workload Generation
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.ZipfKeys(100000, 512, 1.5) // heavy-tailed traffic
//
// # Differential Testing (Ground Truth)
//
//	model := testutil.NewModel[string, int](limit)
//	// drive model and the real cache with the same operations,
//	// then compare Len, Keys and lookup results
package testutil
