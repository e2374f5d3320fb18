// Package testutil provides testing utilities for gridest.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and builders for synthetic
// summaries and spatial grids.
//
// # Synthetic Summaries
//
//	rng := testutil.NewRNG(seed)
//	spec := testutil.DefaultGridSpec()
//	spec.Occupancy = 0.8
//	s := rng.RandomSummary(100, 500, spec)
package testutil
