// Package testutil provides testing utilities for geocluster.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random and clustered point sets.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, bound)          // uniform over a bound
//	pts = rng.ClusteredPoints(1000, centers, 0.01) // scattered around centers
package testutil
