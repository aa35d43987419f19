// Package testutil provides testing utilities for vecmath.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random float64 data and test doubles
// for the vector variants that live outside this module.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	vals := make([]float64, 128)
//	rng.FillUniform(vals)          // uniform [0, 1)
//	rng.FillGaussian(vals)         // standard normal
//	sp := rng.SparseValues(128, 0.1) // ~10% non-zero
//
// # Variant Doubles
//
//	s := testutil.SparseFrom([]float64{0, 2, 0, 0, 7})  // vecmath.KindSparse
//	n := testutil.NewNamed("weights", dense.Ones(3))   // vecmath.KindNamed
package testutil
