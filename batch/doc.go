// Package batch runs vector operations over many independent vectors
// concurrently.
//
// Each input vector is read by at most one goroutine at a time, and the
// operations never mutate their inputs, so the single-threaded contract of
// the vectors themselves is preserved. Unlike the core operations, batch
// functions validate dimensions and report mismatches as
// *vecmath.ErrDimensionMismatch.
//
// # Usage
//
//	scores, err := batch.Dot(ctx, query, docs, batch.WithConcurrency(8))
//	centroid, err := batch.Centroid(ctx, members)
//	unit, err := batch.Map(ctx, vs, func(v vecmath.Vector) (vecmath.Vector, error) {
//	    return v.DivideScalar(distance.Norm(v))
//	})
package batch
