// Package distance provides distance and similarity measures on vecmath vectors.
//
// Every measure is composed from the vecmath.Vector contract, so a sparse
// right-hand operand is visited only through its non-zero cells.
//
// # Supported Metrics
//
//   - MetricL2: Squared Euclidean distance (default)
//   - MetricCosine: Cosine similarity
//   - MetricDot: Dot product (inner product)
//   - MetricManhattan: Sum of absolute differences
//
// # Usage
//
//	dist := distance.SquaredL2(a, b)
//	sim := distance.Cosine(a, b)
//	unit, ok := distance.Normalize(v)
package distance
