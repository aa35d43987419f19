// Package vecmath defines a uniform float64 vector abstraction shared by dense,
// sparse, named and single-entry vectors.
//
// The Vector interface is the contract every variant honours: element access,
// arithmetic, reductions, slicing, element-wise transforms and two iteration
// strategies. The reference implementation lives in the dense package.
//
// # Quick Start
//
//	a := dense.New([]float64{1, 2, 3})
//	b := dense.Ones(3)
//
//	sum := a.Add(b)                 // [2, 3, 4]
//	dot := a.Dot(b)                 // 6
//	sq := a.Apply(func(_ int, v float64) float64 { return v * v })
//
//	q, err := a.Divide(b)
//	if errors.Is(err, vecmath.ErrDivideByZero) {
//	    // a zero divisor cell was found, no result was produced
//	}
//
// # Variants
//
// Each vector reports exactly one Kind. Binary operations switch on the Kind of
// the right-hand operand: a KindSparse operand is visited only through its
// non-zero iteration, so a dense-times-sparse product costs O(non-zeros) plus the
// copy of the receiver.
//
// # Length and Dimension
//
// Len is the number of materialized cells, Dimension the logical size of the
// modeled space. They are equal for dense vectors; a sparse vector may report a
// Dimension larger than its Len.
//
// # Safety
//
// Indices and dimensions are not validated. Out-of-range access panics like any
// Go slice access. Raw exposes the live backing storage of a dense vector.
// Vectors are not safe for concurrent mutation.
package vecmath
