// Package dense provides the reference dense implementation of vecmath.Vector.
//
// A dense vector stores one float64 per index in a contiguous slice it owns
// exclusively. Constructors always copy their input.
//
// # Operand Dispatch
//
// Binary operations (Add, Subtract, Multiply, Dot) switch on the Kind of the
// right-hand operand:
//
//   - vecmath.KindSparse: only the operand's non-zero cells are visited
//   - vecmath.KindDense: the raw slices are combined by the internal kernels
//   - anything else: every index is read through Get
//
// # Usage
//
//	v := dense.New([]float64{3, 5, 5, 1})
//	v.MaxIndex()                     // 1
//	v.Pow(2)                         // [9, 25, 25, 1]
//
//	for e := range v.IterateNonZero() {
//	    fmt.Println(e.Index, e.Value)
//	}
package dense
