package vecmath

import (
	"fmt"
	"iter"
)

// Kind identifies the storage variant of a Vector.
type Kind uint8

const (
	// KindDense is a vector with one materialized cell per index.
	KindDense Kind = iota
	// KindSparse is a vector that materializes only its non-zero cells.
	KindSparse
	// KindNamed is a vector carrying a name.
	KindNamed
	// KindSingle is a vector holding a single entry.
	KindSingle
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindSparse:
		return "sparse"
	case KindNamed:
		return "named"
	case KindSingle:
		return "single"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// IsSparse reports whether k is KindSparse.
func (k Kind) IsSparse() bool { return k == KindSparse }

// IsNamed reports whether k is KindNamed.
func (k Kind) IsNamed() bool { return k == KindNamed }

// IsSingle reports whether k is KindSingle.
func (k Kind) IsSingle() bool { return k == KindSingle }

// Vector is the operation contract shared by every vector variant.
//
// Methods returning a Vector always return freshly allocated storage; the
// receiver is never modified. Set is the only in-place mutator.
//
// Binary operations require other.Dimension() == Dimension(). This is not
// checked.
type Vector interface {
	fmt.Stringer

	// Get returns the value at index i. i must lie in [0, Len()).
	Get(i int) float64
	// Set stores value at index i. i must lie in [0, Len()).
	Set(i int, value float64)
	// Len returns the number of materialized cells.
	Len() int
	// Dimension returns the logical size of the vector.
	Dimension() int

	// Apply returns a vector whose cell i is fn(i, v[i]).
	Apply(fn Func) Vector
	// ApplyWith returns a vector whose cell i is fn(i, v[i], other[i]).
	ApplyWith(other Vector, fn BiFunc) Vector

	Add(other Vector) Vector
	AddScalar(s float64) Vector
	Subtract(other Vector) Vector
	SubtractScalar(s float64) Vector
	// SubtractFromScalar returns s - v[i] for every cell.
	SubtractFromScalar(s float64) Vector
	Multiply(other Vector) Vector
	MultiplyScalar(s float64) Vector
	// Divide returns v[i] / other[i]. It fails with ErrDivideByZero if any
	// cell of other is zero.
	Divide(other Vector) (Vector, error)
	// DivideScalar returns v[i] / s. It fails with ErrDivideByZero if s is zero.
	DivideScalar(s float64) (Vector, error)
	// DivideFrom returns other[i] / v[i]. It fails with ErrDivideByZero if any
	// cell of the receiver is zero.
	DivideFrom(other Vector) (Vector, error)
	// DivideFromScalar returns s / v[i]. It fails with ErrDivideByZero if any
	// cell of the receiver is zero.
	DivideFromScalar(s float64) (Vector, error)

	Pow(x float64) Vector
	Abs() Vector
	Sqrt() Vector
	Log() Vector
	Exp() Vector

	Sum() float64
	Dot(other Vector) float64

	// Slice is SliceRange(0, end).
	Slice(end int) Vector
	// SliceRange copies the half-open range [start, end).
	SliceRange(start, end int) Vector
	// SliceByLength copies [start, start+length).
	SliceByLength(start, length int) Vector

	Max() float64
	Min() float64
	MaxIndex() int
	MinIndex() int

	// Raw returns the dense backing storage. For dense vectors this is the
	// live slice: writes through it are visible to the vector.
	Raw() []float64
	// Clone returns a copy that shares no storage with the receiver.
	Clone() Vector

	// Iterate yields every cell in index order, zeros included.
	Iterate() iter.Seq[Element]
	// IterateNonZero yields, in index order, every cell whose value is not
	// exactly zero. It must never skip a non-zero cell.
	IterateNonZero() iter.Seq[Element]

	Kind() Kind
	// Name returns the vector's name, or "" unless Kind() is KindNamed.
	Name() string

	// Equal reports whether other has the same Kind and equal cells.
	Equal(other Vector) bool
	Hash() uint64
}
