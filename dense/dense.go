package dense

import (
	"math"

	"github.com/hupe1980/vecmath"
)

var _ vecmath.Vector = (*Vector)(nil)

// Vector is a dense float64 vector. Len and Dimension are always equal.
//
// The zero value is an empty vector.
type Vector struct {
	values []float64
}

// New returns a vector holding a copy of values.
func New(values []float64) *Vector {
	return wrap(clone(values))
}

// Zeros returns a vector of n zeros.
func Zeros(n int) *Vector {
	return wrap(make([]float64, n))
}

// Ones returns a vector of n ones.
func Ones(n int) *Vector {
	return Full(n, 1)
}

// Full returns a vector of length n with every cell set to value.
func Full(n int, value float64) *Vector {
	values := make([]float64, n)
	for i := range values {
		values[i] = value
	}
	return wrap(values)
}

// Append returns a vector of len(values)+1 holding a copy of values followed
// by last.
func Append(values []float64, last float64) *Vector {
	out := make([]float64, len(values)+1)
	copy(out, values)
	out[len(values)] = last
	return wrap(out)
}

// Prepend returns a vector of len(values)+1 holding first followed by a copy
// of values.
func Prepend(first float64, values []float64) *Vector {
	out := make([]float64, len(values)+1)
	out[0] = first
	copy(out[1:], values)
	return wrap(out)
}

// FromVector returns a dense copy of v with length v.Dimension().
//
// A sparse v is materialized through its non-zero iteration; any other
// variant is copied from its Raw storage.
func FromVector(v vecmath.Vector) *Vector {
	out := make([]float64, v.Dimension())
	if v.Kind() == vecmath.KindSparse {
		for e := range v.IterateNonZero() {
			out[e.Index] = e.Value
		}
	} else {
		copy(out, v.Raw())
	}
	return wrap(out)
}

// FromUpTo returns the progression from, from+step, from+2*step, ...
// with floor((to-from)/step + 1) elements, so to is included when it lies on
// the grid.
func FromUpTo(from, to, step float64) *Vector {
	n := int(math.Floor((to-from)/step + 1))
	values := make([]float64, n)
	for i := range values {
		values[i] = from + float64(i)*step
	}
	return wrap(values)
}

// wrap takes ownership of values.
func wrap(values []float64) *Vector {
	return &Vector{values: values}
}

func clone(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	return out
}

// Get returns the value at index i.
func (v *Vector) Get(i int) float64 {
	return v.values[i]
}

// Set stores value at index i.
func (v *Vector) Set(i int, value float64) {
	v.values[i] = value
}

// Len returns the number of cells.
func (v *Vector) Len() int {
	return len(v.values)
}

// Dimension returns Len.
func (v *Vector) Dimension() int {
	return len(v.values)
}

// Raw returns the backing storage of v, not a copy.
// Mutation through the returned slice is visible to v.
func (v *Vector) Raw() []float64 {
	return v.values
}

// Clone returns a copy of v that shares no storage with it.
func (v *Vector) Clone() vecmath.Vector {
	return New(v.values)
}

// Kind returns vecmath.KindDense.
func (v *Vector) Kind() vecmath.Kind {
	return vecmath.KindDense
}

// Name returns "".
func (v *Vector) Name() string {
	return ""
}
