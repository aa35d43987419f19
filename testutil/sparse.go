package testutil

import (
	"fmt"
	"iter"
	"maps"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/dense"
)

var _ vecmath.Vector = (*Sparse)(nil)

// Sparse is a minimal sparse vector used to exercise the sparse dispatch of
// other variants. Non-zero indices are kept in a roaring bitmap so that
// IterateNonZero visits them in index order.
//
// Only storage, access and iteration are native; every other operation
// materializes a dense copy first.
type Sparse struct {
	dim    int
	index  *roaring.Bitmap
	values map[uint32]float64
}

// NewSparse returns an all-zero sparse vector of the given dimension.
func NewSparse(dim int) *Sparse {
	return &Sparse{
		dim:    dim,
		index:  roaring.New(),
		values: make(map[uint32]float64),
	}
}

// SparseFrom returns a sparse vector holding the non-zero cells of values.
func SparseFrom(values []float64) *Sparse {
	s := NewSparse(len(values))
	for i, v := range values {
		s.Set(i, v)
	}
	return s
}

// Get returns the value at index i, zero if i is not materialized.
func (s *Sparse) Get(i int) float64 {
	return s.values[uint32(i)]
}

// Set stores value at index i. Storing zero drops the cell.
func (s *Sparse) Set(i int, value float64) {
	key := uint32(i)
	if value == 0 {
		s.index.Remove(key)
		delete(s.values, key)
		return
	}
	s.index.Add(key)
	s.values[key] = value
}

// Len returns the number of materialized (non-zero) cells.
func (s *Sparse) Len() int {
	return int(s.index.GetCardinality())
}

// Dimension returns the logical size.
func (s *Sparse) Dimension() int {
	return s.dim
}

// IterateNonZero yields the materialized cells in index order.
func (s *Sparse) IterateNonZero() iter.Seq[vecmath.Element] {
	return func(yield func(vecmath.Element) bool) {
		it := s.index.Iterator()
		for it.HasNext() {
			key := it.Next()
			if !yield(vecmath.Element{Index: int(key), Value: s.values[key]}) {
				return
			}
		}
	}
}

// Iterate yields every index in [0, Dimension()).
func (s *Sparse) Iterate() iter.Seq[vecmath.Element] {
	return func(yield func(vecmath.Element) bool) {
		for i := range s.dim {
			if !yield(vecmath.Element{Index: i, Value: s.Get(i)}) {
				return
			}
		}
	}
}

// Kind returns vecmath.KindSparse.
func (s *Sparse) Kind() vecmath.Kind { return vecmath.KindSparse }

// Name returns "".
func (s *Sparse) Name() string { return "" }

// Raw returns a freshly materialized dense copy of length Dimension().
func (s *Sparse) Raw() []float64 {
	out := make([]float64, s.dim)
	for key, v := range s.values {
		out[key] = v
	}
	return out
}

// Clone returns a deep copy.
func (s *Sparse) Clone() vecmath.Vector {
	return &Sparse{
		dim:    s.dim,
		index:  s.index.Clone(),
		values: maps.Clone(s.values),
	}
}

// Equal reports whether other is sparse with the same dimension and cells.
func (s *Sparse) Equal(other vecmath.Vector) bool {
	o, ok := other.(*Sparse)
	if !ok || o.dim != s.dim {
		return false
	}
	return s.index.Equals(o.index) && maps.Equal(s.values, o.values)
}

// Hash hashes the materialized dense form.
func (s *Sparse) Hash() uint64 { return s.dense().Hash() }

func (s *Sparse) String() string {
	return fmt.Sprintf("sparse(dim=%d, nnz=%d)", s.dim, s.Len())
}

func (s *Sparse) dense() *dense.Vector { return dense.FromVector(s) }

func (s *Sparse) Apply(fn vecmath.Func) vecmath.Vector { return s.dense().Apply(fn) }
func (s *Sparse) ApplyWith(o vecmath.Vector, fn vecmath.BiFunc) vecmath.Vector {
	return s.dense().ApplyWith(o, fn)
}
func (s *Sparse) Add(o vecmath.Vector) vecmath.Vector         { return s.dense().Add(o) }
func (s *Sparse) AddScalar(x float64) vecmath.Vector          { return s.dense().AddScalar(x) }
func (s *Sparse) Subtract(o vecmath.Vector) vecmath.Vector    { return s.dense().Subtract(o) }
func (s *Sparse) SubtractScalar(x float64) vecmath.Vector     { return s.dense().SubtractScalar(x) }
func (s *Sparse) SubtractFromScalar(x float64) vecmath.Vector { return s.dense().SubtractFromScalar(x) }
func (s *Sparse) Multiply(o vecmath.Vector) vecmath.Vector    { return s.dense().Multiply(o) }
func (s *Sparse) MultiplyScalar(x float64) vecmath.Vector     { return s.dense().MultiplyScalar(x) }
func (s *Sparse) Divide(o vecmath.Vector) (vecmath.Vector, error) {
	return s.dense().Divide(o)
}
func (s *Sparse) DivideScalar(x float64) (vecmath.Vector, error) { return s.dense().DivideScalar(x) }
func (s *Sparse) DivideFrom(o vecmath.Vector) (vecmath.Vector, error) {
	return s.dense().DivideFrom(o)
}
func (s *Sparse) DivideFromScalar(x float64) (vecmath.Vector, error) {
	return s.dense().DivideFromScalar(x)
}
func (s *Sparse) Pow(x float64) vecmath.Vector { return s.dense().Pow(x) }
func (s *Sparse) Abs() vecmath.Vector          { return s.dense().Abs() }
func (s *Sparse) Sqrt() vecmath.Vector         { return s.dense().Sqrt() }
func (s *Sparse) Log() vecmath.Vector          { return s.dense().Log() }
func (s *Sparse) Exp() vecmath.Vector          { return s.dense().Exp() }

// Sum adds the materialized cells.
func (s *Sparse) Sum() float64 {
	var sum float64
	for e := range s.IterateNonZero() {
		sum += e.Value
	}
	return sum
}

func (s *Sparse) Dot(o vecmath.Vector) float64 { return s.dense().Dot(o) }

func (s *Sparse) Slice(end int) vecmath.Vector             { return s.dense().Slice(end) }
func (s *Sparse) SliceRange(start, end int) vecmath.Vector { return s.dense().SliceRange(start, end) }
func (s *Sparse) SliceByLength(start, length int) vecmath.Vector {
	return s.dense().SliceByLength(start, length)
}
func (s *Sparse) Max() float64  { return s.dense().Max() }
func (s *Sparse) Min() float64  { return s.dense().Min() }
func (s *Sparse) MaxIndex() int { return s.dense().MaxIndex() }
func (s *Sparse) MinIndex() int { return s.dense().MinIndex() }
