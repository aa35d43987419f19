package dense

import (
	"math"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/internal/kernel"
)

// Sum returns the sum of all cells.
func (v *Vector) Sum() float64 {
	return kernel.Sum(v.values)
}

// Dot returns the dot product of v and other.
// A sparse operand contributes only at its non-zero cells.
func (v *Vector) Dot(other vecmath.Vector) float64 {
	switch other.Kind() {
	case vecmath.KindSparse:
		var dot float64
		for e := range other.IterateNonZero() {
			dot += v.values[e.Index] * e.Value
		}
		return dot
	case vecmath.KindDense:
		return kernel.Dot(v.values, other.Raw())
	default:
		var dot float64
		for i, x := range v.values {
			dot += x * other.Get(i)
		}
		return dot
	}
}

// Max returns the largest cell, or -math.MaxFloat64 for an empty vector.
func (v *Vector) Max() float64 {
	m := -math.MaxFloat64
	for _, x := range v.values {
		if x > m {
			m = x
		}
	}
	return m
}

// Min returns the smallest cell, or math.MaxFloat64 for an empty vector.
func (v *Vector) Min() float64 {
	m := math.MaxFloat64
	for _, x := range v.values {
		if x < m {
			m = x
		}
	}
	return m
}

// MaxIndex returns the first index holding the largest cell.
func (v *Vector) MaxIndex() int {
	m, idx := -math.MaxFloat64, 0
	for i, x := range v.values {
		if x > m {
			m, idx = x, i
		}
	}
	return idx
}

// MinIndex returns the first index holding the smallest cell.
func (v *Vector) MinIndex() int {
	m, idx := math.MaxFloat64, 0
	for i, x := range v.values {
		if x < m {
			m, idx = x, i
		}
	}
	return idx
}

// Slice returns a copy of [0, end).
func (v *Vector) Slice(end int) vecmath.Vector {
	return v.SliceRange(0, end)
}

// SliceRange returns a copy of [start, end).
func (v *Vector) SliceRange(start, end int) vecmath.Vector {
	return New(v.values[start:end])
}

// SliceByLength returns a copy of [start, start+length).
func (v *Vector) SliceByLength(start, length int) vecmath.Vector {
	return New(v.values[start : start+length])
}
