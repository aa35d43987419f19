package dense

import (
	"iter"

	"github.com/hupe1980/vecmath"
)

// Iterate yields every cell in index order, zeros included.
func (v *Vector) Iterate() iter.Seq[vecmath.Element] {
	return func(yield func(vecmath.Element) bool) {
		for i, x := range v.values {
			if !yield(vecmath.Element{Index: i, Value: x}) {
				return
			}
		}
	}
}

// IterateNonZero yields the cells whose value is not exactly zero, in index
// order. Negative zero counts as zero.
func (v *Vector) IterateNonZero() iter.Seq[vecmath.Element] {
	return func(yield func(vecmath.Element) bool) {
		for i, x := range v.values {
			if x == 0 {
				continue
			}
			if !yield(vecmath.Element{Index: i, Value: x}) {
				return
			}
		}
	}
}
