package vecmath

import "strconv"

// Element is an (index, value) pair produced by vector iteration.
//
// Elements are passed by value, so an Element kept by the caller is not
// changed by further advances of the iterator that produced it.
type Element struct {
	Index int
	Value float64
}

// String renders the element as "index -> value".
func (e Element) String() string {
	return strconv.Itoa(e.Index) + " -> " + strconv.FormatFloat(e.Value, 'g', -1, 64)
}
