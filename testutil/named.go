package testutil

import (
	"github.com/hupe1980/vecmath"
)

var _ vecmath.Vector = (*Named)(nil)

// Named attaches a name to another vector. It reports vecmath.KindNamed and
// delegates every operation to the wrapped vector.
type Named struct {
	vecmath.Vector
	name string
}

// NewNamed wraps v under name.
func NewNamed(name string, v vecmath.Vector) *Named {
	return &Named{Vector: v, name: name}
}

// Kind returns vecmath.KindNamed.
func (n *Named) Kind() vecmath.Kind { return vecmath.KindNamed }

// Name returns the name given to NewNamed.
func (n *Named) Name() string { return n.name }

// Unwrap returns the wrapped vector.
func (n *Named) Unwrap() vecmath.Vector { return n.Vector }

// Clone returns a named deep copy.
func (n *Named) Clone() vecmath.Vector {
	return &Named{Vector: n.Vector.Clone(), name: n.name}
}

// Equal reports whether other is named alike and wraps an equal vector.
func (n *Named) Equal(other vecmath.Vector) bool {
	o, ok := other.(*Named)
	return ok && o.name == n.name && n.Vector.Equal(o.Vector)
}

func (n *Named) String() string {
	return n.name + ": " + n.Vector.String()
}
