package dense

import (
	"math"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/internal/kernel"
)

// Apply returns a vector whose cell i is fn(i, v[i]).
func (v *Vector) Apply(fn vecmath.Func) vecmath.Vector {
	out := make([]float64, len(v.values))
	for i, x := range v.values {
		out[i] = fn(i, x)
	}
	return wrap(out)
}

// ApplyWith returns a vector whose cell i is fn(i, v[i], other[i]).
func (v *Vector) ApplyWith(other vecmath.Vector, fn vecmath.BiFunc) vecmath.Vector {
	out := make([]float64, len(v.values))
	for i, x := range v.values {
		out[i] = fn(i, x, other.Get(i))
	}
	return wrap(out)
}

// binary combines v with other, switching on other's Kind.
//
// For a sparse operand the result starts from a copy of v when fromReceiver
// is set and from zeros otherwise, and op is applied at the operand's
// non-zero cells only.
func (v *Vector) binary(other vecmath.Vector, fromReceiver bool,
	op func(a, b float64) float64, k func(dst, a, b []float64)) *Vector {
	switch other.Kind() {
	case vecmath.KindSparse:
		var out []float64
		if fromReceiver {
			out = clone(v.values)
		} else {
			out = make([]float64, len(v.values))
		}
		for e := range other.IterateNonZero() {
			out[e.Index] = op(v.values[e.Index], e.Value)
		}
		return wrap(out)
	case vecmath.KindDense:
		out := make([]float64, len(v.values))
		k(out, v.values, other.Raw())
		return wrap(out)
	default:
		out := make([]float64, len(v.values))
		for i, x := range v.values {
			out[i] = op(x, other.Get(i))
		}
		return wrap(out)
	}
}

func add(a, b float64) float64 { return a + b }
func sub(a, b float64) float64 { return a - b }
func mul(a, b float64) float64 { return a * b }

// Add returns v + other.
func (v *Vector) Add(other vecmath.Vector) vecmath.Vector {
	return v.binary(other, true, add, kernel.Add)
}

// AddScalar returns v + s.
func (v *Vector) AddScalar(s float64) vecmath.Vector {
	out := make([]float64, len(v.values))
	kernel.AddScalar(out, v.values, s)
	return wrap(out)
}

// Subtract returns v - other.
func (v *Vector) Subtract(other vecmath.Vector) vecmath.Vector {
	return v.binary(other, true, sub, kernel.Sub)
}

// SubtractScalar returns v - s.
func (v *Vector) SubtractScalar(s float64) vecmath.Vector {
	out := make([]float64, len(v.values))
	kernel.SubScalar(out, v.values, s)
	return wrap(out)
}

// SubtractFromScalar returns s - v.
func (v *Vector) SubtractFromScalar(s float64) vecmath.Vector {
	out := make([]float64, len(v.values))
	kernel.ScalarSub(out, s, v.values)
	return wrap(out)
}

// Multiply returns the element-wise product of v and other.
// A sparse operand contributes only at its non-zero cells; every other cell
// of the result is zero.
func (v *Vector) Multiply(other vecmath.Vector) vecmath.Vector {
	return v.binary(other, false, mul, kernel.Mul)
}

// MultiplyScalar returns v * s.
func (v *Vector) MultiplyScalar(s float64) vecmath.Vector {
	out := make([]float64, len(v.values))
	kernel.MulScalar(out, v.values, s)
	return wrap(out)
}

// DivideScalar returns v / s, or ErrDivideByZero if s is zero.
func (v *Vector) DivideScalar(s float64) (vecmath.Vector, error) {
	if s == 0 {
		return nil, vecmath.ErrDivideByZero
	}
	out := make([]float64, len(v.values))
	kernel.DivScalar(out, v.values, s)
	return wrap(out), nil
}

// Divide returns v / other element-wise.
// Divisors are checked before the result is allocated; the first zero cell of
// other aborts the operation.
func (v *Vector) Divide(other vecmath.Vector) (vecmath.Vector, error) {
	if i := firstZero(other, len(v.values)); i >= 0 {
		return nil, vecmath.DivideByZeroAt(i)
	}
	out := make([]float64, len(v.values))
	if other.Kind() == vecmath.KindDense {
		kernel.Div(out, v.values, other.Raw())
	} else {
		for i, x := range v.values {
			out[i] = x / other.Get(i)
		}
	}
	return wrap(out), nil
}

// DivideFrom returns other / v element-wise.
// The first zero cell of v aborts the operation.
func (v *Vector) DivideFrom(other vecmath.Vector) (vecmath.Vector, error) {
	if i := v.firstZero(); i >= 0 {
		return nil, vecmath.DivideByZeroAt(i)
	}
	out := make([]float64, len(v.values))
	if other.Kind() == vecmath.KindDense {
		kernel.Div(out, other.Raw(), v.values)
	} else {
		for i, x := range v.values {
			out[i] = other.Get(i) / x
		}
	}
	return wrap(out), nil
}

// DivideFromScalar returns s / v element-wise.
// The first zero cell of v aborts the operation.
func (v *Vector) DivideFromScalar(s float64) (vecmath.Vector, error) {
	if i := v.firstZero(); i >= 0 {
		return nil, vecmath.DivideByZeroAt(i)
	}
	out := make([]float64, len(v.values))
	for i, x := range v.values {
		out[i] = s / x
	}
	return wrap(out), nil
}

func (v *Vector) firstZero() int {
	for i, x := range v.values {
		if x == 0 {
			return i
		}
	}
	return -1
}

// firstZero returns the first index in [0, n) where other is zero, or -1.
func firstZero(other vecmath.Vector, n int) int {
	if other.Kind() == vecmath.KindDense {
		for i, x := range other.Raw()[:n] {
			if x == 0 {
				return i
			}
		}
		return -1
	}
	for i := 0; i < n; i++ {
		if other.Get(i) == 0 {
			return i
		}
	}
	return -1
}

// Pow raises every cell to x. x == 2 is computed as a self-multiply.
func (v *Vector) Pow(x float64) vecmath.Vector {
	out := make([]float64, len(v.values))
	if x == 2 {
		kernel.Mul(out, v.values, v.values)
		return wrap(out)
	}
	for i, d := range v.values {
		out[i] = math.Pow(d, x)
	}
	return wrap(out)
}

// Abs returns |v|.
func (v *Vector) Abs() vecmath.Vector {
	out := make([]float64, len(v.values))
	kernel.Abs(out, v.values)
	return wrap(out)
}

// Sqrt returns the element-wise square root of v.
func (v *Vector) Sqrt() vecmath.Vector {
	out := make([]float64, len(v.values))
	kernel.Sqrt(out, v.values)
	return wrap(out)
}

// Log returns the element-wise natural logarithm of v.
func (v *Vector) Log() vecmath.Vector {
	return v.mapValues(math.Log)
}

// Exp returns e raised to every cell of v.
func (v *Vector) Exp() vecmath.Vector {
	return v.mapValues(math.Exp)
}

func (v *Vector) mapValues(f func(float64) float64) *Vector {
	out := make([]float64, len(v.values))
	for i, x := range v.values {
		out[i] = f(x)
	}
	return wrap(out)
}
