package vecmath

// Func computes a new cell value from its index and current value.
// It is called once per visited cell and must not have side effects.
type Func func(index int, value float64) float64

// BiFunc computes a new cell value from the values of two vectors at the same
// index. left is the receiver's value, right the other vector's.
type BiFunc func(index int, left, right float64) float64

// Scale returns a Func multiplying every value by f.
func Scale(f float64) Func {
	return func(_ int, v float64) float64 {
		return v * f
	}
}

// Offset returns a Func adding f to every value.
func Offset(f float64) Func {
	return func(_ int, v float64) float64 {
		return v + f
	}
}

// Clamp returns a Func limiting every value to [lo, hi].
func Clamp(lo, hi float64) Func {
	return func(_ int, v float64) float64 {
		return min(max(v, lo), hi)
	}
}

// Lerp returns a BiFunc interpolating linearly between left (t=0) and
// right (t=1).
func Lerp(t float64) BiFunc {
	return func(_ int, l, r float64) float64 {
		return l + (r-l)*t
	}
}
