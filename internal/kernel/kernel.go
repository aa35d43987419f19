package kernel

// impl is the set of kernels selected for the active ISA.
type impl struct {
	name      string
	add       func(dst, a, b []float64)
	sub       func(dst, a, b []float64)
	mul       func(dst, a, b []float64)
	div       func(dst, a, b []float64)
	addScalar func(dst, a []float64, s float64)
	subScalar func(dst, a []float64, s float64)
	mulScalar func(dst, a []float64, s float64)
	divScalar func(dst, a []float64, s float64)
	scalarSub func(dst []float64, s float64, a []float64)
	abs       func(dst, a []float64)
	sqrt      func(dst, a []float64)
	dot       func(a, b []float64) float64
	sum       func(a []float64) float64
}

var active = genericImpl

// install selects the kernels for isa.
// vek only accelerates AVX2; NEON and Generic both run the generic loops.
func install(isa ISA) {
	if isa == AVX2 {
		active = vekImpl
		return
	}
	active = genericImpl
}

// Implementation returns the name of the installed kernel set, "vek" or
// "generic". It differs from ActiveISA on arm64, where NEON is detected but
// served by the generic loops.
func Implementation() string {
	return active.name
}

// Add stores a[i] + b[i] into dst.
func Add(dst, a, b []float64) {
	if len(dst) == 0 {
		return
	}
	active.add(dst, a, b)
}

// Sub stores a[i] - b[i] into dst.
func Sub(dst, a, b []float64) {
	if len(dst) == 0 {
		return
	}
	active.sub(dst, a, b)
}

// Mul stores a[i] * b[i] into dst.
func Mul(dst, a, b []float64) {
	if len(dst) == 0 {
		return
	}
	active.mul(dst, a, b)
}

// Div stores a[i] / b[i] into dst.
// Zero divisors are not checked; callers validate b beforehand.
func Div(dst, a, b []float64) {
	if len(dst) == 0 {
		return
	}
	active.div(dst, a, b)
}

// AddScalar stores a[i] + s into dst.
func AddScalar(dst, a []float64, s float64) {
	if len(dst) == 0 {
		return
	}
	active.addScalar(dst, a, s)
}

// SubScalar stores a[i] - s into dst.
func SubScalar(dst, a []float64, s float64) {
	if len(dst) == 0 {
		return
	}
	active.subScalar(dst, a, s)
}

// MulScalar stores a[i] * s into dst.
func MulScalar(dst, a []float64, s float64) {
	if len(dst) == 0 {
		return
	}
	active.mulScalar(dst, a, s)
}

// DivScalar stores a[i] / s into dst.
func DivScalar(dst, a []float64, s float64) {
	if len(dst) == 0 {
		return
	}
	active.divScalar(dst, a, s)
}

// ScalarSub stores s - a[i] into dst.
func ScalarSub(dst []float64, s float64, a []float64) {
	if len(dst) == 0 {
		return
	}
	active.scalarSub(dst, s, a)
}

// Abs stores |a[i]| into dst.
func Abs(dst, a []float64) {
	if len(dst) == 0 {
		return
	}
	active.abs(dst, a)
}

// Sqrt stores sqrt(a[i]) into dst.
func Sqrt(dst, a []float64) {
	if len(dst) == 0 {
		return
	}
	active.sqrt(dst, a)
}

// Dot returns the dot product of a and b, accumulated in index order on
// every ISA.
func Dot(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return active.dot(a, b)
}

// Sum returns the sum of a, accumulated in index order on every ISA.
func Sum(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return active.sum(a)
}
