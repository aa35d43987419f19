package kernel

import "math"

var genericImpl = impl{
	name:      "generic",
	add:       addGeneric,
	sub:       subGeneric,
	mul:       mulGeneric,
	div:       divGeneric,
	addScalar: addScalarGeneric,
	subScalar: subScalarGeneric,
	mulScalar: mulScalarGeneric,
	divScalar: divScalarGeneric,
	scalarSub: scalarSubGeneric,
	abs:       absGeneric,
	sqrt:      sqrtGeneric,
	dot:       dotGeneric,
	sum:       sumGeneric,
}

func addGeneric(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subGeneric(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulGeneric(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func divGeneric(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func addScalarGeneric(dst, a []float64, s float64) {
	for i := range dst {
		dst[i] = a[i] + s
	}
}

func subScalarGeneric(dst, a []float64, s float64) {
	for i := range dst {
		dst[i] = a[i] - s
	}
}

func mulScalarGeneric(dst, a []float64, s float64) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

func divScalarGeneric(dst, a []float64, s float64) {
	for i := range dst {
		dst[i] = a[i] / s
	}
}

func scalarSubGeneric(dst []float64, s float64, a []float64) {
	for i := range dst {
		dst[i] = s - a[i]
	}
}

func absGeneric(dst, a []float64) {
	for i := range dst {
		dst[i] = math.Abs(a[i])
	}
}

func sqrtGeneric(dst, a []float64) {
	for i := range dst {
		dst[i] = math.Sqrt(a[i])
	}
}

func dotGeneric(a, b []float64) float64 {
	var ret float64
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

func sumGeneric(a []float64) float64 {
	var ret float64
	for _, v := range a {
		ret += v
	}

	return ret
}
