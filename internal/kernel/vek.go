package kernel

import "github.com/viterin/vek"

var vekImpl = impl{
	name: "vek",

	add: func(dst, a, b []float64) { vek.Add_Into(dst, a, b) },
	sub: func(dst, a, b []float64) { vek.Sub_Into(dst, a, b) },
	mul: func(dst, a, b []float64) { vek.Mul_Into(dst, a, b) },
	div: func(dst, a, b []float64) { vek.Div_Into(dst, a, b) },

	addScalar: func(dst, a []float64, s float64) { vek.AddNumber_Into(dst, a, s) },
	subScalar: func(dst, a []float64, s float64) { vek.SubNumber_Into(dst, a, s) },
	mulScalar: func(dst, a []float64, s float64) { vek.MulNumber_Into(dst, a, s) },
	divScalar: func(dst, a []float64, s float64) { vek.DivNumber_Into(dst, a, s) },

	// s - a == -a + s exactly in IEEE 754.
	scalarSub: func(dst []float64, s float64, a []float64) {
		vek.Neg_Into(dst, a)
		vek.AddNumber_Inplace(dst, s)
	},

	abs:  func(dst, a []float64) { vek.Abs_Into(dst, a) },
	sqrt: func(dst, a []float64) { vek.Sqrt_Into(dst, a) },

	// Reductions accumulate in index order so that a dense operand and a
	// sparse one holding the same cells give bit-identical results.
	dot: dotGeneric,
	sum: sumGeneric,
}

// Accelerated reports whether vek detected hardware acceleration.
func Accelerated() bool {
	return vek.Info().Acceleration
}
