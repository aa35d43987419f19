// Package kernel provides float64 slice kernels used by the dense vector.
//
// # Supported Platforms
//
//   - x86-64 with AVX2+FMA: github.com/viterin/vek kernels
//   - everything else: generic Go loops
//
// Runtime CPU feature detection selects the implementation once at init.
// Set VECMATH_KERNEL=generic to force the generic loops.
//
// All kernels write into a caller-supplied dst and assume that every slice
// argument has the same length. Lengths are not checked.
package kernel
