package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/vecmath"
)

// Dot calculates the dot product of two vectors.
// Assumes vectors have the same dimension (caller's responsibility).
func Dot(a, b vecmath.Vector) float64 {
	return a.Dot(b)
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
func SquaredL2(a, b vecmath.Vector) float64 {
	d := a.Subtract(b)
	return d.Dot(d)
}

// Euclidean calculates the L2 distance between two vectors.
func Euclidean(a, b vecmath.Vector) float64 {
	return math.Sqrt(SquaredL2(a, b))
}

// Manhattan calculates the L1 distance between two vectors.
func Manhattan(a, b vecmath.Vector) float64 {
	return a.Subtract(b).Abs().Sum()
}

// Norm returns the L2 norm of v.
func Norm(v vecmath.Vector) float64 {
	return math.Sqrt(v.Dot(v))
}

// Cosine returns the cosine similarity of a and b in [-1, 1].
// Returns 0 if either vector has zero norm.
func Cosine(a, b vecmath.Vector) float64 {
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return a.Dot(b) / (na * nb)
}

// Normalize returns v scaled to unit L2 norm.
// Returns false if v has zero norm.
func Normalize(v vecmath.Vector) (vecmath.Vector, bool) {
	n := Norm(v)
	if n == 0 {
		return nil, false
	}
	out, err := v.DivideScalar(n)
	if err != nil {
		return nil, false
	}
	return out, true
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricCosine
	MetricDot
	MetricManhattan
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricCosine:
		return "Cosine"
	case MetricDot:
		return "Dot"
	case MetricManhattan:
		return "Manhattan"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b vecmath.Vector) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return SquaredL2, nil
	case MetricCosine:
		return Cosine, nil
	case MetricDot:
		return Dot, nil
	case MetricManhattan:
		return Manhattan, nil
	default:
		return nil, fmt.Errorf("distance: unsupported metric: %v", m)
	}
}
