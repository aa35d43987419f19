package dense

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath"
)

func TestVectorArithmetic(t *testing.T) {
	a := New([]float64{1, 2, 3, 4})
	b := New([]float64{4, 3, 2, 1})

	tests := []struct {
		name string
		got  vecmath.Vector
		want []float64
	}{
		{"Add", a.Add(b), []float64{5, 5, 5, 5}},
		{"Subtract", a.Subtract(b), []float64{-3, -1, 1, 3}},
		{"Multiply", a.Multiply(b), []float64{4, 6, 6, 4}},
		{"AddScalar", a.AddScalar(1), []float64{2, 3, 4, 5}},
		{"SubtractScalar", a.SubtractScalar(1), []float64{0, 1, 2, 3}},
		{"SubtractFromScalar", a.SubtractFromScalar(10), []float64{9, 8, 7, 6}},
		{"MultiplyScalar", a.MultiplyScalar(-2), []float64{-2, -4, -6, -8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Raw())
		})
	}

	// Receivers are never mutated.
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Raw())
	assert.Equal(t, []float64{4, 3, 2, 1}, b.Raw())
}

func TestAddMatchesGet(t *testing.T) {
	a := New([]float64{0.1, -7, 3.25, 1e10})
	b := New([]float64{2, 0.5, -3.25, 1})

	sum := a.Add(b)
	for i := range a.Len() {
		assert.Equal(t, a.Get(i)+b.Get(i), sum.Get(i))
	}
}

func TestRoundTrips(t *testing.T) {
	a := New([]float64{0.1, -7, 3.25, 1e10, 42})
	b := New([]float64{2, 0.5, -3.3, 1, 1e-3})

	assert.InDeltaSlice(t, a.Raw(), a.Subtract(b).Add(b).Raw(), 1e-6)

	for _, s := range []float64{3, -0.7, 1e-5} {
		q, err := a.DivideScalar(s)
		require.NoError(t, err)
		assert.InDeltaSlice(t, a.Raw(), q.MultiplyScalar(s).Raw(), 1e-6)
	}
}

func TestDivide(t *testing.T) {
	a := New([]float64{2, 9, -4})
	b := New([]float64{4, 3, 2})

	q, err := a.Divide(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 3, -2}, q.Raw())

	q, err = a.DivideFrom(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1.0 / 3, -0.5}, q.Raw())

	q, err = a.DivideScalar(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4.5, -2}, q.Raw())

	q, err = a.DivideFromScalar(36)
	require.NoError(t, err)
	assert.Equal(t, []float64{18, 4, -9}, q.Raw())
}

func TestDivideByZero(t *testing.T) {
	withZero := New([]float64{1, 0, 3, 0})
	ones := Ones(4)

	tests := []struct {
		name  string
		call  func() (vecmath.Vector, error)
		index int
	}{
		{"DivideScalar", func() (vecmath.Vector, error) { return ones.DivideScalar(0) }, -1},
		{"Divide", func() (vecmath.Vector, error) { return ones.Divide(withZero) }, 1},
		{"DivideFrom", func() (vecmath.Vector, error) { return withZero.DivideFrom(ones) }, 1},
		{"DivideFromScalar", func() (vecmath.Vector, error) { return withZero.DivideFromScalar(1) }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.call()
			require.Error(t, err)
			assert.Nil(t, v)
			assert.True(t, errors.Is(err, vecmath.ErrDivideByZero))
			if tt.index >= 0 {
				assert.Contains(t, err.Error(), "at index 1")
			}
		})
	}

	// A zero dividend is fine.
	q, err := Zeros(2).DivideScalar(5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, q.Raw())
}

func TestDivideNegativeZero(t *testing.T) {
	_, err := Ones(1).DivideScalar(math.Copysign(0, -1))
	assert.ErrorIs(t, err, vecmath.ErrDivideByZero)
}

func TestPow(t *testing.T) {
	v := New([]float64{3, -4})

	assert.Equal(t, []float64{9, 16}, v.Pow(2).Raw())

	general := []float64{math.Pow(3, 2), math.Pow(-4, 2)}
	assert.Equal(t, general, v.Pow(2).Raw())

	assert.Equal(t, []float64{27, -64}, v.Pow(3).Raw())
	assert.InDeltaSlice(t, []float64{math.Sqrt(3)}, New([]float64{3}).Pow(0.5).Raw(), 1e-15)
	assert.Equal(t, []float64{1, 1}, v.Pow(0).Raw())
}

func TestElementaryMaps(t *testing.T) {
	v := New([]float64{1, -4, 9})

	assert.Equal(t, []float64{1, 4, 9}, v.Abs().Raw())

	sq := v.Abs().Sqrt().Raw()
	assert.Equal(t, []float64{1, 2, 3}, sq)
	assert.True(t, math.IsNaN(v.Sqrt().Get(1)))

	assert.InDeltaSlice(t, []float64{0, math.Log(4), math.Log(9)}, v.Abs().Log().Raw(), 1e-15)
	assert.InDeltaSlice(t, []float64{math.E, math.Exp(-4), math.Exp(9)}, v.Exp().Raw(), 1e-9)
	assert.Equal(t, math.Inf(-1), Zeros(1).Log().Get(0))

	assert.Equal(t, []float64{1, -4, 9}, v.Raw())
}

func TestApply(t *testing.T) {
	v := New([]float64{1, 2, 3})

	got := v.Apply(func(i int, x float64) float64 { return x*10 + float64(i) })
	assert.Equal(t, []float64{10, 21, 32}, got.Raw())
	assert.Equal(t, []float64{1, 2, 3}, v.Raw())

	assert.Equal(t, []float64{2, 4, 6}, v.Apply(vecmath.Scale(2)).Raw())
	assert.Equal(t, []float64{0, 1, 2}, v.Apply(vecmath.Offset(-1)).Raw())
	assert.Equal(t, []float64{1.5, 2, 2.5}, v.Apply(vecmath.Clamp(1.5, 2.5)).Raw())
}

func TestApplyWith(t *testing.T) {
	a := New([]float64{1, 2, 3})
	b := New([]float64{10, 20, 30})

	var calls []int
	got := a.ApplyWith(b, func(i int, l, r float64) float64 {
		calls = append(calls, i)
		return r - l
	})

	assert.Equal(t, []float64{9, 18, 27}, got.Raw())
	assert.Equal(t, []int{0, 1, 2}, calls)
	assert.Equal(t, []float64{5.5, 11, 16.5}, a.ApplyWith(b, vecmath.Lerp(0.5)).Raw())
}
