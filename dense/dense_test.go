package dense

import (
	"bytes"
	"encoding/json"
	"iter"
	"log/slog"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath"
)

func TestConstructorsCopy(t *testing.T) {
	src := []float64{1, 2, 3}
	v := New(src)
	src[0] = 42

	assert.Equal(t, 1.0, v.Get(0))
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 3, v.Dimension())
}

func TestFixedValueConstructors(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0}, Zeros(3).Raw())
	assert.Equal(t, []float64{1, 1}, Ones(2).Raw())
	assert.Equal(t, []float64{2.5, 2.5, 2.5}, Full(3, 2.5).Raw())
	assert.Empty(t, Zeros(0).Raw())
}

func TestAppendPrepend(t *testing.T) {
	src := []float64{1, 2}

	assert.Equal(t, []float64{1, 2, 9}, Append(src, 9).Raw())
	assert.Equal(t, []float64{9, 1, 2}, Prepend(9, src).Raw())
	assert.Equal(t, []float64{1, 2}, src)
}

func TestFromUpTo(t *testing.T) {
	tests := []struct {
		name           string
		from, to, step float64
		want           []float64
	}{
		{"Inclusive", 0, 5, 1, []float64{0, 1, 2, 3, 4, 5}},
		{"HalfStep", 1, 2, 0.5, []float64{1, 1.5, 2}},
		{"OffGrid", 0, 1, 0.4, []float64{0, 0.4, 0.8}},
		{"Single", 3, 3, 1, []float64{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDeltaSlice(t, tt.want, FromUpTo(tt.from, tt.to, tt.step).Raw(), 1e-12)
		})
	}
}

func TestGetSet(t *testing.T) {
	v := Zeros(3)
	v.Set(1, 4)

	assert.Equal(t, 4.0, v.Get(1))
	assert.Panics(t, func() { v.Get(3) })
}

func TestRawAliasesStorage(t *testing.T) {
	v := New([]float64{1, 2, 3})
	v.Raw()[0] = 10

	assert.Equal(t, 10.0, v.Get(0))
}

func TestClone(t *testing.T) {
	v := New([]float64{1, 2, 3})
	c := v.Clone()

	assert.True(t, v.Equal(c))

	c.Set(0, 100)
	assert.Equal(t, 1.0, v.Get(0))
	assert.False(t, v.Equal(c))
}

func TestKind(t *testing.T) {
	v := Zeros(1)

	assert.Equal(t, vecmath.KindDense, v.Kind())
	assert.False(t, v.Kind().IsSparse())
	assert.False(t, v.Kind().IsNamed())
	assert.False(t, v.Kind().IsSingle())
	assert.Empty(t, v.Name())
}

func TestIterate(t *testing.T) {
	v := New([]float64{0, 2, 0, 0, 7})

	all := slices.Collect(v.Iterate())
	assert.Equal(t, []vecmath.Element{
		{Index: 0, Value: 0},
		{Index: 1, Value: 2},
		{Index: 2, Value: 0},
		{Index: 3, Value: 0},
		{Index: 4, Value: 7},
	}, all)

	nz := slices.Collect(v.IterateNonZero())
	assert.Equal(t, []vecmath.Element{{Index: 1, Value: 2}, {Index: 4, Value: 7}}, nz)
}

func TestIterateNonZeroEdges(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []int
	}{
		{"Empty", nil, nil},
		{"AllZero", []float64{0, 0, 0}, nil},
		{"NegativeZero", []float64{math.Copysign(0, -1), 1e-300}, []int{1}},
		{"LeadingAndTrailing", []float64{1, 0, 0, 2}, []int{0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int
			for e := range New(tt.values).IterateNonZero() {
				got = append(got, e.Index)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIterateRestartsAndStops(t *testing.T) {
	v := New([]float64{1, 2, 3})

	seq := v.Iterate()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	var seen []int
	for e := range v.Iterate() {
		seen = append(seen, e.Index)
		if e.Index == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, seen)
}

func TestInterleavedIterators(t *testing.T) {
	v := New([]float64{1, 0, 3})

	next1, stop1 := iter.Pull(v.Iterate())
	defer stop1()
	next2, stop2 := iter.Pull(v.IterateNonZero())
	defer stop2()

	a, _ := next1()
	b, _ := next2()
	a2, _ := next1()
	b2, _ := next2()

	assert.Equal(t, vecmath.Element{Index: 0, Value: 1}, a)
	assert.Equal(t, vecmath.Element{Index: 0, Value: 1}, b)
	assert.Equal(t, vecmath.Element{Index: 1, Value: 0}, a2)
	assert.Equal(t, vecmath.Element{Index: 2, Value: 3}, b2)
	// Elements are values: a is unchanged by later advances.
	assert.Equal(t, 0, a.Index)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1, 2.5, -3]", New([]float64{1, 2.5, -3}).String())
	assert.Equal(t, "[]", Zeros(0).String())
	assert.Len(t, Zeros(49).String(), 2+49+48*2)
	assert.Equal(t, "50x1", Zeros(50).String())
	assert.Equal(t, "1000x1", Zeros(1000).String())
}

func TestEqualAndHash(t *testing.T) {
	negZero := math.Copysign(0, -1)
	otherNaN := math.Float64frombits(0x7ff8000000000001)

	tests := []struct {
		name  string
		a, b  []float64
		equal bool
	}{
		{"Same", []float64{1, 2, 3}, []float64{1, 2, 3}, true},
		{"DifferentCell", []float64{1, 2, 3}, []float64{1, 2, 4}, false},
		{"DifferentLength", []float64{1, 2, 3}, []float64{1, 2}, false},
		{"Empty", nil, []float64{}, true},
		{"NaN", []float64{math.NaN()}, []float64{math.NaN()}, true},
		{"NaNPayloads", []float64{math.NaN(), 1}, []float64{otherNaN, 1}, true},
		{"SignedZero", []float64{0}, []float64{negZero}, false},
		{"Infinity", []float64{math.Inf(1)}, []float64{math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := New(tt.a), New(tt.b)

			assert.Equal(t, tt.equal, a.Equal(b))
			assert.Equal(t, tt.equal, b.Equal(a))
			if tt.equal {
				assert.Equal(t, a.Hash(), b.Hash())
			} else {
				assert.NotEqual(t, a.Hash(), b.Hash())
			}
		})
	}

	assert.False(t, New([]float64{1}).Equal(nil))
}

func TestLogValue(t *testing.T) {
	tests := []struct {
		name   string
		v      *Vector
		length float64
		values string
	}{
		{"Short", New([]float64{1, 2.5, -3}), 3, "[1, 2.5, -3]"},
		{"BelowLimit", Ones(49), 49, Ones(49).String()},
		{"AtLimit", Ones(50), 50, "50x1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			logger.Info("vector", "v", tt.v)

			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

			group, ok := record["v"].(map[string]any)
			require.True(t, ok, "v is not a group: %s", buf.String())
			assert.Equal(t, tt.length, group["len"])
			assert.Equal(t, tt.values, group["values"])
		})
	}
}
