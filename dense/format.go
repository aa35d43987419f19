package dense

import (
	"encoding/binary"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/hupe1980/vecmath"
)

// renderLimit is the length from which String prints only the shape.
const renderLimit = 50

// String lists the cells of vectors shorter than 50 elements and returns
// "{len}x1" otherwise. The output is meant for humans, not for parsing.
func (v *Vector) String() string {
	if len(v.values) >= renderLimit {
		return strconv.Itoa(len(v.values)) + "x1"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

// LogValue implements slog.LogValuer.
func (v *Vector) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("len", len(v.values)),
		slog.String("values", v.String()),
	)
}

// Equal reports whether other is a dense vector with the same cells.
// NaN cells compare equal to each other; 0 and -0 do not.
func (v *Vector) Equal(other vecmath.Vector) bool {
	if other == nil || other.Kind() != vecmath.KindDense {
		return false
	}
	o := other.Raw()
	if len(o) != len(v.values) {
		return false
	}
	for i, x := range v.values {
		if bits(x) != bits(o[i]) {
			return false
		}
	}
	return true
}

// Hash returns a hash over all cells, consistent with Equal.
func (v *Vector) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, x := range v.values {
		binary.LittleEndian.PutUint64(buf[:], bits(x))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

var nanBits = math.Float64bits(math.NaN())

// bits returns the IEEE 754 bits of x with every NaN collapsed to one pattern.
func bits(x float64) uint64 {
	if math.IsNaN(x) {
		return nanBits
	}
	return math.Float64bits(x)
}
