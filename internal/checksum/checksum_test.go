package checksum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsignedIdentity(t *testing.T) {
	cases := []struct {
		in   uint32
		want uint32
	}{
		{0, 0},
		{1, 1},
		{9_999_999, 9_999_999},
		{Modulus, 0},
		{Modulus + 17, 17},
		{4_294_967_295, 4_294_967_295 % Modulus},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Unsigned(0, tc.in), "Unsigned(0, %d)", tc.in)
	}
}

func TestUnsignedWrapsAtModulus(t *testing.T) {
	sum := Unsigned(Modulus-1, uint32(1))
	assert.Equal(t, uint32(0), sum)

	sum = Unsigned(Modulus-1, uint32(5))
	assert.Equal(t, uint32(4), sum)
}

// Discarding the sign is intentional: the scheme detects content drift, not
// exact equality, and peers computing the same sum rely on this behavior.
func TestSignedDiscardsSign(t *testing.T) {
	for _, v := range []int64{1, 42, 7_654_321, 1 << 40} {
		assert.Equal(t, Signed(0, v), Signed(0, -v), "magnitude %d", v)
	}
	assert.Equal(t, uint32(42), Signed(0, -42))
}

func TestSignedMinValue(t *testing.T) {
	// The minimum int64 has no positive counterpart; the magnitude must still
	// fold without overflow.
	got := Signed(0, int64(math.MinInt64))
	assert.Equal(t, uint32(9223372036854775808%uint64(Modulus)), got)
}

func TestFloatRoundsMagnitude(t *testing.T) {
	cases := []struct {
		in   float64
		want uint32
	}{
		{0.0, 0},
		{0.4, 0},
		{0.5, 1},
		{1.0, 1},
		{-0.5, 1},
		{-1.0, 1},
		{-2.6, 3},
		{10.0, 10},
		{12345.49, 12345},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Float(0, tc.in), "Float(0, %v)", tc.in)
	}
}

func TestFloatNonFiniteContributesNothing(t *testing.T) {
	assert.Equal(t, uint32(7), Float(7, math.NaN()))
	assert.Equal(t, uint32(7), Float(7, math.Inf(1)))
	assert.Equal(t, uint32(7), Float(7, math.Inf(-1)))
}

func TestBool(t *testing.T) {
	assert.Equal(t, uint32(0), Bool(0, false))
	assert.Equal(t, uint32(1), Bool(0, true))
	assert.Equal(t, uint32(8), Bool(7, true))
}

func TestString(t *testing.T) {
	// "AB" folds 'A' (65), 'B' (66), then the code point count (2).
	assert.Equal(t, uint32(65+66+2), String(0, "AB"))
	assert.Equal(t, uint32(0), String(0, ""))
}

func TestStringCountsCodePointsNotBytes(t *testing.T) {
	// U+00E9 is two bytes in UTF-8 but one code point.
	assert.Equal(t, uint32(0xE9+1), String(0, "é"))
}

func TestEnumOffset(t *testing.T) {
	type slotKind int
	const invalid slotKind = -1

	// An enum ordinal folds as its signed value plus 10.
	assert.Equal(t, Signed(0, int64(3)+10), Enum(0, slotKind(3)))
	assert.Equal(t, uint32(13), Enum(0, slotKind(3)))

	// The offset keeps the sentinel -1 from vanishing into zero.
	assert.Equal(t, uint32(9), Enum(0, invalid))
}

type fixedSum uint32

func (f fixedSum) CheckSum() uint32 { return uint32(f) }

func TestObjectDelegates(t *testing.T) {
	assert.Equal(t, uint32(123), Object(0, fixedSum(123)))
	assert.Equal(t, uint32(128), Object(5, fixedSum(123)))
}

func TestObjectNilIsNoOp(t *testing.T) {
	assert.Equal(t, uint32(77), Object(77, nil))
}

func TestPairFoldsComponentsSequentially(t *testing.T) {
	kv := Pair(0, "speed", uint32(3), String, Unsigned[uint32])

	// A pair is exactly the first component folded, then the second.
	assert.Equal(t, Unsigned(String(0, "speed"), uint32(3)), kv)
}

func TestSliceAddsCount(t *testing.T) {
	xs := []uint32{10, 20, 30}
	assert.Equal(t, uint32(10+20+30+3), Slice(0, xs, Unsigned[uint32]))
	assert.Equal(t, uint32(0), Slice(0, nil, Unsigned[uint32]))
}

func TestEmptySliceAddsZeroCount(t *testing.T) {
	assert.Equal(t, uint32(5), Slice(5, []uint32{}, Unsigned[uint32]))
}

func TestObjects(t *testing.T) {
	xs := []fixedSum{1, 2, 3}
	assert.Equal(t, uint32(1+2+3+3), Objects(0, xs))
}

func TestMapSortsKeys(t *testing.T) {
	m := map[string]uint32{"b": 2, "a": 1, "c": 3}
	// Fold pairs in sorted key order, then the count.
	sum := uint32(0)
	sum = Pair(sum, "a", uint32(1), String, Unsigned[uint32])
	sum = Pair(sum, "b", uint32(2), String, Unsigned[uint32])
	sum = Pair(sum, "c", uint32(3), String, Unsigned[uint32])
	sum = Unsigned(sum, uint32(3))
	require.Equal(t, sum, Map(0, m, String, Unsigned[uint32]))
}

func TestMapDeterministicAcrossRuns(t *testing.T) {
	m := map[string]uint32{}
	for _, k := range []string{"x", "y", "z", "w", "v", "u"} {
		m[k] = uint32(len(k))
	}
	first := Map(0, m, String, Unsigned[uint32])
	for range 50 {
		assert.Equal(t, first, Map(0, m, String, Unsigned[uint32]))
	}
}

func TestFoldIsIdempotent(t *testing.T) {
	fold := func() uint32 {
		sum := uint32(0)
		sum = String(sum, "Basic Hull")
		sum = Float(sum, 1.0)
		sum = Float(sum, 0.0)
		sum = Float(sum, 10.0)
		sum = Slice(sum, nil, Unsigned[uint32])
		return sum
	}
	assert.Equal(t, fold(), fold())
}
