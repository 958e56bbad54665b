package checksum

import (
	"cmp"
	"math"
	"slices"

	"fortio.org/safecast"
)

// Modulus bounds the accumulator. Every combinator reduces its result modulo
// this value, so the running sum always stays in [0, Modulus) and can never
// overflow a uint32 regardless of how many values are folded in.
const Modulus uint32 = 10_000_000

// Checksummer is implemented by composite records that can summarize
// themselves. The combinators never inspect a composite's fields directly;
// they delegate to CheckSum, which is expected to fold the record's own
// fields through this package and return a value already below Modulus.
type Checksummer interface {
	CheckSum() uint32
}

type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type integer interface {
	signedInt | unsignedInt
}

// Unsigned folds an unsigned integer into sum.
func Unsigned[T unsignedInt](sum uint32, v T) uint32 {
	return (sum + uint32(uint64(v)%uint64(Modulus))) % Modulus
}

// Signed folds the magnitude of a signed integer into sum. The sign is
// deliberately discarded, matching the peer scheme; values differing only in
// sign contribute identically.
func Signed[T signedInt](sum uint32, v T) uint32 {
	m := uint64(v)
	if v < 0 {
		m = -m // two's complement negate, correct even for the minimum value
	}
	return (sum + uint32(m%uint64(Modulus))) % Modulus
}

// Float folds a floating point value into sum. Only the rounded magnitude is
// used, never the bit representation, so platforms that round identically
// produce identical sums. Non-finite values contribute nothing.
func Float(sum uint32, v float64) uint32 {
	r := math.Mod(math.Round(math.Abs(v)), float64(Modulus))
	u, err := safecast.Truncate[uint32](r)
	if err != nil {
		// NaN and the infinities have no magnitude to fold.
		return sum
	}
	return (sum + u) % Modulus
}

// Bool folds a boolean as 0 or 1.
func Bool(sum uint32, b bool) uint32 {
	var u uint32
	if b {
		u = 1
	}
	return Unsigned(sum, u)
}

// String folds each code point of s in order, then the code point count.
func String(sum uint32, s string) uint32 {
	var n uint32
	for _, r := range s {
		sum = Unsigned(sum, uint32(r))
		n++
	}
	return Unsigned(sum, n)
}

// Enum folds an enumeration ordinal, offset by 10 so that small ordinals do
// not alias the small integer field values common elsewhere in records.
func Enum[T integer](sum uint32, e T) uint32 {
	return Signed(sum, int64(e)+10)
}

// Object folds a composite record through its own CheckSum. A nil record
// contributes nothing, mirroring how absent optional references fold.
func Object(sum uint32, c Checksummer) uint32 {
	if c == nil {
		return sum
	}
	return Unsigned(sum, c.CheckSum())
}

// Pair folds two components in order, first a then b. Swapping the
// components changes the result.
func Pair[A, B any](sum uint32, a A, b B, fa func(uint32, A) uint32, fb func(uint32, B) uint32) uint32 {
	return fb(fa(sum, a), b)
}

// Slice folds every element in slice order, then the element count. The count
// distinguishes, for example, an empty slice nested in another collection
// from no slice at all.
func Slice[T any](sum uint32, xs []T, fn func(uint32, T) uint32) uint32 {
	for _, x := range xs {
		sum = fn(sum, x)
	}
	n, _ := safecast.Conv[uint32](len(xs))
	return Unsigned(sum, n)
}

// Strings folds a slice of strings.
func Strings(sum uint32, xs []string) uint32 {
	return Slice(sum, xs, String)
}

// Objects folds a slice of composite records.
func Objects[T Checksummer](sum uint32, xs []T) uint32 {
	return Slice(sum, xs, func(sum uint32, c T) uint32 {
		return Object(sum, c)
	})
}

// Map folds every entry as a (key, value) pair in ascending key order, then
// the entry count. Go maps have no stable iteration order, so the keys are
// sorted first; peers that keep their entries in sorted associative
// containers fold in the same order for free.
func Map[K cmp.Ordered, V any](sum uint32, m map[K]V, fk func(uint32, K) uint32, fv func(uint32, V) uint32) uint32 {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		sum = Pair(sum, k, m[k], fk, fv)
	}
	n, _ := safecast.Conv[uint32](len(m))
	return Unsigned(sum, n)
}
