// Package hash provides stateless keyed hashing built on the same numeric
// conventions as the rand package: every derived function (ranged ints,
// unit-interval floats, booleans, approximate normals) reuses the exact
// formulas of the generator's distribution layer, substituting a scalar
// mixer for the stateful draw.
//
// The 64-bit mixer is the Murmur-style finalizer used by CityHash; the
// 32-bit mixer is the Murmur3 finalizer. Both are fast avalanche mixers,
// not cryptographic hashes. Identical (input, seed) yields bit-identical
// output across all calls and platforms - regeneration by seed is the
// point of this package.
//
// All functions are pure and safe for unsynchronized concurrent use.
package hash

import "math"

const (
	mixMultiplier64 = 0x9ddfea08eb382d69

	mixMultiplier32a = 0x85ebca6b
	mixMultiplier32b = 0xc2b2ae35
)

// Uint64 hashes n to a 64-bit value on [0, 2^64-1].
func Uint64(n uint64) uint64 {
	x := n
	x *= mixMultiplier64
	x ^= x >> 47
	x ^= n
	x *= mixMultiplier64
	x ^= x >> 47
	x *= mixMultiplier64
	return x
}

// Uint32 hashes n to a 32-bit value on [0, 2^32-1].
func Uint32(n uint32) uint32 {
	n ^= n >> 16
	n *= mixMultiplier32a
	n ^= n >> 13
	n *= mixMultiplier32b
	n ^= n >> 16
	return n
}

// Int64 hashes n to a value on [-2^63, 2^63-1].
func Int64(n uint64) int64 { return int64(Uint64(n)) }

// PosInt64 hashes n to a value on [0, 2^63-1].
func PosInt64(n uint64) int64 { return int64(Uint64(n) >> 1) }

// Int32 hashes n to a value on [-2^31, 2^31-1].
func Int32(n uint32) int32 { return int32(Uint32(n)) }

// PosInt32 hashes n to a value on [0, 2^31-1].
func PosInt32(n uint32) int32 { return int32(Uint32(n) >> 1) }

// DoubleC hashes n to a float64 on the closed interval [0, 1].
func DoubleC(n uint64) float64 { return float64(Uint64(n)>>11) * (1.0 / 9007199254740991.0) }

// DoubleH hashes n to a float64 on the half-open interval [0, 1).
func DoubleH(n uint64) float64 { return float64(Uint64(n)>>11) * (1.0 / 9007199254740992.0) }

// DoubleO hashes n to a float64 on the open interval (0, 1).
func DoubleO(n uint64) float64 {
	return (float64(Uint64(n)>>12) + 0.5) * (1.0 / 4503599627370496.0)
}

// FloatC hashes n to a float32 on the closed interval [0, 1].
func FloatC(n uint32) float32 { return float32(Uint32(n)>>8) * (1.0 / 16777215.0) }

// FloatH hashes n to a float32 on the half-open interval [0, 1).
func FloatH(n uint32) float32 { return float32(Uint32(n)>>8) * (1.0 / 16777216.0) }

// FloatO hashes n to a float32 on the open interval (0, 1).
func FloatO(n uint32) float32 { return (float32(Uint32(n)>>9) + 0.5) * (1.0 / 8388608.0) }

// Uint8 hashes n to a byte.
func Uint8(n uint32) uint8 { return uint8(Uint32(n)) }

// Bool hashes n to a boolean.
func Bool(n uint32) bool { return Uint32(n)&1 != 0 }

// IntBetween hashes n to a value on the half-open interval [min, max).
// The modulo reduction carries the same small accepted bias as
// rand.(*Rand).IntBetween.
func IntBetween(n uint32, min, max int32) int32 { return PosInt32(n)%(max-min) + min }

// FloatBetween hashes n to a float32 on the closed interval [min, max].
func FloatBetween(n uint32, min, max float32) float32 { return FloatC(n)*(max-min) + min }

const normalScale = 5.0003944e-8

// FloatNormal hashes n to an approximately normal value with mean 0 and
// standard deviation 1, using the same fast quantile approximation as
// rand.(*Rand).FloatNormal.
func FloatNormal(n uint32) float32 {
	u1 := FloatO(n)
	u2 := 1.0 - u1
	return normalScale * float32(int32(math.Float32bits(u1))-int32(math.Float32bits(u2)))
}

// FloatNormalAt hashes n to an approximately normal value with the given
// mean and standard deviation.
func FloatNormalAt(n uint32, mean, stdDev float32) float32 {
	return FloatNormal(n)*stdDev + mean
}

// Seeded variants. Each folds the seed into the input through the pairing
// function before mixing, so hash(n, seed) streams are independent per seed.

// Uint64Seeded hashes (n, seed) to a value on [0, 2^64-1].
func Uint64Seeded(n, seed uint64) uint64 { return Uint64(Pair(n, seed)) }

// Int64Seeded hashes (n, seed) to a value on [-2^63, 2^63-1].
func Int64Seeded(n, seed uint64) int64 { return int64(Uint64Seeded(n, seed)) }

// PosInt64Seeded hashes (n, seed) to a value on [0, 2^63-1].
func PosInt64Seeded(n, seed uint64) int64 { return int64(Uint64Seeded(n, seed) >> 1) }

// Uint32Seeded hashes (n, seed) to a value on [0, 2^32-1].
func Uint32Seeded(n, seed uint32) uint32 { return Uint32(Pair32(n, seed)) }

// Int32Seeded hashes (n, seed) to a value on [-2^31, 2^31-1].
func Int32Seeded(n, seed uint32) int32 { return int32(Uint32Seeded(n, seed)) }

// PosInt32Seeded hashes (n, seed) to a value on [0, 2^31-1].
func PosInt32Seeded(n, seed uint32) int32 { return int32(Uint32Seeded(n, seed) >> 1) }

// DoubleCSeeded hashes (n, seed) to a float64 on [0, 1].
func DoubleCSeeded(n, seed uint64) float64 {
	return float64(Uint64Seeded(n, seed)>>11) * (1.0 / 9007199254740991.0)
}

// DoubleHSeeded hashes (n, seed) to a float64 on [0, 1).
func DoubleHSeeded(n, seed uint64) float64 {
	return float64(Uint64Seeded(n, seed)>>11) * (1.0 / 9007199254740992.0)
}

// DoubleOSeeded hashes (n, seed) to a float64 on (0, 1).
func DoubleOSeeded(n, seed uint64) float64 {
	return (float64(Uint64Seeded(n, seed)>>12) + 0.5) * (1.0 / 4503599627370496.0)
}

// FloatCSeeded hashes (n, seed) to a float32 on [0, 1].
func FloatCSeeded(n, seed uint32) float32 {
	return float32(Uint32Seeded(n, seed)>>8) * (1.0 / 16777215.0)
}

// FloatHSeeded hashes (n, seed) to a float32 on [0, 1).
func FloatHSeeded(n, seed uint32) float32 {
	return float32(Uint32Seeded(n, seed)>>8) * (1.0 / 16777216.0)
}

// FloatOSeeded hashes (n, seed) to a float32 on (0, 1).
func FloatOSeeded(n, seed uint32) float32 {
	return (float32(Uint32Seeded(n, seed)>>9) + 0.5) * (1.0 / 8388608.0)
}

// Uint8Seeded hashes (n, seed) to a byte.
func Uint8Seeded(n, seed uint32) uint8 { return uint8(Uint32Seeded(n, seed)) }

// BoolSeeded hashes (n, seed) to a boolean.
func BoolSeeded(n, seed uint32) bool { return Uint32Seeded(n, seed)&1 != 0 }

// IntBetweenSeeded hashes (n, seed) to a value on [min, max).
func IntBetweenSeeded(n, seed uint32, min, max int32) int32 {
	return PosInt32Seeded(n, seed)%(max-min) + min
}

// FloatBetweenSeeded hashes (n, seed) to a float32 on [min, max].
func FloatBetweenSeeded(n, seed uint32, min, max float32) float32 {
	return FloatCSeeded(n, seed)*(max-min) + min
}

// FloatNormalSeeded hashes (n, seed) to an approximately normal value with
// mean 0 and standard deviation 1.
func FloatNormalSeeded(n, seed uint32) float32 {
	u1 := FloatOSeeded(n, seed)
	u2 := 1.0 - u1
	return normalScale * float32(int32(math.Float32bits(u1))-int32(math.Float32bits(u2)))
}

// FloatNormalAtSeeded hashes (n, seed) to an approximately normal value
// with the given mean and standard deviation.
func FloatNormalAtSeeded(n, seed uint32, mean, stdDev float32) float32 {
	return FloatNormalSeeded(n, seed)*stdDev + mean
}

// ShuffleSeeded64 permutes arr in place with a Fisher-Yates shuffle whose
// swap indices are hashed from (position, seed). Unlike rand.Shuffle it is
// stateless: the same (len, seed) always produces the same permutation.
func ShuffleSeeded64[T any](arr []T, seed uint64) {
	for size := uint64(len(arr)); size > 0; size-- {
		swap := Uint64Seeded(size, seed) % size
		arr[size-1], arr[swap] = arr[swap], arr[size-1]
	}
}

// ShuffleSeeded32 is the 32-bit width variant of ShuffleSeeded64.
func ShuffleSeeded32[T any](arr []T, seed uint32) {
	for size := uint32(len(arr)); size > 0; size-- {
		swap := Uint32Seeded(size, seed) % size
		arr[size-1], arr[swap] = arr[swap], arr[size-1]
	}
}

// ElementSeeded64 returns the element of arr addressed by hashing seed.
// It panics if arr is empty.
func ElementSeeded64[T any](arr []T, seed uint64) T {
	return arr[Uint64(seed)%uint64(len(arr))]
}

// ElementSeeded32 is the 32-bit width variant of ElementSeeded64.
func ElementSeeded32[T any](arr []T, seed uint32) T {
	return arr[Uint32(seed)%uint32(len(arr))]
}
