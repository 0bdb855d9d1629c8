// Package rand implements the deterministic 64-bit pseudo-random engine
// that drives shader synthesis.
//
// The core generator is MT19937-64 (Nishimura/Matsumoto). A Rand is fully
// determined by its seed: reseeding with the same value reproduces the
// exact same draw sequence, which is what makes generated shaders
// addressable by seed. On top of the raw 64-/32-bit draws the package
// provides a distribution layer of ranged integers, unit-interval floats,
// booleans, a fast approximate normal sampler, shuffles and element picks.
//
// A Rand mutates its state table and half-word cache on every draw and is
// therefore not safe for concurrent use without external synchronization.
package rand

import "math"

const (
	// State table size in 64-bit words, and the twist offset.
	stateSize  = 312
	stateShift = 156

	// Initialization multiplier and twist magic from MT19937-64.
	seedMultiplier = 0x5851f42d4c957f2d
	twistMagic     = 0xb5026f5aa96619e9

	// High 33 bits and low 31 bits of a state word.
	upperMask = 0xffffffff80000000
	lowerMask = 0x000000007fffffff
)

// Rand is a seeded MT19937-64 generator with a 32-bit half-word cache.
// The zero value is a valid generator seeded with 0.
type Rand struct {
	state [stateSize]uint64
	index uint32

	cache    uint32 // unused upper half of the last 64-bit draw
	hasCache bool
}

// New returns a generator seeded with seed.
func New(seed uint64) *Rand {
	r := &Rand{}
	r.Seed(seed)
	return r
}

// Seed replaces the generator state wholesale. Draws after Seed(s) are
// identical to the draws of a fresh New(s).
func (r *Rand) Seed(seed uint64) {
	r.state[0] = seed
	for i := uint64(1); i < stateSize; i++ {
		prev := r.state[i-1]
		r.state[i] = seedMultiplier*(prev^(prev>>62)) + i
	}
	r.index = stateSize
	r.cache = 0
	r.hasCache = false
}

// twist regenerates the whole state table in place.
func (r *Rand) twist() {
	var x uint64
	var i uint32
	for ; i < stateShift; i++ {
		x = (r.state[i] & upperMask) | (r.state[i+1] & lowerMask)
		r.state[i] = r.state[i+stateShift] ^ (x >> 1) ^ ((x & 1) * twistMagic)
	}
	for ; i < stateSize-1; i++ {
		x = (r.state[i] & upperMask) | (r.state[i+1] & lowerMask)
		r.state[i] = r.state[i-stateShift] ^ (x >> 1) ^ ((x & 1) * twistMagic)
	}
	x = (r.state[stateSize-1] & upperMask) | (r.state[0] & lowerMask)
	r.state[stateSize-1] = r.state[stateShift-1] ^ (x >> 1) ^ ((x & 1) * twistMagic)
	r.index = 0
}

// Uint64 returns a draw on [0, 2^64-1].
func (r *Rand) Uint64() uint64 {
	if r.index >= stateSize {
		r.twist()
	}

	x := r.state[r.index]
	r.index++

	x ^= (x >> 29) & 0x5555555555555555
	x ^= (x << 17) & 0x71d67fffeda60000
	x ^= (x << 37) & 0xfff7eee000000000
	x ^= x >> 43

	return x
}

// Int64 returns a draw on [-2^63, 2^63-1].
func (r *Rand) Int64() int64 { return int64(r.Uint64()) }

// PosInt64 returns a draw on [0, 2^63-1].
func (r *Rand) PosInt64() int64 { return int64(r.Uint64() >> 1) }

// Uint32 returns a draw on [0, 2^32-1].
//
// Two consecutive calls consume exactly one Uint64: the unused upper half
// of the underlying 64-bit draw is cached and returned by the next call.
func (r *Rand) Uint32() uint32 {
	if r.hasCache {
		r.hasCache = false
		return r.cache
	}

	x := r.Uint64()
	r.cache = uint32(x >> 32)
	r.hasCache = true
	return uint32(x)
}

// Int32 returns a draw on [-2^31, 2^31-1].
func (r *Rand) Int32() int32 { return int32(r.Uint32()) }

// PosInt32 returns a draw on [0, 2^31-1].
func (r *Rand) PosInt32() int32 { return int32(r.Uint32() >> 1) }

// DoubleC returns a draw on the closed interval [0, 1].
func (r *Rand) DoubleC() float64 { return float64(r.Uint64()>>11) * (1.0 / 9007199254740991.0) }

// DoubleH returns a draw on the half-open interval [0, 1).
func (r *Rand) DoubleH() float64 { return float64(r.Uint64()>>11) * (1.0 / 9007199254740992.0) }

// DoubleO returns a draw on the open interval (0, 1).
func (r *Rand) DoubleO() float64 {
	return (float64(r.Uint64()>>12) + 0.5) * (1.0 / 4503599627370496.0)
}

// FloatC returns a draw on the closed interval [0, 1].
func (r *Rand) FloatC() float32 { return float32(r.Uint32()>>8) * (1.0 / 16777215.0) }

// FloatH returns a draw on the half-open interval [0, 1).
func (r *Rand) FloatH() float32 { return float32(r.Uint32()>>8) * (1.0 / 16777216.0) }

// FloatO returns a draw on the open interval (0, 1).
func (r *Rand) FloatO() float32 { return (float32(r.Uint32()>>9) + 0.5) * (1.0 / 8388608.0) }

// Uint8 returns a random byte.
func (r *Rand) Uint8() uint8 { return uint8(r.Uint32()) }

// Bool returns a random boolean.
func (r *Rand) Bool() bool { return r.Uint32()&1 != 0 }

// IntBetween returns a draw on the half-open interval [min, max).
//
// Range reduction is a plain modulo, which carries a small bias for spans
// that do not evenly divide 2^31. The bias is kept on purpose: a rejection
// sampler would consume a variable number of draws and break seed-for-seed
// output compatibility.
func (r *Rand) IntBetween(min, max int32) int32 { return r.PosInt32()%(max-min) + min }

// FloatBetween returns a draw on the closed interval [min, max].
func (r *Rand) FloatBetween(min, max float32) float32 { return r.FloatC()*(max-min) + min }

// normalScale converts the difference of the raw IEEE-754 bit patterns of
// u and 1-u into an approximate standard normal deviate. The exponent and
// mantissa of a float, read as an integer, grow monotonically with the
// float itself, giving a cheap piecewise-log approximation of
// sqrt(2)*erfinv(2u-1).
const normalScale = 5.0003944e-8

// FloatNormal returns an approximately normal draw with mean 0 and
// standard deviation 1. This is a fast closed-form approximation of the
// exact quantile, not a precise Gaussian sampler.
func (r *Rand) FloatNormal() float32 {
	u1 := r.FloatO()
	u2 := 1.0 - u1
	return normalScale * float32(int32(math.Float32bits(u1))-int32(math.Float32bits(u2)))
}

// FloatNormalAt returns an approximately normal draw with the given mean
// and standard deviation.
func (r *Rand) FloatNormalAt(mean, stdDev float32) float32 {
	return r.FloatNormal()*stdDev + mean
}

// Shuffle permutes arr in place with a Fisher-Yates shuffle, walking from
// the last index down and drawing one Uint32 per position.
func Shuffle[T any](r *Rand, arr []T) {
	for size := uint32(len(arr)); size > 0; size-- {
		swap := r.Uint32() % size
		arr[size-1], arr[swap] = arr[swap], arr[size-1]
	}
}

// Element returns a uniformly drawn element of arr.
// It panics if arr is empty.
func Element[T any](r *Rand, arr []T) T {
	return arr[r.Uint32()%uint32(len(arr))]
}
