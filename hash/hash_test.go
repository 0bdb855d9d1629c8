package hash_test

import (
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genart-io/go-shadegen/hash"
)

//----------------------------------------------------------------------------//
// Core mixer tests
//----------------------------------------------------------------------------//

// TestMixerKnownAnswers pins the mixers to fixed reference outputs; any
// change here breaks every seed-addressed artifact ever generated.
func TestMixerKnownAnswers(t *testing.T) {
	cases64 := []struct {
		in, want uint64
	}{
		{0, 0}, // both mixers fix zero
		{1, 17653970817089864660},
		{2, 388690748815101597},
		{12345, 5108955590772430415},
	}
	for _, tc := range cases64 {
		assert.Equal(t, tc.want, hash.Uint64(tc.in), "Uint64(%d)", tc.in)
	}

	cases32 := []struct {
		in, want uint32
	}{
		{0, 0},
		{1, 1364076727},
		{2, 821347078},
		{12345, 1011272156},
	}
	for _, tc := range cases32 {
		assert.Equal(t, tc.want, hash.Uint32(tc.in), "Uint32(%d)", tc.in)
	}
}

// TestAvalanche verifies that flipping the input by one changes about half
// of the 32 output bits on average.
func TestAvalanche(t *testing.T) {
	const n = 10000

	var total int
	for i := uint32(0); i < n; i++ {
		total += bits.OnesCount32(hash.Uint32(i) ^ hash.Uint32(i+1))
	}

	mean := float64(total) / n
	assert.InDelta(t, 16.0, mean, 2.0, "mean flipped bits")
}

func TestDeterminism(t *testing.T) {
	for _, n := range []uint64{0, 1, 42, math.MaxUint64} {
		assert.Equal(t, hash.Uint64(n), hash.Uint64(n))
		assert.Equal(t, hash.Uint64Seeded(n, 99), hash.Uint64Seeded(n, 99))
	}
}

//----------------------------------------------------------------------------//
// Pairing tests
//----------------------------------------------------------------------------//

func TestPairAsymmetry(t *testing.T) {
	assert.Equal(t, uint64(20), hash.Pair(0, 5))
	assert.Equal(t, uint64(15), hash.Pair(5, 0))
	assert.NotEqual(t, hash.Pair(0, 5), hash.Pair(5, 0))
}

// TestPairDistinctness exercises the bijectivity of the pairing function
// on small inputs, where no overflow can occur.
func TestPairDistinctness(t *testing.T) {
	seen := make(map[uint64][2]uint64)
	for a := uint64(0); a < 50; a++ {
		for b := uint64(0); b < 50; b++ {
			p := hash.Pair(a, b)
			if prev, dup := seen[p]; dup {
				t.Fatalf("Pair(%d, %d) collides with Pair(%d, %d)", a, b, prev[0], prev[1])
			}
			seen[p] = [2]uint64{a, b}
		}
	}
}

// TestCombineBalancedOrder pins the fixed balanced composition orders for
// each arity against their manual pairwise expansion.
func TestCombineBalancedOrder(t *testing.T) {
	p := hash.Pair
	k := []uint64{11, 22, 33, 44, 55, 66, 77, 88, 99}

	assert.Equal(t, uint64(0), hash.Combine())
	assert.Equal(t, k[0], hash.Combine(k[0]))
	assert.Equal(t, p(k[0], k[1]), hash.Combine(k[:2]...))
	assert.Equal(t, p(p(k[0], k[1]), k[2]), hash.Combine(k[:3]...))
	assert.Equal(t, p(p(k[0], k[1]), p(k[2], k[3])), hash.Combine(k[:4]...))
	assert.Equal(t,
		p(p(k[0], k[1]), p(k[2], p(k[3], k[4]))),
		hash.Combine(k[:5]...))

	// Nine keys recurse through the eight-key case with the tail folded.
	assert.Equal(t,
		hash.Combine(k[0], k[1], k[2], k[3], k[4], k[5], k[6], hash.Pair(k[7], k[8])),
		hash.Combine(k...))
}

func TestCombine32MatchesShape(t *testing.T) {
	p := hash.Pair32
	k := []uint32{3, 5, 7, 9}
	assert.Equal(t, p(p(k[0], k[1]), k[2]), hash.Combine32(k[:3]...))
	assert.Equal(t, p(p(k[0], k[1]), p(k[2], k[3])), hash.Combine32(k...))
}

func TestSeededComposition(t *testing.T) {
	assert.Equal(t, hash.Uint64(hash.Pair(123, 456)), hash.Uint64Seeded(123, 456))
	assert.Equal(t, hash.Uint32(hash.Pair32(123, 456)), hash.Uint32Seeded(123, 456))
	assert.NotEqual(t, hash.Uint64(123), hash.Uint64Seeded(123, 456))
}

//----------------------------------------------------------------------------//
// Composite hashing tests
//----------------------------------------------------------------------------//

func TestBytesChunking(t *testing.T) {
	// A single sub-chunk byte zero-pads to one little-endian word.
	assert.Equal(t, hash.Uint64(1), hash.Bytes64([]byte{1}))
	assert.Equal(t, hash.Uint32(1), hash.Bytes32([]byte{1}))

	// Two full words fold through Pair before mixing.
	two := []byte{
		1, 0, 0, 0, 0, 0, 0, 0,
		2, 0, 0, 0, 0, 0, 0, 0,
	}
	assert.Equal(t, hash.Uint64(hash.Pair(1, 2)), hash.Bytes64(two))

	// Nine bytes: word 0 plus a padded tail word.
	nine := append(make([]byte, 8), 3)
	nine[0] = 7
	assert.Equal(t, hash.Uint64(hash.Pair(7, 3)), hash.Bytes64(nine))

	// Padding is part of the view: distinct lengths hash differently.
	assert.NotEqual(t, hash.Bytes64([]byte{1}), hash.Bytes64([]byte{1, 0, 0, 0, 0, 0, 0, 0, 0}))
}

func TestFoldWords(t *testing.T) {
	assert.Equal(t, uint64(0), hash.Fold64(nil))
	assert.Equal(t, uint64(9), hash.Fold64([]uint64{9}))
	assert.Equal(t, hash.Pair(hash.Pair(1, 2), 3), hash.Fold64([]uint64{1, 2, 3}))
}

func TestStringHashing(t *testing.T) {
	// Manual fold of "ab": Pair(Pair(0, 'a'), 'b') then one mix.
	want := hash.Uint64(hash.Pair(hash.Pair(0, 'a'), 'b'))
	assert.Equal(t, want, hash.String64("ab"))

	assert.Equal(t, hash.String64("seed phrase"), hash.String64("seed phrase"))
	assert.NotEqual(t, hash.String64("seed phrase"), hash.String64("seed phrasf"))
	assert.NotEqual(t, hash.String64("abc"), hash.String64Seeded("abc", 1))
	assert.NotEqual(t, hash.String32("abc"), hash.String32Seeded("abc", 1))
}

//----------------------------------------------------------------------------//
// Derived distribution tests
//----------------------------------------------------------------------------//

func TestDerivedIntervals(t *testing.T) {
	for n := uint32(0); n < 5000; n++ {
		assert.GreaterOrEqual(t, hash.FloatC(n), float32(0))
		assert.LessOrEqual(t, hash.FloatC(n), float32(1))

		v := hash.FloatO(n)
		assert.Greater(t, v, float32(0))
		assert.Less(t, v, float32(1))

		d := hash.DoubleO(uint64(n))
		assert.Greater(t, d, 0.0)
		assert.Less(t, d, 1.0)

		i := hash.IntBetween(n, 3, 7)
		assert.GreaterOrEqual(t, i, int32(3))
		assert.Less(t, i, int32(7))
	}
}

func TestFloatNormalMoments(t *testing.T) {
	const n = 100000

	var sum, sumSq float64
	for i := uint32(0); i < n; i++ {
		v := float64(hash.FloatNormal(i))
		sum += v
		sumSq += v * v
	}

	mean := sum / n
	stdDev := math.Sqrt(sumSq/n - mean*mean)
	assert.InDelta(t, 0.0, mean, 0.02)
	// The approximation runs slightly wide of a true unit normal.
	assert.InDelta(t, 1.0, stdDev, 0.15)
}

//----------------------------------------------------------------------------//
// Seed-addressed array helper tests
//----------------------------------------------------------------------------//

func TestShuffleSeeded(t *testing.T) {
	base := make([]int, 64)
	for i := range base {
		base[i] = i
	}

	a := append([]int(nil), base...)
	b := append([]int(nil), base...)
	hash.ShuffleSeeded64(a, 77)
	hash.ShuffleSeeded64(b, 77)
	require.Equal(t, a, b, "same seed must give the same permutation")

	c := append([]int(nil), base...)
	hash.ShuffleSeeded64(c, 78)
	assert.NotEqual(t, a, c, "different seeds should permute differently")

	seen := make(map[int]bool, len(a))
	for _, v := range a {
		require.False(t, seen[v], "duplicate element %d", v)
		seen[v] = true
	}
}

func TestElementSeeded(t *testing.T) {
	arr := []string{"r", "g", "b", "a"}
	first := hash.ElementSeeded64(arr, 5)
	assert.Equal(t, first, hash.ElementSeeded64(arr, 5))
	assert.Contains(t, arr, hash.ElementSeeded32(arr, 5))
}
