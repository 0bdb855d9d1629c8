package hash

import "encoding/binary"

// Pair folds two 64-bit keys into one with the Cantor-style pairing
// function f(a, b) = ((a+b)^2 + (a+b))/2 + b. Results grow proportionally
// to O(a*b) and the function is asymmetric: Pair(a, b) != Pair(b, a) for
// distinct inputs. Overflow wraps, which is acceptable for hashing.
func Pair(a, b uint64) uint64 {
	sum := a + b
	return ((sum*sum + sum) >> 1) + b
}

// Pair32 is the 32-bit width variant of Pair.
func Pair32(a, b uint32) uint32 {
	sum := a + b
	return ((sum*sum + sum) >> 1) + b
}

// Combine folds any number of 64-bit keys into one. Three or more keys are
// composed in a fixed balanced pairwise order, never strictly left to
// right, to keep intermediate magnitudes as small as possible and reduce
// overflow. Combine of a single key returns it unchanged; Combine with no
// keys returns 0.
func Combine(keys ...uint64) uint64 {
	switch len(keys) {
	case 0:
		return 0
	case 1:
		return keys[0]
	case 2:
		return Pair(keys[0], keys[1])
	case 3:
		return Pair(Pair(keys[0], keys[1]), keys[2])
	case 4:
		return Combine(keys[0], keys[1], Pair(keys[2], keys[3]))
	case 5:
		return Combine(keys[0], keys[1], keys[2], Pair(keys[3], keys[4]))
	case 6:
		return Combine(keys[0], keys[1], Pair(keys[2], keys[3]), keys[4], keys[5])
	case 7:
		return Combine(keys[0], Pair(keys[1], keys[2]), keys[3], keys[4], keys[5], keys[6])
	case 8:
		return Combine(Pair(keys[0], keys[1]), keys[2], keys[3], keys[4], keys[5], keys[6], keys[7])
	default:
		head := make([]uint64, 8)
		copy(head, keys[:7])
		head[7] = Combine(keys[7:]...)
		return Combine(head...)
	}
}

// Combine32 is the 32-bit width variant of Combine.
func Combine32(keys ...uint32) uint32 {
	switch len(keys) {
	case 0:
		return 0
	case 1:
		return keys[0]
	case 2:
		return Pair32(keys[0], keys[1])
	case 3:
		return Pair32(Pair32(keys[0], keys[1]), keys[2])
	case 4:
		return Combine32(keys[0], keys[1], Pair32(keys[2], keys[3]))
	case 5:
		return Combine32(keys[0], keys[1], keys[2], Pair32(keys[3], keys[4]))
	case 6:
		return Combine32(keys[0], keys[1], Pair32(keys[2], keys[3]), keys[4], keys[5])
	case 7:
		return Combine32(keys[0], Pair32(keys[1], keys[2]), keys[3], keys[4], keys[5], keys[6])
	case 8:
		return Combine32(Pair32(keys[0], keys[1]), keys[2], keys[3], keys[4], keys[5], keys[6], keys[7])
	default:
		head := make([]uint32, 8)
		copy(head, keys[:7])
		head[7] = Combine32(keys[7:]...)
		return Combine32(head...)
	}
}

// CombineHash folds the keys and mixes the result to a 64-bit hash.
func CombineHash(keys ...uint64) uint64 { return Uint64(Combine(keys...)) }

// CombineHash32 folds the keys and mixes the result to a 32-bit hash.
func CombineHash32(keys ...uint32) uint32 { return Uint32(Combine32(keys...)) }

// words64 decomposes p into little-endian 64-bit chunks, zero-padding the
// final partial chunk to a whole-chunk boundary.
func words64(p []byte) []uint64 {
	n := (len(p) + 7) / 8
	words := make([]uint64, n)
	for i := 0; i < n; i++ {
		chunk := p[i*8:]
		if len(chunk) >= 8 {
			words[i] = binary.LittleEndian.Uint64(chunk)
			continue
		}
		var buf [8]byte
		copy(buf[:], chunk)
		words[i] = binary.LittleEndian.Uint64(buf[:])
	}
	return words
}

// words32 decomposes p into little-endian 32-bit chunks, zero-padding the
// final partial chunk.
func words32(p []byte) []uint32 {
	n := (len(p) + 3) / 4
	words := make([]uint32, n)
	for i := 0; i < n; i++ {
		chunk := p[i*4:]
		if len(chunk) >= 4 {
			words[i] = binary.LittleEndian.Uint32(chunk)
			continue
		}
		var buf [4]byte
		copy(buf[:], chunk)
		words[i] = binary.LittleEndian.Uint32(buf[:])
	}
	return words
}

// Fold64 folds a chunked value into a single 64-bit key: the first word is
// the accumulator seed and every following word is paired in. The result
// is unmixed; pass it through Uint64 (or use Bytes64) for a finished hash.
func Fold64(words []uint64) uint64 {
	if len(words) == 0 {
		return 0
	}
	x := words[0]
	for _, w := range words[1:] {
		x = Pair(x, w)
	}
	return x
}

// Fold32 is the 32-bit width variant of Fold64.
func Fold32(words []uint32) uint32 {
	if len(words) == 0 {
		return 0
	}
	x := words[0]
	for _, w := range words[1:] {
		x = Pair32(x, w)
	}
	return x
}

// Bytes64 hashes an arbitrary fixed-size value exposed as its byte view.
// The bytes are decomposed into zero-padded little-endian 64-bit chunks,
// folded pairwise, and mixed once. The hasher never interprets the bytes
// semantically, so any two values with identical byte views collide by
// construction.
func Bytes64(p []byte) uint64 { return Uint64(Fold64(words64(p))) }

// Bytes32 is the 32-bit width variant of Bytes64.
func Bytes32(p []byte) uint32 { return Uint32(Fold32(words32(p))) }

// Bytes64Seeded hashes a byte view together with a seed.
func Bytes64Seeded(p []byte, seed uint64) uint64 { return Uint64Seeded(Fold64(words64(p)), seed) }

// Bytes32Seeded is the 32-bit width variant of Bytes64Seeded.
func Bytes32Seeded(p []byte, seed uint32) uint32 { return Uint32Seeded(Fold32(words32(p)), seed) }

// String64 hashes s by folding each byte into a zero accumulator and
// mixing once. The C heritage of the formula terminated at a NUL byte;
// Go strings carry their length, so every byte participates.
func String64(s string) uint64 {
	var x uint64
	for i := 0; i < len(s); i++ {
		x = Pair(x, uint64(s[i]))
	}
	return Uint64(x)
}

// String32 is the 32-bit width variant of String64.
func String32(s string) uint32 {
	var x uint32
	for i := 0; i < len(s); i++ {
		x = Pair32(x, uint32(s[i]))
	}
	return Uint32(x)
}

// String64Seeded hashes s together with a seed.
func String64Seeded(s string, seed uint64) uint64 {
	var x uint64
	for i := 0; i < len(s); i++ {
		x = Pair(x, uint64(s[i]))
	}
	return Uint64Seeded(x, seed)
}

// String32Seeded is the 32-bit width variant of String64Seeded.
func String32Seeded(s string, seed uint32) uint32 {
	var x uint32
	for i := 0; i < len(s); i++ {
		x = Pair32(x, uint32(s[i]))
	}
	return Uint32Seeded(x, seed)
}
