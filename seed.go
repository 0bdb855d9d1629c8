package shadegen

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// TimeSeed derives a seed from the microsecond wall-clock timestamp, the
// default source when no explicit seed is given.
func TimeSeed(t time.Time) uint64 {
	return uint64(t.UnixMicro())
}

// PhraseSeed derives a stable seed from an arbitrary phrase by hashing it
// with BLAKE2b-512 and keeping the first eight bytes. Phrases give
// human-readable handles for regenerating a specific artwork.
func PhraseSeed(phrase string) uint64 {
	sum := blake2b.Sum512([]byte(phrase))
	return binary.LittleEndian.Uint64(sum[:8])
}
