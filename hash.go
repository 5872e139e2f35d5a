// Probe hash families for the bloom filter.
//
// Each algorithm yields two independent 64-bit base hashes (h1, h2)
// per key; the filter derives its k bit positions by double hashing,
// g_i = h1 + i·h2 mod m. h2 is forced odd so that consecutive probes
// never collapse onto one position when m is even.
package diskio

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Probe hash algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

// xxh3Seed separates h2 from h1 for the xxHash3 family. Any fixed
// nonzero seed works; this is the 64-bit golden ratio.
const xxh3Seed = 0x9e3779b97f4a7c15

// probes returns the two base hashes for key under the given
// algorithm. Positions must be deterministic across processes, so
// every algorithm is unseeded apart from the fixed xxh3Seed.
func probes(key string, alg int) (h1, h2 uint64) {
	switch alg {
	case AlgFNV1a:
		f64 := fnv.New64a()
		f64.Write([]byte(key))
		h1 = f64.Sum64()

		f32 := fnv.New32a()
		f32.Write([]byte(key))
		h2 = uint64(f32.Sum32())
	case AlgBlake2b:
		d, _ := blake2b.New(16, nil) // 16 bytes = two 64-bit halves
		d.Write([]byte(key))
		sum := d.Sum(nil)
		h1 = binary.LittleEndian.Uint64(sum[:8])
		h2 = binary.LittleEndian.Uint64(sum[8:])
	default:
		h1 = xxh3.HashString(key)
		h2 = xxh3.HashStringSeed(key, xxh3Seed)
	}

	h2 |= 1
	return h1, h2
}
