// Bloom filter for skipping reads of absent keys.
//
// A table writer inserts every key it writes; a table reader checks
// Contains before issuing any disk read and skips the table entirely
// on a definite miss. The filter is sized at construction from the
// expected insertion count and target false-positive rate and never
// changes shape afterward. Bits are only ever set — there is no
// per-key removal; clearing means discarding or Reset-and-rebuild.
package diskio

import (
	"fmt"
	"math"
)

// Bloom is a fixed-size bit array with k double-hashed probes per
// key. Not safe for concurrent use: the build phase (Add) must
// complete before the query phase (Contains) begins, enforced by the
// caller.
type Bloom struct {
	bits []byte
	m    uint64  // bit array length
	k    int     // probes per key
	n    int     // expected insertions
	p    float64 // target false-positive rate
	alg  int     // probe hash algorithm
}

// NewBloom returns a filter sized for n expected insertions at target
// false-positive rate p, using xxHash3 probes. n must be positive and
// p must be in (0, 1); anything else fails with ErrFilterParams.
//
// Sizing: m = ceil(-n·ln(p) / ln²2) bits, k = round((m/n)·ln 2)
// probes, k >= 1. The observed false-positive rate approaches p at n
// insertions and degrades past it if substantially more keys are
// added; that degradation is expected, not an error.
func NewBloom(n int, p float64) (*Bloom, error) {
	return NewBloomAlg(n, p, AlgXXHash3)
}

// NewBloomAlg is NewBloom with an explicit probe hash algorithm
// (AlgXXHash3, AlgFNV1a or AlgBlake2b).
func NewBloomAlg(n int, p float64, alg int) (*Bloom, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: expected insertions %d", ErrFilterParams, n)
	}
	if p <= 0 || p >= 1 {
		return nil, fmt.Errorf("%w: false-positive rate %g", ErrFilterParams, p)
	}
	switch alg {
	case AlgXXHash3, AlgFNV1a, AlgBlake2b:
	default:
		return nil, fmt.Errorf("%w: unknown hash algorithm %d", ErrFilterParams, alg)
	}

	m := uint64(math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)))
	if m < 1 {
		m = 1
	}
	k := int(math.Round(float64(m) / float64(n) * math.Ln2))
	if k < 1 {
		k = 1
	}

	return &Bloom{
		bits: make([]byte, (m+7)/8),
		m:    m,
		k:    k,
		n:    n,
		p:    p,
		alg:  alg,
	}, nil
}

// Add inserts a key. Re-adding the same key sets the same bits and is
// a no-op beyond that.
func (b *Bloom) Add(key string) {
	h1, h2 := probes(key, b.alg)
	for i := 0; i < b.k; i++ {
		pos := (h1 + uint64(i)*h2) % b.m
		b.bits[pos/8] |= 1 << (pos % 8)
	}
}

// Contains reports whether key might be present. A false result is
// definitive — no false negatives for keys previously added. A true
// result may be a false positive, bounded statistically by the
// construction rate p.
func (b *Bloom) Contains(key string) bool {
	h1, h2 := probes(key, b.alg)
	for i := 0; i < b.k; i++ {
		pos := (h1 + uint64(i)*h2) % b.m
		if b.bits[pos/8]&(1<<(pos%8)) == 0 {
			return false
		}
	}
	return true
}

// Reset clears all bits, returning the filter to its freshly
// constructed state. This is the only way to "remove" keys: discard
// everything and rebuild.
func (b *Bloom) Reset() {
	clear(b.bits)
}

// Bits returns the bit array length m.
func (b *Bloom) Bits() int {
	return int(b.m)
}

// Hashes returns the probe count k.
func (b *Bloom) Hashes() int {
	return b.k
}
