// Header for the serialized bloom filter.
//
// The header is exactly 128 bytes: a JSON object padded with spaces
// and terminated with a newline. It carries the filter's shape and
// construction parameters plus the length and checksum of the
// compressed bitmap that follows it, so a reader can validate the
// payload before trusting a single bit.
package diskio

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// FilterHeaderSize is the fixed size of the serialized filter header
// in bytes.
const FilterHeaderSize = 128

// filterVersion identifies the on-disk filter layout.
const filterVersion = 1

// maxFilterBits caps the bit count a header may declare: 1 GiB of
// bitmap, far beyond any filter this package constructs. The cap also
// keeps (Bits+7)/8 safely inside int64, so a forged bit count can
// neither overflow the bitmap-length check nor allocate unbounded
// memory at load.
const maxFilterBits = 1 << 33

// filterHeader describes a serialized bloom filter.
type filterHeader struct {
	Version   int     `json:"_v"`   // On-disk layout version
	Bits      uint64  `json:"_m"`   // Bit array length
	Hashes    int     `json:"_k"`   // Probes per key
	Entries   int     `json:"_n"`   // Expected insertions at construction
	Rate      float64 `json:"_p"`   // Target false-positive rate
	Algorithm int     `json:"_alg"` // Probe hash algorithm
	Length    int     `json:"_len"` // Compressed bitmap length in bytes
	Sum       string  `json:"_sum"` // Blake2b checksum of the compressed bitmap
}

// encode serialises the header to exactly FilterHeaderSize bytes with
// space padding and a trailing newline.
func (h *filterHeader) encode() ([]byte, error) {
	data, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	if len(data) > FilterHeaderSize-1 {
		return nil, fmt.Errorf("%w: header too large", ErrCorruptFilter)
	}

	buf := make([]byte, FilterHeaderSize)
	copy(buf, data)
	for i := len(data); i < FilterHeaderSize-1; i++ {
		buf[i] = ' '
	}
	buf[FilterHeaderSize-1] = '\n'

	return buf, nil
}

// decodeFilterHeader parses a header and validates every field a
// loader depends on, so a corrupt length or bit count cannot drive an
// oversized read or a modulo-by-zero in the probe loop.
func decodeFilterHeader(buf []byte) (*filterHeader, error) {
	var h filterHeader
	if err := json.Unmarshal(bytes.TrimSpace(buf), &h); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptFilter, err)
	}

	switch {
	case h.Version != filterVersion:
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptFilter, h.Version)
	case h.Bits < 1 || h.Hashes < 1 || h.Entries < 1 || h.Length < 0:
		return nil, fmt.Errorf("%w: non-positive shape", ErrCorruptFilter)
	case h.Bits > maxFilterBits:
		return nil, fmt.Errorf("%w: bit count %d exceeds limit", ErrCorruptFilter, h.Bits)
	case h.Rate <= 0 || h.Rate >= 1:
		return nil, fmt.Errorf("%w: false-positive rate %g", ErrCorruptFilter, h.Rate)
	}
	switch h.Algorithm {
	case AlgXXHash3, AlgFNV1a, AlgBlake2b:
	default:
		return nil, fmt.Errorf("%w: unknown hash algorithm %d", ErrCorruptFilter, h.Algorithm)
	}

	return &h, nil
}
