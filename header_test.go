// Filter header tests.
//
// The header is the trust boundary of filter loading: every field the
// loader acts on — bitmap length, bit count, probe count, algorithm —
// is validated at decode so that a corrupt header cannot drive an
// oversized read or a modulo-by-zero probe. The fixed 128-byte
// encoding with space padding keeps the bitmap at a known offset
// regardless of how many digits the numbers need.
package diskio

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func sampleHeader() *filterHeader {
	return &filterHeader{
		Version:   filterVersion,
		Bits:      9586,
		Hashes:    7,
		Entries:   1000,
		Rate:      0.01,
		Algorithm: AlgXXHash3,
		Length:    42,
		Sum:       "0123456789abcdef",
	}
}

// TestHeaderEncodeShape verifies the fixed size, the space padding
// and the trailing newline. The bitmap is addressed at exactly
// FilterHeaderSize; any drift in the encoded length shifts it.
func TestHeaderEncodeShape(t *testing.T) {
	buf, err := sampleHeader().encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(buf) != FilterHeaderSize {
		t.Fatalf("encoded length = %d, want %d", len(buf), FilterHeaderSize)
	}
	if buf[FilterHeaderSize-1] != '\n' {
		t.Error("header must end with newline")
	}
	if i := bytes.IndexByte(buf, '}'); i < 0 {
		t.Fatal("no JSON object in header")
	} else {
		for _, b := range buf[i+1 : FilterHeaderSize-1] {
			if b != ' ' {
				t.Fatalf("padding byte %q, want space", b)
			}
		}
	}
}

// TestHeaderRoundTrip verifies encode→decode identity for every
// field. A silently dropped or re-typed field would load a filter
// with the wrong shape — a correctness bug that only shows as an
// elevated false-positive rate in production.
func TestHeaderRoundTrip(t *testing.T) {
	h := sampleHeader()
	buf, err := h.encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := decodeFilterHeader(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if *got != *h {
		t.Errorf("round-trip mismatch: got %+v, want %+v", *got, *h)
	}
}

// TestHeaderDecodeRejects walks the validation table: wrong version,
// degenerate shapes, out-of-range rate, unknown algorithm and raw
// garbage must all fail with ErrCorruptFilter.
func TestHeaderDecodeRejects(t *testing.T) {
	mutate := []struct {
		name string
		fn   func(h *filterHeader)
	}{
		{"wrong version", func(h *filterHeader) { h.Version = 99 }},
		{"zero bits", func(h *filterHeader) { h.Bits = 0 }},
		{"zero hashes", func(h *filterHeader) { h.Hashes = 0 }},
		{"zero entries", func(h *filterHeader) { h.Entries = 0 }},
		{"negative length", func(h *filterHeader) { h.Length = -1 }},
		{"oversized bits", func(h *filterHeader) { h.Bits = math.MaxUint64 }},
		{"bits just past limit", func(h *filterHeader) { h.Bits = maxFilterBits + 1 }},
		{"rate zero", func(h *filterHeader) { h.Rate = 0 }},
		{"rate one", func(h *filterHeader) { h.Rate = 1 }},
		{"unknown algorithm", func(h *filterHeader) { h.Algorithm = 9 }},
	}
	for _, m := range mutate {
		t.Run(m.name, func(t *testing.T) {
			h := sampleHeader()
			m.fn(h)
			buf, err := h.encode()
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if _, err := decodeFilterHeader(buf); !errors.Is(err, ErrCorruptFilter) {
				t.Errorf("got %v, want ErrCorruptFilter", err)
			}
		})
	}

	t.Run("garbage", func(t *testing.T) {
		if _, err := decodeFilterHeader([]byte("not json at all")); !errors.Is(err, ErrCorruptFilter) {
			t.Errorf("got %v, want ErrCorruptFilter", err)
		}
	})
}
