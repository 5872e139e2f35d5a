// Compression and integrity for the serialized filter bitmap.
//
// A filter built for a large table carries megabits of mostly-zero
// array; Zstd routinely shrinks it by an order of magnitude. The
// bitmap is stored as raw compressed bytes directly after the header
// — no text armoring is needed in a binary file. An 8-byte Blake2b
// digest of the compressed payload is kept in the header so torn or
// bit-rotted filters are rejected at load rather than silently
// skipping table reads.
package diskio

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/crypto/blake2b"
)

// Shared encoder/decoder — both are documented as safe for concurrent
// use. Allocated once at init because zstd encoder/decoder
// construction is expensive (internal state tables, dictionaries).
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	zstdDecoder, _ = zstd.NewReader(nil)
)

func compress(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	return zstdEncoder.EncodeAll(data, nil)
}

func decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", ErrDecompress, err)
	}
	return out, nil
}

// checksum returns a 16-hex-char Blake2b digest of data.
func checksum(data []byte) string {
	d, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	d.Write(data)
	return fmt.Sprintf("%016x", d.Sum(nil))
}
