// Read primitives for the offset-addressed byte file.
//
// Every read goes through Bytes, which enforces the single bounds
// rule: a span [off, off+n) is readable iff off+n <= Size(). Reads
// use ReadAt so they never disturb the file descriptor's seek
// position — the Cursor keeps its own offset instead.
//
// The fixed-width readers decode little-endian. Writer and reader
// processes therefore agree on byte order regardless of platform.
package diskio

import (
	"encoding/binary"
	"fmt"
)

// check applies the bounds rule shared by every read operation. The
// comparison is n > size-off rather than off+n > size: the sum can
// wrap negative for astronomical arguments and slip past the bound.
func (f *File) check(off, n int64) error {
	if f.f == nil {
		return ErrClosed
	}
	if off < 0 || n < 0 || n > f.size-off {
		return fmt.Errorf("%w: %d bytes at offset %d with size %d", ErrOutOfRange, n, off, f.size)
	}
	return nil
}

// Bytes returns exactly n bytes starting at off. Fails with
// ErrOutOfRange if the span extends past the current size, which
// covers both over-length reads and reads starting at or past the
// end of the file.
func (f *File) Bytes(off, n int64) ([]byte, error) {
	if err := f.check(off, n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	buf := make([]byte, n)
	if _, err := f.f.ReadAt(buf, off); err != nil {
		return nil, fmt.Errorf("read %s at %d: %w", f.path, off, err)
	}
	return buf, nil
}

// Uint8 reads one byte at off.
func (f *File) Uint8(off int64) (uint8, error) {
	b, err := f.Bytes(off, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint16 reads a little-endian 2-byte integer at off.
func (f *File) Uint16(off int64) (uint16, error) {
	b, err := f.Bytes(off, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Uint32 reads a little-endian 4-byte integer at off.
func (f *File) Uint32(off int64) (uint32, error) {
	b, err := f.Bytes(off, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Uint64 reads a little-endian 8-byte integer at off.
func (f *File) Uint64(off int64) (uint64, error) {
	b, err := f.Bytes(off, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Int32 reads a little-endian signed 4-byte integer at off. The
// signed width is fixed at 4 bytes on the wire; it never varies with
// the platform's int size.
func (f *File) Int32(off int64) (int32, error) {
	v, err := f.Uint32(off)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}
