// Write primitives for the offset-addressed byte file.
//
// All writes go through put, which performs the WriteAt and grows the
// tracked size to off+len when the write lands at or past the current
// end. Writing beyond the end with a gap is permitted — the OS
// extends the file and the gap's contents are unspecified; callers
// must not rely on zero-fill.
//
// Write-path errors are recoverable by design: a partial write to an
// LSM data file is handled above this layer by discarding and
// rebuilding the affected table, so PutN, AppendN and Truncate report
// failure without further cleanup. The tracked size is only advanced
// after a successful write, so a failed call leaves Size() unchanged.
package diskio

import (
	"encoding/binary"
	"fmt"
)

// put writes b at off and advances the tracked size if the file grew.
func (f *File) put(off int64, b []byte) error {
	if f.f == nil {
		return ErrClosed
	}
	if off < 0 {
		return fmt.Errorf("%w: negative offset %d", ErrOutOfRange, off)
	}

	if _, err := f.f.WriteAt(b, off); err != nil {
		return fmt.Errorf("write %s at %d: %w", f.path, off, err)
	}
	if end := off + int64(len(b)); end > f.size {
		f.size = end
	}
	return nil
}

// PutUint8 writes one byte at off.
func (f *File) PutUint8(off int64, v uint8) error {
	return f.put(off, []byte{v})
}

// PutUint16 writes a little-endian 2-byte integer at off.
func (f *File) PutUint16(off int64, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return f.put(off, b[:])
}

// PutUint32 writes a little-endian 4-byte integer at off.
func (f *File) PutUint32(off int64, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return f.put(off, b[:])
}

// PutUint64 writes a little-endian 8-byte integer at off.
func (f *File) PutUint64(off int64, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return f.put(off, b[:])
}

// PutInt32 writes a little-endian signed 4-byte integer at off.
func (f *File) PutInt32(off int64, v int32) error {
	return f.PutUint32(off, uint32(v))
}

// AppendUint64 writes a little-endian 8-byte integer at the current
// end of the file, growing Size() by 8.
func (f *File) AppendUint64(v uint64) error {
	return f.PutUint64(f.size, v)
}

// AppendInt32 writes a little-endian signed 4-byte integer at the
// current end of the file, growing Size() by 4.
func (f *File) AppendInt32(v int32) error {
	return f.PutInt32(f.size, v)
}

// Truncate shrinks the file to exactly n bytes, preserving the first
// n bytes unchanged. Growth is not supported: n > Size() fails with
// ErrOutOfRange.
func (f *File) Truncate(n int64) error {
	if f.f == nil {
		return ErrClosed
	}
	if n < 0 || n > f.size {
		return fmt.Errorf("%w: truncate to %d with size %d", ErrOutOfRange, n, f.size)
	}

	if err := f.f.Truncate(n); err != nil {
		return fmt.Errorf("truncate %s to %d: %w", f.path, n, err)
	}
	f.size = n
	return nil
}
