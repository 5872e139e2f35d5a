// Package diskio provides the on-disk I/O core of a log-structured
// merge engine: a durable, offset-addressed file handle (File), a
// sequential view over it (Cursor), and a probabilistic membership
// filter (Bloom) used to skip reads for keys that are definitely not
// in a table.
//
// A File is an undifferentiated byte sequence addressed by absolute
// offset — this package imposes no header or schema and never
// interprets the bytes it stores. Layout belongs to the table writer
// and reader built on top. Fixed-width integers use little-endian
// encoding at 1, 2, 4 or 8 bytes so that files written on one machine
// read identically on another.
//
// A File exclusively owns its OS file resource: opening a path that
// another live handle already holds fails with ErrLocked — even from
// the same process, and even for a read-only second view. Engines
// that reopen a path while the creating handle is still live must
// close the first handle before the second Open. Within a process,
// ownership moves by handing off the *File pointer. The package
// provides no internal locking beyond that — concurrent mutation of
// one handle must be serialised by the calling engine.
package diskio

import "errors"

// Sentinel errors for programmatic handling. Callers use errors.Is to
// distinguish a missing file (ErrNotFound) and a rejected byte span
// (ErrOutOfRange) from corruption (ErrCorruptFilter, ErrDecompress).
// Read-path errors are fatal to the calling operation; write-path
// errors (PutN, AppendN, Truncate, Save) are recoverable — the usual
// response is to discard and rebuild the affected table.
var (
	ErrNotFound      = errors.New("file not found")
	ErrOutOfRange    = errors.New("byte span beyond end of file")
	ErrClosed        = errors.New("file is closed")
	ErrLocked        = errors.New("file is held by another owner")
	ErrFilterParams  = errors.New("invalid bloom filter parameters")
	ErrCorruptFilter = errors.New("corrupt bloom filter")
	ErrDecompress    = errors.New("decompression failed")
)
