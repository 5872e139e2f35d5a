// File lifecycle: create, open, close, size and durability.
//
// File wraps a single *os.File opened read-write and tracks the byte
// length itself so that Size is O(1) with no stat call. The tracked
// size is updated only after a successful write or truncate, so a
// failed mutation never moves it. An exclusive OS lock is taken at
// open and held until Close, making the handle the sole live owner of
// the underlying resource across processes.
package diskio

import (
	"fmt"
	"os"
)

// File is a durable, offset-addressed file handle. It is not safe for
// concurrent use; the calling engine serialises access.
type File struct {
	path string
	f    *os.File
	lock *fileLock
	size int64
}

// Create creates or truncates the file at path and writes data as its
// entire initial content. The returned handle has Size() == len(data).
func Create(path string, data []byte) (*File, error) {
	// Truncation waits until the lock is held: opening with O_TRUNC
	// would destroy the content of a file another handle still owns
	// even though the Create itself is about to be refused.
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	lock := &fileLock{f: f}
	if err := lock.acquire(); err != nil {
		f.Close()
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	if err := f.Truncate(0); err != nil {
		lock.release()
		f.Close()
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	if len(data) > 0 {
		if _, err := f.WriteAt(data, 0); err != nil {
			lock.release()
			f.Close()
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
	}

	return &File{path: path, f: f, lock: lock, size: int64(len(data))}, nil
}

// Open attaches to the file at path. A missing file fails with
// ErrNotFound unless create is true, in which case an empty file is
// created. Size is initialised from the actual file length.
func Open(path string, create bool) (*File, error) {
	flags := os.O_RDWR
	if create {
		flags |= os.O_CREATE
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		if !create && os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	lock := &fileLock{f: f}
	if err := lock.acquire(); err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		lock.release()
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &File{path: path, f: f, lock: lock, size: info.Size()}, nil
}

// Size returns the current length in bytes. No I/O is performed.
func (f *File) Size() int64 {
	return f.size
}

// Path returns the path the handle was opened with.
func (f *File) Path() string {
	return f.path
}

// Sync forces previously written bytes to durable storage, blocking
// until the underlying flush completes. Writes without an intervening
// Sync are not guaranteed to survive a crash.
func (f *File) Sync() error {
	if f.f == nil {
		return ErrClosed
	}
	return f.f.Sync()
}

// Cursor returns a sequential view over the handle starting at
// offset 0. The cursor must not outlive the handle.
func (f *File) Cursor() *Cursor {
	return &Cursor{f: f}
}

// Close releases the OS lock and file descriptor. All subsequent
// operations on the handle fail with ErrClosed. Close is idempotent.
func (f *File) Close() error {
	if f.f == nil {
		return nil
	}

	f.lock.release()
	err := f.f.Close()
	f.f = nil
	if err != nil {
		return fmt.Errorf("close %s: %w", f.path, err)
	}
	return nil
}
