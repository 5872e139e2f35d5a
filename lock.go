// OS-level exclusive lock enforcing single ownership of a file.
//
// A File is a move-only resource: exactly one live handle may hold a
// given path. The lock is taken non-blocking and exclusive at open
// (flock on Unix, LockFileEx on Windows) and released at Close, so a
// second process — or a second handle in the same process — opening
// the same path fails immediately with ErrLocked instead of silently
// sharing the fd's contents.
package diskio

import (
	"os"
)

// fileLock holds the exclusive lock on a handle's file descriptor.
// It has no mutex of its own: the handle is single-owner by contract,
// and acquire/release happen only inside Open, Create and Close.
type fileLock struct {
	f *os.File
}

// acquire takes the exclusive lock, failing with ErrLocked if any
// other live handle holds it.
func (l *fileLock) acquire() error {
	if l.f == nil {
		return nil
	}
	return l.lock()
}

// release drops the lock. Closing the fd would release it anyway;
// dropping explicitly keeps the unlock visible on every exit path.
func (l *fileLock) release() error {
	if l.f == nil {
		return nil
	}
	return l.unlock()
}
