//go:build unix || linux || darwin

package diskio

import (
	"syscall"
)

func (l *fileLock) lock() error {
	// Non-blocking: a handle that cannot own the file outright must
	// fail at open, not queue behind the current owner.
	err := syscall.Flock(int(l.f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
	if err == syscall.EWOULDBLOCK {
		return ErrLocked
	}
	return err
}

func (l *fileLock) unlock() error {
	return syscall.Flock(int(l.f.Fd()), syscall.LOCK_UN)
}
