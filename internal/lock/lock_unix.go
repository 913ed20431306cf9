//go:build unix

package lock

import (
	"fmt"
	"os"
	"syscall"
)

// LockFile acquires an exclusive, non-blocking advisory lock guarding the
// store file at path.
//
// On Unix systems this uses flock(2) on a sidecar file named path + ".lock".
// If the lock cannot be acquired, the store is assumed to be open in
// another process.
//
// The returned file handle must remain open for the duration of the lock.
func LockFile(path string) (*os.File, error) {
	lockPath := path + ".lock"

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to open lock file: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		f.Close()
		return nil, fmt.Errorf("store %s already in use by another process", path)
	}

	return f, nil
}

// UnlockFile releases a lock acquired via LockFile.
//
// On Unix systems this releases the advisory flock and closes the file.
func UnlockFile(f *os.File) {
	syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
	f.Close()
}
