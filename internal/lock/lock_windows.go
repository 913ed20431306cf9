//go:build windows

package lock

import (
	"fmt"
	"os"
)

// LockFile acquires an exclusive lock guarding the store file at path.
//
// On Windows this is implemented by atomically creating a sidecar file
// named path + ".lock". If the file already exists, the store is assumed
// to be open in another process.
//
// The returned file handle must be kept open for the duration of the lock.
func LockFile(path string) (*os.File, error) {
	lockPath := path + ".lock"

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("store %s already in use by another process", path)
	}

	return f, nil
}

// UnlockFile releases a lock acquired via LockFile.
//
// On Windows this removes the sidecar file from disk. UnlockFile should be
// called exactly once for each successful LockFile call.
func UnlockFile(f *os.File) {
	name := f.Name()
	f.Close()
	os.Remove(name)
}
