package lock

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockFileExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	f, err := LockFile(path)
	assert.Nil(t, err)

	_, err = LockFile(path)
	assert.NotNil(t, err)

	UnlockFile(f)

	f, err = LockFile(path)
	assert.Nil(t, err)
	UnlockFile(f)
}

func TestLockFileSidecarName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	f, err := LockFile(path)
	assert.Nil(t, err)
	defer UnlockFile(f)

	assert.Equal(t, path+".lock", f.Name())
}
