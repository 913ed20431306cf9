package core

import (
	"errors"

	"minicask/internal/record"
)

// ErrCorrupt reports a record that failed checksum verification. Alias of
// the record package sentinel so callers can match it with errors.Is
// without importing internal packages.
var ErrCorrupt = record.ErrCorrupt

// ErrKeyNotFound is returned when the requested key is not present in the store.
var ErrKeyNotFound = errors.New("key not found")

// ErrKeyAlreadyExists is returned by Insert when the key is already present.
var ErrKeyAlreadyExists = errors.New("key already exists")

// ErrKeyIsEmpty is returned when an operation is given a zero-length key.
var ErrKeyIsEmpty = errors.New("key is empty")

// ErrClosed is returned when an operation is attempted on a closed engine.
var ErrClosed = errors.New("engine is closed")
