package core

import (
	"log"
	"os"
	"sync"

	"minicask/internal/index"
	"minicask/internal/lock"
	"minicask/internal/logfile"
	"minicask/internal/record"
)

// Engine orchestrates the record codec, log file and in-memory index to
// provide exact-key lookups over a single append-only file.
//
// One mutex guards the pair {write cursor, index} so the append and the
// index update of a mutation are indivisible relative to other mutations.
// Get captures its index entry under the read lock and then reads an
// already flushed, immutable byte range without holding any lock.
type Engine struct {
	mu       sync.RWMutex
	log      *logfile.LogFile
	index    index.Indexer
	lockFile *os.File
	path     string
	closed   bool
}

// Open opens or creates the store file at path and rebuilds the in-memory
// index by replaying the log from the beginning.
//
// A torn record at the log tail (a crash mid-append) does not fail Open:
// every record preceding it is kept, a warning is logged, and the write
// cursor is moved back to the end of the valid prefix so the next append
// continues from there. The torn bytes are never served; they are
// overwritten by future appends rather than erased.
func Open(path string, opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	lf, err := lock.LockFile(path)
	if err != nil {
		return nil, err
	}

	l, err := logfile.Open(path)
	if err != nil {
		lock.UnlockFile(lf)
		return nil, err
	}

	eng := &Engine{
		log:      l,
		index:    index.New(cfg.indexType),
		lockFile: lf,
		path:     path,
	}

	eng.replay()

	return eng, nil
}

// replay rebuilds the index from a full scan of the log in append order:
// later records win, tombstones remove. A corrupt tail is absorbed here:
// it only trims how far the scan got, never fails the open. Must run
// before the engine is shared.
func (e *Engine) replay() {
	s := e.log.Scanner()

	for s.Scan() {
		rec := s.Record()
		if rec.IsTombstone() {
			e.index.Delete(rec.Key)
			continue
		}
		e.index.Put(rec.Key, index.Entry{Offset: s.Offset(), Size: rec.Size()})
	}

	if err := s.Err(); err != nil {
		log.Printf("minicask: %s: discarding corrupted log tail: %v", e.path, err)
		e.log.ResetCursor(s.Offset())
	}
}

// Get returns the current value for key. It returns ErrKeyNotFound if the
// key is absent and ErrCorrupt if the stored record fails checksum
// verification; a value that failed verification is never returned.
func (e *Engine) Get(key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrKeyIsEmpty
	}

	e.mu.RLock()
	if e.closed {
		e.mu.RUnlock()
		return nil, ErrClosed
	}
	entry, ok := e.index.Get(key)
	e.mu.RUnlock()

	if !ok {
		return nil, ErrKeyNotFound
	}

	// The entry points at an already flushed, immutable byte range, so
	// the read needs no lock.
	buf, err := e.log.ReadAt(entry.Offset, entry.Size)
	if err != nil {
		return nil, err
	}

	rec, err := record.Decode(buf)
	if err != nil {
		return nil, err
	}

	return rec.Value, nil
}

// Insert stores a new key. It returns ErrKeyAlreadyExists if the key is
// already present; overwriting requires an explicit Update.
func (e *Engine) Insert(key, value []byte) error {
	if len(key) == 0 {
		return ErrKeyIsEmpty
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if _, ok := e.index.Get(key); ok {
		return ErrKeyAlreadyExists
	}

	return e.appendLocked(record.New(key, value))
}

// Update overwrites the value of an existing key. It returns
// ErrKeyNotFound if the key is absent. The previous record stays in the
// log but becomes unreachable through the index.
func (e *Engine) Update(key, value []byte) error {
	if len(key) == 0 {
		return ErrKeyIsEmpty
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if _, ok := e.index.Get(key); !ok {
		return ErrKeyNotFound
	}

	return e.appendLocked(record.New(key, value))
}

// Delete removes key from the store. It returns ErrKeyNotFound if the key
// is absent. A tombstone record is appended so a later replay reconstructs
// the deletion instead of reviving the last value.
func (e *Engine) Delete(key []byte) error {
	if len(key) == 0 {
		return ErrKeyIsEmpty
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if _, ok := e.index.Get(key); !ok {
		return ErrKeyNotFound
	}

	if err := e.appendLocked(record.NewTombstone(key)); err != nil {
		return err
	}
	e.index.Delete(key)
	return nil
}

// appendLocked encodes and appends a record, then points the index at it
// for live records. The caller must hold the write lock so the append
// offset and the index update land as one indivisible step.
func (e *Engine) appendLocked(rec *record.Record) error {
	data, err := record.Encode(rec)
	if err != nil {
		return err
	}

	offset, err := e.log.Append(data)
	if err != nil {
		return err
	}

	if !rec.IsTombstone() {
		e.index.Put(rec.Key, index.Entry{Offset: offset, Size: rec.Size()})
	}
	return nil
}

// Has reports whether key is currently live in the store.
func (e *Engine) Has(key []byte) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return false
	}
	_, ok := e.index.Get(key)
	return ok
}

// Len returns the number of live keys.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return 0
	}
	return e.index.Len()
}

// Keys returns a snapshot of all live keys. Ordering depends on the index
// implementation: unordered for the map index, ascending for the btree.
func (e *Engine) Keys() [][]byte {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return nil
	}
	return e.index.Keys()
}

// Path returns the store file path the engine was opened with.
func (e *Engine) Path() string {
	return e.path
}

// Sync flushes the log file to stable storage. Every append already
// syncs before returning, so this is only an explicit extra barrier.
func (e *Engine) Sync() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	return e.log.Sync()
}

// Close releases the store lock and closes the log file. Close is
// idempotent; operations after Close return ErrClosed.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true

	err := e.log.Close()
	lock.UnlockFile(e.lockFile)
	return err
}
