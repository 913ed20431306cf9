// Package index holds the in-memory mapping from key to the on-disk
// location of the key's most recent live record. The index is entirely
// derived from the log file and is rebuilt by replaying it on startup;
// it is never persisted.
package index

import "sync"

// Entry locates the latest record for a key inside the log file.
type Entry struct {
	Offset int64 // byte offset where the record's header begins
	Size   int64 // total record length (header + key + value), one positioned read
}

// Indexer abstracts the in-memory index so the engine can swap the
// backing structure. All implementations are safe for concurrent use.
type Indexer interface {
	// Put inserts or overwrites the entry for key.
	Put(key []byte, entry Entry)
	// Get returns the entry for key and whether it exists.
	Get(key []byte) (Entry, bool)
	// Delete removes key, reporting whether it was present.
	Delete(key []byte) bool
	// Len returns the number of live keys.
	Len() int
	// Keys returns a snapshot of all live keys.
	Keys() [][]byte
}

// IndexType selects the Indexer implementation backing an engine.
type IndexType int8

const (
	// Map is a hash map index. Lookups are O(1); Keys is unordered.
	Map IndexType = iota + 1
	// BTree is a B-tree index. Keys come back in sorted order.
	BTree
)

// New returns an empty Indexer of the given type.
func New(typ IndexType) Indexer {
	switch typ {
	case BTree:
		return NewBTreeIndex()
	default:
		return NewMapIndex()
	}
}

// MapIndex is the default Indexer: a hash map guarded by a RWMutex.
type MapIndex struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMapIndex() *MapIndex {
	return &MapIndex{entries: make(map[string]Entry)}
}

func (m *MapIndex) Put(key []byte, entry Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[string(key)] = entry
}

func (m *MapIndex) Get(key []byte) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[string(key)]
	return entry, ok
}

func (m *MapIndex) Delete(key []byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[string(key)]
	if ok {
		delete(m.entries, string(key))
	}
	return ok
}

func (m *MapIndex) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *MapIndex) Keys() [][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([][]byte, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, []byte(k))
	}
	return keys
}
