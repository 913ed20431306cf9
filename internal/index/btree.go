package index

import (
	"bytes"
	"sync"

	"github.com/google/btree"
)

// btreeDegree controls node fan-out; 32 is a reasonable default for
// in-memory use.
const btreeDegree = 32

// BTreeIndex is an ordered Indexer backed by google/btree. Keys returns
// keys in ascending byte order, which makes listing output stable.
type BTreeIndex struct {
	// google/btree allows concurrent reads but not concurrent writes,
	// so writes take the exclusive lock.
	mu   sync.RWMutex
	tree *btree.BTree
}

type item struct {
	key   []byte
	entry Entry
}

func (it *item) Less(than btree.Item) bool {
	return bytes.Compare(it.key, than.(*item).key) < 0
}

func NewBTreeIndex() *BTreeIndex {
	return &BTreeIndex{tree: btree.New(btreeDegree)}
}

func (b *BTreeIndex) Put(key []byte, entry Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tree.ReplaceOrInsert(&item{key: key, entry: entry})
}

func (b *BTreeIndex) Get(key []byte) (Entry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	got := b.tree.Get(&item{key: key})
	if got == nil {
		return Entry{}, false
	}
	return got.(*item).entry, true
}

func (b *BTreeIndex) Delete(key []byte) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tree.Delete(&item{key: key}) != nil
}

func (b *BTreeIndex) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tree.Len()
}

func (b *BTreeIndex) Keys() [][]byte {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([][]byte, 0, b.tree.Len())
	b.tree.Ascend(func(i btree.Item) bool {
		keys = append(keys, i.(*item).key)
		return true
	})
	return keys
}
