// Package core implements a single-file Bitcask storage engine: every
// mutation appends a checksummed record to an append-only log file, reads
// are served through an in-memory index of key to log offset, and the
// index is rebuilt by replaying the log on startup.
//
// Example:
//
//	eng, err := core.Open("store.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Close()
//
//	err = eng.Insert([]byte("foo"), []byte("bar"))
//	val, err := eng.Get([]byte("foo"))
package core
