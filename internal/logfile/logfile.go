// Package logfile implements the append-only log file underneath a store:
// durable appends at a single write cursor, positioned reads of already
// written records, and a restartable scanner used to rebuild the index.
package logfile

import (
	"fmt"
	"os"
)

// LogFile is the single source of truth on disk. It is owned exclusively
// by one engine for the process lifetime; records are only ever appended,
// never rewritten in place.
//
// LogFile itself performs no locking. The engine serializes all calls that
// touch the write cursor; positioned reads of already flushed byte ranges
// are safe concurrently.
type LogFile struct {
	f      *os.File
	offset int64 // write cursor; next Append lands here
}

// Open opens the log file at path, creating it if absent. The write
// cursor starts at the current end of file.
func Open(path string) (*LogFile, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat log file: %w", err)
	}

	return &LogFile{f: f, offset: info.Size()}, nil
}

// Append writes data at the current write cursor and flushes it to stable
// storage before returning. The returned offset is where the data begins;
// once Append returns, the data is visible to future restarts.
func (l *LogFile) Append(data []byte) (int64, error) {
	start := l.offset

	if _, err := l.f.WriteAt(data, start); err != nil {
		return 0, fmt.Errorf("append at offset %d: %w", start, err)
	}
	if err := l.f.Sync(); err != nil {
		return 0, fmt.Errorf("sync after append: %w", err)
	}

	l.offset += int64(len(data))
	return start, nil
}

// ReadAt performs a positioned read of exactly length bytes starting at
// offset. A file shorter than offset+length is an error: the caller's
// index entry is stale, which is an invariant violation rather than a
// normal outcome.
func (l *LogFile) ReadAt(offset, length int64) ([]byte, error) {
	buf := make([]byte, length)
	if _, err := l.f.ReadAt(buf, offset); err != nil {
		return nil, fmt.Errorf("read %d bytes at offset %d: %w", length, offset, err)
	}
	return buf, nil
}

// Offset returns the current write cursor.
func (l *LogFile) Offset() int64 {
	return l.offset
}

// ResetCursor moves the write cursor so the next Append lands at offset.
// Used after recovery finds a torn record at the tail: the valid prefix
// ends at offset and the garbage past it is overwritten by future appends
// rather than erased.
func (l *LogFile) ResetCursor(offset int64) {
	l.offset = offset
}

// Sync flushes the file to stable storage.
func (l *LogFile) Sync() error {
	return l.f.Sync()
}

// Close closes the underlying file handle.
func (l *LogFile) Close() error {
	return l.f.Close()
}
