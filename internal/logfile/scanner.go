package logfile

import (
	"encoding/binary"
	"fmt"
	"io"

	"minicask/internal/record"
)

// Scanner iterates the log file's records in append order, from offset 0
// to end of file. Each successfully decoded record advances the cursor by
// the record's self-described total length, so the scan always makes
// progress. The first torn or corrupt record stops the scan: everything
// from its offset to end of file is treated as unrecoverable trailing
// garbage, while the records already produced remain valid.
//
// Usage follows bufio.Scanner:
//
//	s := lf.Scanner()
//	for s.Scan() {
//		... s.Offset(), s.Record() ...
//	}
//	if err := s.Err(); err != nil { ... }
type Scanner struct {
	f    io.ReaderAt
	size int64 // end of file at scan start
	next int64 // offset of the next record to read

	rec    *record.Record
	recOff int64
	err    error
	done   bool
}

// Scanner returns a fresh scan starting at offset 0.
func (l *LogFile) Scanner() *Scanner {
	size := l.offset

	// A fresh scan covers the whole file, even bytes past a previously
	// reset cursor.
	if info, err := l.f.Stat(); err == nil && info.Size() > size {
		size = info.Size()
	}

	return &Scanner{f: l.f, size: size}
}

// Scan advances to the next record. It returns false at end of file or at
// the first corrupt record; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	if s.next >= s.size {
		s.done = true
		return false
	}

	start := s.next

	if s.size-start < record.HeaderSize {
		return s.corrupt(start, "torn header")
	}

	header := make([]byte, record.HeaderSize)
	if _, err := s.f.ReadAt(header, start); err != nil {
		return s.corrupt(start, "unreadable header")
	}

	keySize := binary.LittleEndian.Uint32(header[4:8])
	valueSize := binary.LittleEndian.Uint32(header[8:12])

	total := int64(record.HeaderSize) + int64(keySize)
	if valueSize != record.TombstoneValueSize {
		total += int64(valueSize)
	}
	if start+total > s.size {
		return s.corrupt(start, "torn payload")
	}

	buf := make([]byte, total)
	if _, err := s.f.ReadAt(buf, start); err != nil {
		return s.corrupt(start, "unreadable payload")
	}

	rec, err := record.Decode(buf)
	if err != nil {
		return s.corrupt(start, "checksum mismatch")
	}

	s.rec = rec
	s.recOff = start
	s.next = start + total
	return true
}

func (s *Scanner) corrupt(offset int64, reason string) bool {
	s.err = fmt.Errorf("log scan stopped at offset %d (%s): %w", offset, reason, record.ErrCorrupt)
	s.recOff = offset
	s.done = true
	return false
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() *record.Record {
	return s.rec
}

// Offset returns the starting offset of the record produced by the last
// successful Scan. After Scan returns false with a non-nil Err, it is the
// offset where corruption begins, i.e. the end of the valid prefix.
func (s *Scanner) Offset() int64 {
	return s.recOff
}

// Err returns nil if the scan ended at a clean end of file, or an error
// wrapping record.ErrCorrupt if it stopped at a torn or corrupt record.
func (s *Scanner) Err() error {
	return s.err
}
