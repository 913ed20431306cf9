package record

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
)

// ErrCorrupt is returned when a record's stored checksum does not match
// the recomputed one, or when its length fields disagree with the bytes
// actually available. A record that fails verification is never returned
// to a caller.
var ErrCorrupt = errors.New("record corrupt")

// TombstoneValueSize is the reserved value-length sentinel that marks a
// record as a delete marker. A tombstone carries no value bytes on disk,
// which keeps it distinguishable from a record with an empty value
// (same zero payload, different header).
const TombstoneValueSize = math.MaxUint32

// Checksum (4) + KeySize (4) + ValueSize (4)
const HeaderSize = 12

// Record is the atomic unit of the log file.
//
// Layout on disk, little-endian throughout:
//
//	| checksum u32 | key_length u32 | value_length u32 | key | value |
//
// The checksum covers key_length, value_length, key and value, so a
// shifted key/value boundary is detected even when the total payload
// length is unchanged.
type Record struct {
	Checksum  uint32
	KeySize   uint32
	ValueSize uint32 // TombstoneValueSize for delete markers
	Key       []byte
	Value     []byte
}

// New builds a regular record for the given key and value.
func New(key, value []byte) *Record {
	return &Record{
		Checksum:  Checksum(uint32(len(key)), uint32(len(value)), key, value),
		KeySize:   uint32(len(key)),
		ValueSize: uint32(len(value)),
		Key:       key,
		Value:     value,
	}
}

// NewTombstone builds a delete marker for the given key.
func NewTombstone(key []byte) *Record {
	return &Record{
		Checksum:  Checksum(uint32(len(key)), TombstoneValueSize, key, nil),
		KeySize:   uint32(len(key)),
		ValueSize: TombstoneValueSize,
		Key:       key,
	}
}

// IsTombstone reports whether the record is a delete marker.
func (r *Record) IsTombstone() bool {
	return r.ValueSize == TombstoneValueSize
}

// Size returns the total number of bytes the record occupies on disk.
func (r *Record) Size() int64 {
	size := int64(HeaderSize) + int64(r.KeySize)
	if !r.IsTombstone() {
		size += int64(r.ValueSize)
	}
	return size
}

// Encode serializes the record into its on-disk byte layout.
func Encode(r *Record) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.Grow(int(r.Size()))

	if err := binary.Write(buf, binary.LittleEndian, r.Checksum); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, r.KeySize); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, r.ValueSize); err != nil {
		return nil, err
	}
	if _, err := buf.Write(r.Key); err != nil {
		return nil, err
	}
	if !r.IsTombstone() {
		if _, err := buf.Write(r.Value); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// Decode parses and verifies exactly one record from data. The buffer
// must hold the whole record and nothing else; a header whose lengths
// disagree with len(data), or a checksum mismatch, yields ErrCorrupt.
func Decode(data []byte) (*Record, error) {
	if len(data) < HeaderSize {
		return nil, ErrCorrupt
	}

	checksum := binary.LittleEndian.Uint32(data[0:4])
	keySize := binary.LittleEndian.Uint32(data[4:8])
	valueSize := binary.LittleEndian.Uint32(data[8:12])

	payloadSize := int64(keySize)
	if valueSize != TombstoneValueSize {
		payloadSize += int64(valueSize)
	}
	if int64(len(data)) != int64(HeaderSize)+payloadSize {
		return nil, ErrCorrupt
	}

	key := data[HeaderSize : int64(HeaderSize)+int64(keySize)]
	var value []byte
	if valueSize != TombstoneValueSize {
		value = data[int64(HeaderSize)+int64(keySize):]
	}

	if Checksum(keySize, valueSize, key, value) != checksum {
		return nil, ErrCorrupt
	}

	return &Record{
		Checksum:  checksum,
		KeySize:   keySize,
		ValueSize: valueSize,
		Key:       key,
		Value:     value,
	}, nil
}
