package record

import (
	"encoding/binary"
	"hash/crc32"
)

// Checksum computes the CRC32 checksum (IEEE polynomial) over the record's
// length fields followed by the key and value bytes, in the order they
// appear on disk after the checksum itself.
func Checksum(keySize, valueSize uint32, key, value []byte) uint32 {
	var lengths [8]byte
	binary.LittleEndian.PutUint32(lengths[0:4], keySize)
	binary.LittleEndian.PutUint32(lengths[4:8], valueSize)

	crc := crc32.ChecksumIEEE(lengths[:])
	crc = crc32.Update(crc, crc32.IEEETable, key)
	return crc32.Update(crc, crc32.IEEETable, value)
}

// Verify returns true if the stored checksum matches a recomputation over
// the record's length fields, key and value.
func Verify(r *Record) bool {
	return Checksum(r.KeySize, r.ValueSize, r.Key, r.Value) == r.Checksum
}
