package record

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"simple", "foo", "bar"},
		{"empty value", "foo", ""},
		{"binary value", "k", "\x00\x01\xff\xfe"},
		{"long value", "key", string(make([]byte, 4096))},
		{"spaces", "hello world", "value with spaces"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := New([]byte(tc.key), []byte(tc.value))

			data, err := Encode(rec)
			assert.Nil(t, err)
			assert.Equal(t, rec.Size(), int64(len(data)))

			got, err := Decode(data)
			assert.Nil(t, err)
			assert.Equal(t, []byte(tc.key), got.Key)
			assert.Equal(t, []byte(tc.value), got.Value)
			assert.False(t, got.IsTombstone())
		})
	}
}

func TestTombstoneRoundTrip(t *testing.T) {
	rec := NewTombstone([]byte("doomed"))
	assert.True(t, rec.IsTombstone())

	data, err := Encode(rec)
	assert.Nil(t, err)
	// Header plus key only; tombstones carry no value bytes.
	assert.Equal(t, HeaderSize+len("doomed"), len(data))

	got, err := Decode(data)
	assert.Nil(t, err)
	assert.True(t, got.IsTombstone())
	assert.Equal(t, []byte("doomed"), got.Key)
	assert.Nil(t, got.Value)
}

func TestTombstoneDistinctFromEmptyValue(t *testing.T) {
	empty := New([]byte("k"), []byte{})
	tomb := NewTombstone([]byte("k"))

	assert.False(t, empty.IsTombstone())
	assert.True(t, tomb.IsTombstone())

	emptyData, err := Encode(empty)
	assert.Nil(t, err)
	tombData, err := Encode(tomb)
	assert.Nil(t, err)
	assert.NotEqual(t, emptyData, tombData)
}

func TestDecodeSingleBitFlips(t *testing.T) {
	rec := New([]byte("foo"), []byte("bar"))
	data, err := Encode(rec)
	assert.Nil(t, err)

	for i := range data {
		for bit := 0; bit < 8; bit++ {
			t.Run(fmt.Sprintf("byte%d_bit%d", i, bit), func(t *testing.T) {
				flipped := make([]byte, len(data))
				copy(flipped, data)
				flipped[i] ^= 1 << bit

				_, err := Decode(flipped)
				assert.ErrorIs(t, err, ErrCorrupt)
			})
		}
	}
}

func TestDecodeShortBuffer(t *testing.T) {
	rec := New([]byte("key"), []byte("value"))
	data, err := Encode(rec)
	assert.Nil(t, err)

	for i := 0; i < len(data); i++ {
		_, err := Decode(data[:i])
		assert.ErrorIs(t, err, ErrCorrupt, "truncation at %d must be corrupt", i)
	}
}

func TestDecodeTrailingGarbage(t *testing.T) {
	rec := New([]byte("key"), []byte("value"))
	data, err := Encode(rec)
	assert.Nil(t, err)

	_, err = Decode(append(data, 0xAB))
	assert.ErrorIs(t, err, ErrCorrupt)
}
