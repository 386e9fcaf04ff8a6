package codec

import (
	"bytes"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTable_MatchesIEEE(t *testing.T) {
	ieee := crc32.MakeTable(crc32.IEEE)
	table := buildTable()

	for i := range table {
		assert.Equalf(t, ieee[i], table[i], "table entry %d", i)
	}
	assert.Equal(t, table, crcTable, "package table must equal a freshly built one")
}

func TestChecksum(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "single byte", data: []byte{0x00}},
		{name: "check value", data: []byte("123456789")},
		{name: "binary", data: []byte{0xFF, 0xFE, 0xFD, 0xFC, 0x00, 0x01}},
		{name: "large", data: bytes.Repeat([]byte("chara"), 4096)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, crc32.ChecksumIEEE(tc.data), Checksum(tc.data))
		})
	}
}

func TestChecksum_KnownValues(t *testing.T) {
	assert.Equal(t, uint32(0xCBF43926), Checksum([]byte("123456789")))
	assert.Equal(t, uint32(0), Checksum())
	// Every valid IEND chunk carries this checksum.
	assert.Equal(t, uint32(0xAE426082), ChunkChecksum(TypeEnd, nil))
}

func TestChecksum_PartsEqualConcatenation(t *testing.T) {
	typ := []byte(TypeText)
	payload := NewTextPayload("chara", "eyJuYW1lIjoiQXJpYSJ9")

	joined := append(append([]byte{}, typ...), payload...)
	assert.Equal(t, Checksum(joined), Checksum(typ, payload))
	assert.Equal(t, Checksum(joined), ChunkChecksum(TypeText, payload))
}

func TestChecksum_Deterministic(t *testing.T) {
	data := []byte("test value")
	assert.Equal(t, Checksum(data), Checksum(data))
	assert.NotEqual(t, Checksum(data), Checksum([]byte("test valuf")))
}
