package codec

import (
	"bytes"
	"encoding/binary"
)

// Scan walks the chunks of a container in stream order, calling fn for each
// one including the terminal IEND chunk. Scanning ends without error once fn
// returns false or IEND has been consumed.
func Scan(data []byte, fn func(Chunk) bool) error {
	if len(data) < SignatureSize || !bytes.Equal(data[:SignatureSize], Signature[:]) {
		return ErrInvalidSignature.New()
	}

	offset := SignatureSize
	for offset < len(data) {
		remaining := len(data) - offset
		if remaining < chunkHeaderSize {
			return ErrTruncatedChunk.New(offset, chunkHeaderSize, remaining)
		}

		length := binary.BigEndian.Uint32(data[offset : offset+4])
		typ := string(data[offset+4 : offset+8])

		// Compare in 64 bits so a huge declared length cannot wrap.
		need := uint64(length) + ChunkOverhead
		if need > uint64(remaining) {
			return ErrTruncatedChunk.New(offset, need, remaining)
		}

		start := offset + chunkHeaderSize
		end := start + int(length)
		c := Chunk{
			Offset: offset,
			Length: length,
			Type:   typ,
			Data:   data[start:end:end],
			CRC:    binary.BigEndian.Uint32(data[end : end+chunkCRCSize]),
		}
		offset = end + chunkCRCSize

		if !fn(c) || c.IsEnd() {
			return nil
		}
	}

	return ErrMissingTerminalMarker.New()
}

// Parse returns every chunk up to and including IEND.
func Parse(data []byte) ([]Chunk, error) {
	var chunks []Chunk
	err := Scan(data, func(c Chunk) bool {
		chunks = append(chunks, c)
		return true
	})
	if err != nil {
		return nil, err
	}
	return chunks, nil
}

// TerminalOffset returns the offset at which the IEND chunk starts.
func TerminalOffset(data []byte) (int, error) {
	offset := -1
	err := Scan(data, func(c Chunk) bool {
		if c.IsEnd() {
			offset = c.Offset
			return false
		}
		return true
	})
	if err != nil {
		return 0, err
	}
	if offset < 0 {
		return 0, ErrMissingTerminalMarker.New()
	}
	return offset, nil
}

// Validate parses data and checks every chunk's stored checksum.
func Validate(data []byte) error {
	chunks, err := Parse(data)
	if err != nil {
		return err
	}
	for _, c := range chunks {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}
