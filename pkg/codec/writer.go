package codec

import (
	"encoding/binary"
	"math"
)

// EncodeChunk serializes a chunk of the given type and payload.
// Format: [Length(4)][Type(4)][Data][CRC32(4)]
func EncodeChunk(typ string, data []byte) ([]byte, error) {
	if len(typ) != 4 {
		return nil, ErrInvalidChunkType.New(typ)
	}
	if uint64(len(data)) > math.MaxUint32 {
		return nil, ErrChunkTooLarge.New(len(data))
	}

	buf := make([]byte, ChunkOverhead+len(data))
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(data)))
	copy(buf[4:8], typ)
	copy(buf[chunkHeaderSize:], data)
	binary.BigEndian.PutUint32(buf[chunkHeaderSize+len(data):], ChunkChecksum(typ, data))

	return buf, nil
}

// NewTextPayload builds a tEXt payload: keyword, a zero byte, then text.
func NewTextPayload(keyword, text string) []byte {
	payload := make([]byte, 0, len(keyword)+1+len(text))
	payload = append(payload, keyword...)
	payload = append(payload, 0)
	payload = append(payload, text...)
	return payload
}

// Inject returns a copy of data with a tEXt chunk inserted right before IEND.
// Existing records with the same keyword are kept, so injecting twice leaves
// two records and readers that stop at the first match see the older one.
func Inject(data []byte, keyword, text string) ([]byte, error) {
	return InjectChunk(data, TypeText, NewTextPayload(keyword, text))
}

// InjectChunk returns a copy of data with a chunk inserted right before IEND.
// The IEND chunk and anything after it are preserved byte for byte.
func InjectChunk(data []byte, typ string, payload []byte) ([]byte, error) {
	end, err := TerminalOffset(data)
	if err != nil {
		return nil, err
	}

	chunk, err := EncodeChunk(typ, payload)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:end]...)
	out = append(out, chunk...)
	out = append(out, data[end:]...)

	return out, nil
}
