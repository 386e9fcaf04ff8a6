package codec

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const (
	// SignatureSize is the length of the container signature.
	SignatureSize = 8

	// ChunkOverhead is the number of bytes a chunk adds around its payload:
	// Length(4) + Type(4) + CRC32(4).
	ChunkOverhead = 12

	// TypeText is the keyworded text chunk type.
	TypeText = "tEXt"

	// TypeEnd is the terminal chunk type.
	TypeEnd = "IEND"

	chunkHeaderSize = 8
	chunkCRCSize    = 4
)

// Signature is the fixed PNG file signature.
var Signature = [SignatureSize]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// Chunk is a single record of a container.
type Chunk struct {
	Offset int    // Offset of the length field within the container
	Length uint32 // Declared payload length
	Type   string // Four byte ASCII type tag
	Data   []byte // Payload, aliasing the container
	CRC    uint32 // Stored checksum
}

// Size returns the number of bytes the chunk occupies in the container.
func (c Chunk) Size() int {
	return ChunkOverhead + len(c.Data)
}

// IsText reports whether the chunk is a keyworded text record.
func (c Chunk) IsText() bool {
	return c.Type == TypeText
}

// IsEnd reports whether the chunk is the terminal marker.
func (c Chunk) IsEnd() bool {
	return c.Type == TypeEnd
}

// Validate checks the stored checksum against the chunk's type and payload.
func (c Chunk) Validate() error {
	if computed := ChunkChecksum(c.Type, c.Data); computed != c.CRC {
		return ErrChecksumMismatch.New(c.Type, c.Offset, c.CRC, computed)
	}
	return nil
}

// TextRecord returns the parsed payload of a tEXt chunk.
func (c Chunk) TextRecord() (TextRecord, bool) {
	if !c.IsText() {
		return TextRecord{}, false
	}
	return ParseTextRecord(c.Data), true
}

// TextRecord is the keyword/text pair carried by a tEXt chunk.
type TextRecord struct {
	Keyword string
	Text    string
	// RawText holds the undecoded text bytes for callers that apply their
	// own decoding, such as base64.
	RawText []byte
}

// ParseTextRecord splits a tEXt payload at its first zero byte.
// A payload without a zero byte is all keyword.
func ParseTextRecord(payload []byte) TextRecord {
	i := bytes.IndexByte(payload, 0)
	if i < 0 {
		return TextRecord{Keyword: latin1(payload)}
	}
	raw := payload[i+1:]
	return TextRecord{
		Keyword: latin1(payload[:i]),
		Text:    latin1(raw),
		RawText: raw,
	}
}

// latin1 decodes one character per byte.
func latin1(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(charmap.ISO8859_1.DecodeByte(c))
	}
	return sb.String()
}
