package codec

import (
	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrInvalidSignature is returned when the data does not start with the PNG signature.
	ErrInvalidSignature = errors.NewKind("invalid signature: not a PNG container")

	// ErrTruncatedChunk is returned when a chunk declares more bytes than remain.
	ErrTruncatedChunk = errors.NewKind("truncated chunk at offset %d: need %d bytes, %d remain")

	// ErrMissingTerminalMarker is returned when the data ends before an IEND chunk.
	ErrMissingTerminalMarker = errors.NewKind("missing IEND chunk")

	// ErrChecksumMismatch is returned by Chunk.Validate.
	ErrChecksumMismatch = errors.NewKind("checksum mismatch in %s chunk at offset %d: stored %08x, computed %08x")

	// ErrInvalidChunkType is returned when a chunk type is not exactly four bytes.
	ErrInvalidChunkType = errors.NewKind("invalid chunk type %q: must be 4 bytes")

	// ErrChunkTooLarge is returned when a payload does not fit a 32-bit length.
	ErrChunkTooLarge = errors.NewKind("chunk payload too large: %d bytes")
)
