// Package codec reads and writes PNG-style chunk containers.
//
// The codec package implements just enough of the PNG container format to
// walk its chunk stream, verify or compute chunk checksums, and splice new
// chunks in front of the terminal IEND chunk. It never decodes pixel data.
// It is the foundation the card package uses to embed character profiles in
// ordinary images.
//
// # Container Format
//
// A container is an 8 byte signature followed by a sequence of chunks:
//
//	[Signature(8)][Chunk]...[Chunk(IEND)]
//
// Each chunk has the following structure:
//
//	[Length(4)][Type(4)][Data(Length)][CRC32(4)]
//
// Fields:
//   - Length: payload length in bytes, big-endian, excluding every other field
//   - Type: four ASCII bytes such as "IHDR", "tEXt" or "IEND"
//   - Data: the payload
//   - CRC32: checksum over Type and Data, big-endian
//
// A chunk therefore occupies 12 bytes plus its payload. Scanning stops after
// the first IEND chunk; anything that follows it is left untouched.
//
// # Text Records
//
// A "tEXt" chunk carries a keyworded text record:
//
//	[Keyword][0x00][Text]
//
// Keyword and text are single-byte (ISO-8859-1) strings. A payload without a
// zero byte is read as a keyword with empty text.
//
// # CRC32 Calculation
//
// Checksums use the reflected polynomial 0xEDB88320 with the usual
// 0xFFFFFFFF seed and final inversion, the same values hash/crc32 calls
// IEEE. The lookup table is built once when the package is initialised and
// is only read afterwards.
//
// # Usage
//
//	chunks, err := codec.Parse(data)
//	if err != nil {
//	    return err
//	}
//	for _, c := range chunks {
//	    if err := c.Validate(); err != nil {
//	        return err // chunk is corrupted
//	    }
//	}
//
//	out, err := codec.Inject(data, "chara", text)
//
// # Error Handling
//
// Every structural failure has its own error kind so callers can tell them
// apart with Kind.Is:
//   - ErrInvalidSignature: the first 8 bytes are not the PNG signature
//   - ErrTruncatedChunk: a chunk header, payload or checksum runs past the end
//   - ErrMissingTerminalMarker: the data ended before an IEND chunk
//   - ErrChecksumMismatch: returned by Chunk.Validate only
//
// The reader does not reject checksum mismatches on its own; checking them is
// the caller's choice.
//
// # Thread Safety
//
// All functions are pure over their input. Chunk data slices alias the input
// buffer, which is never written. Any number of goroutines may parse or
// inject concurrently.
package codec
