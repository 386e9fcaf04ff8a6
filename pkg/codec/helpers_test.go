package codec

import (
	"testing"
)

// mustChunk encodes a chunk or fails the test.
func mustChunk(tb testing.TB, typ string, data []byte) []byte {
	tb.Helper()
	c, err := EncodeChunk(typ, data)
	if err != nil {
		tb.Fatalf("EncodeChunk(%q) failed: %v", typ, err)
	}
	return c
}

// buildContainer concatenates the signature and the given raw chunks.
func buildContainer(chunks ...[]byte) []byte {
	buf := append([]byte{}, Signature[:]...)
	for _, c := range chunks {
		buf = append(buf, c...)
	}
	return buf
}

// testImage returns a small but structurally complete container:
// IHDR, an opaque IDAT stand-in and IEND.
func testImage(tb testing.TB) []byte {
	tb.Helper()
	ihdr := []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 6, 0, 0, 0}
	return buildContainer(
		mustChunk(tb, "IHDR", ihdr),
		mustChunk(tb, "IDAT", []byte{0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00, 0x05, 0x00, 0x01}),
		mustChunk(tb, TypeEnd, nil),
	)
}
