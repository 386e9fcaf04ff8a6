package codec

// crcPolynomial is the reflected form of the PNG/zlib CRC-32 polynomial.
const crcPolynomial = 0xEDB88320

var crcTable = buildTable()

func buildTable() [256]uint32 {
	var table [256]uint32
	for i := range table {
		c := uint32(i)
		for j := 0; j < 8; j++ {
			if c&1 == 1 {
				c = (c >> 1) ^ crcPolynomial
			} else {
				c >>= 1
			}
		}
		table[i] = c
	}
	return table
}

// Checksum computes the CRC-32 of the concatenation of parts.
func Checksum(parts ...[]byte) uint32 {
	c := uint32(0xFFFFFFFF)
	for _, p := range parts {
		for _, b := range p {
			c = crcTable[byte(c)^b] ^ (c >> 8)
		}
	}
	return c ^ 0xFFFFFFFF
}

// ChunkChecksum computes the checksum stored in a chunk of the given type and payload.
func ChunkChecksum(typ string, data []byte) uint32 {
	return Checksum([]byte(typ), data)
}
