package zipstore

import "sync"

// Reflected CRC-32 as required by the ZIP format (the PNG variant):
// polynomial 0xEDB88320, initial register 0xFFFFFFFF, final XOR
// 0xFFFFFFFF. Archive consumers validate these checksums, so the
// implementation must match the reference bit-for-bit.

const crcPolynomial = 0xEDB88320

var (
	crcOnce  sync.Once
	crcTable [256]uint32
)

func buildCRCTable() {
	for i := range crcTable {
		c := uint32(i)
		for k := 0; k < 8; k++ {
			if c&1 != 0 {
				c = crcPolynomial ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		crcTable[i] = c
	}
}

// Checksum computes the CRC-32 of data. The lookup table is built once
// on first use and is read-only afterwards, so concurrent callers are
// safe.
func Checksum(data []byte) uint32 {
	crcOnce.Do(buildCRCTable)

	crc := uint32(0xFFFFFFFF)
	for _, b := range data {
		crc = crcTable[byte(crc)^b] ^ (crc >> 8)
	}
	return crc ^ 0xFFFFFFFF
}
