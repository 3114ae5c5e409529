// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tilecrc

// CRC-16-CCITT parameters.
const (
	Poly uint16 = 0x1021 // generator polynomial, x^16 + x^12 + x^5 + 1
	Init uint16 = 0xFFFF // initial register value
)

// CRC16 returns the CRC-16-CCITT of data with the given initial register value.
// Empty input returns init unchanged.
//
func CRC16(data []byte, init uint16) uint16 {
	return Update(init, data)
}

// Checksum returns the CRC-16-CCITT of data using the Init register value.
//
func Checksum(data []byte) uint16 {
	return Update(Init, data)
}

// Update returns the result of adding the bytes in data to crc.
// CRC16(append(a, b...), init) == Update(CRC16(a, init), b).
//
func Update(crc uint16, data []byte) uint16 {
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ Poly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
