/*
Package tilecrc generates the test vectors used to cross-verify the tile hash
generator of a video RAM snooper against its software reference.

The hash is a CRC-16-CCITT: polynomial 0x1021, initial value 0xFFFF, no
reflection and no final XOR (sometimes called CRC-16/CCITT-FALSE). It is
computed bit-serially, MSB first, exactly like the RTL implementation does, so
that both sides agree bit for bit:

	tilecrc.Checksum([]byte("123456789")) // 0x29B1

Generate returns the fixed, ordered set of named tiles with their expected
hash. The order is significant: generated Verilog tables index vectors by
position. Package emit serializes a vector set to the formats consumed by the
simulation testbench.

Package hwlib provides a gate level model of the serial CRC register, built on
the hwsim simulator, that tests use as an independent hardware reference.
*/
package tilecrc
