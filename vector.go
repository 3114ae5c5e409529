// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tilecrc

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// TileSize is the size in bytes of a tile: one 8x8 pixel block at 2 bits per
// pixel.
//
const TileSize = 16

// A Tile holds the raw data of a single tile, as stored in video RAM: two bytes
// per pixel row (low bit plane, high bit plane).
//
type Tile [TileSize]byte

// Hex returns the tile data as an upper case hex string, byte 0 first. This is
// the format expected by Verilog's $readmemh.
//
func (t Tile) Hex() string {
	return strings.ToUpper(hex.EncodeToString(t[:]))
}

// A Vector is a named tile together with its expected hash.
//
type Vector struct {
	Name string
	Data Tile
	Hash uint16
}

// NewVector returns a new test vector for the given tile. The expected hash is
// computed with Checksum.
//
func NewVector(name string, data Tile) Vector {
	return Vector{Name: name, Data: data, Hash: Checksum(data[:])}
}

// Hex returns the vector's tile data as a hex string. See Tile.Hex.
//
func (v Vector) Hex() string {
	return v.Data.Hex()
}

func fill(b byte) (t Tile) {
	for i := range t {
		t[i] = b
	}
	return t
}

// Generate returns the tile test vectors. The result is the same on every call,
// names and order included.
//
func Generate() []Vector {
	var seq Tile
	for i := range seq {
		seq[i] = byte(i)
	}

	var alt Tile
	for i := 0; i < TileSize; i += 2 {
		alt[i], alt[i+1] = 0xAA, 0x55
	}

	// 2bpp: row n is bytes 2n (low plane) and 2n+1 (high plane)
	letterA := Tile{
		0x18, 0x00, //    ##
		0x3C, 0x00, //   ####
		0x66, 0x00, //  ##  ##
		0x66, 0x00, //  ##  ##
		0x7E, 0x00, //  ######
		0x66, 0x00, //  ##  ##
		0x66, 0x00, //  ##  ##
		0x00, 0x00,
	}

	// filler pattern only, MD5 is not used for anything security related.
	var rnd Tile
	sum := md5.Sum([]byte("test_vector_7"))
	copy(rnd[:], sum[:])

	return []Vector{
		NewVector("all_zeros", Tile{}),
		NewVector("all_ones", fill(0xFF)),
		NewVector("sequential", seq),
		NewVector("alternating", alt),
		NewVector("filled_square", fill(0xFF)), // all pixels color 3
		NewVector("letter_a", letterA),
		NewVector("pseudo_random", rnd),
		NewVector("single_bit", Tile{0x80}),
	}
}

// Lookup returns the vector with the given name in vs.
//
func Lookup(vs []Vector, name string) (Vector, bool) {
	for _, v := range vs {
		if v.Name == name {
			return v, true
		}
	}
	return Vector{}, false
}
