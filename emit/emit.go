// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package emit serializes tile test vectors for the simulation testbench:
// hex files for $readmemh, a text report, and a Verilog include file.
//
// Every function writes to an already open io.Writer and returns the first
// write error as is.
//
package emit

import (
	"fmt"
	"io"

	"github.com/db47h/tilecrc"
)

// errWriter keeps the first write error and ignores subsequent writes.
//
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s+"\n")
}

// TileData writes the tile data of each vector, one vector per line as 32
// upper case hex digits followed by the vector name in a comment.
//
func TileData(w io.Writer, vs []tilecrc.Vector) error {
	ew := &errWriter{w: w}
	ew.println("// Tile test vectors - 16 bytes per line")
	for i := range vs {
		ew.printf("%s  // %s\n", vs[i].Hex(), vs[i].Name)
	}
	return ew.err
}

// ExpectedHashes writes the expected hash of each vector, one per line as 4
// upper case hex digits followed by the vector name in a comment.
//
func ExpectedHashes(w io.Writer, vs []tilecrc.Vector) error {
	ew := &errWriter{w: w}
	ew.println("// Expected CRC-16 hashes")
	for i := range vs {
		ew.printf("%04X  // %s\n", vs[i].Hash, vs[i].Name)
	}
	return ew.err
}

// Report writes a human readable listing of the vectors.
//
func Report(w io.Writer, vs []tilecrc.Vector) error {
	ew := &errWriter{w: w}
	ew.println("# Tile Hash Test Vectors")
	ew.println("# Format: name, hex_data, expected_hash")
	ew.println("")
	for i := range vs {
		v := &vs[i]
		ew.printf("%s:\n", v.Name)
		ew.printf("  data: %s\n", v.Hex())
		ew.printf("  hash: 0x%04X (%d)\n\n", v.Hash, v.Hash)
	}
	return ew.err
}

// Writes writes a VRAM write sequence, one bus write per line: address (4 hex
// digits), data (2 hex digits) and write enable (1 or 0), followed by the write
// description in a comment. The three fields can be loaded with $fscanf
// "%h %h %b".
//
func Writes(w io.Writer, ws []tilecrc.WriteEvent) error {
	ew := &errWriter{w: w}
	ew.println("// VRAM write sequence - addr data we")
	for _, e := range ws {
		we := 0
		if e.WE {
			we = 1
		}
		ew.printf("%04X %02X %d  // %s\n", e.Addr, e.Data, we, e.Desc)
	}
	return ew.err
}
