// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package emit

import (
	"io"
	"strings"

	"github.com/db47h/tilecrc"
	"github.com/pkg/errors"
)

// NameWidth is the width in characters of test names returned by the
// get_test_name Verilog function. It matches the 128 bits return value.
//
const NameWidth = 16

const unknownName = "unknown"

// PadName pads name with spaces, or truncates it, to NameWidth bytes. name
// should satisfy ValidName.
//
func PadName(name string) string {
	if len(name) >= NameWidth {
		return name[:NameWidth]
	}
	return name + strings.Repeat(" ", NameWidth-len(name))
}

// ValidName returns true if name can be used as is in a Verilog string
// literal: printable ASCII, without double quotes or backslashes.
//
func ValidName(name string) bool {
	for i := 0; i < len(name); i++ {
		if c := name[i]; c < ' ' || c > '~' || c == '"' || c == '\\' {
			return false
		}
	}
	return true
}

// Verilog writes a Verilog include file declaring the test vectors:
//
//	localparam NUM_TEST_VECTORS   // vector count
//	reg [127:0] TILE_DATA[]       // tile data, byte 0 in bits 127:120
//	reg [15:0] EXPECTED_HASH[]    // expected hashes
//	task init_test_vectors        // fills TILE_DATA and EXPECTED_HASH
//	function get_test_name(idx)   // test name, NameWidth characters
//
// Arrays are indexed in vector order. Only plain array declarations, indexed
// assignments and a case statement are used so that the file can be included
// as is by Icarus Verilog.
//
// Verilog returns an error without writing anything if a vector name does not
// satisfy ValidName.
//
func Verilog(w io.Writer, vs []tilecrc.Vector) error {
	for i := range vs {
		if !ValidName(vs[i].Name) {
			return errors.Errorf("vector %d: invalid name %q", i, vs[i].Name)
		}
	}

	ew := &errWriter{w: w}
	ew.println("// Auto-generated test vectors - DO NOT EDIT")
	ew.println("// Generated by tilecrc")
	ew.println("// Compatible with Icarus Verilog")
	ew.println("")
	ew.printf("localparam NUM_TEST_VECTORS = %d;\n\n", len(vs))

	ew.println("// Tile data: 128 bits (16 bytes) per vector")
	ew.println("reg [127:0] TILE_DATA [0:NUM_TEST_VECTORS-1];")
	ew.println("reg [15:0] EXPECTED_HASH [0:NUM_TEST_VECTORS-1];")
	ew.println("")

	ew.println("// Initialize test vectors")
	ew.println("task init_test_vectors;")
	ew.println("begin")
	for i := range vs {
		ew.printf("    TILE_DATA[%d] = 128'h%s;  // %s\n", i, vs[i].Hex(), vs[i].Name)
	}
	ew.println("")
	for i := range vs {
		ew.printf("    EXPECTED_HASH[%d] = 16'h%04X;  // %s\n", i, vs[i].Hash, vs[i].Name)
	}
	ew.println("end")
	ew.println("endtask")
	ew.println("")

	// strings in arrays are not supported by iverilog
	ew.println("// Get test name by index")
	ew.println("function [127:0] get_test_name;")
	ew.println("    input integer idx;")
	ew.println("    begin")
	ew.println("        case (idx)")
	for i := range vs {
		ew.printf("            %d: get_test_name = \"%s\";\n", i, PadName(vs[i].Name))
	}
	ew.printf("            default: get_test_name = \"%s\";\n", PadName(unknownName))
	ew.println("        endcase")
	ew.println("    end")
	ew.println("endfunction")
	return ew.err
}
