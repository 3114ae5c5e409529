// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package emit

import (
	"bytes"
	"io"

	"github.com/db47h/tilecrc"
	"github.com/pkg/errors"
)

// Artifact file names.
const (
	TileDataFile       = "tile_data.hex"
	ExpectedHashesFile = "expected_hashes.hex"
	ReportFile         = "tile_test_vectors.txt"
	VerilogFile        = "test_vectors.svh"
	WritesFile         = "vram_writes.hex"
	ManifestFile       = "MANIFEST"
)

// Render serializes vs and ws into all artifacts, in a fixed order. The
// manifest is not included, see Manifest.
//
func Render(vs []tilecrc.Vector, ws []tilecrc.WriteEvent) ([]Artifact, error) {
	fs := []struct {
		name string
		fn   func(io.Writer) error
	}{
		{TileDataFile, func(w io.Writer) error { return TileData(w, vs) }},
		{ExpectedHashesFile, func(w io.Writer) error { return ExpectedHashes(w, vs) }},
		{ReportFile, func(w io.Writer) error { return Report(w, vs) }},
		{VerilogFile, func(w io.Writer) error { return Verilog(w, vs) }},
		{WritesFile, func(w io.Writer) error { return Writes(w, ws) }},
	}
	as := make([]Artifact, 0, len(fs))
	for _, f := range fs {
		var buf bytes.Buffer
		if err := f.fn(&buf); err != nil {
			return nil, errors.Wrap(err, f.name)
		}
		as = append(as, Artifact{Name: f.name, Data: buf.Bytes()})
	}
	return as, nil
}
