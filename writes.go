// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tilecrc

import "strconv"

// WriteBase is the video RAM address of the tile written by GenerateWrites
// (tile index 16).
//
const WriteBase uint16 = 0x0100

// A WriteEvent is a single byte write on the video RAM bus, as seen by the
// snooper.
//
type WriteEvent struct {
	Addr uint16
	Data byte
	WE   bool // write enable
	Desc string
}

// GenerateWrites returns the bus writes of a whole tile (bytes 0x00 to 0x0F)
// written byte by byte at WriteBase, in ascending address order.
//
func GenerateWrites() []WriteEvent {
	ws := make([]WriteEvent, TileSize)
	for i := range ws {
		ws[i] = WriteEvent{
			Addr: WriteBase + uint16(i),
			Data: byte(i),
			WE:   true,
			Desc: "Write byte " + strconv.Itoa(i) + " of tile",
		}
	}
	return ws
}

// TileOf returns the tile data carried by a write sequence produced by
// GenerateWrites, indexed by address offset from the lowest written address.
// Writes with WE unset are ignored, as is any write outside the tile.
//
func TileOf(ws []WriteEvent) (t Tile) {
	if len(ws) == 0 {
		return t
	}
	base := ws[0].Addr
	for _, w := range ws {
		if w.Addr < base {
			base = w.Addr
		}
	}
	for _, w := range ws {
		if !w.WE {
			continue
		}
		if off := int(w.Addr - base); off < TileSize {
			t[off] = w.Data
		}
	}
	return t
}
