package tilecrc_test

import (
	"testing"

	"github.com/db47h/tilecrc"
)

func TestGenerateWrites(t *testing.T) {
	ws := tilecrc.GenerateWrites()
	if len(ws) != tilecrc.TileSize {
		t.Fatalf("expected %d writes, got %d", tilecrc.TileSize, len(ws))
	}
	for i, w := range ws {
		if w.Addr != 0x0100+uint16(i) {
			t.Errorf("write %d: expected address %04X, got %04X", i, 0x0100+i, w.Addr)
		}
		if w.Data != byte(i) {
			t.Errorf("write %d: expected data %02X, got %02X", i, i, w.Data)
		}
		if !w.WE {
			t.Errorf("write %d: write enable not set", i)
		}
	}
	if ws[3].Desc != "Write byte 3 of tile" {
		t.Errorf("bad description %q", ws[3].Desc)
	}
}

func TestTileOf(t *testing.T) {
	seq, _ := tilecrc.Lookup(tilecrc.Generate(), "sequential")
	ws := tilecrc.GenerateWrites()
	if tile := tilecrc.TileOf(ws); tile != seq.Data {
		t.Fatalf("expected % X, got % X", seq.Data, tile)
	}

	// reads and out of range writes are ignored
	ws[2].WE = false
	ws = append(ws, tilecrc.WriteEvent{Addr: tilecrc.WriteBase + 16, Data: 0xFF, WE: true})
	tile := tilecrc.TileOf(ws)
	want := seq.Data
	want[2] = 0
	if tile != want {
		t.Fatalf("expected % X, got % X", want, tile)
	}

	if tile := tilecrc.TileOf(nil); tile != (tilecrc.Tile{}) {
		t.Fatalf("expected empty tile, got % X", tile)
	}
}
