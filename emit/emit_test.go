package emit_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/db47h/tilecrc"
	"github.com/db47h/tilecrc/emit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(t *testing.T, fn func(*bytes.Buffer) error) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, fn(&buf))
	s := buf.String()
	require.True(t, strings.HasSuffix(s, "\n"), "output must end with a new line")
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestTileData(t *testing.T) {
	vs := tilecrc.Generate()
	ls := lines(t, func(b *bytes.Buffer) error { return emit.TileData(b, vs) })
	require.Len(t, ls, len(vs)+1)
	assert.Equal(t, "// Tile test vectors - 16 bytes per line", ls[0])
	assert.Equal(t, "00000000000000000000000000000000  // all_zeros", ls[1])
	assert.Equal(t, "000102030405060708090A0B0C0D0E0F  // sequential", ls[3])

	for i, l := range ls[1:] {
		f := strings.SplitN(l, "  // ", 2)
		require.Len(t, f, 2)
		require.Len(t, f[0], 32)
		assert.Equal(t, strings.ToUpper(f[0]), f[0])
		assert.Equal(t, vs[i].Name, f[1])
		b, err := hex.DecodeString(f[0])
		require.NoError(t, err)
		assert.Equal(t, vs[i].Data[:], b)
	}
}

func TestExpectedHashes(t *testing.T) {
	vs := tilecrc.Generate()
	ls := lines(t, func(b *bytes.Buffer) error { return emit.ExpectedHashes(b, vs) })
	require.Len(t, ls, len(vs)+1)
	assert.Equal(t, "// Expected CRC-16 hashes", ls[0])
	assert.Equal(t, "6A0A  // all_zeros", ls[1])
	assert.Equal(t, "17AA  // letter_a", ls[6])

	for i, l := range ls[1:] {
		f := strings.SplitN(l, "  // ", 2)
		require.Len(t, f, 2)
		require.Len(t, f[0], 4)
		n, err := strconv.ParseUint(f[0], 16, 16)
		require.NoError(t, err)
		assert.Equal(t, vs[i].Hash, uint16(n))
		assert.Equal(t, vs[i].Name, f[1])
	}
}

func TestReport(t *testing.T) {
	vs := tilecrc.Generate()
	ls := lines(t, func(b *bytes.Buffer) error { return emit.Report(b, vs) })
	require.Len(t, ls, 3+4*len(vs))
	assert.Equal(t, []string{
		"# Tile Hash Test Vectors",
		"# Format: name, hex_data, expected_hash",
		"",
		"all_zeros:",
		"  data: 00000000000000000000000000000000",
		"  hash: 0x6A0A (27146)",
		"",
		"all_ones:",
	}, ls[:8])
	assert.Equal(t, []string{
		"single_bit:",
		"  data: 80000000000000000000000000000000",
		"  hash: 0x627B (25211)",
		"",
	}, ls[len(ls)-4:])
}

func TestWrites(t *testing.T) {
	ls := lines(t, func(b *bytes.Buffer) error { return emit.Writes(b, tilecrc.GenerateWrites()) })
	require.Len(t, ls, 17)
	assert.Equal(t, "// VRAM write sequence - addr data we", ls[0])
	assert.Equal(t, "0100 00 1  // Write byte 0 of tile", ls[1])
	assert.Equal(t, "010F 0F 1  // Write byte 15 of tile", ls[16])

	ls = lines(t, func(b *bytes.Buffer) error {
		return emit.Writes(b, []tilecrc.WriteEvent{{Addr: 0xABCD, Data: 0xEF, Desc: "read"}})
	})
	assert.Equal(t, "ABCD EF 0  // read", ls[1])
}

type failWriter struct {
	n     int // successful writes left
	fails int
	err   error
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		w.fails++
		return 0, w.err
	}
	w.n--
	return len(p), nil
}

func TestWriteErrors(t *testing.T) {
	vs := tilecrc.Generate()
	ws := tilecrc.GenerateWrites()
	errDisk := errors.New("disk full")
	for name, fn := range map[string]func(w *failWriter) error{
		"TileData":       func(w *failWriter) error { return emit.TileData(w, vs) },
		"ExpectedHashes": func(w *failWriter) error { return emit.ExpectedHashes(w, vs) },
		"Report":         func(w *failWriter) error { return emit.Report(w, vs) },
		"Verilog":        func(w *failWriter) error { return emit.Verilog(w, vs) },
		"Writes":         func(w *failWriter) error { return emit.Writes(w, ws) },
	} {
		for _, n := range []int{0, 1, 5} {
			w := &failWriter{n: n, err: errDisk}
			assert.Equal(t, errDisk, fn(w), "%s after %d writes", name, n)
			assert.Equal(t, 1, w.fails, "%s kept writing after an error", name)
		}
	}
}

func TestRender(t *testing.T) {
	as, err := emit.Render(tilecrc.Generate(), tilecrc.GenerateWrites())
	require.NoError(t, err)
	names := make([]string, len(as))
	for i, a := range as {
		names[i] = a.Name
		assert.NotEmpty(t, a.Data, a.Name)
	}
	assert.Equal(t, []string{
		emit.TileDataFile,
		emit.ExpectedHashesFile,
		emit.ReportFile,
		emit.VerilogFile,
		emit.WritesFile,
	}, names)

	again, err := emit.Render(tilecrc.Generate(), tilecrc.GenerateWrites())
	require.NoError(t, err)
	assert.Equal(t, as, again)
}
