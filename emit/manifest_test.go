package emit_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/tilecrc"
	"github.com/db47h/tilecrc/emit"
	"github.com/ipfs/go-cid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactCID(t *testing.T) {
	a, err := emit.ArtifactCID([]byte("tile"))
	require.NoError(t, err)
	b, err := emit.ArtifactCID([]byte("tile"))
	require.NoError(t, err)
	c, err := emit.ArtifactCID([]byte("tile "))
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.Equal(t, uint64(1), a.Version())
	assert.Equal(t, uint64(cid.Raw), a.Type())
	// base32 CIDv1, raw codec, sha2-256
	assert.True(t, strings.HasPrefix(a.String(), "bafkrei"), a.String())
}

func TestManifest(t *testing.T) {
	as, err := emit.Render(tilecrc.Generate(), tilecrc.GenerateWrites())
	require.NoError(t, err)

	var m bytes.Buffer
	require.NoError(t, emit.Manifest(&m, as))
	ls := strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
	require.Len(t, ls, len(as))
	for i, l := range ls {
		f := strings.Fields(l)
		require.Len(t, f, 2)
		assert.Equal(t, as[i].Name, f[1])
		id, err := cid.Decode(f[0])
		require.NoError(t, err)
		want, err := emit.ArtifactCID(as[i].Data)
		require.NoError(t, err)
		assert.True(t, want.Equals(id))
	}

	require.NoError(t, emit.VerifyManifest(m.Bytes(), as))

	// stale artifact
	stale := append([]emit.Artifact(nil), as...)
	stale[3].Data = append([]byte(nil), stale[3].Data...)
	stale[3].Data[len(stale[3].Data)-2] ^= 1
	err = emit.VerifyManifest(m.Bytes(), stale)
	require.Error(t, err)
	assert.Contains(t, err.Error(), emit.VerilogFile+": CID mismatch")

	// unknown artifact
	err = emit.VerifyManifest(m.Bytes(), append(as, emit.Artifact{Name: "extra.hex"}))
	require.Error(t, err)
	assert.Equal(t, "extra.hex: not in manifest", err.Error())
}

func TestVerifyManifest_malformed(t *testing.T) {
	for _, m := range []string{
		"bafkreigh2akiscaildcqabsyg3dfr6chu3fgpregiymsck7e7aqa4s52zy\n",
		"not-a-cid  tile_data.hex\n",
		"a b c\n",
	} {
		assert.Error(t, emit.VerifyManifest([]byte(m), nil), m)
	}
	// blank lines are ignored
	assert.NoError(t, emit.VerifyManifest([]byte("\n\n"), nil))
}
