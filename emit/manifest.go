// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package emit

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/pkg/errors"
)

// An Artifact is a named, fully serialized output file.
//
type Artifact struct {
	Name string
	Data []byte
}

// ArtifactCID returns the content identifier of data: a CIDv1 using the "raw"
// multicodec and a sha2-256 multihash.
//
func ArtifactCID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, errors.Wrap(err, "hash artifact")
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// Manifest writes one line per artifact with its CID and name. Since vector
// generation is deterministic, two runs of the same generator must produce the
// same manifest.
//
func Manifest(w io.Writer, as []Artifact) error {
	ew := &errWriter{w: w}
	for _, a := range as {
		id, err := ArtifactCID(a.Data)
		if err != nil {
			return errors.Wrap(err, a.Name)
		}
		ew.printf("%s  %s\n", id, a.Name)
	}
	return ew.err
}

// VerifyManifest checks the artifacts against a manifest previously written by
// Manifest. It returns an error naming the first artifact that is missing from
// the manifest or whose CID differs.
//
func VerifyManifest(manifest []byte, as []Artifact) error {
	ids, err := parseManifest(manifest)
	if err != nil {
		return err
	}
	for _, a := range as {
		want, ok := ids[a.Name]
		if !ok {
			return errors.Errorf("%s: not in manifest", a.Name)
		}
		got, err := ArtifactCID(a.Data)
		if err != nil {
			return errors.Wrap(err, a.Name)
		}
		if !got.Equals(want) {
			return errors.Errorf("%s: CID mismatch: expected %s, got %s", a.Name, want, got)
		}
	}
	return nil
}

func parseManifest(manifest []byte) (map[string]cid.Cid, error) {
	ids := make(map[string]cid.Cid)
	sc := bufio.NewScanner(bytes.NewReader(manifest))
	for line := 1; sc.Scan(); line++ {
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		if len(f) != 2 {
			return nil, errors.Errorf("manifest line %d: expected CID and name", line)
		}
		id, err := cid.Decode(f[0])
		if err != nil {
			return nil, errors.Wrapf(err, "manifest line %d", line)
		}
		ids[f[1]] = id
	}
	return ids, sc.Err()
}
