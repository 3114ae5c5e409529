// Command tilecrc writes the tile hash test vectors used by the RTL
// simulation testbench.
//
//	tilecrc [-o dir] [-q] [-check]
//
// With -check, nothing is written: the artifacts in dir are checked against
// freshly generated ones and against dir/MANIFEST.
package main

import (
	"bytes"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/db47h/tilecrc"
	"github.com/db47h/tilecrc/emit"
	"github.com/pkg/errors"
)

func writeAll(dir string, as []emit.Artifact) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	for _, a := range as {
		if err := os.WriteFile(filepath.Join(dir, a.Name), a.Data, 0644); err != nil {
			return errors.Wrap(err, "write "+a.Name)
		}
	}
	return nil
}

func check(dir string, as []emit.Artifact) error {
	m, err := os.ReadFile(filepath.Join(dir, emit.ManifestFile))
	if err != nil {
		return errors.Wrap(err, "read manifest")
	}
	if err = emit.VerifyManifest(m, as); err != nil {
		return errors.Wrap(err, "generated artifacts")
	}
	for _, a := range as {
		data, err := os.ReadFile(filepath.Join(dir, a.Name))
		if err != nil {
			return errors.Wrap(err, "read "+a.Name)
		}
		if !bytes.Equal(data, a.Data) {
			return errors.New(a.Name + " is out of date")
		}
	}
	return nil
}

// fatal reports err even in quiet mode, and exits.
func fatal(err error) {
	log.SetOutput(os.Stderr)
	log.Fatal(err)
}

func main() {
	out := flag.String("o", filepath.Join("tests", "vectors"), "output `directory`")
	quiet := flag.Bool("q", false, "do not print progress")
	chk := flag.Bool("check", false, "check existing files instead of writing them")
	flag.Parse()

	log.SetFlags(0)
	if *quiet {
		log.SetOutput(io.Discard)
	}

	log.Print("Generating tile hash test vectors...")
	vs := tilecrc.Generate()
	log.Printf("Generated %d test vectors:", len(vs))
	for _, v := range vs {
		log.Printf("  %s: hash=0x%04X", v.Name, v.Hash)
	}

	as, err := emit.Render(vs, tilecrc.GenerateWrites())
	if err != nil {
		fatal(err)
	}

	if *chk {
		if err = check(*out, as); err != nil {
			fatal(err)
		}
		log.Printf("%s is up to date", *out)
		return
	}

	var m bytes.Buffer
	if err = emit.Manifest(&m, as); err != nil {
		fatal(err)
	}
	as = append(as, emit.Artifact{Name: emit.ManifestFile, Data: m.Bytes()})

	log.Printf("Writing to %s/", *out)
	if err = writeAll(*out, as); err != nil {
		fatal(err)
	}
	log.Print("Files generated:")
	for _, a := range as {
		log.Printf("  %s", filepath.Join(*out, a.Name))
	}
}
