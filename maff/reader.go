// Package maff reads plain markup files and MAFF (zipped web archive)
// containers from the local filesystem.
package maff

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/terokarvinen/hoto"
)

// Ensure Reader implements hoto.SourceReader at compile time.
var _ hoto.SourceReader = (*Reader)(nil)

// Reader loads markup and metadata from local files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// archiveSuffixes lists the container suffixes treated as MAFF archives.
var archiveSuffixes = map[string]bool{
	".maff": true,
	".zip":  true,
}

// Read loads path as either a plain markup document or a MAFF archive,
// selected by its suffix.
func (r *Reader) Read(path string) (*hoto.Source, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, hoto.Errorf(hoto.ENOTFOUND, "%q does not exist or is not a file", path)
	}
	if archiveSuffixes[strings.ToLower(filepath.Ext(path))] {
		return r.readArchive(path)
	}
	return r.readMarkup(path)
}

func (r *Reader) readMarkup(path string) (*hoto.Source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		// Existence was already checked in Read, so a failure here is
		// an I/O problem such as denied permissions.
		return nil, hoto.Errorf(hoto.EINTERNAL, "reading %q: %v", path, err)
	}
	return &hoto.Source{
		Path: path,
		Kind: hoto.KindMarkup,
		HTML: decodeText(b),
	}, nil
}

// readArchive extracts the inner markup document and the optional RDF
// metadata document from a MAFF container. MAFF stores each page in its
// own subdirectory, conventionally holding index.html and index.rdf.
func (r *Reader) readArchive(path string) (*hoto.Source, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, hoto.Errorf(hoto.EINVALID, "%q is not a readable archive: %v", path, err)
	}
	defer zr.Close()

	src := &hoto.Source{Path: path, Kind: hoto.KindArchive}
	var haveMarkup bool
	for _, f := range zr.File {
		switch {
		case strings.HasSuffix(f.Name, "/index.html"):
			b, err := readEntry(f)
			if err != nil {
				return nil, err
			}
			src.HTML = decodeText(b)
			haveMarkup = true
		case strings.HasSuffix(f.Name, "/index.rdf"):
			b, err := readEntry(f)
			if err != nil {
				return nil, err
			}
			src.RDF = b
		}
	}
	if !haveMarkup {
		return nil, hoto.Errorf(hoto.EINVALID, "archive %q has no index.html entry", path)
	}
	return src, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, hoto.Errorf(hoto.EINVALID, "opening archive entry %q: %v", f.Name, err)
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, hoto.Errorf(hoto.EINVALID, "reading archive entry %q: %v", f.Name, err)
	}
	return b, nil
}

// decodeText reads bytes as UTF-8, replacing invalid sequences so a
// badly encoded document still extracts.
func decodeText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
