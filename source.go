package hoto

import (
	"path/filepath"
	"strings"
)

// SourceKind identifies how a source file is stored on disk.
type SourceKind string

// SourceKind constants.
const (
	KindMarkup  SourceKind = "markup"
	KindArchive SourceKind = "archive"
)

// Source is one loaded input file: its markup body and, for archives,
// the raw bytes of the RDF metadata document. A Source is read-only
// after loading.
type Source struct {
	Path string
	Kind SourceKind

	// HTML is the markup body: the file itself for plain documents,
	// the inner index.html for archives.
	HTML string

	// RDF holds the archive's metadata document, nil when absent.
	RDF []byte
}

// Filename returns the full filename including suffix.
func (s *Source) Filename() string {
	return filepath.Base(s.Path)
}

// Stem returns the filename without its suffix.
func (s *Source) Stem() string {
	name := s.Filename()
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Ext returns the filename suffix without the leading dot.
func (s *Source) Ext() string {
	return strings.TrimPrefix(filepath.Ext(s.Path), ".")
}

// SourceReader loads markup and metadata from a path.
type SourceReader interface {
	// Read loads the file at path as either a plain markup document or
	// a zip-based archive. Returns ENOTFOUND if path does not exist and
	// EINVALID if an archive has no recognizable markup entry.
	Read(path string) (*Source, error)
}
