package mock

import "github.com/terokarvinen/hoto"

// Ensure SourceReader implements hoto.SourceReader at compile time.
var _ hoto.SourceReader = (*SourceReader)(nil)

// SourceReader is a mock implementation of hoto.SourceReader.
type SourceReader struct {
	ReadFn func(path string) (*hoto.Source, error)
}

func (m *SourceReader) Read(path string) (*hoto.Source, error) {
	return m.ReadFn(path)
}
