package mock

import "github.com/terokarvinen/hoto"

// Ensure Selectable implements hoto.Selectable at compile time.
var _ hoto.Selectable = (*Selectable)(nil)

// Selectable is a mock implementation of hoto.Selectable.
type Selectable struct {
	TextFn         func(selector string) (string, bool)
	TextFilteredFn func(selector, find, replace string) (string, bool, error)
	AttrFn         func(selector, attr string) (string, bool)
}

func (m *Selectable) Text(selector string) (string, bool) {
	return m.TextFn(selector)
}

func (m *Selectable) TextFiltered(selector, find, replace string) (string, bool, error) {
	return m.TextFilteredFn(selector, find, replace)
}

func (m *Selectable) Attr(selector, attr string) (string, bool) {
	return m.AttrFn(selector, attr)
}
