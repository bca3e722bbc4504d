// Package goquery extracts HTML tag text by CSS selector using
// PuerkitoBio/goquery.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/terokarvinen/hoto"
)

// maxTextLen caps extracted tag text so formatted filenames stay
// bounded even when a selector matches a wall of text.
const maxTextLen = 160

// Ensure Selectable implements hoto.Selectable at compile time.
var _ hoto.Selectable = (*Selectable)(nil)

// Selectable wraps a parsed HTML document for CSS-selector lookups.
type Selectable struct {
	doc *goquery.Document
}

// New parses markup into a queryable document. The tolerant HTML parser
// recovers from malformed input, so New never fails; unparseable
// fragments behave as empty.
func New(markup string) *Selectable {
	node, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		// html.Parse recovers from malformed markup on its own; an error
		// here means the reader broke, so fall back to an empty document.
		node, _ = html.Parse(strings.NewReader(""))
	}
	return &Selectable{doc: goquery.NewDocumentFromNode(node)}
}

// Text returns the trimmed, whitespace-collapsed text of the first
// element matched by selector, capped at 160 characters.
func (s *Selectable) Text(selector string) (string, bool) {
	sel, ok := s.find(selector)
	if !ok {
		return "", false
	}
	return normalize(sel.Text())
}

// TextFiltered is Text with a regexp find/replace applied to the
// matched text before trimming.
func (s *Selectable) TextFiltered(selector, find, replace string) (string, bool, error) {
	sel, ok := s.find(selector)
	if !ok {
		return "", false, nil
	}
	text := sel.Text()
	if find != "" {
		re, err := regexp.Compile(find)
		if err != nil {
			return "", false, hoto.Errorf(hoto.EINVALID, "bad find pattern %q: %v", find, err)
		}
		text = re.ReplaceAllString(text, replace)
	}
	val, ok := normalize(text)
	return val, ok, nil
}

// Attr returns the named attribute of the first element matched by
// selector.
func (s *Selectable) Attr(selector, attr string) (string, bool) {
	sel, ok := s.find(selector)
	if !ok {
		return "", false
	}
	val, exists := sel.Attr(attr)
	if !exists {
		return "", false
	}
	return normalize(val)
}

// find matches selector against the document and narrows the result to
// a single element. The jQuery positional pseudo-classes :first and
// :last are not CSS, so they are peeled off before cascadia sees the
// selector and mapped to Selection.First/Last. A selector cascadia
// rejects resolves to not-found rather than failing.
func (s *Selectable) find(selector string) (*goquery.Selection, bool) {
	base, pos := splitPositional(selector)
	matcher, err := cascadia.Compile(base)
	if err != nil {
		return nil, false
	}
	sel := s.doc.FindMatcher(matcher)
	if sel.Length() == 0 {
		return nil, false
	}
	if pos == ":last" {
		return sel.Last(), true
	}
	return sel.First(), true
}

// splitPositional peels a trailing :first or :last off the selector.
func splitPositional(selector string) (base, pos string) {
	for _, p := range []string{":first", ":last"} {
		if strings.HasSuffix(selector, p) {
			return strings.TrimSuffix(selector, p), p
		}
	}
	return selector, ""
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// normalize collapses whitespace runs, trims, and caps the text.
func normalize(s string) (string, bool) {
	s = strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
	if s == "" {
		return "", false
	}
	if runes := []rune(s); len(runes) > maxTextLen {
		s = strings.TrimSpace(string(runes[:maxTextLen]))
	}
	return s, true
}
