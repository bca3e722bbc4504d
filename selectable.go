package hoto

// Selectable queries a parsed markup document by CSS selector.
// Implementations must tolerate malformed markup: a document that does
// not parse cleanly behaves as an empty document, never as an error.
type Selectable interface {
	// Text returns the trimmed, whitespace-collapsed text of the first
	// element matched by selector. ok is false when nothing matched or
	// the matched text is empty.
	Text(selector string) (text string, ok bool)

	// TextFiltered is Text with a regexp find/replace applied to the
	// matched text before trimming. Returns EINVALID for a pattern that
	// does not compile.
	TextFiltered(selector, find, replace string) (text string, ok bool, err error)

	// Attr returns the named attribute of the first element matched by
	// selector.
	Attr(selector, attr string) (value string, ok bool)
}
