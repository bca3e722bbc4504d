// Package template parses and renders hoto format strings.
//
// A format string is literal text with {expression} placeholders. An
// expression is either a variable reference (h1, sel.h2, rdf.archived,
// path.suffix) or a selector call such as
// sel('h2:first', find='foo', replace='bar'). Placeholders are pure
// value substitution resolved against a hoto.Namespace: no arithmetic,
// no assignment, no host access. Literal braces are written {{ and }}.
package template

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/terokarvinen/hoto"
)

// Default is the format used when the caller supplies none.
const Default = "{h1}.{ext}"

// segment is one parsed piece of a format string: literal text, or a
// placeholder holding the variable it resolves.
type segment struct {
	literal string
	varRef  *hoto.Variable
}

// Template is a parsed format string ready to render.
type Template struct {
	raw      string
	segments []segment
}

// Raw returns the format string the template was parsed from.
func (t *Template) Raw() string {
	return t.raw
}

// Prepare wraps a bare variable reference in braces, the CLI
// convenience the original format option allows: "sel.title" becomes
// "{sel.title}". Strings that already contain braces pass through.
func Prepare(format string) string {
	if strings.ContainsAny(format, "{}") {
		return format
	}
	return "{" + format + "}"
}

// Parse compiles a format string into a Template. Syntax errors
// (unbalanced braces, malformed references, bad sel() arguments) return
// EINVALID.
func Parse(format string) (*Template, error) {
	t := &Template{raw: format}
	var lit strings.Builder

	flushLiteral := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	r := []rune(format)
	for i := 0; i < len(r); i++ {
		switch r[i] {
		case '{':
			if i+1 < len(r) && r[i+1] == '{' {
				lit.WriteRune('{')
				i++
				continue
			}
			end, err := findCloseBrace(r, i+1)
			if err != nil {
				return nil, err
			}
			v, err := parseExpr(string(r[i+1 : end]))
			if err != nil {
				return nil, err
			}
			flushLiteral()
			t.segments = append(t.segments, segment{varRef: v})
			i = end
		case '}':
			if i+1 < len(r) && r[i+1] == '}' {
				lit.WriteRune('}')
				i++
				continue
			}
			return nil, hoto.Errorf(hoto.EINVALID, "unbalanced '}' in format %q", format)
		default:
			lit.WriteRune(r[i])
		}
	}
	flushLiteral()
	return t, nil
}

// Render evaluates the template against ns. A placeholder whose
// variable has no value fails with EUNDEFINED.
func (t *Template) Render(ns *hoto.Namespace) (string, error) {
	var b strings.Builder
	for _, seg := range t.segments {
		if seg.varRef == nil {
			b.WriteString(seg.literal)
			continue
		}
		val, err := ns.Resolve(*seg.varRef)
		if err != nil {
			return "", err
		}
		b.WriteString(val)
	}
	return b.String(), nil
}

// findCloseBrace scans for the '}' ending a placeholder, skipping over
// quoted strings so selectors may contain braces.
func findCloseBrace(r []rune, start int) (int, error) {
	inQuote := false
	for i := start; i < len(r); i++ {
		switch {
		case inQuote && r[i] == '\\':
			i++
		case r[i] == '\'':
			inQuote = !inQuote
		case !inQuote && r[i] == '}':
			return i, nil
		}
	}
	return 0, hoto.Errorf(hoto.EINVALID, "unclosed '{' in format %q", string(r))
}

// refPattern matches variable references: a bare name, or a
// domain-qualified name. The qualified part may start with the double
// underscore of the meta accessors and may contain dashes, as CSS tag
// names do.
var refPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)(?:\.((?:__)?[A-Za-z][A-Za-z0-9_-]*))?$`)

// parseExpr parses one placeholder expression.
func parseExpr(expr string) (*hoto.Variable, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, hoto.Errorf(hoto.EINVALID, "empty placeholder {} in format string")
	}
	if strings.HasPrefix(expr, "sel(") {
		return parseCall(expr)
	}
	m := refPattern.FindStringSubmatch(expr)
	if m == nil {
		return nil, hoto.Errorf(hoto.EINVALID, "cannot parse placeholder %q", expr)
	}
	if m[2] == "" {
		return &hoto.Variable{Kind: hoto.Shorthand, Name: m[1]}, nil
	}
	return &hoto.Variable{Kind: hoto.Namespaced, Domain: m[1], Name: m[2]}, nil
}

// parseCall parses a sel('selector', find='...', replace='...') call.
// The selector and argument values must be single-quoted.
func parseCall(expr string) (*hoto.Variable, error) {
	if !strings.HasSuffix(expr, ")") {
		return nil, hoto.Errorf(hoto.EINVALID, "unterminated sel() call in %q", expr)
	}
	p := &argParser{
		input: []rune(strings.TrimSuffix(strings.TrimPrefix(expr, "sel("), ")")),
	}

	selector, err := p.quotedString()
	if err != nil {
		return nil, err
	}
	v := &hoto.Variable{Kind: hoto.SelectorCall, Selector: selector}

	for {
		p.skipSpaces()
		if p.done() {
			return v, nil
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
		name, err := p.keyword()
		if err != nil {
			return nil, err
		}
		if err := p.expect('='); err != nil {
			return nil, err
		}
		val, err := p.quotedString()
		if err != nil {
			return nil, err
		}
		switch name {
		case "find":
			v.Find = val
		case "replace":
			v.Replace = val
		default:
			return nil, hoto.Errorf(hoto.EINVALID, "unknown sel() argument %q", name)
		}
	}
}

// argParser is a tiny scanner over a sel() argument list.
type argParser struct {
	input []rune
	pos   int
}

func (p *argParser) done() bool {
	return p.pos >= len(p.input)
}

func (p *argParser) skipSpaces() {
	for !p.done() && unicode.IsSpace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *argParser) expect(r rune) error {
	p.skipSpaces()
	if p.done() || p.input[p.pos] != r {
		return hoto.Errorf(hoto.EINVALID, "expected %q in sel() arguments %q", r, string(p.input))
	}
	p.pos++
	return nil
}

func (p *argParser) keyword() (string, error) {
	p.skipSpaces()
	start := p.pos
	for !p.done() && unicode.IsLetter(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", hoto.Errorf(hoto.EINVALID, "expected argument name in sel() arguments %q", string(p.input))
	}
	return string(p.input[start:p.pos]), nil
}

// quotedString reads a '...'-quoted string with backslash escapes for
// quotes and backslashes.
func (p *argParser) quotedString() (string, error) {
	p.skipSpaces()
	if p.done() || p.input[p.pos] != '\'' {
		return "", hoto.Errorf(hoto.EINVALID, "sel() arguments must be single-quoted in %q", string(p.input))
	}
	p.pos++

	var b strings.Builder
	for !p.done() {
		switch c := p.input[p.pos]; c {
		case '\\':
			p.pos++
			if !p.done() {
				b.WriteRune(p.input[p.pos])
				p.pos++
			}
		case '\'':
			p.pos++
			return b.String(), nil
		default:
			b.WriteRune(c)
			p.pos++
		}
	}
	return "", hoto.Errorf(hoto.EINVALID, "unterminated string in sel() arguments %q", string(p.input))
}
