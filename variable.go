package hoto

import (
	"fmt"
	"strings"
)

// VariableKind discriminates the forms a template variable can take.
type VariableKind int

// VariableKind constants.
const (
	// Shorthand is a fixed-name accessor such as h1 or stem.
	Shorthand VariableKind = iota

	// Namespaced is a domain-qualified reference such as sel.h2,
	// rdf.host, or path.suffix.
	Namespaced

	// SelectorCall is a sel('...') invocation with optional find and
	// replace arguments.
	SelectorCall
)

// Variable is one parsed template reference.
type Variable struct {
	Kind VariableKind

	// Name is the accessor name for Shorthand and Namespaced variables.
	Name string

	// Domain qualifies a Namespaced variable: "sel", "rdf" or "path".
	Domain string

	// Selector, Find and Replace are the SelectorCall arguments.
	Selector string
	Find     string
	Replace  string
}

// String renders the canonical spelling of the variable, as accepted by
// the format-string parser.
func (v Variable) String() string {
	switch v.Kind {
	case Shorthand:
		return v.Name
	case Namespaced:
		return v.Domain + "." + v.Name
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "sel('%s'", v.Selector)
		if v.Find != "" {
			fmt.Fprintf(&b, ",find='%s',replace='%s'", v.Find, v.Replace)
		}
		b.WriteString(")")
		return b.String()
	}
}
