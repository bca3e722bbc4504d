package hoto

import (
	"path/filepath"
)

// Namespace binds one source file's extractors for variable resolution.
// It is populated once per file and consumed by the formatter and the
// suggestion listing.
type Namespace struct {
	Source *Source
	Sel    Selectable
	RDF    Metadata
}

// Resolve returns the value of v, or EUNDEFINED when the variable has
// no value for this source file. The error message carries the
// variable's canonical spelling.
func (ns *Namespace) Resolve(v Variable) (string, error) {
	val, ok, err := ns.lookup(v)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", Errorf(EUNDEFINED, "undefined variable %q", v.String())
	}
	return val, nil
}

// lookup is the single dispatch point over the variable variants.
func (ns *Namespace) lookup(v Variable) (string, bool, error) {
	switch v.Kind {
	case Shorthand:
		return ns.shorthand(v.Name)
	case Namespaced:
		switch v.Domain {
		case "sel":
			return ns.selector(v.Name)
		case "rdf":
			val, ok := ns.RDF[v.Name]
			return val, ok, nil
		case "path":
			return ns.pathAttr(v.Name)
		}
		return "", false, nil
	case SelectorCall:
		if v.Find == "" {
			val, ok := ns.Sel.Text(v.Selector)
			return val, ok, nil
		}
		return ns.Sel.TextFiltered(v.Selector, v.Find, v.Replace)
	}
	return "", false, nil
}

// shorthand resolves the fixed-name accessors. Shorthand names never
// collide with the sel/rdf/path domains.
func (ns *Namespace) shorthand(name string) (string, bool, error) {
	switch name {
	case "h1", "title":
		val, ok := ns.Sel.Text(name)
		return val, ok, nil
	case "stem":
		return ns.Source.Stem(), true, nil
	case "ext":
		return ns.Source.Ext(), true, nil
	case "filename":
		return ns.Source.Filename(), true, nil
	case "path":
		return ns.Source.Path, true, nil
	case MetaArchived, MetaYear, MetaHost:
		// RDF conveniences promoted to the top level.
		val, ok := ns.RDF[name]
		return val, ok, nil
	}
	return "", false, nil
}

// selector resolves sel.<name> lookups. The double-underscore names are
// meta-tag accessors, not CSS selectors.
func (ns *Namespace) selector(name string) (string, bool, error) {
	switch name {
	case "__description":
		val, ok := ns.Sel.Attr(`meta[name="description"]`, "content")
		return val, ok, nil
	case "__keywords":
		val, ok := ns.Sel.Attr(`meta[name="keywords"]`, "content")
		return val, ok, nil
	}
	val, ok := ns.Sel.Text(name)
	return val, ok, nil
}

// pathAttr resolves path.<name> lookups on the source path.
func (ns *Namespace) pathAttr(name string) (string, bool, error) {
	switch name {
	case "suffix":
		return filepath.Ext(ns.Source.Path), true, nil
	case "name":
		return ns.Source.Filename(), true, nil
	case "stem":
		return ns.Source.Stem(), true, nil
	case "parent":
		return filepath.Dir(ns.Source.Path), true, nil
	}
	return "", false, nil
}
