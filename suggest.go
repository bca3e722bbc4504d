package hoto

// NotFound marks a variable that produced no value in suggestion
// output. It is distinct from the empty string so misses stay visible.
const NotFound = "(not found)"

// Suggestion pairs a candidate variable with its extracted value.
type Suggestion struct {
	Variable Variable
	Value    string
}

// SuggestionVariables is the candidate set tried by suggestion output:
// one example of every variable form, plus every shorthand.
func SuggestionVariables() []Variable {
	return []Variable{
		{Kind: Namespaced, Domain: "sel", Name: "h1"},
		{Kind: SelectorCall, Selector: "h1:first"},
		{Kind: Namespaced, Domain: "sel", Name: "title"},
		{Kind: SelectorCall, Selector: "h2:first"},
		{Kind: SelectorCall, Selector: "h1", Find: "Tero", Replace: "Someone"},
		{Kind: Shorthand, Name: "path"},
		{Kind: Namespaced, Domain: "path", Name: "suffix"},
		{Kind: Namespaced, Domain: "path", Name: "name"},
		// A key no archive carries, so listings always show what a
		// miss looks like.
		{Kind: Namespaced, Domain: "rdf", Name: "nonexistingkey"},
		{Kind: Namespaced, Domain: "rdf", Name: "originalurl"},
		{Kind: Namespaced, Domain: "rdf", Name: "archived"},
		{Kind: Namespaced, Domain: "rdf", Name: "year"},
		{Kind: Namespaced, Domain: "sel", Name: "__description"},
		{Kind: Namespaced, Domain: "sel", Name: "__keywords"},
		{Kind: Shorthand, Name: "title"},
		{Kind: Shorthand, Name: "ext"},
		{Kind: Shorthand, Name: "h1"},
		{Kind: Shorthand, Name: "year"},
		{Kind: Shorthand, Name: "filename"},
		{Kind: Shorthand, Name: "stem"},
		{Kind: Shorthand, Name: "host"},
	}
}

// Suggest evaluates every candidate variable against ns, substituting
// NotFound for misses. It never fails: an unresolvable variable or a
// broken selector reports NotFound too.
func Suggest(ns *Namespace) []Suggestion {
	vars := SuggestionVariables()
	out := make([]Suggestion, 0, len(vars))
	for _, v := range vars {
		val, err := ns.Resolve(v)
		if err != nil || val == "" {
			val = NotFound
		}
		out = append(out, Suggestion{Variable: v, Value: val})
	}
	return out
}
