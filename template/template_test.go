package template_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terokarvinen/hoto"
	"github.com/terokarvinen/hoto/mock"
	"github.com/terokarvinen/hoto/template"
)

// stripPositional mirrors the real extractor's handling of the jQuery
// :first/:last suffixes, which reach the Selectable verbatim.
func stripPositional(selector string) string {
	selector = strings.TrimSuffix(selector, ":first")
	return strings.TrimSuffix(selector, ":last")
}

// renderNamespace backs template rendering with canned tag text.
func renderNamespace() *hoto.Namespace {
	values := map[string]string{
		"h1":    "Tero Karvinen",
		"title": "Tero Karvinen - Learn Free software with me",
		"h2":    "Python weppipalvelu - ideasta tuotantoon",
	}
	sel := &mock.Selectable{
		TextFn: func(selector string) (string, bool) {
			v, ok := values[stripPositional(selector)]
			return v, ok
		},
		TextFilteredFn: func(selector, find, replace string) (string, bool, error) {
			selector = stripPositional(selector)
			if v, ok := values[selector]; ok && find == "Tero" {
				return replace + v[len("Tero"):], true, nil
			}
			v, ok := values[selector]
			return v, ok, nil
		},
		AttrFn: func(string, string) (string, bool) { return "", false },
	}
	return &hoto.Namespace{
		Source: &hoto.Source{Path: "tero.html", Kind: hoto.KindMarkup},
		Sel:    sel,
		RDF:    hoto.Metadata{hoto.MetaArchived: "2024-06-15 w24 Sat"},
	}
}

func TestPrepare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "{sel.title}", template.Prepare("sel.title"))
	assert.Equal(t, "{h1}", template.Prepare("h1"))
	assert.Equal(t, "{h1}.{ext}", template.Prepare("{h1}.{ext}"), "braced input passes through")
	assert.Equal(t, "{{literal}}", template.Prepare("{{literal}}"))
}

func TestParse_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"default format", "{h1}.{ext}", "Tero Karvinen.html"},
		{"shorthand only", "{h1}", "Tero Karvinen"},
		{"sel namespace", "{sel.title}", "Tero Karvinen - Learn Free software with me"},
		{"rdf namespace", "{rdf.archived}", "2024-06-15 w24 Sat"},
		{"mixed literal text", "{stem} - {h1} - 2024.{ext}", "tero - Tero Karvinen - 2024.html"},
		{"selector call", "{sel('h2:first')}", "Python weppipalvelu - ideasta tuotantoon"},
		{"call with find and replace", "{sel('h1', find='Tero', replace='Someone')}", "Someone Karvinen"},
		{"escaped braces", "{{{h1}}}", "{Tero Karvinen}"},
		{"pure literal", "plain text", "plain text"},
	}

	ns := renderNamespace()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpl, err := template.Parse(tt.format)
			require.NoError(t, err)

			got, err := tmpl.Render(ns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
	}{
		{"unclosed brace", "{h1"},
		{"stray closing brace", "h1}"},
		{"empty placeholder", "{}"},
		{"unterminated call", "{sel('h1'"},
		{"unquoted selector", "{sel(h1)}"},
		{"unknown keyword argument", "{sel('h1', limit='3')}"},
		{"missing argument value", "{sel('h1', find=)}"},
		{"arithmetic is not a reference", "{1+2}"},
		{"triple-dotted reference", "{a.b.c}"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := template.Parse(tt.format)
			require.Error(t, err)
			assert.Equal(t, hoto.EINVALID, hoto.ErrorCode(err))
		})
	}
}

func TestParse_QuotedSelectorMayContainBraces(t *testing.T) {
	t.Parallel()

	tmpl, err := template.Parse(`{sel('h2, h3', find='a{2}', replace='b')}`)
	require.NoError(t, err)
	require.NotNil(t, tmpl)
}

func TestRender_UndefinedVariable(t *testing.T) {
	t.Parallel()

	tmpl, err := template.Parse("{nonexisting}")
	require.NoError(t, err)

	_, err = tmpl.Render(renderNamespace())

	require.Error(t, err)
	assert.Equal(t, hoto.EUNDEFINED, hoto.ErrorCode(err))
	assert.Contains(t, hoto.ErrorMessage(err), "nonexisting")
}

func TestRender_EscapedQuoteInSelector(t *testing.T) {
	t.Parallel()

	tmpl, err := template.Parse(`{sel('a[title=\'x\']')}`)
	require.NoError(t, err)

	_, err = tmpl.Render(renderNamespace())
	require.Error(t, err, "selector matches nothing in the canned namespace")
	assert.Equal(t, hoto.EUNDEFINED, hoto.ErrorCode(err))
}
