// Package fs sanitizes formatted names and renames files on the local
// filesystem.
package fs

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxNameLen bounds sanitized filenames, leaving headroom under common
// filesystem limits once the suffix is re-appended.
const maxNameLen = 160

// illegalChars matches characters that are unsafe or meaningful in
// filenames; all are flattened to underscores. The dot is included so
// stray extensions inside the formatted text cannot masquerade as the
// real suffix.
var illegalChars = regexp.MustCompile("[:/\\\\^\\[\\].<>|?*\"`]")

var whitespaceRun = regexp.MustCompile(`\s+`)

// asciiFold decomposes accented characters and drops the combining
// marks, turning for example "ä" into "a".
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// CleanFilename turns a formatted string into a filesystem-legal
// filename. When keepExt is non-empty the returned name always ends
// with that suffix; a matching suffix already present in s is stripped
// first so extensions never stack. Returns the empty string when
// nothing usable survives.
func CleanFilename(s, keepExt string) string {
	if keepExt != "" {
		s = strings.TrimSuffix(s, "."+keepExt)
	}

	if folded, _, err := transform.String(asciiFold, s); err == nil {
		s = folded
	}
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	s = illegalChars.ReplaceAllString(s, "_")
	s = strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
	if len(s) > maxNameLen {
		s = strings.TrimSpace(s[:maxNameLen])
	}
	if s == "" {
		return ""
	}
	if keepExt != "" {
		s += "." + keepExt
	}
	return s
}
