// Package etree extracts MAFF archive metadata from RDF/XML documents.
package etree

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/terokarvinen/hoto"
)

// propertyTags maps RDF element local names to metadata keys.
var propertyTags = map[string]string{
	"title":         hoto.MetaTitle,
	"originalurl":   hoto.MetaOriginalURL,
	"archivetime":   hoto.MetaArchiveTime,
	"indexfilename": hoto.MetaIndexFilename,
}

// Parse extracts archive metadata from an RDF/XML document. Absent or
// malformed input yields an empty mapping, never an error; individual
// fields that fail to parse are omitted from the mapping.
func Parse(rdf []byte) hoto.Metadata {
	meta := hoto.Metadata{}
	if len(rdf) == 0 {
		return meta
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rdf); err != nil {
		return meta
	}
	root := doc.Root()
	if root == nil {
		return meta
	}

	// The properties hang off the RDF:Description element(s) directly
	// under the root, one property per child element, value in the
	// element's attribute (WebScrapbook writes RDF:resource).
	for _, desc := range root.ChildElements() {
		for _, prop := range desc.ChildElements() {
			key, ok := propertyTags[strings.ToLower(prop.Tag)]
			if !ok {
				continue
			}
			if val := firstAttr(prop); val != "" {
				meta[key] = val
			}
		}
	}

	derive(meta)
	return meta
}

// firstAttr returns the element's first attribute value.
func firstAttr(e *etree.Element) string {
	if len(e.Attr) == 0 {
		return ""
	}
	return e.Attr[0].Value
}

// derive adds the computed properties archived, year and host. The
// archived value is exposed only in its derived form; it no longer
// matches either input timestamp format, so re-deriving from it is
// impossible by construction.
func derive(meta hoto.Metadata) {
	if raw, ok := meta[hoto.MetaArchiveTime]; ok {
		if t, err := parseArchiveTime(raw); err == nil {
			meta[hoto.MetaArchived] = formatArchived(t)
			meta[hoto.MetaYear] = fmt.Sprintf("%d", t.Year())
		}
	}
	if raw, ok := meta[hoto.MetaOriginalURL]; ok {
		if u, err := url.Parse(raw); err == nil && u.Host != "" {
			meta[hoto.MetaHost] = u.Host
		}
	}
}

// parseArchiveTime accepts the RFC 2822 dates WebScrapbook writes and
// falls back to RFC 3339.
func parseArchiveTime(raw string) (time.Time, error) {
	if t, err := mail.ParseDate(raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// formatArchived renders a timestamp as "2006-01-02 wWW Day" with the
// two-digit ISO week number and abbreviated weekday.
func formatArchived(t time.Time) string {
	_, week := t.ISOWeek()
	return fmt.Sprintf("%s w%02d %s", t.Format("2006-01-02"), week, t.Format("Mon"))
}
