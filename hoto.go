// Package hoto renames HTML and MAFF files from HTML tags and archive
// metadata. It extracts tag text by CSS selector, reads the RDF sidecar
// of MAFF (zipped web page) archives, evaluates a small format-string
// language against the extracted values, and renames the source file to
// the result.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// etree/, maff/).
package hoto
