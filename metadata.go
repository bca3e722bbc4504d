package hoto

// Metadata keys stored verbatim from the archive's RDF document.
const (
	MetaTitle         = "title"
	MetaOriginalURL   = "originalurl"
	MetaArchiveTime   = "archivetime"
	MetaIndexFilename = "indexfilename"
)

// Metadata keys derived from the stored properties.
const (
	// MetaArchived is the archive timestamp reformatted as
	// "2006-01-02 wWW Day" with the ISO week number.
	MetaArchived = "archived"

	// MetaYear is the four-digit year of the archive timestamp.
	MetaYear = "year"

	// MetaHost is the host portion of the original URL.
	MetaHost = "host"
)

// Metadata is a flat mapping of archive metadata properties. Keys whose
// source field is absent or malformed are omitted from the mapping
// rather than mapped to an empty value.
type Metadata map[string]string
