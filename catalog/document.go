package catalog

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/viant/afs/url"
)

// Document is one input file to be merged.
type Document struct {
	// Path is the local path or storage URL the document was enumerated as.
	Path string
	// Filename is the base name used for timestamp extraction.
	Filename string
}

// NewDocument creates a Document for location.
func NewDocument(location string) Document {
	return Document{Path: location, Filename: baseName(location)}
}

func baseName(location string) string {
	if url.Scheme(location, "") != "" {
		return path.Base(url.Path(location))
	}
	return filepath.Base(location)
}

// identity returns the key used to detect duplicate inputs.
func (d Document) identity() string {
	if url.Scheme(d.Path, "") != "" {
		return strings.TrimRight(d.Path, "/")
	}
	if abs, err := filepath.Abs(d.Path); err == nil {
		return abs
	}
	return filepath.Clean(d.Path)
}
