// Package manifest orders catalog entries into merge order.
package manifest

import (
	"fmt"
	"io"
	"slices"

	"github.com/viant/emlmerge/catalog"
)

// Manifest is the ordered list of documents to merge. It always holds every
// catalog entry exactly once.
type Manifest struct {
	entries []catalog.Entry
}

// Order sorts the catalog: documents without a timestamp first, then by
// normalized timestamp. Equal keys keep their input order.
func Order(c *catalog.Catalog) *Manifest {
	entries := c.Entries()
	slices.SortStableFunc(entries, func(a, b catalog.Entry) int {
		return a.Key().Compare(b.Key())
	})
	return &Manifest{entries: entries}
}

// Len returns the number of documents.
func (m *Manifest) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the ordered entries.
func (m *Manifest) Entries() []catalog.Entry {
	out := make([]catalog.Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Paths returns document paths in merge order.
func (m *Manifest) Paths() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Document.Path
	}
	return out
}

// Print writes a numbered listing of the manifest to w.
func (m *Manifest) Print(w io.Writer) error {
	for i, e := range m.entries {
		if _, err := fmt.Fprintf(w, "  %2d. %s -> Date: %s\n", i+1, e.Document.Filename, e.Key()); err != nil {
			return err
		}
	}
	return nil
}
