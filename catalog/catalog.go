// Package catalog pairs each input document with its timestamp sort key.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/viant/emlmerge/timestamp"
)

// ErrDuplicatePath is returned when the same document is listed twice.
var ErrDuplicatePath = errors.New("catalog: duplicate input path")

// Entry is a document with its extracted timestamp.
type Entry struct {
	// Index is the position of the document in the input enumeration.
	Index      int
	Document   Document
	Extraction timestamp.Extraction
}

// Key returns the entry sort key.
func (e *Entry) Key() timestamp.Key {
	return e.Extraction.Key
}

// Catalog holds one entry per input document in input order.
type Catalog struct {
	entries []Entry
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in input order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Option configures Build.
type Option func(*options)

type options struct {
	workers int
	logf    func(format string, args ...any)
}

// WithWorkers bounds the number of concurrent extractions.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithLogf sets the diagnostic sink for per-document extraction results.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(o *options) { o.logf = logf }
}

// Build extracts a sort key for every document. Extraction runs
// concurrently; the returned catalog keeps the input order.
func Build(ctx context.Context, docs []Document, opts ...Option) (*Catalog, error) {
	o := &options{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(o)
	}
	if err := checkDuplicates(docs); err != nil {
		return nil, err
	}

	workers := o.workers
	if workers <= 0 || workers > len(docs) {
		workers = len(docs)
	}
	entries := make([]Entry, len(docs))
	limiter := make(chan struct{}, max(workers, 1))
	var wg sync.WaitGroup
	for i, doc := range docs {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		default:
		}
		wg.Add(1)
		limiter <- struct{}{}
		go func(index int, doc Document) {
			defer wg.Done()
			defer func() { <-limiter }()
			entries[index] = Entry{
				Index:      index,
				Document:   doc,
				Extraction: timestamp.Extract(doc.Filename),
			}
		}(i, doc)
	}
	wg.Wait()

	if o.logf != nil {
		o.logf("Found %d files:", len(entries))
		for i := range entries {
			entries[i].Extraction.Report(o.logf)
		}
	}
	return &Catalog{entries: entries}, nil
}

func checkDuplicates(docs []Document) error {
	seen := make(map[string]int, len(docs))
	for i, doc := range docs {
		id := doc.identity()
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s (positions %d and %d)", ErrDuplicatePath, doc.Path, prev+1, i+1)
		}
		seen[id] = i
	}
	return nil
}
