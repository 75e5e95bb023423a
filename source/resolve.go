// Package source enumerates the input documents of a merge.
package source

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/viant/afs/url"
	"github.com/viant/emlmerge/catalog"
	"github.com/viant/emlmerge/matching"
)

// ErrNoInputFiles is returned when the input resolves to no documents.
var ErrNoInputFiles = errors.New("source: no input files found")

// Resolver turns an --input value into documents.
type Resolver struct {
	fs      Service
	matcher *matching.Manager
}

// NewResolver creates a resolver; a nil fs uses afs.
func NewResolver(fs Service, matcher *matching.Manager) *Resolver {
	if fs == nil {
		fs = NewAFS()
	}
	if matcher == nil {
		matcher = matching.New()
	}
	return &Resolver{fs: fs, matcher: matcher}
}

// Resolve enumerates input, which is either a directory or a comma-separated
// list of files. Directory listings are sorted by path; explicit lists keep
// their order. Files without an accepted extension are dropped.
func (r *Resolver) Resolve(ctx context.Context, input string) ([]catalog.Document, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("%w: empty input", ErrNoInputFiles)
	}
	var (
		locations []string
		err       error
	)
	if r.isDir(ctx, input) {
		locations, err = r.listDir(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", input, err)
		}
	} else {
		locations = r.filter(ParseCSV(input))
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoInputFiles, input)
	}
	docs := make([]catalog.Document, len(locations))
	for i, location := range locations {
		docs[i] = catalog.NewDocument(location)
	}
	return docs, nil
}

func (r *Resolver) isDir(ctx context.Context, input string) bool {
	if strings.Contains(input, ",") {
		return false
	}
	if ok, err := r.fs.Exists(ctx, input); err != nil || !ok {
		return false
	}
	object, err := r.fs.Object(ctx, input)
	if err != nil {
		return false
	}
	return object.IsDir()
}

func (r *Resolver) listDir(ctx context.Context, dir string) ([]string, error) {
	objects, err := r.fs.List(ctx, dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		location := localPath(object.URL())
		if r.matcher.IsIncluded(location) {
			out = append(out, location)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *Resolver) filter(locations []string) []string {
	out := make([]string, 0, len(locations))
	for _, location := range locations {
		if r.matcher.IsIncluded(location) {
			out = append(out, location)
		}
	}
	return out
}

// localPath returns an OS path for file:// URLs.
func localPath(location string) string {
	if url.Scheme(location, "") == "file" {
		return url.Path(location)
	}
	return location
}

// ParseCSV splits a comma-separated list and drops empty items.
func ParseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
