package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/viant/afs/url"
	"github.com/viant/emlmerge/catalog"
	"github.com/viant/emlmerge/manifest"
	"github.com/viant/emlmerge/matching"
	"github.com/viant/emlmerge/matching/option"
	"github.com/viant/emlmerge/merge"
	"github.com/viant/emlmerge/source"
)

// PlanRequest describes which documents to order.
type PlanRequest struct {
	// Input is a directory or a comma-separated list of files.
	Input      string
	Extensions []string
	Exclude    []string
	Workers    int
	Logf       func(format string, args ...any)
}

// MergeRequest describes a merge run.
type MergeRequest struct {
	PlanRequest
	// Output is a file path, or a directory receiving merged_emails.<ext>.
	Output string
}

// Plan enumerates, catalogs and orders the input documents.
func (s *Service) Plan(ctx context.Context, req PlanRequest) (*manifest.Manifest, error) {
	return s.plan(ctx, req, "")
}

// Merge orders the input documents and merges them into req.Output.
func (s *Service) Merge(ctx context.Context, req MergeRequest) (*merge.Result, error) {
	matcher := newMatcher(req.PlanRequest)
	driver := merge.NewDriver(s.merger,
		merge.WithFS(s.fs),
		merge.WithDefaultName(merge.DefaultName(matcher.Extension())),
		merge.WithLogf(req.Logf),
	)
	output, err := merge.ResolveOutput(ctx, s.fs, req.Output, merge.DefaultName(matcher.Extension()))
	if err != nil {
		return nil, err
	}
	m, err := s.plan(ctx, req.PlanRequest, output)
	if err != nil {
		return nil, err
	}
	return driver.Merge(ctx, m, output)
}

func (s *Service) plan(ctx context.Context, req PlanRequest, output string) (*manifest.Manifest, error) {
	logf := req.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	docs, err := source.NewResolver(s.fs, newMatcher(req)).Resolve(ctx, req.Input)
	if err != nil {
		return nil, err
	}
	if output != "" {
		docs = withoutOutput(docs, output, logf)
		if len(docs) == 0 {
			return nil, fmt.Errorf("%w in %s", source.ErrNoInputFiles, req.Input)
		}
	}
	workers := req.Workers
	if workers <= 0 {
		workers = s.workers
	}
	var opts []catalog.Option
	if workers > 0 {
		opts = append(opts, catalog.WithWorkers(workers))
	}
	opts = append(opts, catalog.WithLogf(logf))
	c, err := catalog.Build(ctx, docs, opts...)
	if err != nil {
		return nil, err
	}
	m := manifest.Order(c)
	logf("Sorted order:")
	for i, e := range m.Entries() {
		logf("  %2d. %s -> Date: %s", i+1, e.Document.Filename, e.Key())
	}
	return m, nil
}

func newMatcher(req PlanRequest) *matching.Manager {
	return matching.New(
		option.WithExtensions(req.Extensions...),
		option.WithExclusionPatterns(req.Exclude...),
	)
}

// withoutOutput drops the output file from the inputs so a rerun into the
// input directory does not merge the previous result.
func withoutOutput(docs []catalog.Document, output string, logf func(format string, args ...any)) []catalog.Document {
	target, err := filepath.Abs(output)
	if err != nil {
		return docs
	}
	out := docs[:0:0]
	for _, doc := range docs {
		if url.Scheme(doc.Path, "") == "" {
			if abs, err := filepath.Abs(doc.Path); err == nil && abs == target {
				logf("skipping output file %s", doc.Path)
				continue
			}
		}
		out = append(out, doc)
	}
	return out
}
