package service

import (
	"github.com/viant/emlmerge/merge"
	"github.com/viant/emlmerge/source"
)

// Option configures the Service.
type Option func(*Service)

// WithFS sets the storage service used to enumerate and load documents.
func WithFS(fs source.Service) Option {
	return func(s *Service) { s.fs = fs }
}

// WithMerger sets the merge capability.
func WithMerger(merger merge.Merger) Option {
	return func(s *Service) { s.merger = merger }
}

// WithWorkers sets the default number of concurrent timestamp extractions.
func WithWorkers(n int) Option {
	return func(s *Service) { s.workers = n }
}

// Service exposes planning and merging of timestamp-ordered documents.
type Service struct {
	fs      source.Service
	merger  merge.Merger
	workers int
}

// NewService creates a new Service. Without options it reads through afs
// and merges PDFs.
func NewService(opts ...Option) (*Service, error) {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = source.NewAFS()
	}
	if s.merger == nil {
		s.merger = merge.NewPDF()
	}
	return s, nil
}
