package merge

import (
	"context"
	"io"
)

// Merger combines documents, in the given order, into one document written to w.
// It either writes a complete document or returns an error.
type Merger interface {
	Merge(ctx context.Context, docs []io.ReadSeeker, w io.Writer) error
}

// PageCounter is implemented by mergers that can inspect a document.
type PageCounter interface {
	Pages(data []byte) (int, error)
}

// MergerFunc adapts a function to Merger.
type MergerFunc func(ctx context.Context, docs []io.ReadSeeker, w io.Writer) error

// Merge calls f.
func (f MergerFunc) Merge(ctx context.Context, docs []io.ReadSeeker, w io.Writer) error {
	return f(ctx, docs, w)
}
