// Package merge drives the single, all-or-nothing merge of an ordered
// manifest into one output file.
package merge

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/viant/emlmerge/manifest"
	"github.com/viant/emlmerge/source"
)

// Option configures the Driver.
type Option func(*Driver)

// WithFS sets the service used to load documents and probe the output.
func WithFS(fs source.Service) Option {
	return func(d *Driver) { d.fs = fs }
}

// WithDefaultName sets the file name used when the target is a directory.
func WithDefaultName(name string) Option {
	return func(d *Driver) { d.defaultName = name }
}

// WithLogf sets the diagnostic sink.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(d *Driver) { d.logf = logf }
}

// Driver loads manifest documents and hands them to a Merger.
type Driver struct {
	merger      Merger
	fs          source.Service
	defaultName string
	logf        func(format string, args ...any)
}

// Result describes a completed merge.
type Result struct {
	// Path is the resolved output file.
	Path string
	// Count is the number of merged documents.
	Count int
	// Pages is the total page count of the inputs, when the merger can count them.
	Pages int
	// Checksum is the highwayhash of the written output.
	Checksum uint64
}

// NewDriver creates a Driver for merger.
func NewDriver(merger Merger, opts ...Option) *Driver {
	d := &Driver{merger: merger}
	for _, opt := range opts {
		opt(d)
	}
	if d.fs == nil {
		d.fs = source.NewAFS()
	}
	if d.defaultName == "" {
		d.defaultName = DefaultName("pdf")
	}
	return d
}

// Merge writes the manifest documents, in order, into target. The output
// appears only once the whole merge succeeded; on failure any temporary file
// is removed and an existing file at the target is left untouched.
func (d *Driver) Merge(ctx context.Context, m *manifest.Manifest, target string) (*Result, error) {
	if m == nil || m.Len() == 0 {
		return nil, fmt.Errorf("%w: nothing to merge", ErrMergeFailed)
	}
	output, err := ResolveOutput(ctx, d.fs, target, d.defaultName)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(output)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOutputUncreatable, dir, err)
	}

	docs, pages, err := d.load(ctx, m)
	if err != nil {
		return nil, err
	}
	checksum, err := d.write(ctx, output, docs)
	if err != nil {
		return nil, err
	}
	return &Result{Path: output, Count: len(docs), Pages: pages, Checksum: checksum}, nil
}

func (d *Driver) load(ctx context.Context, m *manifest.Manifest) ([]io.ReadSeeker, int, error) {
	counter, _ := d.merger.(PageCounter)
	docs := make([]io.ReadSeeker, 0, m.Len())
	seen := make(map[uint64]string, m.Len())
	total := 0
	d.printf("Merging in order:")
	for i, entry := range m.Entries() {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		location := entry.Document.Path
		data, err := d.fs.Download(ctx, location)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %s: %w", ErrMergeFailed, location, err)
		}
		d.printf("  %2d. Adding: %s", i+1, entry.Document.Filename)
		if sum, err := Hash(data); err == nil {
			if prev, ok := seen[sum]; ok {
				d.printf("  warning: %s has the same content as %s", entry.Document.Filename, prev)
			} else {
				seen[sum] = entry.Document.Filename
			}
		}
		if counter != nil {
			if n, err := counter.Pages(data); err != nil {
				d.printf("  warning: %s: unable to count pages: %v", entry.Document.Filename, err)
			} else {
				total += n
			}
		}
		docs = append(docs, bytes.NewReader(data))
	}
	return docs, total, nil
}

// write merges docs into a temporary file next to output and renames it
// into place on success.
func (d *Driver) write(ctx context.Context, output string, docs []io.ReadSeeker) (checksum uint64, err error) {
	dir := filepath.Dir(output)
	tmp, err := os.CreateTemp(dir, ".merge-*")
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrOutputUncreatable, dir, err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	hasher, err := newHasher()
	if err != nil {
		return 0, err
	}
	bw := bufio.NewWriterSize(tmp, 64*1024)
	if err := d.merger.Merge(ctx, docs, io.MultiWriter(bw, hasher)); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrMergeFailed, output, err)
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrMergeFailed, output, err)
	}
	if err := tmp.Sync(); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrMergeFailed, output, err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrMergeFailed, output, err)
	}
	_ = os.Chmod(tmpPath, 0o644)
	if err := os.Rename(tmpPath, output); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrMergeFailed, output, err)
	}
	committed = true
	return hasher.Sum64(), nil
}

func (d *Driver) printf(format string, args ...any) {
	if d.logf != nil {
		d.logf(format, args...)
	}
}
