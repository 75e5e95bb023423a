package merge

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var disableConfigDir sync.Once

// PDF merges PDF documents with pdfcpu and inspects them with ledongthuc/pdf.
type PDF struct {
	conf *model.Configuration
}

// NewPDF returns a PDF merger using relaxed validation, since exported
// emails often carry minor structural defects.
func NewPDF() *PDF {
	disableConfigDir.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDF{conf: conf}
}

// Merge appends every document, in order, into one PDF written to w.
func (p *PDF) Merge(ctx context.Context, docs []io.ReadSeeker, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return api.MergeRaw(docs, w, false, p.conf)
}

// Pages returns the page count of a PDF document.
func (p *PDF) Pages(data []byte) (pages int, err error) {
	// ledongthuc/pdf panics on some malformed trailers.
	defer func() {
		if r := recover(); r != nil {
			pages, err = 0, fmt.Errorf("pdf: malformed document: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	return r.NumPage(), nil
}
