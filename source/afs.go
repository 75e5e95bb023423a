package source

import (
	"context"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// afsService is a Service implemented using github.com/viant/afs
type afsService struct {
	svc afs.Service
}

// NewAFS constructs a Service backed by the default AFS service.
func NewAFS() Service {
	return &afsService{svc: afs.New()}
}

func (a *afsService) List(ctx context.Context, location string) ([]storage.Object, error) {
	return a.svc.List(ctx, toURL(location))
}

func (a *afsService) Object(ctx context.Context, location string) (storage.Object, error) {
	return a.svc.Object(ctx, toURL(location))
}

func (a *afsService) Exists(ctx context.Context, location string) (bool, error) {
	return a.svc.Exists(ctx, toURL(location))
}

func (a *afsService) Download(ctx context.Context, location string) ([]byte, error) {
	return a.svc.DownloadWithURL(ctx, toURL(location))
}

// toURL converts OS paths to file:// URLs and leaves URLs untouched.
func toURL(location string) string {
	if url.Scheme(location, "") != "" {
		return location
	}
	if abs, err := filepath.Abs(location); err == nil {
		location = abs
	}
	return url.ToFileURL(location)
}
