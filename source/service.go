package source

import (
	"context"

	"github.com/viant/afs/storage"
)

// Service abstracts listing and downloading objects so inputs can live on
// the local disk or on any afs-backed storage (s3, gs).
type Service interface {
	// List returns objects available at the given location/URI.
	List(ctx context.Context, location string) ([]storage.Object, error)
	// Object returns the object at location.
	Object(ctx context.Context, location string) (storage.Object, error)
	// Exists reports whether location exists.
	Exists(ctx context.Context, location string) (bool, error)
	// Download returns the content at location.
	Download(ctx context.Context, location string) ([]byte, error)
}
