package merge

import "errors"

var (
	// ErrOutputUncreatable is returned when the output location cannot be
	// resolved or its directory cannot be created.
	ErrOutputUncreatable = errors.New("merge: output path uncreatable")

	// ErrMergeFailed is returned when a document cannot be loaded or the
	// merge capability fails. No output is left behind.
	ErrMergeFailed = errors.New("merge: merge failed")
)
