package option

import (
	"strings"
)

// DefaultExtension is the document extension merged when none is configured.
const DefaultExtension = "pdf"

// Options controls which enumerated files are treated as input documents.
type Options struct {

	// Extensions lists accepted file extensions without the leading dot
	Extensions []string

	// Exclusions contains base-name or glob patterns of files to skip
	Exclusions []string
}

// NewOptions creates a new Options instance with default values
func NewOptions(opts ...Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{DefaultExtension}
	}
	return options
}

// Option is a function that modifies Options
type Option func(*Options)

// WithExtensions sets accepted extensions; a leading dot is optional.
func WithExtensions(extensions ...string) Option {
	return func(o *Options) {
		for _, ext := range extensions {
			ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
			if ext != "" {
				o.Extensions = append(o.Extensions, ext)
			}
		}
	}
}

// WithExclusionPatterns adds exclusion patterns
func WithExclusionPatterns(patterns ...string) Option {
	return func(o *Options) {
		o.Exclusions = append(o.Exclusions, patterns...)
	}
}
