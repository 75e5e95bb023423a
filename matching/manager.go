package matching

import (
	"path"
	"strings"

	"github.com/viant/afs/url"
	"github.com/viant/emlmerge/matching/option"
)

// Manager decides which enumerated files are input documents
type Manager struct {
	options *option.Options
}

// New creates a new matching manager with the given options
func New(opts ...option.Option) *Manager {
	return &Manager{options: option.NewOptions(opts...)}
}

// Extension returns the primary accepted extension
func (m *Manager) Extension() string {
	return m.options.Extensions[0]
}

// IsIncluded checks whether location has an accepted extension and is not excluded
func (m *Manager) IsIncluded(location string) bool {
	p := location
	if url.Scheme(location, "") != "" {
		p = url.Path(location)
	}
	p = strings.ReplaceAll(p, "\\", "/")
	if !m.hasExtension(p) {
		return false
	}
	for _, pattern := range m.options.Exclusions {
		pattern = strings.TrimSpace(pattern)
		// Skip comments or empty lines
		if pattern == "" || strings.HasPrefix(pattern, "#") {
			continue
		}
		if m.isExcluded(p, pattern) {
			return false
		}
	}
	return true
}

func (m *Manager) hasExtension(p string) bool {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
	if ext == "" {
		return false
	}
	for _, candidate := range m.options.Extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

func (m *Manager) isExcluded(p string, pattern string) bool {
	baseName := path.Base(p)
	if pattern == baseName || pattern == p {
		return true
	}
	if matched, _ := path.Match(pattern, baseName); matched {
		return true
	}
	if matched, _ := path.Match(strings.TrimPrefix(pattern, "/"), strings.TrimPrefix(p, "/")); matched {
		return true
	}
	return false
}
