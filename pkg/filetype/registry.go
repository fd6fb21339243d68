// Package filetype classifies directory entries by name. Nothing in this
// package opens or reads a file, so classification costs the same for a
// 1 KB file and a 100 GB one.
package filetype

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Detector reports the previewable type of a path, if any.
type Detector interface {
	Detect(path string) (string, bool)
}

// Registry is a Detector backed by a fixed set of categories, dispatching on
// the lower-cased file extension.
type Registry struct {
	byExtension map[string]string
}

// NewRegistry registers the given categories. When two categories claim the
// same extension, the first one wins.
func NewRegistry(categories ...Category) *Registry {
	r := &Registry{byExtension: map[string]string{}}
	for _, c := range categories {
		for _, ext := range c.Extensions {
			ext = strings.ToLower(ext)
			if _, ok := r.byExtension[ext]; !ok {
				r.byExtension[ext] = c.Name
			}
		}
	}
	return r
}

// NewRegistryFromNames looks the names up in Categories.
func NewRegistryFromNames(names []string) (*Registry, error) {
	categories := make([]Category, 0, len(names))
	for _, name := range names {
		c, ok := Categories[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, errors.Errorf("unknown preview type %q", name)
		}
		categories = append(categories, c)
	}
	return NewRegistry(categories...), nil
}

func (r *Registry) Detect(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "", false
	}
	t, ok := r.byExtension[ext]
	return t, ok
}
