package registry

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/pkg/domain"
)

// Registry maps file extensions to machine parsers.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]compiler.ParseFunc
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]compiler.ParseFunc),
	}
}

// Default returns a registry with the built-in formats:
// ".txt" (tabular), ".json" and ".yaml"/".yml" (structured).
func Default() *Registry {
	r := NewRegistry()
	r.Register(".txt", compiler.ParseTabular)
	r.Register(".json", compiler.ParseJSON)
	r.Register(".yaml", compiler.ParseYAML)
	r.Register(".yml", compiler.ParseYAML)
	return r
}

// Register adds a parser for ext (with or without the leading dot, case-insensitive).
// If a parser for the same extension exists, it is overwritten.
func (r *Registry) Register(ext string, fn compiler.ParseFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formats[normalize(ext)] = fn
}

// Lookup returns the parser responsible for path.
// Returns domain.ErrUnsupportedFormat if the extension is missing or unknown.
func (r *Registry) Lookup(path string) (compiler.ParseFunc, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, fmt.Errorf("%w: %s has no extension", domain.ErrUnsupportedFormat, filepath.Base(path))
	}

	r.mu.RLock()
	fn, ok := r.formats[normalize(ext)]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, ext)
	}
	return fn, nil
}

// Extensions lists the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.formats))
	for ext := range r.formats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalize(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
