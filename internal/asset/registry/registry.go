// Package registry maps file extensions to processor variants.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tacogips/gears/internal/asset/processor"
	"github.com/tacogips/gears/internal/debug"
)

// DefaultCacheSize is the number of resolved references kept in the lookup cache.
const DefaultCacheSize = 64

// Builtin returns the variants every registry knows by name.
func Builtin() map[string]processor.Variant {
	return map[string]processor.Variant{
		"css":         processor.CSS,
		"javascript":  processor.JavaScript,
		"js":          processor.JavaScript,
		"raw":         processor.Passthrough,
		"passthrough": processor.Passthrough,
	}
}

// DefaultBindings returns the default extension to reference bindings.
func DefaultBindings() map[string]string {
	return map[string]string{
		"css": "css",
		"js":  "javascript",
	}
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	cacheSize int
}

// WithCacheSize sets the lookup cache capacity.
func WithCacheSize(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// Registry resolves the variant bound to a file extension. Resolved
// references are cached; the cache is safe for concurrent readers.
type Registry struct {
	mu       sync.RWMutex
	bindings map[string]string
	catalog  map[string]processor.Variant
	cache    *lru.Cache[string, processor.Variant]
}

// New creates a registry with the given extension bindings and the builtin
// variant catalog.
func New(bindings map[string]string, opts ...Option) (*Registry, error) {
	o := options{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}

	cache, err := lru.New[string, processor.Variant](o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry cache: %w", err)
	}

	r := &Registry{
		bindings: make(map[string]string, len(bindings)),
		catalog:  Builtin(),
		cache:    cache,
	}
	for ext, ref := range bindings {
		r.bindings[normalizeExt(ext)] = ref
	}
	return r, nil
}

// Register adds a variant to the catalog under reference, replacing any
// variant already known by that name.
func (r *Registry) Register(reference string, v processor.Variant) error {
	if reference == "" {
		return fmt.Errorf("processor reference cannot be empty")
	}
	r.mu.Lock()
	r.catalog[reference] = v
	r.mu.Unlock()
	r.cache.Remove(reference)
	return nil
}

// Bindings returns a copy of the extension bindings.
func (r *Registry) Bindings() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.bindings))
	for ext, ref := range r.bindings {
		out[ext] = ref
	}
	return out
}

// VariantFor returns the variant bound to ext. Unbound extensions get the
// passthrough variant; a binding to an unknown reference is a *ConfigError.
func (r *Registry) VariantFor(ext string) (processor.Variant, error) {
	ext = normalizeExt(ext)

	r.mu.RLock()
	reference, ok := r.bindings[ext]
	r.mu.RUnlock()
	if !ok {
		debug.Debug("[registry] No processor for %q, using passthrough", ext)
		return processor.Passthrough, nil
	}

	if v, ok := r.cache.Get(reference); ok {
		return v, nil
	}

	r.mu.RLock()
	v, ok := r.catalog[reference]
	r.mu.RUnlock()
	if !ok {
		return processor.Variant{}, newUnknownReferenceError(ext, reference)
	}

	debug.Debug("[registry] Resolved %q to variant %s", reference, v.Name)
	r.cache.Add(reference, v)
	return v, nil
}

// Validate resolves every binding and reports all that fail.
func (r *Registry) Validate() error {
	exts := make([]string, 0)
	for ext := range r.Bindings() {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	var errs []error
	for _, ext := range exts {
		if _, err := r.VariantFor(ext); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Reset purges the lookup cache.
func (r *Registry) Reset() {
	r.cache.Purge()
}

// Cached returns the number of cached references.
func (r *Registry) Cached() int {
	return r.cache.Len()
}

func normalizeExt(ext string) string {
	return strings.TrimPrefix(ext, ".")
}
