// Package asset is the entry point for resolving an asset: it selects the
// processor variant for a path through the registry and runs it.
package asset

import (
	"context"

	"github.com/tacogips/gears/internal/asset/processor"
	"github.com/tacogips/gears/internal/asset/registry"
	"github.com/tacogips/gears/internal/asset/source"
	"github.com/tacogips/gears/internal/debug"
)

// Dispatcher selects a variant per file extension and processes assets.
type Dispatcher struct {
	registry *registry.Registry
	loader   source.Loader
	opts     []processor.Option
}

// NewDispatcher creates a dispatcher. Processor options apply to every
// processor it instantiates.
func NewDispatcher(reg *registry.Registry, loader source.Loader, opts ...processor.Option) *Dispatcher {
	return &Dispatcher{
		registry: reg,
		loader:   loader,
		opts:     opts,
	}
}

// ProcessorFor returns the processor that handles path.
func (d *Dispatcher) ProcessorFor(path string) (*processor.Processor, error) {
	ref := processor.Ref{Path: path}
	v, err := d.registry.VariantFor(ref.Ext())
	if err != nil {
		return nil, err
	}
	return processor.New(v, d.loader, d.opts...), nil
}

// Process resolves the asset at path under base.
func (d *Dispatcher) Process(ctx context.Context, base, path string) (string, error) {
	p, err := d.ProcessorFor(path)
	if err != nil {
		return "", err
	}

	debug.Logger().Debug("processing asset", "base", base, "path", path, "variant", p.Variant().Name, "kind", p.Variant().Kind)
	return p.Process(ctx, processor.Ref{Base: base, Path: path})
}
