// Package processor resolves require directives in asset headers and
// concatenates the resolved sources.
//
// A Processor is bound to one Variant. Every dependency named by a directive
// is resolved with that same variant, recursively and depth first, and its
// fully resolved text is inlined ahead of the requiring asset's own body.
// Nothing is memoised between or within calls, and require cycles are not
// detected unless a depth limit is configured with WithMaxDepth.
package processor

import (
	"context"
	"errors"
	"strings"

	"github.com/tacogips/gears/internal/asset/source"
	"github.com/tacogips/gears/internal/debug"
)

// Option configures a Processor.
type Option func(*Processor)

// WithMaxDepth limits the length of require chains. Zero means unlimited.
func WithMaxDepth(depth int) Option {
	return func(p *Processor) {
		p.maxDepth = depth
	}
}

// Processor resolves assets of a single variant.
type Processor struct {
	variant  Variant
	loader   source.Loader
	maxDepth int
}

// New creates a Processor for v reading sources through loader.
func New(v Variant, loader source.Loader, opts ...Option) *Processor {
	p := &Processor{
		variant: v,
		loader:  loader,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Variant returns the variant the processor is bound to.
func (p *Processor) Variant() Variant {
	return p.variant
}

// Process loads the asset at ref and returns its resolved text.
// Loader errors are returned unmodified.
func (p *Processor) Process(ctx context.Context, ref Ref) (string, error) {
	return p.process(ctx, ref, 0)
}

// ProcessSource resolves an already loaded source as if it had been read
// from ref. Dependencies are still read through the loader.
func (p *Processor) ProcessSource(ctx context.Context, ref Ref, src string) (string, error) {
	return p.processSource(ctx, ref, src, 0)
}

func (p *Processor) process(ctx context.Context, ref Ref, depth int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.maxDepth > 0 && depth > p.maxDepth {
		return "", newDepthError(ref.Path, p.maxDepth)
	}

	data, err := p.loader.Load(ref.Base, ref.Path)
	if err != nil {
		return "", err
	}

	return p.processSource(ctx, ref, string(data), depth)
}

func (p *Processor) processSource(ctx context.Context, ref Ref, src string, depth int) (string, error) {
	if p.variant.IsPassthrough() {
		return src, nil
	}

	header, body := SplitHeader(p.variant, src)

	directives, err := ParseDirectives(p.variant, header)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) && parseErr.File == "" {
			parseErr.File = ref.Path
		}
		return "", err
	}

	parts := make([]string, 0, len(directives)+1)
	for _, d := range directives {
		dep := ref.Require(d.Argument, p.variant.Extension)
		debug.Logger().Debug("resolving require",
			"variant", p.variant.Name, "asset", ref.Path, "require", dep.Path, "depth", depth+1)

		text, err := p.process(ctx, dep, depth+1)
		if err != nil {
			return "", err
		}
		parts = append(parts, trimASCII(text))
	}
	parts = append(parts, trimASCII(body))

	banner := stripDirectiveLines(header, directives)
	out := banner + "\n\n" + strings.Join(parts, "\n\n")

	return trimASCII(out) + "\n", nil
}
