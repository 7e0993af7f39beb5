package app

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tacogips/gears/internal/asset"
	"github.com/tacogips/gears/internal/asset/processor"
	"github.com/tacogips/gears/internal/asset/registry"
	"github.com/tacogips/gears/internal/asset/source"
	"github.com/tacogips/gears/internal/config"
	"github.com/tacogips/gears/internal/debug"
)

// NewDispatcher builds a dispatcher from cfg. Every processor binding is
// resolved up front so configuration failures surface before any asset is
// read.
func NewDispatcher(cfg *config.Config, loader source.Loader) (*asset.Dispatcher, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := config.Validate(cfg); err != nil {
		return nil, NewValidationError("invalid configuration", err)
	}

	reg, err := registry.New(cfg.Processors, registry.WithCacheSize(cfg.Registry.CacheSize))
	if err != nil {
		return nil, NewValidationError("failed to create processor registry", err)
	}
	for _, name := range sortedVariantNames(cfg.Variants) {
		v, err := buildVariant(name, cfg.Variants[name])
		if err != nil {
			return nil, NewValidationError("invalid variant", err)
		}
		if err := reg.Register(name, v); err != nil {
			return nil, NewValidationError("invalid variant", err)
		}
		debug.Debug("[app] Registered variant %s (extension %s)", name, v.Extension)
	}
	if err := reg.Validate(); err != nil {
		return nil, NewValidationError("invalid processor bindings", err)
	}

	if loader == nil {
		loader = source.NewFileLoader()
	}

	debug.DebugValue("processors", reg.Bindings())
	return asset.NewDispatcher(reg, loader, processor.WithMaxDepth(cfg.Assets.MaxDepth)), nil
}

// buildVariant compiles a configured variant. Patterns left unset are taken
// from the builtin named by Base.
func buildVariant(name string, vc config.VariantConfig) (processor.Variant, error) {
	header, directive := vc.Header, vc.Directive
	if vc.Base != "" {
		base, ok := registry.Builtin()[vc.Base]
		if !ok || base.IsPassthrough() {
			return processor.Variant{}, fmt.Errorf("variant %s: base %q is not a builtin directive variant", name, vc.Base)
		}
		if header == "" {
			header = base.HeaderPattern()
		}
		if directive == "" {
			directive = base.DirectivePattern()
		}
	}

	ext := config.NormalizeExtension(vc.Extension)
	if ext == "" {
		ext = config.NormalizeExtension(name)
	}
	return processor.NewVariant(name, ext, header, directive)
}

func sortedVariantNames(variants map[string]config.VariantConfig) []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolveBase returns the absolute base directory, preferring override.
func resolveBase(cfg *config.Config, override string) (string, error) {
	base := override
	if base == "" && cfg != nil {
		base = cfg.Assets.BaseDir
	}
	if base == "" {
		base = "."
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return "", NewValidationError(fmt.Sprintf("failed to resolve base directory %q", base), err)
	}
	return abs, nil
}

// assetPath turns a command-line path into a slash-separated asset path
// relative to base.
func assetPath(base, path string) (string, error) {
	if path == "" {
		return "", NewValidationError("asset path cannot be empty", nil)
	}
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(path), nil
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", NewValidationError(fmt.Sprintf("asset %s is outside base directory %s", path, base), err)
	}
	return filepath.ToSlash(rel), nil
}
