package config

import (
	"fmt"
	"sort"
	"strings"
)

// Validate validates the configuration.
func Validate(config *Config) error {
	if config == nil {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "", "configuration cannot be nil")
	}

	if config.Registry.CacheSize < 1 {
		return NewConfigErrorWithField(
			ConfigValidationFailed,
			"",
			"registry.cache_size",
			fmt.Sprintf("cache size must be at least 1, got %d", config.Registry.CacheSize),
		)
	}

	if config.Assets.MaxDepth < 0 {
		return NewConfigErrorWithField(
			ConfigValidationFailed,
			"",
			"assets.max_depth",
			fmt.Sprintf("max depth cannot be negative, got %d", config.Assets.MaxDepth),
		)
	}

	if config.Assets.BaseDir == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "assets.base_dir", "base directory cannot be empty")
	}

	if config.Output.Quiet && config.Output.Verbose {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "output", "quiet and verbose are mutually exclusive")
	}

	if err := ValidateProcessors(config.Processors); err != nil {
		return err
	}
	return ValidateVariants(config.Variants)
}

// ValidateProcessors checks the shape of extension bindings. Whether a
// reference names a known processor is decided by the registry.
func ValidateProcessors(processors map[string]string) error {
	exts := make([]string, 0, len(processors))
	for ext := range processors {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	seen := make(map[string]string, len(exts))
	for _, ext := range exts {
		name := NormalizeExtension(ext)
		if name == "" {
			return NewConfigErrorWithField(ConfigValidationFailed, "", "processors", "extension cannot be empty")
		}
		if strings.ContainsAny(name, `/\`) {
			return NewConfigErrorWithField(
				ConfigValidationFailed,
				"",
				"processors."+ext,
				"extension cannot contain path separators",
			)
		}
		if prev, ok := seen[name]; ok {
			return NewConfigErrorWithField(
				ConfigValidationFailed,
				"",
				"processors."+ext,
				fmt.Sprintf("extension duplicates %q", prev),
			)
		}
		seen[name] = ext

		if strings.TrimSpace(processors[ext]) == "" {
			return NewConfigErrorWithField(
				ConfigValidationFailed,
				"",
				"processors."+ext,
				"processor reference cannot be empty",
			)
		}
	}
	return nil
}

// ValidateVariants checks the shape of variant declarations. Pattern syntax
// and base names are checked when the variants are built.
func ValidateVariants(variants map[string]VariantConfig) error {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		vc := variants[name]
		field := "variants." + name
		if strings.TrimSpace(name) == "" {
			return NewConfigErrorWithField(ConfigValidationFailed, "", "variants", "variant name cannot be empty")
		}
		if strings.ContainsAny(NormalizeExtension(vc.Extension), `/\`) {
			return NewConfigErrorWithField(ConfigValidationFailed, "", field+".extension",
				"extension cannot contain path separators")
		}
		if vc.Base == "" && (vc.Header == "" || vc.Directive == "") {
			return NewConfigErrorWithField(ConfigValidationFailed, "", field,
				"variant needs a base or both header and directive patterns")
		}
	}
	return nil
}

// NormalizeExtension lowercases ext and strips a leading dot.
func NormalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
