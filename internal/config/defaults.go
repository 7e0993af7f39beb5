package config

const (
	// ConfigFileName is the config file name searched for, without extension.
	ConfigFileName = "gears"
	// EnvPrefix prefixes environment variable overrides (GEARS_ASSETS_BASE_DIR, ...).
	EnvPrefix = "GEARS"
	// DefaultCacheSize is the default processor lookup cache capacity.
	DefaultCacheSize = 64
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Processors: DefaultProcessors(),
		Assets: AssetsConfig{
			BaseDir:   ".",
			OutputDir: "",
			MaxDepth:  0,
		},
		Registry: RegistryConfig{
			CacheSize: DefaultCacheSize,
		},
		Output: OutputConfig{
			Color:   true,
			Verbose: false,
			Quiet:   false,
		},
	}
}

// DefaultProcessors returns the default extension to processor bindings.
func DefaultProcessors() map[string]string {
	return map[string]string{
		"css": "css",
		"js":  "javascript",
	}
}
