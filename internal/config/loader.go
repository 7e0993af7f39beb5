package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/tacogips/gears/internal/debug"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path. An empty path
	// searches the loader's directories for gears.{toml,yaml,json}.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// ViperLoader implements Loader with layered defaults, config file and
// GEARS_* environment overrides.
type ViperLoader struct {
	// SearchDirs are searched in order when no explicit path is given.
	SearchDirs []string
}

// NewLoader creates a loader searching the current directory.
func NewLoader() Loader {
	return &ViperLoader{SearchDirs: []string{"."}}
}

// NewLoaderWithDirs creates a loader searching dirs.
func NewLoaderWithDirs(dirs ...string) Loader {
	return &ViperLoader{SearchDirs: dirs}
}

// Load loads configuration from the specified file path.
func (l *ViperLoader) Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
			}
			return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigFileName)
		for _, dir := range l.SearchDirs {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid configuration syntax", err)
		}
		if path == "" {
			return nil, NewConfigErrorWithCause(ConfigNotFound, "", "no gears configuration file found", err)
		}
	}

	used := v.ConfigFileUsed()
	debug.Debug("[config] Loaded configuration from %s", used)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, used, "failed to decode configuration", err)
	}
	cfg.Processors = mergeProcessors(cfg.Processors)

	if err := l.Validate(&cfg); err != nil {
		if cfgErr, ok := err.(*ConfigError); ok {
			cfgErr.File = used
		}
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
// Environment overrides still apply to the defaults.
func (l *ViperLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		if cfgErr, ok := err.(*ConfigError); ok && cfgErr.Type == ConfigNotFound {
			debug.Debug("[config] No configuration file at %q, using defaults", path)
			return loadDefaults()
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *ViperLoader) Validate(config *Config) error {
	return Validate(config)
}

func loadDefaults() (*Config, error) {
	v := newViper()
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, "", "failed to decode configuration", err)
	}
	cfg.Processors = mergeProcessors(cfg.Processors)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// newViper returns a viper instance seeded with defaults and environment
// overrides.
func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	for ext, ref := range defaults.Processors {
		v.SetDefault("processors."+ext, ref)
	}
	v.SetDefault("assets.base_dir", defaults.Assets.BaseDir)
	v.SetDefault("assets.output_dir", defaults.Assets.OutputDir)
	v.SetDefault("assets.max_depth", defaults.Assets.MaxDepth)
	v.SetDefault("registry.cache_size", defaults.Registry.CacheSize)
	v.SetDefault("output.color", defaults.Output.Color)
	v.SetDefault("output.verbose", defaults.Output.Verbose)
	v.SetDefault("output.quiet", defaults.Output.Quiet)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// mergeProcessors overlays user bindings on the default bindings. A user key
// that normalizes to a default extension replaces that default.
func mergeProcessors(user map[string]string) map[string]string {
	merged := DefaultProcessors()
	for ext := range user {
		delete(merged, NormalizeExtension(ext))
	}
	for ext, ref := range user {
		merged[ext] = ref
	}
	return merged
}
