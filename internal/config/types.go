package config

// Config represents the gears configuration.
type Config struct {
	// Processors maps file extensions to processor references
	// ("css", "javascript", "raw", ...).
	Processors map[string]string `mapstructure:"processors" toml:"processors" json:"processors"`
	// Variants declares additional processor variants by reference name.
	// Processors may bind extensions to them like any builtin.
	Variants map[string]VariantConfig `mapstructure:"variants" toml:"variants,omitempty" json:"variants,omitempty"`
	// Assets configures where sources are read from and written to.
	Assets AssetsConfig `mapstructure:"assets" toml:"assets" json:"assets"`
	// Registry configures the processor registry.
	Registry RegistryConfig `mapstructure:"registry" toml:"registry" json:"registry"`
	// Output configuration for display and logging.
	Output OutputConfig `mapstructure:"output" toml:"output" json:"output"`
}

// AssetsConfig represents asset location and resolution settings.
type AssetsConfig struct {
	// BaseDir is the directory every source read is confined to.
	BaseDir string `mapstructure:"base_dir" toml:"base_dir" json:"base_dir"`
	// OutputDir is where compiled assets are written. Empty means stdout.
	OutputDir string `mapstructure:"output_dir" toml:"output_dir" json:"output_dir"`
	// MaxDepth limits require chains (0 = unlimited).
	MaxDepth int `mapstructure:"max_depth" toml:"max_depth" json:"max_depth"`
}

// RegistryConfig represents processor registry settings.
type RegistryConfig struct {
	// CacheSize is the capacity of the processor lookup cache.
	CacheSize int `mapstructure:"cache_size" toml:"cache_size" json:"cache_size"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `mapstructure:"color" toml:"color" json:"color"`
	// Verbose enables verbose logging output.
	Verbose bool `mapstructure:"verbose" toml:"verbose" json:"verbose"`
	// Quiet suppresses non-error output.
	Quiet bool `mapstructure:"quiet" toml:"quiet" json:"quiet"`
}

// VariantConfig declares a directive processor variant.
type VariantConfig struct {
	// Base names a builtin variant whose grammar fills unset patterns.
	Base string `mapstructure:"base" toml:"base,omitempty" json:"base,omitempty"`
	// Extension is appended to extensionless requires. Defaults to the
	// variant name.
	Extension string `mapstructure:"extension" toml:"extension,omitempty" json:"extension,omitempty"`
	// Header is the regular expression matching the comment header.
	Header string `mapstructure:"header" toml:"header,omitempty" json:"header,omitempty"`
	// Directive is the regular expression matching one directive line.
	Directive string `mapstructure:"directive" toml:"directive,omitempty" json:"directive,omitempty"`
}
