package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagBase    = "base"
	FlagOutput  = "output"
	FlagConfig  = "config"
	FlagForce   = "force"
	FlagDryRun  = "dry-run"
	FlagFormat  = "format"
	FlagNoColor = "no-color"
	FlagQuiet   = "quiet"
	FlagDebug   = "debug"

	// Flag descriptions
	DescBase    = "Base directory every asset is read from (default from config, else .)"
	DescOutput  = "Output directory (default: print to stdout)"
	DescConfig  = "Path to config file (default: gears.{toml,yaml,json} in the working directory)"
	DescForce   = "Replace existing output files without asking"
	DescDryRun  = "Resolve assets without writing anything"
	DescFormat  = "Output format (toml or json)"
	DescNoColor = "Disable colored output"
	DescQuiet   = "Suppress non-error output"
	DescDebug   = "Enable debug logging"
)
