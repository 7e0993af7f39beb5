package cli

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/tacogips/gears/internal/build"
	"github.com/tacogips/gears/internal/config"
	"github.com/tacogips/gears/internal/debug"
)

// Global flags
var (
	globalConfig  string
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalVerbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gears",
	Short: "Asset preprocessor for CSS and JavaScript require directives",
	Long: `gears resolves require directives in the leading comment header of
CSS and JavaScript files and inlines the required files, recursively.

  /*
   *= require reset
   */
  body { margin: 0 }

Use "gears compile <path>" to print or write the compiled asset and
"gears check <path>" to verify that every require resolves.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(build.Version()),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&globalConfig, FlagConfig, "c", "", DescConfig)
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	// Add subcommands
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the effective configuration and folds global flags
// into it. An explicit --config file must exist; otherwise gears.* in the
// working directory is optional.
func loadConfig() (*config.Config, error) {
	loader := config.NewLoader()

	var (
		cfg *config.Config
		err error
	)
	if globalConfig != "" {
		cfg, err = loader.Load(globalConfig)
	} else {
		cfg, err = loader.LoadOrDefault("")
	}
	if err != nil {
		return nil, err
	}

	if globalNoColor {
		cfg.Output.Color = false
	}
	if globalQuiet {
		cfg.Output.Quiet = true
		cfg.Output.Verbose = false
	}

	globalNoColor = !cfg.Output.Color
	globalQuiet = cfg.Output.Quiet
	globalVerbose = cfg.Output.Verbose
	debug.SetNoColor(globalNoColor)

	return cfg, nil
}
