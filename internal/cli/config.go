package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/gears/internal/config"
)

// configCmd groups configuration subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect gears configuration",
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration gears would use: defaults merged with the
config file, GEARS_* environment variables and global flags.

Examples:
  gears config show
  gears config show --format json
  GEARS_ASSETS_MAX_DEPTH=16 gears config show`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configFormat string

func init() {
	configShowCmd.Flags().StringVar(&configFormat, FlagFormat, config.FormatTOML, DescFormat)
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg, configFormat)
	if err != nil {
		return err
	}

	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	return nil
}
