package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/gears/internal/app"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [PATH...]",
	Short: "Verify that every require directive resolves",
	Long: `Resolve each asset without writing anything and report failures.

Directories are searched recursively for files whose extension is bound to
a directive processor; hidden files and directories are skipped. With no
PATH the whole base directory is checked. Configuration errors, such as a
binding to an unknown processor, abort the check.

Examples:
  gears check app.css
  gears check --base assets css js`,
	RunE: runCheck,
}

var checkBase string

func init() {
	checkCmd.Flags().StringVarP(&checkBase, FlagBase, "b", "", DescBase)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	result, err := app.Check(cmd.Context(), app.CheckOptions{
		Config:  cfg,
		Paths:   args,
		BaseDir: checkBase,
	})
	if err != nil {
		return err
	}

	printVerbose(fmt.Sprintf("Base directory: %s", result.BaseDir))

	if result.AssetsWithErrors == 0 {
		printSuccess(fmt.Sprintf("%d asset(s) checked, all requires resolve", result.AssetsChecked))
		return nil
	}

	printHeader("Failures")
	for _, e := range result.Errors {
		printErrorMsg(formatCheckError(e))
	}

	return fmt.Errorf("%d of %d asset(s) failed to resolve", result.AssetsWithErrors, result.AssetsChecked)
}

// formatCheckError renders a check failure, naming the dependency when the
// failure occurred below the checked asset.
func formatCheckError(e app.CheckError) string {
	if e.File != "" && e.File != e.Path {
		return fmt.Sprintf("%s (via %s): %s", e.Path, e.File, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}
