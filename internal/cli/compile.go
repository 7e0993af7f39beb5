package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/gears/internal/app"
)

// compileCmd represents the compile command
var compileCmd = &cobra.Command{
	Use:   "compile PATH...",
	Short: "Resolve require directives and emit compiled assets",
	Long: `Resolve the require directives of each asset and emit the result.

PATH is relative to the base directory. Required files are looked up next
to the file that requires them, with the requiring file's extension, and
may never leave the base directory.

Without --output the compiled assets are printed to stdout. With --output
they are written under that directory at the same relative path. Existing
files are kept unless --force is given or the overwrite is confirmed
interactively.

Examples:
  gears compile app.css
  gears compile --base assets css/app.css js/app.js --output public
  gears compile app.js --dry-run`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompile,
}

// Compile command flags
var (
	compileBase   string
	compileOutput string
	compileForce  bool
	compileDryRun bool
)

func init() {
	compileCmd.Flags().StringVarP(&compileBase, FlagBase, "b", "", DescBase)
	compileCmd.Flags().StringVarP(&compileOutput, FlagOutput, "o", "", DescOutput)
	compileCmd.Flags().BoolVarP(&compileForce, FlagForce, "f", false, DescForce)
	compileCmd.Flags().BoolVar(&compileDryRun, FlagDryRun, false, DescDryRun)
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := app.CompileOptions{
		Config:    cfg,
		Paths:     args,
		BaseDir:   compileBase,
		OutputDir: compileOutput,
		Stdout:    cmd.OutOrStdout(),
		Force:     compileForce,
		DryRun:    compileDryRun,
	}
	if !compileForce && isInteractive() {
		opts.Confirm = confirmOverwrite
	}

	result, err := app.Compile(cmd.Context(), opts)
	if err != nil {
		return err
	}

	for _, a := range result.Assets {
		switch {
		case compileDryRun:
			printInfo(fmt.Sprintf("Resolved %s (%s)", a.Path, formatBytes(int64(a.Size))))
		case a.Skipped:
			printWarning(fmt.Sprintf("Kept existing %s (use --%s to replace)", a.OutputPath, FlagForce))
		case a.OutputPath != "":
			printSuccess(fmt.Sprintf("%s -> %s (%s)", a.Path, a.OutputPath, formatBytes(int64(a.Size))))
		default:
			printVerbose(fmt.Sprintf("%s: %s", a.Path, formatBytes(int64(a.Size))))
		}
	}

	if compileDryRun {
		printSuccess(fmt.Sprintf("Dry run: %d asset(s) resolved, nothing written", len(result.Assets)))
	}

	return nil
}
