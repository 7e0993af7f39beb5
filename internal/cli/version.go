package cli

import (
	"encoding/json"
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tacogips/gears/internal/asset/registry"
	"github.com/tacogips/gears/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show gears build and processor information",
	Long: `Report the gears release, the commit it was built from and the
processor references compiled into this binary.

Processor references are the names a [processors] binding in gears.toml
may point at. Extensions without a binding are copied verbatim.

Examples:
  gears version
  gears version --short
  gears version --json | jq .references`,
	RunE: runVersion,
}

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the release number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build and processor information as JSON")
}

// VersionInfo describes a gears binary.
type VersionInfo struct {
	Version    string            `json:"version"`
	Commit     string            `json:"commit"`
	BuildDate  string            `json:"build_date"`
	GoVersion  string            `json:"go_version"`
	Platform   string            `json:"platform"`
	References []string          `json:"references"`
	Bindings   map[string]string `json:"default_bindings"`
}

func newVersionInfo() VersionInfo {
	refs := make([]string, 0)
	for ref := range registry.Builtin() {
		refs = append(refs, ref)
	}
	sort.Strings(refs)

	return VersionInfo{
		Version:    build.Version(),
		Commit:     build.GitCommit(),
		BuildDate:  build.BuildDate(),
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		References: refs,
		Bindings:   registry.DefaultBindings(),
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := newVersionInfo()
	out := cmd.OutOrStdout()

	switch {
	case versionShort:
		fmt.Fprintln(out, info.Version)
	case versionJSON:
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode version info: %w", err)
		}
		fmt.Fprintln(out, string(data))
	default:
		exts := make([]string, 0, len(info.Bindings))
		for ext := range info.Bindings {
			exts = append(exts, ext)
		}
		sort.Strings(exts)
		bindings := make([]string, 0, len(exts))
		for _, ext := range exts {
			bindings = append(bindings, fmt.Sprintf(".%s=%s", ext, info.Bindings[ext]))
		}

		fmt.Fprintf(out, "%s %s (%s, built %s)\n",
			styled(headerStyle, "gears"), info.Version, info.Commit, info.BuildDate)
		fmt.Fprintf(out, "%s %s\n", styled(detailStyle, "runtime:   "), info.GoVersion+" "+info.Platform)
		fmt.Fprintf(out, "%s %s\n", styled(detailStyle, "processors:"), strings.Join(info.References, ", "))
		fmt.Fprintf(out, "%s %s\n", styled(detailStyle, "bindings:  "), strings.Join(bindings, " "))
	}
	return nil
}
