package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tacogips/gears/internal/app"
	"github.com/tacogips/gears/internal/build"
)

// executeCommand runs the root command with args and returns what it
// printed on stdout and as status output.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	globalConfig, globalNoColor, globalQuiet, globalDebug, globalVerbose = "", false, false, false, false
	compileBase, compileOutput, compileForce, compileDryRun = "", "", false, false
	checkBase = ""
	configFormat = "toml"
	versionShort, versionJSON = false, false

	var stdout, status bytes.Buffer
	prev := statusOut
	statusOut = &status
	t.Cleanup(func() { statusOut = prev })

	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&status)
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))

	err := rootCmd.Execute()
	return stdout.String(), status.String(), err
}

func writeAssets(t *testing.T, files map[string]string) string {
	t.Helper()
	base := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(base, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", rel, err)
		}
	}
	return base
}

func TestCompileCommandStdout(t *testing.T) {
	base := writeAssets(t, map[string]string{
		"app.css": "/* = require b */\nA",
		"b.css":   "B",
	})

	stdout, status, err := executeCommand(t, "compile", "--base", base, "app.css")
	if err != nil {
		t.Fatalf("compile failed: %v (status: %s)", err, status)
	}
	if stdout != "B\n\nA\n" {
		t.Errorf("expected compiled asset on stdout, got %q", stdout)
	}
	if status != "" {
		t.Errorf("expected no status output, got %q", status)
	}
}

func TestCompileCommandOutputDir(t *testing.T) {
	base := writeAssets(t, map[string]string{"app.js": "//= require b\nA", "b.js": "B"})
	outDir := t.TempDir()

	_, status, err := executeCommand(t, "compile", "-b", base, "-o", outDir, "app.js")
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if !strings.Contains(status, "✓ app.js -> ") {
		t.Errorf("expected success line, got %q", status)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "app.js"))
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if string(data) != "B\n\nA\n" {
		t.Errorf("unexpected output %q", data)
	}

	// second run keeps the file without --force
	_, status, err = executeCommand(t, "compile", "-b", base, "-o", outDir, "app.js")
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if !strings.Contains(status, "Kept existing") {
		t.Errorf("expected kept warning, got %q", status)
	}
}

func TestCompileCommandErrors(t *testing.T) {
	base := writeAssets(t, map[string]string{"app.css": "/* = require a b */\nA"})

	if _, _, err := executeCommand(t, "compile"); err == nil {
		t.Error("expected error without arguments")
	}

	_, _, err := executeCommand(t, "compile", "--base", base, "app.css")
	if err == nil || !strings.Contains(err.Error(), "app.css") {
		t.Errorf("expected malformed directive error naming app.css, got %v", err)
	}
}

func TestCheckCommand(t *testing.T) {
	base := writeAssets(t, map[string]string{
		"ok.css":  "/* = require b */\nA",
		"b.css":   "B",
		"bad.css": "/* = require missing */\nC",
	})

	_, status, err := executeCommand(t, "check", "--base", base, "ok.css")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(status, "1 asset(s) checked") {
		t.Errorf("expected summary, got %q", status)
	}

	_, status, err = executeCommand(t, "check", "--base", base)
	if err == nil {
		t.Fatal("expected check to fail")
	}
	if !strings.Contains(err.Error(), "1 of 3") {
		t.Errorf("expected failure count, got %v", err)
	}
	if !strings.Contains(status, "✗ bad.css (via missing.css)") {
		t.Errorf("expected failure line for bad.css, got %q", status)
	}
}

func TestConfigShowCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "gears.toml")
	if err := os.WriteFile(cfgPath, []byte("[processors]\nless = \"css\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	stdout, _, err := executeCommand(t, "--config", cfgPath, "config", "show", "--format", "json")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	var shown struct {
		Processors map[string]string `json:"processors"`
		Output     struct {
			Color bool `json:"color"`
		} `json:"output"`
	}
	if err := json.Unmarshal([]byte(stdout), &shown); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if shown.Processors["less"] != "css" || shown.Processors["css"] != "css" {
		t.Errorf("unexpected processors %v", shown.Processors)
	}
	if shown.Output.Color {
		t.Error("--no-color should be reflected in the effective configuration")
	}

	if _, _, err := executeCommand(t, "--config", filepath.Join(dir, "missing.toml"), "config", "show"); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "version", "--short")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if strings.TrimSpace(stdout) != build.Version() {
		t.Errorf("expected %s, got %q", build.Version(), stdout)
	}

	stdout, _, err = executeCommand(t, "version", "--json")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	var info VersionInfo
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if info.Version != build.Version() {
		t.Errorf("expected version %s, got %s", build.Version(), info.Version)
	}
	if info.Bindings["css"] != "css" || info.Bindings["js"] != "javascript" {
		t.Errorf("unexpected default bindings: %v", info.Bindings)
	}
	for _, ref := range []string{"css", "javascript", "raw"} {
		found := false
		for _, got := range info.References {
			found = found || got == ref
		}
		if !found {
			t.Errorf("expected reference %s in %v", ref, info.References)
		}
	}

	stdout, _, err = executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	for _, want := range []string{"gears " + build.Version(), "javascript", ".js=javascript"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCheckError(t *testing.T) {
	tests := []struct {
		name string
		in   app.CheckError
		want string
	}{
		{"same file", app.CheckError{Path: "a.css", File: "a.css", Message: "boom"}, "a.css: boom"},
		{"dependency", app.CheckError{Path: "a.css", File: "b.css", Message: "boom"}, "a.css (via b.css): boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatCheckError(tt.in); got != tt.want {
				t.Errorf("formatCheckError() = %q, want %q", got, tt.want)
			}
		})
	}
}
