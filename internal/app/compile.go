package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tacogips/gears/internal/asset/source"
	"github.com/tacogips/gears/internal/config"
	"github.com/tacogips/gears/internal/debug"
)

// ConfirmFunc asks whether an existing output file may be replaced.
type ConfirmFunc func(path string) (bool, error)

// CompileOptions holds options for the compile workflow.
type CompileOptions struct {
	// Config is the effective configuration. Nil means defaults.
	Config *config.Config
	// Paths are the asset paths to compile, relative to the base directory.
	Paths []string
	// BaseDir overrides Config.Assets.BaseDir.
	BaseDir string
	// OutputDir overrides Config.Assets.OutputDir. When both are empty the
	// compiled assets are written to Stdout.
	OutputDir string
	// Stdout receives compiled assets when no output directory is set.
	Stdout io.Writer
	// Force replaces existing output files without asking.
	Force bool
	// DryRun resolves every asset but writes nothing.
	DryRun bool
	// Confirm is consulted for existing output files when Force is false.
	// Nil keeps existing files.
	Confirm ConfirmFunc
	// Loader overrides the filesystem loader.
	Loader source.Loader
}

// CompiledAsset describes the outcome for one asset.
type CompiledAsset struct {
	// Path is the asset path relative to the base directory.
	Path string
	// OutputPath is the destination file, empty when printed to Stdout.
	OutputPath string
	// Size is the compiled size in bytes.
	Size int
	// Written reports whether output was produced.
	Written bool
	// Skipped reports whether an existing file was kept.
	Skipped bool
}

// CompileResult holds the results of a compile run.
type CompileResult struct {
	// BaseDir is the absolute base directory used.
	BaseDir string
	// Assets lists every requested asset in order.
	Assets []CompiledAsset
	// Written is the number of outputs produced.
	Written int
	// Skipped is the number of existing files kept.
	Skipped int
}

// Compile resolves every requested asset and writes the results. All assets
// are resolved before anything is written, so a failure leaves no partial
// output behind.
func Compile(ctx context.Context, opts CompileOptions) (*CompileResult, error) {
	debug.DebugSection("Compile")

	if len(opts.Paths) == 0 {
		return nil, NewValidationError("no assets given", nil)
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	base, err := resolveBase(cfg, opts.BaseDir)
	if err != nil {
		return nil, err
	}

	dispatcher, err := NewDispatcher(cfg, opts.Loader)
	if err != nil {
		return nil, err
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = cfg.Assets.OutputDir
	}
	if outputDir == "" && opts.Stdout == nil && !opts.DryRun {
		return nil, NewValidationError("no output directory and no writer for compiled assets", nil)
	}

	result := &CompileResult{BaseDir: base}
	outputs := make([]string, 0, len(opts.Paths))

	for _, p := range opts.Paths {
		rel, err := assetPath(base, p)
		if err != nil {
			return nil, err
		}

		debug.Debug("[app] Compiling %s", rel)
		out, err := dispatcher.Process(ctx, base, rel)
		if err != nil {
			return nil, NewCompileError(rel, err)
		}

		item := CompiledAsset{Path: rel, Size: len(out)}
		if outputDir != "" {
			item.OutputPath = filepath.Join(outputDir, filepath.FromSlash(rel))
		}
		result.Assets = append(result.Assets, item)
		outputs = append(outputs, out)
	}

	if opts.DryRun {
		debug.Debug("[app] Dry run, %d assets resolved", len(result.Assets))
		return result, nil
	}

	for i := range result.Assets {
		item := &result.Assets[i]

		if item.OutputPath == "" {
			if _, err := io.WriteString(opts.Stdout, outputs[i]); err != nil {
				return result, NewWriteError(item.Path, err)
			}
			item.Written = true
			result.Written++
			continue
		}

		write, err := shouldWrite(item.OutputPath, opts.Force, opts.Confirm)
		if err != nil {
			return result, err
		}
		if !write {
			debug.Debug("[app] Keeping existing %s", item.OutputPath)
			item.Skipped = true
			result.Skipped++
			continue
		}

		if err := writeFileAtomic(item.OutputPath, []byte(outputs[i])); err != nil {
			return result, NewWriteError(item.OutputPath, err)
		}
		item.Written = true
		result.Written++
	}

	return result, nil
}

// shouldWrite reports whether dest may be written.
func shouldWrite(dest string, force bool, confirm ConfirmFunc) (bool, error) {
	info, err := os.Stat(dest)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, NewWriteError(dest, err)
	}
	if info.IsDir() {
		return false, NewWriteError(dest, fmt.Errorf("destination is a directory"))
	}
	if force {
		return true, nil
	}
	if confirm == nil {
		return false, nil
	}
	ok, err := confirm(dest)
	if err != nil {
		return false, NewAppError(WriteFailed, "confirmation failed", err)
	}
	return ok, nil
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".gears-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
