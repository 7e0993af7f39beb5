package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/gears/internal/asset"
	"github.com/tacogips/gears/internal/asset/processor"
	"github.com/tacogips/gears/internal/asset/source"
	"github.com/tacogips/gears/internal/config"
	"github.com/tacogips/gears/internal/debug"
)

// CheckOptions holds options for asset validation.
type CheckOptions struct {
	// Config is the effective configuration. Nil means defaults.
	Config *config.Config
	// Paths are asset files or directories, relative to the base directory.
	// Directories are walked recursively for assets with a directive
	// processor; hidden entries are skipped.
	Paths []string
	// BaseDir overrides Config.Assets.BaseDir.
	BaseDir string
	// Loader overrides the filesystem loader.
	Loader source.Loader
}

// CheckResult holds the results of asset validation.
type CheckResult struct {
	// BaseDir is the absolute base directory used.
	BaseDir string
	// AssetsChecked is the number of assets resolved.
	AssetsChecked int
	// AssetsWithErrors is the number of assets that failed to resolve.
	AssetsWithErrors int
	// Errors is the list of failures found.
	Errors []CheckError
}

// CheckError represents a failure to resolve one asset.
type CheckError struct {
	// Path is the asset that was being checked.
	Path string
	// File is the file the failure occurred in, which may be a dependency.
	File string
	// Line is the 1-indexed header line (0 if not applicable).
	Line int
	// Directive is the offending directive text (if applicable).
	Directive string
	// Message is the error message.
	Message string
}

// Check resolves every requested asset without writing anything and
// reports which ones fail. Configuration problems abort the run.
func Check(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	debug.DebugSection("Check")

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

	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	result := &CheckResult{
		BaseDir: base,
		Errors:  []CheckError{},
	}

	for _, p := range paths {
		rel, err := assetPath(base, p)
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(filepath.Join(base, filepath.FromSlash(rel)))
		if err == nil && info.IsDir() {
			if err := checkDirectory(ctx, dispatcher, base, rel, result); err != nil {
				return nil, err
			}
			continue
		}

		if err := checkAsset(ctx, dispatcher, base, rel, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// checkDirectory walks dir for assets handled by a directive processor.
func checkDirectory(ctx context.Context, d *asset.Dispatcher, base, dir string, result *CheckResult) error {
	root := filepath.Join(base, filepath.FromSlash(dir))

	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return NewValidationError("failed to read directory", err)
		}
		if path != root && strings.HasPrefix(entry.Name(), ".") {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return NewValidationError("failed to resolve asset path", err)
		}
		rel = filepath.ToSlash(rel)

		p, err := d.ProcessorFor(rel)
		if err != nil {
			return NewValidationError("invalid processor binding", err)
		}
		if p.Variant().IsPassthrough() {
			return nil
		}

		return checkAsset(ctx, d, base, rel, result)
	})
}

// checkAsset resolves a single asset and records any failure.
func checkAsset(ctx context.Context, d *asset.Dispatcher, base, rel string, result *CheckResult) error {
	result.AssetsChecked++

	_, err := d.Process(ctx, base, rel)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	debug.Debug("[app] Check failed for %s: %v", rel, err)
	result.AssetsWithErrors++
	result.Errors = append(result.Errors, newCheckError(rel, err))
	return nil
}

func newCheckError(path string, err error) CheckError {
	checkErr := CheckError{
		Path:    path,
		File:    path,
		Message: err.Error(),
	}

	var parseErr *processor.ParseError
	var srcErr *source.SourceError
	switch {
	case errors.As(err, &parseErr):
		if parseErr.File != "" {
			checkErr.File = parseErr.File
		}
		checkErr.Line = parseErr.Line
		checkErr.Directive = parseErr.Directive
	case errors.As(err, &srcErr):
		checkErr.File = srcErr.Path
	}

	return checkErr
}
