// Package source reads asset sources confined to a base directory.
package source

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tacogips/gears/internal/debug"
)

// Loader reads the raw bytes of an asset.
//
// Implementations must guarantee that the resolved file lies inside base.
type Loader interface {
	// Load reads relativePath under base.
	Load(base, relativePath string) ([]byte, error)
}

// FileLoader implements Loader on the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new filesystem loader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads relativePath under base. Symlinks are followed, but the final
// target must still resolve inside base.
func (l *FileLoader) Load(base, relativePath string) ([]byte, error) {
	debug.Debug("[source] Loading %s from %s", relativePath, base)

	root, err := resolveBase(base)
	if err != nil {
		return nil, err
	}

	joined := joinUnder(root, relativePath)
	if !isSubPath(root, joined) {
		debug.Debug("[source] Path escapes base: %s", joined)
		return nil, NewPathEscapeError(base, relativePath)
	}

	resolved, err := filepath.EvalSymlinks(joined)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewNotFoundError(base, relativePath, err)
		}
		return nil, NewReadError(base, relativePath, "failed to resolve path", err)
	}
	if !isSubPath(root, resolved) {
		debug.Debug("[source] Symlink target escapes base: %s", resolved)
		return nil, NewPathEscapeError(base, relativePath)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, NewReadError(base, relativePath, "failed to stat file", err)
	}
	if info.IsDir() {
		return nil, NewReadError(base, relativePath, "path is a directory", nil)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, NewReadError(base, relativePath, "failed to read file", err)
	}

	debug.Debug("[source] Read %d bytes from %s", len(data), resolved)
	return data, nil
}

// resolveBase returns base as an absolute, symlink-free directory.
func resolveBase(base string) (string, error) {
	if base == "" {
		base = "."
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return "", NewReadError(base, "", "failed to resolve base directory", err)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", NewNotFoundError(base, "", err)
		}
		return "", NewReadError(base, "", "failed to resolve base directory", err)
	}
	return abs, nil
}

// joinUnder joins an asset path onto root. Absolute paths are kept as is so
// the containment check can reject them.
func joinUnder(root, relativePath string) string {
	p := filepath.FromSlash(relativePath)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

// isSubPath checks if child is under parent directory.
func isSubPath(parent, child string) bool {
	parent = filepath.Clean(parent)
	child = filepath.Clean(child)
	if runtime.GOOS == "windows" {
		parent = strings.ToLower(parent)
		child = strings.ToLower(child)
	}

	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}

	// If rel starts with "..", it's outside parent
	return !filepath.IsAbs(rel) && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
