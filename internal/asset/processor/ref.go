package processor

import (
	"path"
	"strings"
)

// Ref identifies an asset by its base directory and its slash-separated path
// relative to that base. Paths are compared as plain strings.
type Ref struct {
	Base string
	Path string
}

// Dir returns the directory part of the asset path, "." for top-level assets.
func (r Ref) Dir() string {
	return path.Dir(r.Path)
}

// Ext returns the path extension without the leading dot.
func (r Ref) Ext() string {
	return strings.TrimPrefix(path.Ext(r.Path), ".")
}

// Require returns the reference of name.ext located next to r.
func (r Ref) Require(name, ext string) Ref {
	file := name + "." + ext
	dir := r.Dir()
	if dir == "." {
		return Ref{Base: r.Base, Path: file}
	}
	return Ref{Base: r.Base, Path: dir + "/" + file}
}

// String returns the asset path.
func (r Ref) String() string {
	return r.Path
}
