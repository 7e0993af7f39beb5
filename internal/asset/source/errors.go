package source

import (
	"errors"
	"fmt"
)

// SourceErrorType represents the type of source loading error.
type SourceErrorType int

const (
	// SourceNotFound indicates the requested file does not exist.
	SourceNotFound SourceErrorType = iota
	// SourcePathEscape indicates the resolved path lies outside the base directory.
	SourcePathEscape
	// SourceReadFailed indicates the file exists but could not be read.
	SourceReadFailed
)

// String returns the string representation of the error type.
func (t SourceErrorType) String() string {
	switch t {
	case SourceNotFound:
		return "NotFound"
	case SourcePathEscape:
		return "PathEscape"
	case SourceReadFailed:
		return "ReadFailed"
	default:
		return "Unknown"
	}
}

// SourceError represents a failure to load an asset source.
type SourceError struct {
	// Type is the error type classification.
	Type SourceErrorType
	// Base is the base directory the read was confined to.
	Base string
	// Path is the requested path relative to Base.
	Path string
	// Message is the human-readable error message.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("source error [%s] for '%s' in '%s': %s (caused by: %v)",
			e.Type, e.Path, e.Base, e.Message, e.Cause)
	}
	return fmt.Sprintf("source error [%s] for '%s' in '%s': %s",
		e.Type, e.Path, e.Base, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *SourceError) Unwrap() error {
	return e.Cause
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(base, path string, cause error) *SourceError {
	return &SourceError{Type: SourceNotFound, Base: base, Path: path, Message: "file not found", Cause: cause}
}

// NewPathEscapeError creates a path escape error.
func NewPathEscapeError(base, path string) *SourceError {
	return &SourceError{Type: SourcePathEscape, Base: base, Path: path, Message: "path escapes base directory"}
}

// NewReadError creates a read failure error.
func NewReadError(base, path, message string, cause error) *SourceError {
	return &SourceError{Type: SourceReadFailed, Base: base, Path: path, Message: message, Cause: cause}
}

// IsNotFound reports whether err is a SourceError of type SourceNotFound.
func IsNotFound(err error) bool {
	return hasType(err, SourceNotFound)
}

// IsPathEscape reports whether err is a SourceError of type SourcePathEscape.
func IsPathEscape(err error) bool {
	return hasType(err, SourcePathEscape)
}

func hasType(err error, typ SourceErrorType) bool {
	var srcErr *SourceError
	return errors.As(err, &srcErr) && srcErr.Type == typ
}
