package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// CompileFailed indicates an asset could not be resolved.
	CompileFailed AppErrorType = iota
	// WriteFailed indicates compiled output could not be written.
	WriteFailed
	// ValidationFailed indicates options or configuration were rejected.
	ValidationFailed
)

// String returns the string representation of the error type.
func (t AppErrorType) String() string {
	switch t {
	case CompileFailed:
		return "CompileFailed"
	case WriteFailed:
		return "WriteFailed"
	case ValidationFailed:
		return "ValidationFailed"
	default:
		return "Unknown"
	}
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Path is the asset or output path involved, if any.
	Path string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewCompileError creates a compile error for an asset path.
func NewCompileError(path string, cause error) *AppError {
	return &AppError{Type: CompileFailed, Message: "failed to compile asset", Path: path, Cause: cause}
}

// NewWriteError creates a write error for an output path.
func NewWriteError(path string, cause error) *AppError {
	return &AppError{Type: WriteFailed, Message: "failed to write output", Path: path, Cause: cause}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}
