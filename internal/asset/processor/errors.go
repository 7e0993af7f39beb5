package processor

import "fmt"

// ParseErrorType represents the type of directive processing error.
type ParseErrorType int

const (
	// InvalidDirectiveSyntax indicates a directive line that does not split
	// into exactly a keyword and one argument.
	InvalidDirectiveSyntax ParseErrorType = iota
	// DepthExceeded indicates the require chain is deeper than the configured limit.
	DepthExceeded
)

// String returns the string representation of the error type.
func (t ParseErrorType) String() string {
	switch t {
	case InvalidDirectiveSyntax:
		return "InvalidDirectiveSyntax"
	case DepthExceeded:
		return "DepthExceeded"
	default:
		return "Unknown"
	}
}

// ParseError represents a directive processing error with detailed context.
type ParseError struct {
	// Type is the error type.
	Type ParseErrorType
	// Message is the error message.
	Message string
	// File is the asset path where the error occurred.
	File string
	// Line is the header line where the error occurred (1-indexed, 0 if unknown).
	Line int
	// Directive is the problematic directive text.
	Directive string
	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s (directive: %s)", e.File, e.Line, msg, e.Directive)
	}
	if e.File != "" && e.Directive != "" {
		return fmt.Sprintf("%s: %s (directive: %s)", e.File, msg, e.Directive)
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, msg)
	}
	if e.Directive != "" {
		return fmt.Sprintf("%s (directive: %s)", msg, e.Directive)
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// newDirectiveError creates a ParseError for a malformed directive line.
func newDirectiveError(message string, line int, directive string, cause error) *ParseError {
	return &ParseError{
		Type:      InvalidDirectiveSyntax,
		Message:   message,
		Line:      line,
		Directive: directive,
		Cause:     cause,
	}
}

// newDepthError creates a ParseError for an over-deep require chain.
func newDepthError(file string, limit int) *ParseError {
	return &ParseError{
		Type:    DepthExceeded,
		Message: fmt.Sprintf("maximum require depth (%d) exceeded", limit),
		File:    file,
	}
}
