package registry

import "fmt"

// ConfigError reports a binding whose processor reference cannot be resolved.
type ConfigError struct {
	// Extension is the file extension the reference is bound to.
	Extension string
	// Reference is the unresolved processor reference.
	Reference string
	// Message is the error message.
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Extension != "" {
		return fmt.Sprintf("improperly configured processor %q for extension %q: %s", e.Reference, e.Extension, e.Message)
	}
	return fmt.Sprintf("improperly configured processor %q: %s", e.Reference, e.Message)
}

func newUnknownReferenceError(ext, reference string) *ConfigError {
	return &ConfigError{
		Extension: ext,
		Reference: reference,
		Message:   "no processor is registered under this name",
	}
}
