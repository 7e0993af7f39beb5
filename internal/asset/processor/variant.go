package processor

import (
	"fmt"
	"regexp"
)

// Kind identifies how a variant treats its source.
type Kind int

const (
	// KindDirectives splits a header, resolves require directives and
	// concatenates the result.
	KindDirectives Kind = iota
	// KindPassthrough returns the source verbatim.
	KindPassthrough
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindDirectives:
		return "directives"
	case KindPassthrough:
		return "passthrough"
	default:
		return "unknown"
	}
}

// Header and directive grammars. Directive lines accept the classic
// " *= require x" form inside a block comment and "//= require x" in
// JavaScript. A "/*" marker only counts when the comment closes on the same
// line, as in "/* = require x */".
const (
	requireCapture = `(require[.'"\s\w-]*?)`

	cssHeaderPattern    = `(?s)^(?:\s*/\*.*?\*/)+`
	cssDirectivePattern = `^\s*(?:/\*\s*=\s*` + requireCapture + `\s*\*/|\*\s*=\s*` + requireCapture + `\s*(?:\*/)?)$`

	jsHeaderPattern    = `(?s)^(?:\s*(?:/\*.*?\*/|(?://[^\n]*\n?)+))+`
	jsDirectivePattern = `^\s*(?:/\*\s*=\s*` + requireCapture + `\s*\*/|(?:\*|//)\s*=\s*` + requireCapture + `\s*(?:\*/)?)$`
)

var (
	// CSS resolves requires in leading /* ... */ blocks of .css files.
	CSS = MustVariant("css", "css", cssHeaderPattern, cssDirectivePattern)

	// JavaScript resolves requires in leading /* ... */ blocks and // line
	// comments of .js files.
	JavaScript = MustVariant("javascript", "js", jsHeaderPattern, jsDirectivePattern)

	// Passthrough returns sources unchanged. It is used for every extension
	// without a configured variant.
	Passthrough = Variant{Name: "raw", Kind: KindPassthrough}
)

// Variant is a file-kind grammar: the header pattern, the directive line
// pattern and the extension appended to required names.
type Variant struct {
	// Name identifies the variant in configuration and logs.
	Name string
	// Extension is appended to directive arguments when resolving dependencies.
	Extension string
	// Kind selects directive resolution or passthrough.
	Kind Kind

	header    *regexp.Regexp
	directive *regexp.Regexp
}

// NewVariant compiles a directive-resolving variant. The header pattern must
// be anchored at the start of the source and the directive pattern must
// capture the keyword and argument text. With several groups the first one
// that participates in the match is used.
func NewVariant(name, extension, headerPattern, directivePattern string) (Variant, error) {
	if name == "" {
		return Variant{}, fmt.Errorf("variant name cannot be empty")
	}
	if extension == "" {
		return Variant{}, fmt.Errorf("variant %s: extension cannot be empty", name)
	}

	header, err := regexp.Compile(headerPattern)
	if err != nil {
		return Variant{}, fmt.Errorf("variant %s: invalid header pattern: %w", name, err)
	}
	directive, err := regexp.Compile(directivePattern)
	if err != nil {
		return Variant{}, fmt.Errorf("variant %s: invalid directive pattern: %w", name, err)
	}
	if directive.NumSubexp() < 1 {
		return Variant{}, fmt.Errorf("variant %s: directive pattern needs a capture group", name)
	}

	return Variant{
		Name:      name,
		Extension: extension,
		Kind:      KindDirectives,
		header:    header,
		directive: directive,
	}, nil
}

// MustVariant is like NewVariant but panics on error.
func MustVariant(name, extension, headerPattern, directivePattern string) Variant {
	v, err := NewVariant(name, extension, headerPattern, directivePattern)
	if err != nil {
		panic(err)
	}
	return v
}

// IsPassthrough reports whether the variant returns sources unchanged.
func (v Variant) IsPassthrough() bool {
	return v.Kind == KindPassthrough || v.header == nil || v.directive == nil
}

// HeaderPattern returns the header grammar, empty for passthrough variants.
func (v Variant) HeaderPattern() string {
	if v.header == nil {
		return ""
	}
	return v.header.String()
}

// DirectivePattern returns the directive line grammar, empty for passthrough
// variants.
func (v Variant) DirectivePattern() string {
	if v.directive == nil {
		return ""
	}
	return v.directive.String()
}

// String returns the variant name.
func (v Variant) String() string {
	return v.Name
}
