package processor

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Directive is a require line found in a header.
type Directive struct {
	// Line is the 0-based index of the line within the header.
	Line int
	// Keyword is the first token, conventionally "require".
	Keyword string
	// Argument is the extension-less name of the required asset.
	Argument string
	// Raw is the original header line.
	Raw string
}

// ParseDirectives scans header line by line and returns its directives in
// order. Lines that do not match the variant's directive grammar are plain
// header content. A matching line must split into exactly a keyword and one
// argument.
func ParseDirectives(v Variant, header string) ([]Directive, error) {
	if v.IsPassthrough() || header == "" {
		return nil, nil
	}

	var directives []Directive
	for n, line := range splitLines(header) {
		match := v.directive.FindStringSubmatchIndex(line)
		if match == nil {
			continue
		}

		args, err := shellquote.Split(captured(line, match))
		if err != nil {
			return nil, newDirectiveError("failed to split directive arguments", n+1, strings.TrimSpace(line), err)
		}
		if len(args) != 2 {
			return nil, newDirectiveError(
				fmt.Sprintf("directive takes exactly one argument, got %d", len(args)-1),
				n+1, strings.TrimSpace(line), nil)
		}

		directives = append(directives, Directive{
			Line:     n,
			Keyword:  args[0],
			Argument: args[1],
			Raw:      line,
		})
	}

	return directives, nil
}

// captured returns the text of the first group that took part in the match.
func captured(line string, match []int) string {
	for i := 2; i+1 < len(match); i += 2 {
		if match[i] >= 0 {
			return line[match[i]:match[i+1]]
		}
	}
	return ""
}
