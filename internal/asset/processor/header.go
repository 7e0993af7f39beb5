package processor

import "strings"

// SplitHeader separates the leading comment header from the body.
//
// The header is the exact span matched by the variant's header grammar at
// offset 0. When nothing matches, header is empty and body is source.
func SplitHeader(v Variant, source string) (header, body string) {
	if v.IsPassthrough() {
		return "", source
	}
	loc := v.header.FindStringIndex(source)
	if loc == nil || loc[0] != 0 {
		return "", source
	}
	return source[:loc[1]], source[loc[1]:]
}

// asciiSpace is the whitespace set trimmed around banners and bodies.
// Non-ASCII spaces such as U+00A0 are content.
const asciiSpace = " \t\n\r\v\f"

func trimASCII(s string) string {
	return strings.Trim(s, asciiSpace)
}

// splitLines splits text on \n, \r\n and \r. A trailing line break does not
// produce a final empty line.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// stripDirectiveLines removes the directive lines from header and returns the
// remaining lines joined by newlines and trimmed.
func stripDirectiveLines(header string, directives []Directive) string {
	lines := splitLines(header)

	// Delete from last to first to keep earlier indices valid
	for i := len(directives) - 1; i >= 0; i-- {
		n := directives[i].Line
		if n < 0 || n >= len(lines) {
			continue
		}
		lines = append(lines[:n], lines[n+1:]...)
	}

	return trimASCII(strings.Join(lines, "\n"))
}
