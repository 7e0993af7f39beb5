package processor

import (
	"reflect"
	"testing"
)

func TestSplitHeader(t *testing.T) {
	tests := []struct {
		name       string
		variant    Variant
		input      string
		wantHeader string
		wantBody   string
	}{
		{
			name:       "css single block",
			variant:    CSS,
			input:      "/* banner */\nbody {}",
			wantHeader: "/* banner */",
			wantBody:   "\nbody {}",
		},
		{
			name:       "css adjacent blocks",
			variant:    CSS,
			input:      "/* a */\n/* b */\nbody {}",
			wantHeader: "/* a */\n/* b */",
			wantBody:   "\nbody {}",
		},
		{
			name:       "css multiline block",
			variant:    CSS,
			input:      "/*\n *= require a\n */\n.a {}",
			wantHeader: "/*\n *= require a\n */",
			wantBody:   "\n.a {}",
		},
		{
			name:       "css leading whitespace belongs to header",
			variant:    CSS,
			input:      "  \n/* a */x",
			wantHeader: "  \n/* a */",
			wantBody:   "x",
		},
		{
			name:       "css no header",
			variant:    CSS,
			input:      "body {}\n/* trailing */",
			wantHeader: "",
			wantBody:   "body {}\n/* trailing */",
		},
		{
			name:       "css line comments are not a header",
			variant:    CSS,
			input:      "// x\nbody {}",
			wantHeader: "",
			wantBody:   "// x\nbody {}",
		},
		{
			name:       "js line comments",
			variant:    JavaScript,
			input:      "// a\n// b\nfoo();",
			wantHeader: "// a\n// b\n",
			wantBody:   "foo();",
		},
		{
			name:       "js block then line comments",
			variant:    JavaScript,
			input:      "/* a */\n// b\ncode();",
			wantHeader: "/* a */\n// b\n",
			wantBody:   "code();",
		},
		{
			name:       "js comment after code",
			variant:    JavaScript,
			input:      "code();\n// x",
			wantHeader: "",
			wantBody:   "code();\n// x",
		},
		{
			name:       "passthrough never splits",
			variant:    Passthrough,
			input:      "/* a */\nbody",
			wantHeader: "",
			wantBody:   "/* a */\nbody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, body := SplitHeader(tt.variant, tt.input)
			if header != tt.wantHeader {
				t.Errorf("header = %q, want %q", header, tt.wantHeader)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
			if header+body != tt.input {
				t.Errorf("header+body = %q, want original %q", header+body, tt.input)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\rc", []string{"a", "b", "c"}},
		{"a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		if got := splitLines(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitLines(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStripDirectiveLines(t *testing.T) {
	header := "/*\n * banner\n *= require a\n * more\n *= require b\n */"
	directives := []Directive{{Line: 2}, {Line: 4}}

	got := stripDirectiveLines(header, directives)
	want := "/*\n * banner\n * more\n */"
	if got != want {
		t.Errorf("stripDirectiveLines() = %q, want %q", got, want)
	}
}
