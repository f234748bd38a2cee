package literal

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []Literal
	}{
		{
			name:    "double quoted",
			content: `const msg = "Please enter a valid email";`,
			want:    []Literal{{Text: "Please enter a valid email", Line: 1}},
		},
		{
			name:    "single quoted",
			content: `const key = 'errors.notFound';`,
			want:    []Literal{{Text: "errors.notFound", Line: 1}},
		},
		{
			name:    "mixed quotes keep left-to-right order",
			content: `f('first', "second", 'third')`,
			want: []Literal{
				{Text: "first", Line: 1},
				{Text: "second", Line: 1},
				{Text: "third", Line: 1},
			},
		},
		{
			name:    "line numbers are 1-indexed",
			content: "\n\nconst a = \"Third line\";",
			want:    []Literal{{Text: "Third line", Line: 3}},
		},
		{
			name:    "escaped quote does not terminate",
			content: `const a = "say \"hi\" now";`,
			want:    []Literal{{Text: `say "hi" now`, Line: 1}},
		},
		{
			name:    "escape sequences resolved",
			content: `const a = "line one\nline two\tend";`,
			want:    []Literal{{Text: "line one\nline two\tend", Line: 1}},
		},
		{
			name:    "import line skipped",
			content: `import { Button } from "@ui/button";`,
			want:    nil,
		},
		{
			name:    "export line skipped",
			content: `export const label = "Visible";`,
			want:    nil,
		},
		{
			name:    "line comment skipped",
			content: `// const label = "Commented out";`,
			want:    nil,
		},
		{
			name:    "block comment delimiters skipped",
			content: "/* start \"a\"\n*/ end \"b\"",
			want:    nil,
		},
		{
			name:    "eslint-disable anywhere skips the line",
			content: `const x = "Hello"; // eslint-disable-line`,
			want:    nil,
		},
		{
			name:    "unterminated quote yields nothing",
			content: `const broken = "no closing quote`,
			want:    nil,
		},
		{
			name:    "duplicates kept",
			content: "a(\"Save\")\nb(\"Save\")",
			want:    []Literal{{Text: "Save", Line: 1}, {Text: "Save", Line: 2}},
		},
		{
			name:    "empty literal kept",
			content: `const a = "";`,
			want:    []Literal{{Text: "", Line: 1}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Extract(tc.content); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Extract() = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestScanQuoteEscapedBackslash(t *testing.T) {
	t.Parallel()

	runs := scanQuote(`x = "a\\"`, '"')
	if len(runs) != 1 || runs[0].text != `a\\` {
		t.Fatalf("scanQuote() = %#v, want one run %q", runs, `a\\`)
	}
}

func TestSkipLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{line: `  import x from "y"`, want: true},
		{line: `<!-- html comment -->`, want: true},
		{line: `const a = 1; // trailing comment`, want: false},
		{line: `something(); /* eslint-disable no-alert */`, want: true},
		{line: `const label = "ok"`, want: false},
	}

	for _, tc := range tests {
		if got := skipLine(tc.line); got != tc.want {
			t.Fatalf("skipLine(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}
