// Package literal extracts quoted string literals from source text.
//
// Extraction is line-oriented and purely textual: no host-language parsing.
// Lines that are structurally imports, exports, or comments are skipped
// wholesale, as are lines carrying a lint-disable marker. Remaining lines are
// scanned for single- and double-quoted runs with escape-aware quote
// matching, so an escaped quote does not terminate a run.
package literal

import "strings"

// Literal is one extracted quoted run.
type Literal struct {
	// Text is the literal's contents with common escape sequences
	// (\" \' \n \t) resolved.
	Text string
	// Line is the 1-indexed source line.
	Line int
}

// skipPrefixes mark lines excluded from extraction when the trimmed line
// starts with one of them.
var skipPrefixes = []string{"import ", "export ", "//", "/*", "*/", "<!--"}

// lintDisableMarker excludes any line carrying a linter suppression.
const lintDisableMarker = "eslint-disable"

// Extract returns all quoted literals in content, in left-to-right,
// top-to-bottom order. Duplicates are kept.
func Extract(content string) []Literal {
	var out []Literal
	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1
		if skipLine(line) {
			continue
		}
		for _, q := range scanLine(line) {
			out = append(out, Literal{Text: unescape(q), Line: lineNum})
		}
	}
	return out
}

func skipLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, p := range skipPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return strings.Contains(line, lintDisableMarker)
}

// quoted is a raw quoted run with its starting column, used to restore
// left-to-right order across the two quote styles.
type quoted struct {
	text string
	col  int
}

// scanLine finds single- and double-quoted runs on one line. The two quote
// styles are scanned independently, so runs of one style may overlap runs of
// the other; results are merged by starting column.
func scanLine(line string) []string {
	runs := scanQuote(line, '\'')
	runs = append(runs, scanQuote(line, '"')...)

	// Insertion sort by column; lines rarely hold more than a few runs.
	for i := 1; i < len(runs); i++ {
		for j := i; j > 0 && runs[j].col < runs[j-1].col; j-- {
			runs[j], runs[j-1] = runs[j-1], runs[j]
		}
	}

	out := make([]string, len(runs))
	for i, r := range runs {
		out[i] = r.text
	}
	return out
}

// scanQuote extracts every run delimited by quote, treating a
// backslash-escaped quote as part of the run. A run ends at the first
// unescaped matching quote; an unterminated run yields nothing.
func scanQuote(line string, quote byte) []quoted {
	var runs []quoted
	for i := 0; i < len(line); {
		if line[i] != quote {
			i++
			continue
		}
		start := i + 1
		j := start
		for j < len(line) {
			if line[j] == '\\' && j+1 < len(line) {
				j += 2
				continue
			}
			if line[j] == quote {
				break
			}
			j++
		}
		if j >= len(line) {
			break // unterminated
		}
		runs = append(runs, quoted{text: line[start:j], col: start - 1})
		i = j + 1
	}
	return runs
}

// unescape resolves the escape sequences the extractor recognizes.
func unescape(s string) string {
	r := strings.NewReplacer(`\"`, `"`, `\'`, `'`, `\n`, "\n", `\t`, "\t")
	return r.Replace(s)
}
