// Package analyze runs the full analysis: literal extraction,
// classification, suppression, and reconciliation of used translation keys
// against each locale's defined keys.
//
// The engine is a pure function of (files, catalogs, config): all state is
// accumulated in a Report owned by the single sequential traversal, and runs
// over identical inputs produce identical reports. File order is the sorted
// order produced by the scan package, which keeps output reproducible.
package analyze

import (
	"fmt"
	"os"
	"sort"

	"github.com/i18nlint/i18nlint/annotation"
	"github.com/i18nlint/i18nlint/classify"
	"github.com/i18nlint/i18nlint/keyref"
	"github.com/i18nlint/i18nlint/literal"
	"github.com/i18nlint/i18nlint/locales"
)

// Disposition is the outcome reported for one user-facing literal.
type Disposition int

const (
	// Issue: user-facing, not suppressed, not a known key. Needs review.
	Issue Disposition = iota
	// IgnoredAnnotated: suppressed by an ignore annotation.
	IgnoredAnnotated
	// IgnoredKnownKey: the literal is itself a defined translation key,
	// so it is a key reference rather than display text.
	IgnoredKnownKey
)

// String returns the disposition label used in reports.
func (d Disposition) String() string {
	switch d {
	case IgnoredAnnotated:
		return "ignored (annotated)"
	case IgnoredKnownKey:
		return "ignored (known translation key)"
	default:
		return "issue"
	}
}

// Finding is one reported outcome for a single literal. Findings are
// append-only and never mutated after creation.
type Finding struct {
	File        string
	Line        int
	Text        string
	Disposition Disposition
}

// Summary holds the run-wide counters shown at the end of a report.
type Summary struct {
	FilesScanned int
	KeysUsed     int
	Ignored      int
	Issues       int
}

// Report is the complete analysis result.
type Report struct {
	// Findings in file-traversal order, then extraction order within a file.
	Findings []Finding
	// UsedKeys is the sorted set of key paths referenced by lookup calls.
	UsedKeys []string
	// MissingKeys maps a locale to the sorted used keys absent from its
	// defined-key set. Locales with nothing missing have no entry.
	MissingKeys map[string][]string
	// Skipped lists files that could not be read, with the reason.
	Skipped []string
	Summary Summary
}

// Issues returns only the findings needing review.
func (r *Report) Issues() []Finding {
	return r.byDisposition(Issue)
}

// IgnoredFindings returns the findings excluded from issues, with the reason
// captured in their disposition.
func (r *Report) IgnoredFindings() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Disposition != Issue {
			out = append(out, f)
		}
	}
	return out
}

func (r *Report) byDisposition(d Disposition) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Disposition == d {
			out = append(out, f)
		}
	}
	return out
}

// MissingLocales returns the locales with missing keys, sorted.
func (r *Report) MissingLocales() []string {
	out := make([]string, 0, len(r.MissingKeys))
	for locale := range r.MissingKeys {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// ---------------------------------------------------------------------------
// Engine
// ---------------------------------------------------------------------------

// Engine ties the per-file analyses together.
type Engine struct {
	classifier *classify.Classifier
	markers    annotation.Markers
}

// New builds an Engine.
func New(classifier *classify.Classifier, markers annotation.Markers) *Engine {
	return &Engine{classifier: classifier, markers: markers}
}

// Run analyzes files in the given order against catalogs. A file that cannot
// be read is recorded in Report.Skipped and the run continues.
func (e *Engine) Run(files []string, catalogs []*locales.Catalog) *Report {
	report := &Report{MissingKeys: make(map[string][]string)}
	knownKeys := locales.Union(catalogs)
	usedKeys := make(map[string]bool)

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			report.Skipped = append(report.Skipped, fmt.Sprintf("%s: %v", path, err))
			continue
		}
		report.Summary.FilesScanned++

		content := string(data)
		for k := range keyref.Collect(content) {
			usedKeys[k] = true
		}
		report.Findings = append(report.Findings, e.AnalyzeFile(path, content, knownKeys)...)
	}

	for k := range usedKeys {
		report.UsedKeys = append(report.UsedKeys, k)
	}
	sort.Strings(report.UsedKeys)

	for _, c := range catalogs {
		var missing []string
		for _, k := range report.UsedKeys {
			if !c.Keys[k] {
				missing = append(missing, k)
			}
		}
		if len(missing) > 0 {
			report.MissingKeys[c.Locale] = missing
		}
	}

	report.Summary.KeysUsed = len(report.UsedKeys)
	for _, f := range report.Findings {
		if f.Disposition == Issue {
			report.Summary.Issues++
		} else {
			report.Summary.Ignored++
		}
	}

	return report
}

// AnalyzeFile produces the findings for one file's content. Annotations are
// parsed over the full text first, so a whole-file marker suppresses
// literals on earlier lines too. Technical literals produce no finding.
func (e *Engine) AnalyzeFile(path, content string, knownKeys locales.KeySet) []Finding {
	suppression := annotation.Parse(content, e.markers)

	var findings []Finding
	for _, lit := range literal.Extract(content) {
		if e.classifier.Classify(lit.Text) != classify.UserFacing {
			continue
		}

		f := Finding{File: path, Line: lit.Line, Text: lit.Text}
		switch {
		case suppression.IsLineIgnored(lit.Line):
			f.Disposition = IgnoredAnnotated
		case knownKeys[lit.Text]:
			f.Disposition = IgnoredKnownKey
		default:
			f.Disposition = Issue
		}
		findings = append(findings, f)
	}
	return findings
}
