// Package annotation parses in-source ignore markers into a per-file
// suppression state.
//
// Markers are recognized as literal substrings anywhere on a line, so they
// work inside any comment style the host language offers. A single line may
// match several markers at once (the inline marker is a substring of the
// file-level and block markers by default).
package annotation

import "strings"

// Markers configures the recognized marker spellings.
type Markers struct {
	// File suppresses the whole file, retroactively: the marker can appear
	// on any line and still covers lines above it.
	File string
	// Line suppresses the line it appears on.
	Line string
	// BlockStart opens a suppression block. Blocks do not nest; a second
	// start while one is open discards the earlier block.
	BlockStart string
	// BlockEnd closes an open block inclusively. Without an open block it
	// is a no-op.
	BlockEnd string
}

// DefaultMarkers is the conventional marker set.
var DefaultMarkers = Markers{
	File:       "i18n-ignore-file",
	Line:       "i18n-ignore",
	BlockStart: "i18n-ignore-block",
	BlockEnd:   "i18n-ignore-block-end",
}

// Range is an inclusive line range.
type Range struct {
	Start int
	End   int
}

// State is the suppression state of one file. Build once with Parse; read
// only afterwards.
type State struct {
	// IgnoredLines holds individually suppressed line numbers.
	IgnoredLines map[int]bool
	// IgnoredRanges holds closed suppression blocks.
	IgnoredRanges []Range
	// IgnoreWholeFile suppresses every line regardless of the other fields.
	IgnoreWholeFile bool
}

// blockState is the small state machine tracking an open block.
// Idle is blockStart == 0; open is blockStart > 0 (line numbers are 1-based).
type blockState struct {
	startLine int
}

// Parse scans content once and builds its suppression State.
//
// An opened block that never sees an end marker suppresses nothing. The end
// marker is tested before the start marker because the default end spelling
// contains the start spelling as a substring.
func Parse(content string, m Markers) *State {
	st := &State{IgnoredLines: make(map[int]bool)}
	var block blockState

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1

		if strings.Contains(line, m.File) {
			st.IgnoreWholeFile = true
		}
		if strings.Contains(line, m.Line) {
			st.IgnoredLines[lineNum] = true
		}

		switch {
		case strings.Contains(line, m.BlockEnd):
			if block.startLine > 0 {
				st.IgnoredRanges = append(st.IgnoredRanges, Range{Start: block.startLine, End: lineNum})
			}
			block = blockState{}
		case strings.Contains(line, m.BlockStart):
			// Last start wins; an already open block is discarded.
			block = blockState{startLine: lineNum}
		}
	}

	return st
}

// IsLineIgnored reports whether line is suppressed: individually, by a closed
// block covering it, or by a whole-file marker.
func (s *State) IsLineIgnored(line int) bool {
	if s.IgnoreWholeFile {
		return true
	}
	if s.IgnoredLines[line] {
		return true
	}
	for _, r := range s.IgnoredRanges {
		if r.Start <= line && line <= r.End {
			return true
		}
	}
	return false
}
