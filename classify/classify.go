// Package classify decides whether a string literal is likely user-facing
// text that needs translation, or technical text (markup, styling,
// identifiers, protocol tokens) that does not.
//
// Classification runs two ordered rule stages. Exclusion rules run first and
// any match short-circuits to Technical; only literals surviving every
// exclusion are tested against the inclusion rules, where any match yields
// UserFacing. Exclusions are deliberately broad: a missed user-facing string
// costs less manual review time than a flagged CSS class.
package classify

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Classification is the verdict for one literal.
type Classification int

const (
	// Technical: markup, styling, identifiers, paths, protocol tokens.
	Technical Classification = iota
	// UserFacing: text an end user is likely to see, needing translation.
	UserFacing
)

// String returns the verdict name for logs and test failures.
func (c Classification) String() string {
	if c == UserFacing {
		return "user-facing"
	}
	return "technical"
}

// Kind distinguishes the two rule stages.
type Kind int

const (
	// Exclusion rules mark a literal Technical.
	Exclusion Kind = iota
	// Inclusion rules mark a surviving literal UserFacing.
	Inclusion
)

// Rule is one named predicate in the ordered rule chain.
type Rule struct {
	Kind Kind
	Name string
	Test func(text string) bool
}

// ---------------------------------------------------------------------------
// Classifier
// ---------------------------------------------------------------------------

// Classifier evaluates the ordered rule chain. The zero value is not usable;
// construct with New.
type Classifier struct {
	rules []Rule
}

// Options extends the built-in vocabularies with project-specific entries.
type Options struct {
	// ExtraTechnicalTokens are matched case-sensitively by the
	// technical-token exclusion (app constants like SOME_ERROR_CODE).
	ExtraTechnicalTokens []string
	// ExtraVocabulary adds case-insensitive substrings to the common-word
	// inclusion rule (domain nouns specific to the project).
	ExtraVocabulary []string
}

// New builds a Classifier with the default rule chain plus opts.
func New(opts Options) *Classifier {
	technical := make(map[string]bool, len(technicalTokens)+len(opts.ExtraTechnicalTokens))
	for t := range technicalTokens {
		technical[t] = true
	}
	for _, t := range opts.ExtraTechnicalTokens {
		technical[t] = true
	}

	vocab := make([]string, 0, len(commonWords)+len(opts.ExtraVocabulary))
	vocab = append(vocab, commonWords...)
	for _, w := range opts.ExtraVocabulary {
		vocab = append(vocab, strings.ToLower(w))
	}

	return &Classifier{rules: buildRules(technical, vocab)}
}

// Classify runs the rule chain over text. Total: every input has a verdict.
func (c *Classifier) Classify(text string) Classification {
	for _, r := range c.rules {
		if r.Kind != Exclusion {
			continue
		}
		if r.Test(text) {
			return Technical
		}
	}
	for _, r := range c.rules {
		if r.Kind != Inclusion {
			continue
		}
		if r.Test(text) {
			return UserFacing
		}
	}
	return Technical
}

// Explain returns the name of the first matching rule, or "" when no rule
// matches (implicit Technical). Used by verbose reporting and tests.
func (c *Classifier) Explain(text string) string {
	for _, r := range c.rules {
		if r.Kind == Exclusion && r.Test(text) {
			return r.Name
		}
	}
	for _, r := range c.rules {
		if r.Kind == Inclusion && r.Test(text) {
			return r.Name
		}
	}
	return ""
}

// Rules exposes the rule chain in evaluation order so each predicate can be
// exercised on its own.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// ---------------------------------------------------------------------------
// Vocabularies
// ---------------------------------------------------------------------------

// stylingPrefixes are utility-class and attribute prefixes (Tailwind layout,
// spacing, color, state variants, responsive breakpoints, ARIA/data
// attributes). A literal starting with any of these is styling or markup.
var stylingPrefixes = []string{
	"data-", "aria-", "className", "class:", "id-", "test-", "btn-",
	"text-", "bg-", "border-", "flex", "grid", "w-", "h-", "p-", "m-",
	"space-", "gap-", "font-", "leading-", "tracking-", "transform",
	"transition", "duration-", "ease-", "scale-", "rotate-", "translate-",
	"shadow-", "rounded-", "overflow-", "z-", "opacity-", "cursor-",
	"select-", "pointer-", "resize-", "outline-", "ring-", "divide-",
	"group", "peer", "animate-", "sr-", "not-sr-", "focus:", "hover:",
	"active:", "disabled:", "checked:", "invalid:", "valid:", "hidden",
	"absolute", "relative", "fixed", "sticky", "static", "inset-",
	"top-", "right-", "bottom-", "left-", "min-", "max-", "size-",
	"aspect-", "col-", "row-", "place-", "justify-", "items-", "content-",
	"self-", "order-", "basis-", "grow", "shrink", "fill-", "stroke-",
	"after:", "before:", "first:", "last:", "odd:", "even:", "empty:",
	"md:", "lg:", "xl:", "sm:", "xs:", "2xl:", "dark:", "light:",
	"mx-", "my-", "mt-", "mb-", "ml-", "mr-", "px-", "py-", "pt-", "pb-",
	"pl-", "pr-", "inline-", "block", "table", "flow-",
}

// urlPrefixes mark protocol-ish or path-ish strings.
var urlPrefixes = []string{"http", "www", "mailto:", "tel:", "ftp:", "./"}

// fileExtensions is the suffix set for the bare-filename exclusion
// (case-sensitive, matched after exactly one dot).
var fileExtensions = map[string]bool{
	"tsx": true, "ts": true, "js": true, "css": true, "png": true,
	"jpg": true, "svg": true, "json": true, "html": true, "xml": true,
	"md": true, "txt": true, "pdf": true, "doc": true, "xlsx": true,
}

// markupTokens are compared against the lowercased literal: HTML/SVG tag
// names, boolean/null literals, and CSS unit/keyword tokens.
var markupTokens = map[string]bool{
	"div": true, "span": true, "button": true, "input": true, "form": true,
	"img": true, "svg": true, "path": true, "g": true, "rect": true,
	"circle": true, "true": true, "false": true, "null": true,
	"undefined": true, "px": true, "rem": true, "em": true, "vh": true,
	"vw": true, "auto": true, "none": true, "block": true, "inline": true,
	"flex": true, "grid": true, "absolute": true, "relative": true,
	"fixed": true, "sticky": true, "left": true, "right": true,
	"top": true, "bottom": true, "center": true, "start": true,
	"end": true, "wrap": true, "nowrap": true, "use client": true,
}

// cssUnitSuffixes end CSS dimension values.
var cssUnitSuffixes = []string{"px", "rem", "em", "%", "vh", "vw", "deg", "ms", "s"}

// technicalTokens are matched case-sensitively: HTTP methods, MIME types,
// header names, auth schemes, and log/status words. Projects extend this set
// through Options.ExtraTechnicalTokens.
var technicalTokens = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "DELETE": true, "PATCH": true,
	"HEAD": true, "OPTIONS": true,
	"application/json": true, "text/plain": true, "text/html": true,
	"image/png": true,
	"Bearer": true, "Basic": true, "Content-Type": true,
	"Authorization": true, "Accept": true, "Accept-Language": true,
	"Origin": true,
	"success": true, "error": true, "warning": true, "info": true,
	"debug": true,
	"created": true, "updated": true, "deleted": true,
	"AbortError": true, "NETWORK_ERROR": true,
}

// commonWords are case-insensitive substrings suggesting English prose:
// status adjectives, verbs, and UI/domain nouns. Projects extend this set
// through Options.ExtraVocabulary.
var commonWords = []string{
	"error", "failed", "success", "loading", "please", "welcome",
	"invalid", "required",
	"create", "update", "delete", "save", "cancel", "confirm",
	"login", "logout", "sign",
	"email", "password", "name", "user", "admin", "member", "club",
	"player", "match", "series", "tournament", "league", "score",
	"win", "lose",
	"active", "inactive", "merge", "remove", "promote", "demote", "invite",
}

// sentencePunctuation suggests sentence-like text.
var sentencePunctuation = ".!?:;,"

// stylingIndicators are substrings marking one token of a compound string as
// a utility class.
var stylingIndicators = []string{
	"-", ":", "[", "]", "(", ")", "%", "px", "rem", "em", "vh", "vw",
	"flex", "grid", "block", "inline", "absolute", "relative", "fixed",
	"text", "bg", "border", "rounded", "shadow", "opacity", "transform",
}

// stylingAbbrevs are single-letter and abbreviated utility-class tokens that
// carry no indicator substring of their own.
var stylingAbbrevs = map[string]bool{
	"w": true, "h": true, "p": true, "m": true, "mx": true, "my": true,
	"px": true, "py": true, "mt": true, "mb": true, "ml": true, "mr": true,
	"pt": true, "pb": true, "pl": true, "pr": true, "top": true,
	"left": true, "right": true, "bottom": true, "center": true,
	"justify": true, "items": true, "content": true, "self": true,
	"auto": true, "hidden": true, "block": true, "flex": true,
	"grid": true, "space": true, "gap": true, "min": true, "max": true,
	"full": true,
}

// cssSelectorSubstrings are CSS-specific fragments (combinators,
// pseudo-element markers, function-call tokens) required by the
// selector-like exclusion.
var cssSelectorSubstrings = []string{"[&", "::", "->", "calc(", "var(", "min-", "max-"}

var (
	hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{3,6}$`)
	camelRe    = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
	snakeRe    = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	kebabRe    = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	// selectorCharsRe restricts the alphabet to characters legal in class
	// strings and simple selectors.
	selectorCharsRe = regexp.MustCompile(`^[\w\-:\[\]()>&+~*.,#%\s]+$`)
)

// ---------------------------------------------------------------------------
// Rule chain
// ---------------------------------------------------------------------------

func buildRules(technical map[string]bool, vocab []string) []Rule {
	return []Rule{
		{Exclusion, "styling-prefix", func(text string) bool {
			for _, p := range stylingPrefixes {
				if strings.HasPrefix(text, p) {
					return true
				}
			}
			return false
		}},
		{Exclusion, "path-or-url", func(text string) bool {
			if strings.Contains(text, "/") && !strings.Contains(text, " ") {
				return true
			}
			for _, p := range urlPrefixes {
				if strings.HasPrefix(text, p) {
					return true
				}
			}
			return false
		}},
		{Exclusion, "filename", func(text string) bool {
			parts := strings.Split(text, ".")
			return len(parts) == 2 && fileExtensions[parts[1]]
		}},
		{Exclusion, "email", func(text string) bool {
			return strings.Contains(text, "@") && strings.Contains(text, ".")
		}},
		{Exclusion, "too-short", func(text string) bool {
			return utf8.RuneCountInString(text) < 3
		}},
		{Exclusion, "markup-token", func(text string) bool {
			return markupTokens[strings.ToLower(text)]
		}},
		{Exclusion, "css-value", func(text string) bool {
			for _, s := range cssUnitSuffixes {
				if strings.HasSuffix(text, s) {
					return true
				}
			}
			return hexColorRe.MatchString(text)
		}},
		{Exclusion, "digits-or-single-char", func(text string) bool {
			return isAllDigits(text) || utf8.RuneCountInString(text) == 1
		}},
		{Exclusion, "blank", func(text string) bool {
			return strings.TrimSpace(text) == ""
		}},
		{Exclusion, "identifier-case", func(text string) bool {
			return camelRe.MatchString(text) ||
				snakeRe.MatchString(text) ||
				kebabRe.MatchString(text)
		}},
		{Exclusion, "technical-token", func(text string) bool {
			return technical[text]
		}},
		{Exclusion, "compound-styling", isCompoundStyling},
		{Exclusion, "css-selector", func(text string) bool {
			if !selectorCharsRe.MatchString(text) {
				return false
			}
			for _, s := range cssSelectorSubstrings {
				if strings.Contains(text, s) {
					return true
				}
			}
			return false
		}},

		{Inclusion, "has-space", func(text string) bool {
			return strings.Contains(text, " ")
		}},
		{Inclusion, "capitalized-word", func(text string) bool {
			return firstRuneUpper(text) && utf8.RuneCountInString(text) > 4
		}},
		{Inclusion, "common-word", func(text string) bool {
			lower := strings.ToLower(text)
			for _, w := range vocab {
				if strings.Contains(lower, w) {
					return true
				}
			}
			return false
		}},
		{Inclusion, "sentence-punctuation", func(text string) bool {
			return strings.ContainsAny(text, sentencePunctuation)
		}},
		{Inclusion, "sentence-ending", func(text string) bool {
			for _, s := range []string{"...", ":", "!", "?"} {
				if strings.HasSuffix(text, s) {
					return true
				}
			}
			return false
		}},
		{Inclusion, "label-shape", func(text string) bool {
			n := utf8.RuneCountInString(text)
			return n > 3 && n < 50 && firstRuneUpper(text)
		}},
	}
}

// isCompoundStyling reports whether text looks like a space-separated run of
// utility classes: at least two tokens, with 70% or more of them carrying a
// styling indicator or matching a known abbreviation.
func isCompoundStyling(text string) bool {
	if utf8.RuneCountInString(text) < 3 {
		return false
	}
	tokens := strings.Fields(text)
	if len(tokens) < 2 {
		return false
	}
	count := 0
	for _, tok := range tokens {
		lower := strings.ToLower(tok)
		if containsAnyOf(lower, stylingIndicators) || stylingAbbrevs[lower] {
			count++
		}
	}
	return float64(count) >= float64(len(tokens))*0.7
}

func containsAnyOf(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func firstRuneUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsUpper(r)
}
