package analyzer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sources of the patterns used by the tokenizer tables.
const (
	ExprTagOpenStart   = `<[a-zA-Z][a-zA-Z0-9]*`
	ExprTagClose       = `</[a-zA-Z][a-zA-Z0-9]*>`
	ExprSelfClosingTag = `<[a-zA-Z][a-zA-Z0-9]*\s*/?>`
	ExprAttribute      = `[a-zA-Z_][a-zA-Z0-9_]*="[^"]*"`
	ExprText           = `[^<]+`
	ExprComment        = `<!--.*?-->`
	ExprWhitespace     = `\s+`
	ExprAnyChar        = `.`

	// full Tags with their attribute lists, used by the strict table
	exprAttrList          = `(?:\s+` + ExprAttribute + `)*\s*`
	ExprStrictTagOpen     = ExprTagOpenStart + exprAttrList + `>`
	ExprStrictSelfClosing = ExprTagOpenStart + exprAttrList + `/>`
	ExprStrictComment     = `(?s)<!--.*?-->`
)

// Tokenizer modes selectable by name.
const (
	ModeClassic = "classic"
	ModeStrict  = "strict"
)

// PatternSpec is the uncompiled description of a single [Pattern].
type PatternSpec struct {
	Kind TokenKind
	Expr string
}

// Pattern is a compiled expression bound to a [TokenKind].
// The expression only matches at the beginning of the scanned string.
type Pattern struct {
	Kind TokenKind
	Expr string
	re   *regexp.Regexp
}

// MatchLen returns the length of the match at the start of s, or 0 if there is none.
func (p Pattern) MatchLen(s string) int {
	loc := p.re.FindStringIndex(s)
	if loc == nil {
		return 0
	}
	return loc[1]
}

// PatternSet is an immutable ordered list of Patterns. The order is the priority:
// the first Pattern matching at the scan cursor wins.
//
// A PatternSet holds no mutable state and can be shared between goroutines.
type PatternSet struct {
	name     string
	patterns []Pattern
}

// NewPatternSet compiles specs, preserving their order.
// It returns a [ConfigError] if the list is empty, an expression is invalid
// or a kind is undeclared.
func NewPatternSet(name string, specs ...PatternSpec) (*PatternSet, error) {
	if len(specs) == 0 {
		return nil, NewConfigError(ConfigEmptyPatternSet, errors.New("pattern set must have at least one pattern"))
	}

	set := &PatternSet{
		name:     name,
		patterns: make([]Pattern, len(specs)),
	}

	for i, spec := range specs {
		if !spec.Kind.Valid() {
			return nil, NewConfigError(
				ConfigInvalidTokenKind,
				fmt.Errorf("pattern #%d has undeclared token kind %d", i, spec.Kind),
			)
		}

		re, err := regexp.Compile(`^(?:` + spec.Expr + `)`)
		if err != nil {
			return nil, NewConfigError(
				ConfigInvalidPattern,
				fmt.Errorf("pattern #%d (%s) is invalid: %w", i, spec.Kind, err),
			)
		}

		set.patterns[i] = Pattern{Kind: spec.Kind, Expr: spec.Expr, re: re}
	}

	return set, nil
}

func mustPatternSet(name string, specs ...PatternSpec) *PatternSet {
	set, err := NewPatternSet(name, specs...)
	if err != nil {
		panic(err)
	}
	return set
}

// Name returns the name the set was created with.
func (s *PatternSet) Name() string {
	return s.name
}

// Patterns returns a copy of the Patterns in priority order.
func (s *PatternSet) Patterns() []Pattern {
	out := make([]Pattern, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// Match applies the Patterns in priority order to the start of str and returns
// the kind and the length of the first non-empty match.
func (s *PatternSet) Match(str string) (kind TokenKind, width int, ok bool) {
	for _, p := range s.patterns {
		if n := p.MatchLen(str); n > 0 {
			return p.Kind, n, true
		}
	}
	return 0, 0, false
}

var (
	classicPatterns = mustPatternSet(ModeClassic,
		PatternSpec{TagOpen, ExprTagOpenStart},
		PatternSpec{TagClose, ExprTagClose},
		PatternSpec{SelfClosingTag, ExprSelfClosingTag},
		PatternSpec{Attribute, ExprAttribute},
		PatternSpec{Text, ExprText},
		PatternSpec{Comment, ExprComment},
		PatternSpec{Whitespace, ExprWhitespace},
		PatternSpec{Unknown, ExprAnyChar},
	)

	strictPatterns = mustPatternSet(ModeStrict,
		PatternSpec{Comment, ExprStrictComment},
		PatternSpec{TagClose, ExprTagClose},
		PatternSpec{SelfClosingTag, ExprStrictSelfClosing},
		PatternSpec{TagOpen, ExprStrictTagOpen},
		PatternSpec{Whitespace, ExprWhitespace},
		PatternSpec{Attribute, ExprAttribute},
		PatternSpec{Text, ExprText},
	)
)

// ClassicPatterns returns the table with the historical priority:
// opening-tag start, closing tag, self-closing tag, attribute, text, comment, whitespace, any character.
//
// The opening-tag start only consumes "<name", so it always shadows the self-closing pattern,
// and the any-character fallback leaves nothing unmatched. Under this table
// [SelfClosingTag] tokens and [IssueLexical] errors are never produced.
func ClassicPatterns() *PatternSet {
	return classicPatterns
}

// StrictPatterns returns the table where opening and self-closing Tags are matched together
// with their attribute lists, and there is no any-character fallback.
// Characters no pattern claims, like a '<' that starts no Tag or comment, produce [IssueLexical].
func StrictPatterns() *PatternSet {
	return strictPatterns
}

// PatternsByMode returns the built-in table registered under mode.
// Empty mode selects the classic table.
func PatternsByMode(mode string) (*PatternSet, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeClassic:
		return classicPatterns, nil
	case ModeStrict:
		return strictPatterns, nil
	}

	return nil, NewConfigError(ConfigUnknownMode, fmt.Errorf("unknown tokenizer mode %q", mode))
}
