// Package analyzer is the lexical analyser of markup-like text.
//
// The analysis of a [Document] runs in three steps over the same input:
//
//  1. [Tokenize] splits the text into [Token]s with a prioritized [PatternSet].
//  2. [ValidateStructure] checks that the Tags are balanced and properly nested.
//  3. [ValidateAttributes] checks the attributes of the opening Tags against the whitelist of the [Rules].
//
// Every problem found is a non-fatal [ValidationError]; nothing stops the analysis before the
// end of input. The errors of a [Report] are ordered: lexical errors in scan order, then
// structural errors, then attribute errors in the order their Tags appear.
//
// There is no DOM construction, entity decoding or parsing of embedded languages.
package analyzer

// Document is a single independent unit of input text.
type Document struct {
	ID   string
	Text string
}

// Report is the result of the analysis of one [Document].
type Report struct {
	DocumentID string
	Tokens     []Token
	Errors     []ValidationError
}

// HasErrors reports whether any problem was found.
func (r Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// Analyzer runs the analysis pipeline. It holds only immutable configuration,
// so a single Analyzer can serve any number of goroutines.
type Analyzer struct {
	rules    *Rules
	patterns *PatternSet

	errPolicy ErrorsOverflowPolicy
	errCap    int
}

// Option configures an [Analyzer].
type Option func(a *Analyzer)

// WithErrorsCap caps the number of errors recorded per document.
// With policy [ErrOverflowTrunc] the last slot is taken by the truncation marker.
// Non-positive cap means no limit.
func WithErrorsCap(policy ErrorsOverflowPolicy, cap int) Option {
	return func(a *Analyzer) {
		if cap <= 0 {
			a.errPolicy, a.errCap = ErrOverflowNoCap, 0
			return
		}
		a.errPolicy, a.errCap = policy, cap
	}
}

// New creates an Analyzer. Nil rules select [DefaultRules], nil patterns select [ClassicPatterns].
func New(rules *Rules, patterns *PatternSet, opts ...Option) *Analyzer {
	if rules == nil {
		rules = DefaultRules()
	}

	if patterns == nil {
		patterns = ClassicPatterns()
	}

	a := &Analyzer{
		rules:     rules,
		patterns:  patterns,
		errPolicy: ErrOverflowNoCap,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Rules returns the Rules of the Analyzer.
func (a *Analyzer) Rules() *Rules {
	return a.rules
}

// Patterns returns the PatternSet of the Analyzer.
func (a *Analyzer) Patterns() *PatternSet {
	return a.patterns
}

// Analyze tokenizes the document once, validates the token stream twice,
// and merges the errors of all three steps into the [Report].
func (a *Analyzer) Analyze(doc Document) Report {
	// errCap is never negative
	errs, _ := NewErrors(a.errPolicy, a.errCap)

	out := Tokenize(a.patterns, doc.Text, &errs)
	ValidateStructure(a.rules, out.Tokens, &errs)
	ValidateAttributes(a.rules, out.Tokens, &errs)

	return Report{
		DocumentID: doc.ID,
		Tokens:     out.Tokens,
		Errors:     errs.List(),
	}
}
