package analyzer

import (
	"fmt"
	"testing"

	"github.com/cucumber/godog"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"testdata/features"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

// scenarioState holds per-scenario state for step definitions.
type scenarioState struct {
	patterns *PatternSet
	text     string
	report   Report
	consumed int
}

func initializeScenario(ctx *godog.ScenarioContext) {
	s := &scenarioState{}

	ctx.Step(`^the (classic|strict) tokenizer$`, s.theTokenizer)
	ctx.Step(`^the document:$`, s.theDocument)
	ctx.Step(`^it is analyzed$`, s.itIsAnalyzed)
	ctx.Step(`^the tag tokens are:$`, s.theTagTokensAre)
	ctx.Step(`^the errors are:$`, s.theErrorsAre)
	ctx.Step(`^there are no errors$`, s.thereAreNoErrors)
	ctx.Step(`^the consumed length equals the document length$`, s.consumedEqualsLength)
}

func (s *scenarioState) theTokenizer(mode string) error {
	set, err := PatternsByMode(mode)
	if err != nil {
		return err
	}
	s.patterns = set
	return nil
}

func (s *scenarioState) theDocument(doc *godog.DocString) error {
	s.text = doc.Content
	return nil
}

func (s *scenarioState) itIsAnalyzed() error {
	s.report = New(DefaultRules(), s.patterns).Analyze(Document{ID: "feature", Text: s.text})

	errs, err := NewErrors(ErrOverflowNoCap, 0)
	if err != nil {
		return err
	}
	s.consumed = Tokenize(s.patterns, s.text, &errs).Consumed()
	return nil
}

func (s *scenarioState) theTagTokensAre(table *godog.Table) error {
	tags := tagTokens(s.report.Tokens)
	rows := table.Rows[1:]

	if len(tags) != len(rows) {
		return fmt.Errorf("expected %d tag tokens, got %d: %v", len(rows), len(tags), tags)
	}

	for i, row := range rows {
		kind, lexeme := row.Cells[0].Value, row.Cells[1].Value
		if tags[i].Kind.String() != kind || tags[i].Lexeme != lexeme {
			return fmt.Errorf("token #%d: expected %s(%q), got %s(%q)",
				i, kind, lexeme, tags[i].Kind, tags[i].Lexeme)
		}
	}

	return nil
}

func (s *scenarioState) theErrorsAre(table *godog.Table) error {
	rows := table.Rows[1:]

	if len(s.report.Errors) != len(rows) {
		return fmt.Errorf("expected %d errors, got %d: %v", len(rows), len(s.report.Errors), s.report.Errors)
	}

	for i, row := range rows {
		if got := s.report.Errors[i].Error(); got != row.Cells[0].Value {
			return fmt.Errorf("error #%d: expected %q, got %q", i, row.Cells[0].Value, got)
		}
	}

	return nil
}

func (s *scenarioState) thereAreNoErrors() error {
	if len(s.report.Errors) > 0 {
		return fmt.Errorf("expected no errors, got %v", s.report.Errors)
	}
	return nil
}

func (s *scenarioState) consumedEqualsLength() error {
	if s.consumed != len(s.text) {
		return fmt.Errorf("consumed %d bytes of %d", s.consumed, len(s.text))
	}
	return nil
}
