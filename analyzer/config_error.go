package analyzer

import (
	"fmt"
)

// ConfigIssue defines the kind of problem found while building [Rules] or a [PatternSet].
type ConfigIssue int

const (
	// ConfigInvalidTagName occurs when a Tag name in the Rules can never be produced by the tokenizer.
	ConfigInvalidTagName ConfigIssue = iota

	// ConfigInvalidAttrName occurs when a whitelisted attribute name can never be produced by the tokenizer.
	ConfigInvalidAttrName

	// ConfigInvalidPattern occurs when a pattern expression fails to compile.
	ConfigInvalidPattern

	// ConfigInvalidTokenKind occurs when a pattern is bound to an undeclared [TokenKind].
	ConfigInvalidTokenKind

	// ConfigEmptyPatternSet occurs when a [PatternSet] has no patterns at all.
	ConfigEmptyPatternSet

	// ConfigNegativeErrorsCap reports an invalid (negative) errors capacity.
	ConfigNegativeErrorsCap

	// ConfigUnknownMode occurs when the requested tokenizer mode is not registered.
	ConfigUnknownMode
)

// ConfigError describes an error which occurs during the configuration of the analysis, like improper Rules.
type ConfigError struct {
	Issue ConfigIssue // Issue is a kind of the problem occurred.
	Err   error       // Err contains original error created during some configuration process.
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%d: %v", e.Issue, e.Err)
}

// NewConfigError is a factory function for creating a *ConfigError.
func NewConfigError(issue ConfigIssue, err error) *ConfigError {
	return &ConfigError{
		Issue: issue,
		Err:   err,
	}
}
