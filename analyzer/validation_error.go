package analyzer

import (
	"fmt"
	"strconv"
)

// ValidationError describes a single non-fatal problem of a document.
//
// Which fields are meaningful depends on the Issue:
//   - [IssueLexical]: Offset and Char.
//   - [IssueUnclosedTag], [IssueCloseWithoutOpen], [IssueInvalidSelfClosing]: Tag.
//   - [IssueMismatchedClose]: Tag is the expected (opened) name, Found is the closing one.
//   - [IssueDisallowedAttribute]: Tag and Attr.
//   - [IssueErrorsTruncated]: Offset of the first dropped error and Dropped.
//
// Offset is always the byte position of the token which caused the error.
// For [IssueUnclosedTag] it is the position of the opening Tag.
type ValidationError struct {
	Issue   Issue
	Offset  int
	Char    rune
	Tag     string
	Found   string
	Attr    string
	Dropped int
}

// LexicalError creates the [IssueLexical] error for the unrecognized character at offset.
func LexicalError(offset int, char rune) ValidationError {
	return ValidationError{Issue: IssueLexical, Offset: offset, Char: char}
}

// UnclosedTag creates the [IssueUnclosedTag] error.
func UnclosedTag(offset int, name string) ValidationError {
	return ValidationError{Issue: IssueUnclosedTag, Offset: offset, Tag: name}
}

// CloseWithoutOpen creates the [IssueCloseWithoutOpen] error.
func CloseWithoutOpen(offset int, name string) ValidationError {
	return ValidationError{Issue: IssueCloseWithoutOpen, Offset: offset, Tag: name}
}

// MismatchedClose creates the [IssueMismatchedClose] error.
func MismatchedClose(offset int, expected, found string) ValidationError {
	return ValidationError{Issue: IssueMismatchedClose, Offset: offset, Tag: expected, Found: found}
}

// InvalidSelfClosing creates the [IssueInvalidSelfClosing] error.
func InvalidSelfClosing(offset int, name string) ValidationError {
	return ValidationError{Issue: IssueInvalidSelfClosing, Offset: offset, Tag: name}
}

// DisallowedAttribute creates the [IssueDisallowedAttribute] error.
func DisallowedAttribute(offset int, tag, attr string) ValidationError {
	return ValidationError{Issue: IssueDisallowedAttribute, Offset: offset, Tag: tag, Attr: attr}
}

// Error returns the human-readable message of the problem.
func (e ValidationError) Error() string {
	switch e.Issue {
	case IssueLexical:
		return fmt.Sprintf("lexical error: unrecognized character at position %d: %s",
			e.Offset, strconv.QuoteRune(e.Char))

	case IssueCloseWithoutOpen:
		return fmt.Sprintf("structure error: closing tag </%s> has no matching opening tag", e.Tag)

	case IssueMismatchedClose:
		return fmt.Sprintf("structure error: closing tag </%s> does not match opening tag <%s>", e.Found, e.Tag)

	case IssueInvalidSelfClosing:
		return fmt.Sprintf("structure error: tag <%s> is not self-closing, but was used as such", e.Tag)

	case IssueUnclosedTag:
		return fmt.Sprintf("structure error: tag <%s> was not closed", e.Tag)

	case IssueDisallowedAttribute:
		return fmt.Sprintf("attribute error: attribute '%s' is not allowed on tag <%s>", e.Attr, e.Tag)

	case IssueErrorsTruncated:
		return fmt.Sprintf("too many errors; %d further errors suppressed starting at position %d", e.Dropped, e.Offset)
	}

	return fmt.Sprintf("unknown issue %d at position %d", e.Issue, e.Offset)
}
