package analyzer

// Issue defines types of problems found during the tokenization or the validation of a document.
type Issue int

const (
	// IssueLexical occurs when no pattern matches at the scan cursor. The offending character is skipped.
	IssueLexical Issue = iota

	// IssueUnclosedTag means that an opened Tag is still on the stack when the token stream is exhausted.
	IssueUnclosedTag

	// IssueCloseWithoutOpen means that a closing Tag arrived while no Tag was open.
	IssueCloseWithoutOpen

	// IssueMismatchedClose means that a closing Tag's name differs from the latest opened Tag.
	// The opened Tag stays on the stack.
	IssueMismatchedClose

	// IssueInvalidSelfClosing means that a Tag which is not self-closing was written as such.
	IssueInvalidSelfClosing

	// IssueDisallowedAttribute means that the attribute is not whitelisted for the Tag.
	IssueDisallowedAttribute

	// IssueErrorsTruncated occurs when there are too many errors recorded for a single document.
	IssueErrorsTruncated

	// NumIssues is the number of the issues above.
	NumIssues
)

var issueNames = [NumIssues]string{
	IssueLexical:             "Lexical Error",
	IssueUnclosedTag:         "Unclosed Tag",
	IssueCloseWithoutOpen:    "Close Without Open",
	IssueMismatchedClose:     "Mismatched Close",
	IssueInvalidSelfClosing:  "Invalid Self-Closing Tag",
	IssueDisallowedAttribute: "Disallowed Attribute",
	IssueErrorsTruncated:     "Errors Truncated",
}

func (i Issue) String() string {
	if i < 0 || i >= NumIssues {
		return "Unknown Issue"
	}
	return issueNames[i]
}
