package analyzer

// TokenKind defines the class of the lexeme recognized by [Tokenize].
type TokenKind int

const (
	// TagOpen is the start of an opening Tag, e.g. "<div".
	TagOpen TokenKind = iota

	// TagClose is a complete closing Tag, e.g. "</div>".
	TagClose

	// SelfClosingTag is a Tag that closes itself, e.g. "<br />".
	SelfClosingTag

	// Attribute is a key-value assignment, e.g. `href="/"`.
	Attribute

	// Text is a run of plain text between Tags.
	Text

	// Comment is a markup comment. It is recognized, but never emitted.
	Comment

	// Whitespace is a run of blank symbols. It is recognized, but never emitted.
	Whitespace

	// Unknown is a single character which no other pattern claimed.
	Unknown

	// NumTokenKinds is the number of the kinds above. It is not a kind itself.
	NumTokenKinds
)

var tokenKindNames = [NumTokenKinds]string{
	TagOpen:        "TAG_OPEN",
	TagClose:       "TAG_CLOSE",
	SelfClosingTag: "SELF_CLOSING_TAG",
	Attribute:      "ATTRIBUTE",
	Text:           "TEXT",
	Comment:        "COMMENT",
	Whitespace:     "WHITESPACE",
	Unknown:        "UNKNOWN",
}

func (k TokenKind) String() string {
	if k < 0 || k >= NumTokenKinds {
		return "INVALID"
	}
	return tokenKindNames[k]
}

// Emitted reports whether tokens of this kind end up in the token stream.
func (k TokenKind) Emitted() bool {
	return k != Comment && k != Whitespace
}

// Valid reports whether k is one of the declared kinds.
func (k TokenKind) Valid() bool {
	return k >= 0 && k < NumTokenKinds
}

// Token is a classified and positioned substring of the input.
type Token struct {
	// Kind is the class of the lexeme.
	Kind TokenKind

	// Lexeme is the exact substring of the input the pattern matched.
	Lexeme string

	// Offset is the byte position of the Lexeme in the input.
	Offset int
}

// End returns the byte position right after the Lexeme.
func (t Token) End() int {
	return t.Offset + len(t.Lexeme)
}
