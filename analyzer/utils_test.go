package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newErrors(t testing.TB) *Errors {
	t.Helper()
	errs, err := NewErrors(ErrOverflowNoCap, 0)
	require.NoError(t, err)
	return &errs
}

func tok(kind TokenKind, lexeme string, offset int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Offset: offset}
}

// tagTokens filters out everything but Tags.
func tagTokens(tokens []Token) []Token {
	var out []Token
	for _, t := range tokens {
		switch t.Kind {
		case TagOpen, TagClose, SelfClosingTag:
			out = append(out, t)
		}
	}
	return out
}
