package analyzer

import (
	"unicode/utf8"
)

// TokenizerOutput is the result of the tokenization process.
type TokenizerOutput struct {
	// Tokens is the sequence of emitted Tokens in scan order.
	// Comments and whitespace are never part of it.
	Tokens []Token

	// Emitted is the total count of bytes covered by Tokens.
	Emitted int

	// Discarded is the total count of bytes matched by patterns whose kind is not emitted,
	// i.e. comments and whitespace.
	Discarded int

	// Skipped is the total count of bytes no pattern matched.
	Skipped int

	// Counts is the number of matches per kind, including the discarded ones.
	Counts [NumTokenKinds]int
}

// Consumed returns the number of bytes the scan cursor went through.
// After a complete scan it equals the length of the input.
func (out TokenizerOutput) Consumed() int {
	return out.Emitted + out.Discarded + out.Skipped
}

// ByteToTokenRatio is the estimated ratio of the number of bytes in the input string to the number of Tokens.
// It is used to estimate the initial capacity of the Tokens slice.
const ByteToTokenRatio = 8

// Tokenize transforms the input string into the sequence of Tokens, trying the Patterns of p
// at every cursor position in their priority order.
//
// When nothing matches, [IssueLexical] is added to errs and exactly one character is skipped.
// Tokenization never stops before the end of input.
func Tokenize(p *PatternSet, input string, errs *Errors) (out TokenizerOutput) {
	n := len(input)

	out.Tokens = make([]Token, 0, n/ByteToTokenRatio+1)

	for i := 0; i < n; {
		kind, width, ok := p.Match(input[i:])

		if !ok {
			char, size := utf8.DecodeRuneInString(input[i:])
			errs.Add(LexicalError(i, char))
			out.Skipped += size
			i += size
			continue
		}

		out.Counts[kind]++

		if kind.Emitted() {
			out.Tokens = append(out.Tokens, Token{
				Kind:   kind,
				Lexeme: input[i : i+width],
				Offset: i,
			})
			out.Emitted += width
		} else {
			out.Discarded += width
		}

		i += width
	}

	return
}
