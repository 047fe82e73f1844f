package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize_NestedTags(t *testing.T) {
	errs := newErrors(t)
	input := "<div><span></span></div>"

	out := Tokenize(ClassicPatterns(), input, errs)

	// the opening-tag start leaves '>' to the text pattern
	expected := []Token{
		tok(TagOpen, "<div", 0),
		tok(Text, ">", 4),
		tok(TagOpen, "<span", 5),
		tok(Text, ">", 10),
		tok(TagClose, "</span>", 11),
		tok(TagClose, "</div>", 18),
	}

	require.Equal(t, expected, out.Tokens)
	require.Empty(t, errs.List())
	require.Equal(t, len(input), out.Consumed())
	require.Equal(t, 2, out.Counts[TagOpen])
	require.Equal(t, 2, out.Counts[TagClose])
}

func TestTokenize_MismatchedTags(t *testing.T) {
	errs := newErrors(t)

	out := Tokenize(ClassicPatterns(), "<div><p></div>", errs)

	expected := []Token{
		tok(TagOpen, "<div", 0),
		tok(TagOpen, "<p", 5),
		tok(TagClose, "</div>", 8),
	}

	require.Equal(t, expected, tagTokens(out.Tokens))
	require.Empty(t, errs.List())
}

func TestTokenize_CommentIsDiscarded(t *testing.T) {
	errs := newErrors(t)
	input := "a<!-- c -->b"

	out := Tokenize(ClassicPatterns(), input, errs)

	require.Equal(t, []Token{tok(Text, "a", 0), tok(Text, "b", 11)}, out.Tokens)
	require.Equal(t, 1, out.Counts[Comment])
	require.Equal(t, 10, out.Discarded)
	require.Equal(t, 2, out.Emitted)
	require.Zero(t, out.Skipped)
}

func TestTokenize_EmptyInput(t *testing.T) {
	errs := newErrors(t)

	out := Tokenize(ClassicPatterns(), "", errs)

	require.Empty(t, out.Tokens)
	require.Zero(t, out.Consumed())
	require.Empty(t, errs.List())
}

func TestTokenize_ClassicShadowsSelfClosing(t *testing.T) {
	errs := newErrors(t)

	out := Tokenize(ClassicPatterns(), `<br/><img src="a.png" />`, errs)

	require.Zero(t, out.Counts[SelfClosingTag])
	require.Equal(t, []Token{
		tok(TagOpen, "<br", 0),
		tok(Text, "/>", 3),
		tok(TagOpen, "<img", 5),
		tok(Text, ` src="a.png" />`, 9),
	}, out.Tokens)
	require.Empty(t, errs.List())
}

func TestTokenize_ClassicAttributeToken(t *testing.T) {
	errs := newErrors(t)

	// '_' ends the tag name, so the assignment starts a new token
	out := Tokenize(ClassicPatterns(), `<img_src="a">`, errs)

	require.Equal(t, []Token{
		tok(TagOpen, "<img", 0),
		tok(Attribute, `_src="a"`, 4),
		tok(Text, ">", 12),
	}, out.Tokens)
}

func TestTokenize_ClassicNeverReportsLexicalErrors(t *testing.T) {
	inputs := []string{
		"<",
		"<3 is love",
		"< div>",
		"<!-- unterminated",
		"a\nb\r\n<\n",
		"\xff<\xfe",
	}

	for _, input := range inputs {
		errs := newErrors(t)
		out := Tokenize(ClassicPatterns(), input, errs)
		require.Empty(t, errs.List(), "input %q", input)
		require.Zero(t, out.Skipped, "input %q", input)
		require.Equal(t, len(input), out.Consumed(), "input %q", input)
	}
}

func TestTokenize_ClassicLoneAngleBracketIsUnknown(t *testing.T) {
	errs := newErrors(t)

	out := Tokenize(ClassicPatterns(), "1 <3", errs)

	require.Equal(t, []Token{
		tok(Text, "1 ", 0),
		tok(Unknown, "<", 2),
		tok(Text, "3", 3),
	}, out.Tokens)
}

func TestTokenize_StrictSelfClosing(t *testing.T) {
	errs := newErrors(t)

	out := Tokenize(StrictPatterns(), `<br/><img src="a.png" />`, errs)

	require.Equal(t, []Token{
		tok(SelfClosingTag, "<br/>", 0),
		tok(SelfClosingTag, `<img src="a.png" />`, 5),
	}, out.Tokens)
	require.Empty(t, errs.List())
}

func TestTokenize_StrictFullOpeningTag(t *testing.T) {
	errs := newErrors(t)

	out := Tokenize(StrictPatterns(), `<div class="x">hi</div>`, errs)

	require.Equal(t, []Token{
		tok(TagOpen, `<div class="x">`, 0),
		tok(Text, "hi", 15),
		tok(TagClose, "</div>", 17),
	}, out.Tokens)
	require.Empty(t, errs.List())
}

func TestTokenize_StrictLexicalError(t *testing.T) {
	errs := newErrors(t)
	input := "a < b"

	out := Tokenize(StrictPatterns(), input, errs)

	require.Equal(t, []Token{tok(Text, "a ", 0), tok(Text, "b", 4)}, out.Tokens)
	require.Equal(t, []ValidationError{LexicalError(2, '<')}, errs.List())
	require.Equal(t, 1, out.Skipped)
	require.Equal(t, 1, out.Discarded)
	require.Equal(t, len(input), out.Consumed())
}

func TestTokenize_StrictSkipsSingleCharacter(t *testing.T) {
	errs := newErrors(t)

	out := Tokenize(StrictPatterns(), "<<b", errs)

	require.Equal(t, []ValidationError{
		LexicalError(0, '<'),
		LexicalError(1, '<'),
	}, errs.List())
	require.Equal(t, []Token{tok(Text, "b", 2)}, out.Tokens)
	require.Equal(t, 2, out.Skipped)
}

func TestTokenize_StrictMultilineComment(t *testing.T) {
	errs := newErrors(t)

	out := Tokenize(StrictPatterns(), "<!--\nhidden\n--><p>", errs)

	require.Equal(t, []Token{tok(TagOpen, "<p>", 15)}, out.Tokens)
	require.Equal(t, 1, out.Counts[Comment])
}

func TestTokenize_FirstPatternWins(t *testing.T) {
	set, err := NewPatternSet("test",
		PatternSpec{Text, `ab`},
		PatternSpec{Attribute, `abc`},
	)
	require.NoError(t, err)

	errs := newErrors(t)
	out := Tokenize(set, "abc", errs)

	require.Equal(t, []Token{tok(Text, "ab", 0)}, out.Tokens)
	require.Equal(t, []ValidationError{LexicalError(2, 'c')}, errs.List())
}

func TestTokenize_ConsumedEqualsInputLength(t *testing.T) {
	inputs := []string{
		"",
		"plain text only",
		"<html><head><meta charset=\"utf-8\"></head><body>\n\t<p>héllo <b>wörld</b></p>\n</body></html>",
		"<!-- a --><!-- b -->   <br/>",
		"<div class=\"a\" onclick=\"x\">text</div>",
		"< < < > > >",
		"<a\n href=\"x\"\n>link</a>",
		"\xff\xfe<\xfd",
		"日本語 <span>テキスト</span>",
	}

	for _, set := range []*PatternSet{ClassicPatterns(), StrictPatterns()} {
		for _, input := range inputs {
			errs := newErrors(t)
			out := Tokenize(set, input, errs)

			total := 0
			for _, tk := range out.Tokens {
				total += len(tk.Lexeme)
			}

			require.Equal(t, out.Emitted, total, "%s: %q", set.Name(), input)
			require.Equal(t, len(input), out.Consumed(), "%s: %q", set.Name(), input)

			// scan order
			for i := 1; i < len(out.Tokens); i++ {
				require.Greater(t, out.Tokens[i].Offset, out.Tokens[i-1].Offset)
				require.LessOrEqual(t, out.Tokens[i-1].End(), out.Tokens[i].Offset)
			}
		}
	}
}
