package analyzer

import (
	"regexp"
	"strings"
)

// attrAssignRe captures the name of a `name="value"` assignment.
var attrAssignRe = regexp.MustCompile(`([a-zA-Z_][a-zA-Z0-9_]*)="[^"]*"`)

// AttributeRef is an attribute assignment found within a Tag.
type AttributeRef struct {
	// Name is the attribute's name.
	Name string

	// Offset is the byte position of the assignment in the input.
	Offset int
}

// TagAttributes returns the attribute assignments which belong to the Tag token at tokens[idx].
//
// The assignments are searched in the Tag's own lexeme after its name and, if the lexeme
// does not terminate the Tag with '>', in the attribute-bearing tail the tokenizer emitted
// after it: the following Attribute tokens and the following Text tokens up to the first '>'
// outside a quoted value. The tail ends at any other token kind.
func TagAttributes(tokens []Token, idx int) []AttributeRef {
	tag := tokens[idx]
	name := TagName(tag)

	var refs []AttributeRef

	// the tag's own text after "<name"
	own := tag.Lexeme[1+len(name):]
	refs = appendAssignments(refs, own, tag.Offset+1+len(name))

	if strings.HasSuffix(tag.Lexeme, ">") {
		return refs
	}

	quoted := false
	for _, t := range tokens[idx+1:] {
		switch t.Kind {
		case Attribute:
			refs = appendAssignments(refs, t.Lexeme, t.Offset)
			continue

		case Text:
			var end int
			end, quoted = tagEnd(t.Lexeme, quoted)
			if end < 0 {
				refs = appendAssignments(refs, t.Lexeme, t.Offset)
				continue
			}

			refs = appendAssignments(refs, t.Lexeme[:end], t.Offset)
		}

		break
	}

	return refs
}

// tagEnd returns the index of the first '>' of s which is not inside a "..." run, or -1.
// quoted tells whether s starts inside such a run, the returned state is the one at the end of s.
func tagEnd(s string, quoted bool) (int, bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			quoted = !quoted
		case '>':
			if !quoted {
				return i, false
			}
		}
	}
	return -1, quoted
}

func appendAssignments(refs []AttributeRef, s string, base int) []AttributeRef {
	for _, m := range attrAssignRe.FindAllStringSubmatchIndex(s, -1) {
		refs = append(refs, AttributeRef{
			Name:   s[m[2]:m[3]],
			Offset: base + m[0],
		})
	}
	return refs
}

// ValidateAttributes checks the attributes of every opening and self-closing Tag against
// the whitelist of r and adds [IssueDisallowedAttribute] to errs for each one which is not
// permitted, in the order the Tags appear.
func ValidateAttributes(r *Rules, tokens []Token, errs *Errors) {
	for i, t := range tokens {
		if t.Kind != TagOpen && t.Kind != SelfClosingTag {
			continue
		}

		name := TagName(t)

		for _, attr := range TagAttributes(tokens, i) {
			if !r.IsAllowed(name, attr.Name) {
				errs.Add(DisallowedAttribute(attr.Offset, name, attr.Name))
			}
		}
	}
}
