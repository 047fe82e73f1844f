package analyzer

import "regexp"

var (
	openTagNameRe  = regexp.MustCompile(`^<([a-zA-Z][a-zA-Z0-9]*)`)
	closeTagNameRe = regexp.MustCompile(`^</([a-zA-Z][a-zA-Z0-9]*)`)
)

// TagName extracts the name of the Tag from the lexeme of a Tag token.
// It returns an empty string for the tokens which are not Tags.
func TagName(t Token) string {
	var m []string

	switch t.Kind {
	case TagOpen, SelfClosingTag:
		m = openTagNameRe.FindStringSubmatch(t.Lexeme)
	case TagClose:
		m = closeTagNameRe.FindStringSubmatch(t.Lexeme)
	}

	if m == nil {
		return ""
	}

	return m[1]
}

// openedTag is an entry of the nesting stack.
type openedTag struct {
	name   string
	offset int
}

// structureState is owned by a single [ValidateStructure] call.
type structureState struct {
	stack []openedTag
}

// peek returns the latest opened Tag. The stack must not be empty.
func (s *structureState) peek() openedTag {
	return s.stack[len(s.stack)-1]
}

func (s *structureState) pop() openedTag {
	lastItemIdx := len(s.stack) - 1
	lastItem := s.stack[lastItemIdx]
	s.stack = s.stack[:lastItemIdx]
	return lastItem
}

func (s *structureState) push(tag openedTag) {
	s.stack = append(s.stack, tag)
}

// ValidateStructure checks the nesting of the Tags in tokens and adds every detected
// anomaly to errs. It never stops on the first problem.
//
// The stack holds only the opened Tags which are not self-closing. Closing names are
// compared case-sensitively with the top of the stack; on a mismatch the stack is left
// as is, so the following closing Tags are compared against the same top.
// The Tags left on the stack when tokens are exhausted are reported outermost first.
func ValidateStructure(r *Rules, tokens []Token, errs *Errors) {
	var s structureState

	for _, t := range tokens {
		switch t.Kind {
		case TagOpen:
			name := TagName(t)
			if !r.IsSelfClosing(name) {
				s.push(openedTag{name, t.Offset})
			}

		case TagClose:
			name := TagName(t)

			if len(s.stack) == 0 {
				errs.Add(CloseWithoutOpen(t.Offset, name))
				continue
			}

			if top := s.peek(); top.name != name {
				errs.Add(MismatchedClose(t.Offset, top.name, name))
				continue
			}

			s.pop()

		case SelfClosingTag:
			name := TagName(t)
			if !r.IsSelfClosing(name) {
				errs.Add(InvalidSelfClosing(t.Offset, name))
			}
		}
	}

	for _, tag := range s.stack {
		errs.Add(UnclosedTag(tag.offset, tag.name))
	}
}
