package analyzer

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
)

var (
	tagNameRe  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)
	attrNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// DefaultSelfClosingTags is the list of Tags which require no closing Tag.
var DefaultSelfClosingTags = []string{"img", "input", "br", "meta", "link", "hr"}

// DefaultAllowedAttributes maps Tag names to the attributes permitted on them.
var DefaultAllowedAttributes = map[string][]string{
	"button": {"onclick", "class", "id", "style"},
	"div":    {"class", "id", "style"},
	"img":    {"src", "alt", "class", "id", "style"},
	"input":  {"type", "name", "value", "class", "id", "style"},
	"br":     {},
	"meta":   {"charset", "name", "content"},
}

// Rules is the immutable configuration the validators check the tokens against.
// It is built once and shared by every analysis.
type Rules struct {
	// selfClosing holds lower-cased names.
	selfClosing map[string]struct{}

	// allowed is keyed by the exact Tag name.
	allowed map[string]map[string]struct{}
}

// NewRules builds the Rules from the list of self-closing Tags and the per-Tag attribute whitelist.
// The arguments are copied. Self-closing names are matched case-insensitively, whitelist keys
// and attribute names are matched exactly.
//
// It returns a [ConfigError] if some name could never appear in a token.
func NewRules(selfClosing []string, allowed map[string][]string) (*Rules, error) {
	r := &Rules{
		selfClosing: make(map[string]struct{}, len(selfClosing)),
		allowed:     make(map[string]map[string]struct{}, len(allowed)),
	}

	for _, name := range selfClosing {
		if !tagNameRe.MatchString(name) {
			return nil, newInvalidTagNameError(name)
		}
		r.selfClosing[strings.ToLower(name)] = struct{}{}
	}

	for tag, attrs := range allowed {
		if !tagNameRe.MatchString(tag) {
			return nil, newInvalidTagNameError(tag)
		}

		set := make(map[string]struct{}, len(attrs))
		for _, attr := range attrs {
			if !attrNameRe.MatchString(attr) {
				return nil, NewConfigError(
					ConfigInvalidAttrName,
					fmt.Errorf("attribute name %q of tag %q must match %s", attr, tag, attrNameRe),
				)
			}
			set[attr] = struct{}{}
		}
		r.allowed[tag] = set
	}

	return r, nil
}

func newInvalidTagNameError(name string) error {
	return NewConfigError(
		ConfigInvalidTagName,
		fmt.Errorf("tag name %q must match %s", name, tagNameRe),
	)
}

// DefaultRules returns the Rules built from [DefaultSelfClosingTags] and [DefaultAllowedAttributes].
func DefaultRules() *Rules {
	r, err := NewRules(DefaultSelfClosingTags, DefaultAllowedAttributes)
	if err != nil {
		panic(err)
	}
	return r
}

// IsSelfClosing reports whether the Tag requires no closing Tag. The check ignores case.
func (r *Rules) IsSelfClosing(name string) bool {
	_, ok := r.selfClosing[strings.ToLower(name)]
	return ok
}

// IsAllowed reports whether attr is whitelisted for tag.
// A tag absent from the whitelist allows nothing.
func (r *Rules) IsAllowed(tag, attr string) bool {
	_, ok := r.allowed[tag][attr]
	return ok
}

// SelfClosingTags returns the sorted lower-cased self-closing names.
func (r *Rules) SelfClosingTags() []string {
	return slices.Sorted(maps.Keys(r.selfClosing))
}

// AllowedAttributes returns a copy of the whitelist with sorted attribute lists.
func (r *Rules) AllowedAttributes() map[string][]string {
	out := make(map[string][]string, len(r.allowed))
	for tag, set := range r.allowed {
		out[tag] = slices.Sorted(maps.Keys(set))
	}
	return out
}
