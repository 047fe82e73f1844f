package analyzer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultRules(t *testing.T) {
	r := DefaultRules()

	require.Equal(t, []string{"br", "hr", "img", "input", "link", "meta"}, r.SelfClosingTags())

	require.True(t, r.IsSelfClosing("img"))
	require.True(t, r.IsSelfClosing("IMG"))
	require.False(t, r.IsSelfClosing("div"))

	require.True(t, r.IsAllowed("button", "onclick"))
	require.True(t, r.IsAllowed("meta", "charset"))
	require.False(t, r.IsAllowed("div", "onclick"))
	require.False(t, r.IsAllowed("DIV", "class"))
	require.False(t, r.IsAllowed("br", "class"))
	require.False(t, r.IsAllowed("span", "id"))
}

func TestNewRules_CopiesInput(t *testing.T) {
	selfClosing := []string{"Wbr"}
	allowed := map[string][]string{"a": {"href"}}

	r, err := NewRules(selfClosing, allowed)
	require.NoError(t, err)

	selfClosing[0] = "div"
	allowed["a"][0] = "onclick"
	allowed["p"] = []string{"id"}

	require.True(t, r.IsSelfClosing("wbr"))
	require.False(t, r.IsSelfClosing("div"))
	require.True(t, r.IsAllowed("a", "href"))
	require.False(t, r.IsAllowed("a", "onclick"))
	require.False(t, r.IsAllowed("p", "id"))

	attrs := r.AllowedAttributes()
	attrs["a"] = append(attrs["a"], "target")
	require.False(t, r.IsAllowed("a", "target"))
}

func TestNewRules_Invalid(t *testing.T) {
	testCases := []struct {
		name        string
		selfClosing []string
		allowed     map[string][]string
		issue       ConfigIssue
	}{
		{
			name:        "empty_self_closing_name",
			selfClosing: []string{""},
			issue:       ConfigInvalidTagName,
		},
		{
			name:        "dash_in_self_closing_name",
			selfClosing: []string{"my-tag"},
			issue:       ConfigInvalidTagName,
		},
		{
			name:    "digit_first_whitelist_tag",
			allowed: map[string][]string{"1p": {"id"}},
			issue:   ConfigInvalidTagName,
		},
		{
			name:    "dash_in_attribute",
			allowed: map[string][]string{"div": {"data-id"}},
			issue:   ConfigInvalidAttrName,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewRules(tc.selfClosing, tc.allowed)
			require.Error(t, err)
			require.Nil(t, r)

			var ce *ConfigError
			require.True(t, errors.As(err, &ce), "expected *ConfigError, got %T (%v)", err, err)
			require.Equal(t, tc.issue, ce.Issue)
		})
	}
}

func TestNewRules_Empty(t *testing.T) {
	r, err := NewRules(nil, nil)
	require.NoError(t, err)

	require.Empty(t, r.SelfClosingTags())
	require.Empty(t, r.AllowedAttributes())
	require.False(t, r.IsSelfClosing("br"))
}
