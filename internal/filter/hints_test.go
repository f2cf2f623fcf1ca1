package filter_test

import (
	"testing"

	"github.com/gruntwork-io/listfilter/internal/errors"
	"github.com/gruntwork-io/listfilter/internal/filter"
	"github.com/stretchr/testify/assert"
)

func TestGetHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cfg      *filter.Config
		name     string
		query    string
		expected string
	}{
		{
			name:     "truncated",
			query:    "a OR",
			expected: "The filter is incomplete. Make sure all parentheses are closed and operators have operands.",
		},
		{
			name:     "unmatched parenthesis",
			query:    "a = 1)",
			expected: "Unexpected ')' without matching '('.",
		},
		{
			name:     "leading operator",
			query:    "OR b",
			expected: "'OR' needs an operand on both sides. e.g. 'a OR b'",
		},
		{
			name:     "leading comparator",
			query:    "= b",
			expected: "Comparators need a field on the left. e.g. 'retries < 10'",
		},
		{
			name:     "chained comparison",
			query:    "a = b = c",
			expected: "A restriction takes one comparator. Combine restrictions with 'AND' or 'OR'.",
		},
		{
			name:     "leading dot",
			query:    ".a",
			expected: "Field names follow a value. e.g. 'labels.env = prod'",
		},
		{
			name:     "stray comma",
			query:    "a, b",
			expected: "Commas separate function arguments. e.g. 'regex(name, \"^prod\")'",
		},
		{
			name:     "spaced negative number",
			query:    "a > - 5",
			expected: "'-' negates a term, or makes a negative number when the digits follow directly. e.g. '-a' or 't > -10'",
		},
		{
			name:     "bang",
			query:    "!a",
			expected: "Use 'NOT' or '-' to negate a restriction, '!=' to compare.",
		},
		{
			name:     "double ampersand",
			query:    "a && b",
			expected: "Use 'AND' and 'OR' to combine restrictions.",
		},
		{
			name:     "special character",
			query:    "path = a/b",
			expected: "Quote values containing special characters. e.g. 'name = \"a/b\"'",
		},
		{
			name:     "unterminated single quote",
			query:    "a = 'b",
			expected: "Close the quoted value with '.",
		},
		{
			name:     "bad timestamp",
			query:    "t > 2012-02-30T00:00:00Z",
			expected: "Timestamps use RFC 3339. e.g. '2012-04-21T11:30:00-04:00'",
		},
		{
			name:     "integer overflow",
			query:    "n > 99999999999999999999",
			expected: "Numbers must fit in a 64-bit integer or float.",
		},
		{
			name:     "too deep",
			query:    "((a))",
			cfg:      &filter.Config{MaxDepth: 1},
			expected: "Remove redundant parentheses or split the filter into several simpler ones.",
		},
		{
			name:     "too long",
			query:    "abcdef",
			cfg:      &filter.Config{MaxInputLength: 3},
			expected: "Shorten the filter to at most 3 bytes.",
		},
		{
			name:     "no hint",
			query:    "a = NOT",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := filter.Parse(tt.query, tt.cfg)
			assert.Equal(t, tt.expected, filter.GetHint(err))
		})
	}
}

func TestGetHint_NotAFilterError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, filter.GetHint(errors.New("boom")))
	assert.Empty(t, filter.GetHint(nil))
}
