package filter_test

import (
	"testing"

	"github.com/gruntwork-io/listfilter/internal/errors"
	"github.com/gruntwork-io/listfilter/internal/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseError(t *testing.T, query string, cfg *filter.Config) error {
	t.Helper()

	_, err := filter.Parse(query, cfg)
	require.Error(t, err)

	return err
}

func TestFormatDiagnostic_UnexpectedEOF(t *testing.T) {
	t.Parallel()

	query := "a AND"
	result := filter.FormatDiagnostic(query, parseError(t, query, nil), false)

	expected := `Filter parsing error: Unexpected end of filter
 --> --filter 'a AND'

     a AND
          ^ expected one of [LPAREN, TEXT, STRING, DATETIME, DURATION, FLOAT, INTEGER, BOOLEAN, ASTERISK], found end of filter

  hint: The filter is incomplete. Make sure all parentheses are closed and operators have operands.
`

	assert.Equal(t, expected, result)
}

func TestFormatDiagnostic_UnexpectedToken(t *testing.T) {
	t.Parallel()

	query := "a)"
	result := filter.FormatDiagnostic(query, parseError(t, query, nil), false)

	assert.Contains(t, result, "Filter parsing error: Unexpected token")
	assert.Contains(t, result, " --> --filter 'a)'")
	assert.Contains(t, result, "     a)\n")
	assert.Contains(t, result, "      ^ unexpected \")\", expected one of [AND, OR, EOF]")
	assert.Contains(t, result, "hint: Unexpected ')' without matching '('.")
}

func TestFormatDiagnostic_LexError(t *testing.T) {
	t.Parallel()

	query := `name = "abc`
	result := filter.FormatDiagnostic(query, parseError(t, query, nil), false)

	assert.Contains(t, result, "Filter parsing error: Unterminated string")
	assert.Contains(t, result, "            ^ unterminated quoted literal")
	assert.Contains(t, result, "hint: Close the quoted value with \".")
}

func TestFormatDiagnostic_CaretCountsCharacters(t *testing.T) {
	t.Parallel()

	query := "größe & 1"
	result := filter.FormatDiagnostic(query, parseError(t, query, nil), false)

	// "größe " is 6 characters but 8 bytes.
	assert.Contains(t, result, "     größe & 1\n           ^ unexpected character '&'")
}

func TestFormatDiagnostic_UnknownFunction(t *testing.T) {
	t.Parallel()

	query := "a = lower(b)"
	cfg := &filter.Config{AllowedFunctionNames: []string{"upper"}}
	result := filter.FormatDiagnostic(query, parseError(t, query, cfg), false)

	assert.Contains(t, result, "Filter parsing error: Unknown function")
	assert.Contains(t, result, "         ^ function \"lower\" is not allowed")
	assert.Contains(t, result, `hint: Only allowlisted functions can be called. Add "lower" to the allowed functions if it should be.`)
}

func TestFormatDiagnostic_InputTooLong(t *testing.T) {
	t.Parallel()

	query := "abcdef"
	result := filter.FormatDiagnostic(query, parseError(t, query, &filter.Config{MaxInputLength: 4}), false)

	assert.Contains(t, result, "Filter parsing error: Filter too long")
	assert.Contains(t, result, "         ^ filter is longer than 4 bytes")
}

func TestFormatDiagnostic_WithFilterIndex(t *testing.T) {
	t.Parallel()

	queries := []string{"a", "b OR"}

	_, err := filter.ParseAll(queries, nil)
	require.Error(t, err)

	var multiErr *errors.MultiError
	require.ErrorAs(t, err, &multiErr)

	result := filter.FormatDiagnostic(queries[1], multiErr.WrappedErrors()[0], false)

	assert.Contains(t, result, " --> --filter[1] 'b OR'")
	assert.Contains(t, result, "         ^ expected one of")
}

func TestFormatDiagnostic_WithColor(t *testing.T) {
	t.Parallel()

	query := "a AND"
	result := filter.FormatDiagnostic(query, parseError(t, query, nil), true)

	assert.Contains(t, result, "\033[1m\033[34m --> \033[0m--filter 'a AND'")
	assert.Contains(t, result, "\033[1m\033[31m^\033[0m")
	assert.Contains(t, result, "\033[1m\033[36mhint:\033[0m")
}

func TestFormatDiagnostic_UnpositionedError(t *testing.T) {
	t.Parallel()

	result := filter.FormatDiagnostic("a", errors.New("boom"), false)
	assert.Equal(t, "Filter parsing error: boom\n", result)
}
