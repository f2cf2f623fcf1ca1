package filter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gruntwork-io/listfilter/internal/errors"
)

// ANSI escape codes for colored output.
const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiRed   = "\033[31m"
	ansiBlue  = "\033[34m"
	ansiCyan  = "\033[36m"
)

var errorTitles = map[ErrorCode]string{
	ErrorCodeUnknown:            "Invalid filter",
	ErrorCodeInputTooLong:       "Filter too long",
	ErrorCodeIllegalCharacter:   "Illegal character",
	ErrorCodeUnterminatedString: "Unterminated string",
	ErrorCodeInvalidLiteral:     "Invalid literal",
	ErrorCodeUnexpectedToken:    "Unexpected token",
	ErrorCodeUnexpectedEOF:      "Unexpected end of filter",
	ErrorCodeMaxDepthExceeded:   "Nesting too deep",
	ErrorCodeUnknownFunction:    "Unknown function",
}

// FormatDiagnostic produces a Rust-style error message for an error returned by Parse, with a
// caret under the offending position. Errors from ParseAll are labelled with their index.
func FormatDiagnostic(query string, err error, useColor bool) string {
	var sb strings.Builder

	positioned, ok := AsPositionedError(err)
	if !ok {
		fmt.Fprintf(&sb, "Filter parsing error: %v\n", err)

		return sb.String()
	}

	// Line 1: Error header with high-level title
	fmt.Fprintf(&sb, "Filter parsing error: %s\n", errorTitles[positioned.Code()])

	// Line 2: Location arrow
	var arrow string
	if useColor {
		arrow = fmt.Sprintf("%s%s --> %s", ansiBold, ansiBlue, ansiReset)
	} else {
		arrow = " --> "
	}

	var queryErr QueryError
	if errors.As(err, &queryErr) {
		fmt.Fprintf(&sb, "%s--filter[%d] '%s'\n", arrow, queryErr.Index, query)
	} else {
		fmt.Fprintf(&sb, "%s--filter '%s'\n", arrow, query)
	}

	sb.WriteString("\n")

	// Line 4: The query with indentation
	indent := "     "
	fmt.Fprintf(&sb, "%s%s\n", indent, query)

	// Line 5: Caret under the offending character
	spaces := strings.Repeat(" ", caretColumn(query, positioned.Pos()))
	detail := " " + diagnosticMessage(positioned)

	if useColor {
		fmt.Fprintf(&sb, "%s%s%s%s^%s%s\n", indent, spaces, ansiBold, ansiRed, ansiReset, detail)
	} else {
		fmt.Fprintf(&sb, "%s%s^%s\n", indent, spaces, detail)
	}

	if hint := GetHint(err); hint != "" {
		sb.WriteString("\n")

		if useColor {
			fmt.Fprintf(&sb, "  %s%shint:%s %s\n", ansiBold, ansiCyan, ansiReset, hint)
		} else {
			fmt.Fprintf(&sb, "  hint: %s\n", hint)
		}
	}

	return sb.String()
}

// caretColumn converts a byte offset into the number of characters before it.
func caretColumn(query string, position int) int {
	if position > len(query) {
		position = len(query)
	}

	if position < 0 {
		position = 0
	}

	return utf8.RuneCountInString(query[:position])
}

// diagnosticMessage is the short message printed next to the caret.
func diagnosticMessage(err PositionedError) string {
	switch e := err.(type) {
	case LexError:
		return e.Message
	case SyntaxError:
		if e.Found == EOF {
			return fmt.Sprintf("expected one of [%s], found end of filter", e.Expected)
		}

		return fmt.Sprintf("unexpected %q, expected one of [%s]", e.Literal, e.Expected)
	case MaxDepthExceededError:
		return fmt.Sprintf("nesting exceeds the maximum depth of %d", e.MaxDepth)
	case UnknownFunctionError:
		return fmt.Sprintf("function %q is not allowed", e.Name)
	case InputTooLongError:
		return fmt.Sprintf("filter is longer than %d bytes", e.Max)
	default:
		return err.Error()
	}
}
