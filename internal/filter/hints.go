package filter

import (
	"fmt"
	"strings"
)

// GetHint returns a single consolidated hint for an error returned by Parse, or an empty string.
func GetHint(err error) string {
	positioned, ok := AsPositionedError(err)
	if !ok {
		return ""
	}

	switch e := positioned.(type) {
	case SyntaxError:
		return getSyntaxHint(e)
	case LexError:
		return getLexHint(e)
	case MaxDepthExceededError:
		return "Remove redundant parentheses or split the filter into several simpler ones."
	case UnknownFunctionError:
		return fmt.Sprintf("Only allowlisted functions can be called. Add %q to the allowed functions if it should be.", e.Name)
	case InputTooLongError:
		return fmt.Sprintf("Shorten the filter to at most %d bytes.", e.Max)
	}

	return ""
}

func getSyntaxHint(err SyntaxError) string {
	switch err.Found {
	case EOF:
		return "The filter is incomplete. Make sure all parentheses are closed and operators have operands."
	case RPAREN:
		return "Unexpected ')' without matching '('."
	case AND, OR:
		return fmt.Sprintf("'%s' needs an operand on both sides. e.g. 'a %s b'", err.Found, err.Found)
	case DOT:
		return "Field names follow a value. e.g. 'labels.env = prod'"
	case COMMA:
		return "Commas separate function arguments. e.g. 'regex(name, \"^prod\")'"
	case MINUS:
		if !err.Expected.Contains(MINUS) {
			return "'-' negates a term, or makes a negative number when the digits follow directly. e.g. '-a' or 't > -10'"
		}
	}

	if err.Found.IsComparator() {
		if err.Expected.Contains(EOF) {
			return "A restriction takes one comparator. Combine restrictions with 'AND' or 'OR'."
		}

		return "Comparators need a field on the left. e.g. 'retries < 10'"
	}

	return ""
}

func getLexHint(err LexError) string {
	switch err.ErrorCode {
	case ErrorCodeUnterminatedString:
		return fmt.Sprintf("Close the quoted value with %s.", err.Literal[:1])
	case ErrorCodeInvalidLiteral:
		if strings.Contains(err.Literal, "T") {
			return "Timestamps use RFC 3339. e.g. '2012-04-21T11:30:00-04:00'"
		}

		return "Numbers must fit in a 64-bit integer or float."
	case ErrorCodeIllegalCharacter:
		switch err.Literal {
		case "!":
			return "Use 'NOT' or '-' to negate a restriction, '!=' to compare."
		case "&", "|":
			return "Use 'AND' and 'OR' to combine restrictions."
		}

		return "Quote values containing special characters. e.g. 'name = \"a/b\"'"
	}

	return ""
}
