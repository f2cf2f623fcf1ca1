package filter

import (
	"fmt"

	"github.com/gruntwork-io/listfilter/internal/errors"
)

// ErrorCode categorizes errors for hint lookup.
type ErrorCode int

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodeInputTooLong
	ErrorCodeIllegalCharacter
	ErrorCodeUnterminatedString
	ErrorCodeInvalidLiteral
	ErrorCodeUnexpectedToken
	ErrorCodeUnexpectedEOF
	ErrorCodeMaxDepthExceeded
	ErrorCodeUnknownFunction
)

// PositionedError is implemented by every error this package returns for a bad filter.
type PositionedError interface {
	error
	// Pos returns the byte offset in the filter the error refers to.
	Pos() int
	// Code returns the category of the error.
	Code() ErrorCode
}

var (
	_ PositionedError = InputTooLongError{}
	_ PositionedError = LexError{}
	_ PositionedError = SyntaxError{}
	_ PositionedError = MaxDepthExceededError{}
	_ PositionedError = UnknownFunctionError{}
)

// InputTooLongError is returned, before lexing, for input longer than the configured maximum.
type InputTooLongError struct {
	Length int
	Max    int
}

// NewInputTooLongError creates a new InputTooLongError.
func NewInputTooLongError(length, maxLength int) error {
	return errors.New(InputTooLongError{Length: length, Max: maxLength})
}

func (e InputTooLongError) Error() string {
	return fmt.Sprintf("filter is %d bytes long, exceeding the maximum of %d bytes", e.Length, e.Max)
}

// Pos returns the offset of the first byte past the allowed length.
func (e InputTooLongError) Pos() int        { return e.Max }
func (e InputTooLongError) Code() ErrorCode { return ErrorCodeInputTooLong }

// LexError is returned for an unterminated quoted literal, a character outside all token
// classes, or a literal whose value cannot be represented.
type LexError struct {
	Message   string
	Literal   string
	Position  int
	ErrorCode ErrorCode
}

// NewLexError creates a new LexError.
func NewLexError(code ErrorCode, message, literal string, position int) error {
	return errors.New(LexError{
		Message:   message,
		Literal:   literal,
		Position:  position,
		ErrorCode: code,
	})
}

func (e LexError) Error() string {
	return fmt.Sprintf("lex error at position %d: %s", e.Position, e.Message)
}

func (e LexError) Pos() int        { return e.Position }
func (e LexError) Code() ErrorCode { return e.ErrorCode }

// SyntaxError is returned when the token stream does not match the grammar. Found is EOF for
// truncated input.
type SyntaxError struct {
	Literal  string
	Expected TokenTypes
	Position int
	Found    TokenType
}

// NewSyntaxError creates a new SyntaxError for the unexpected token.
func NewSyntaxError(found Token, expected ...TokenType) error {
	return errors.New(SyntaxError{
		Literal:  found.Literal,
		Expected: expected,
		Position: found.Position,
		Found:    found.Type,
	})
}

func (e SyntaxError) Error() string {
	found := e.Found.String()
	if e.Found != EOF {
		found = fmt.Sprintf("%s %q", found, e.Literal)
	}

	return fmt.Sprintf("syntax error at position %d: expected one of [%s], found %s", e.Position, e.Expected, found)
}

func (e SyntaxError) Pos() int { return e.Position }

func (e SyntaxError) Code() ErrorCode {
	if e.Found == EOF {
		return ErrorCodeUnexpectedEOF
	}

	return ErrorCodeUnexpectedToken
}

// MaxDepthExceededError is returned when parenthesized or function argument nesting goes
// deeper than the configured maximum.
type MaxDepthExceededError struct {
	Position int
	MaxDepth int
}

// NewMaxDepthExceededError creates a new MaxDepthExceededError.
func NewMaxDepthExceededError(position, maxDepth int) error {
	return errors.New(MaxDepthExceededError{Position: position, MaxDepth: maxDepth})
}

func (e MaxDepthExceededError) Error() string {
	return fmt.Sprintf("nesting at position %d exceeds the maximum depth of %d", e.Position, e.MaxDepth)
}

func (e MaxDepthExceededError) Pos() int        { return e.Position }
func (e MaxDepthExceededError) Code() ErrorCode { return ErrorCodeMaxDepthExceeded }

// UnknownFunctionError is returned when a function allowlist is configured and a called
// function is not on it.
type UnknownFunctionError struct {
	Name     string
	Position int
}

// NewUnknownFunctionError creates a new UnknownFunctionError.
func NewUnknownFunctionError(name string, position int) error {
	return errors.New(UnknownFunctionError{Name: name, Position: position})
}

func (e UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function %q at position %d", e.Name, e.Position)
}

func (e UnknownFunctionError) Pos() int        { return e.Position }
func (e UnknownFunctionError) Code() ErrorCode { return ErrorCodeUnknownFunction }

// InvalidConfigError is returned when a Config cannot be used, e.g. for a malformed
// allowlist pattern.
type InvalidConfigError struct {
	Cause   error
	Message string
}

func (e InvalidConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid filter config: %s: %v", e.Message, e.Cause)
	}

	return "invalid filter config: " + e.Message
}

func (e InvalidConfigError) Unwrap() error {
	return e.Cause
}

// AsPositionedError returns the PositionedError in err's tree, if there is one.
func AsPositionedError(err error) (PositionedError, bool) {
	var positioned PositionedError
	if errors.As(err, &positioned) {
		return positioned, true
	}

	return nil, false
}

// QueryError attaches the query and its index to an error returned by ParseAll.
type QueryError struct {
	Err   error
	Query string
	Index int
}

func (e QueryError) Error() string {
	return fmt.Sprintf("filter[%d] %q: %v", e.Index, e.Query, e.Err)
}

func (e QueryError) Unwrap() error {
	return e.Err
}
