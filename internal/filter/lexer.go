package filter

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// dateTimePattern matches `YYYY-MM-DDTHH:MM:SS[.fraction](Z|±HH:MM)` at the start of the input.
var dateTimePattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}:[0-9]{2}(\.[0-9]+)?(Z|[+-][0-9]{2}:[0-9]{2})`)

// lexRule classifies an unquoted literal. match returns the length in bytes of the longest
// prefix of input the rule accepts, or 0.
type lexRule struct {
	match     func(input string) int
	tokenType TokenType
}

// lexRules are ordered by priority. The longest match wins; on equal length the rule listed
// first wins, which is how `true` becomes BOOLEAN and `NOT` a keyword rather than TEXT, and
// how `20s` becomes DURATION rather than TEXT.
var lexRules = []lexRule{
	{tokenType: DATETIME, match: matchDateTime},
	{tokenType: DURATION, match: matchDuration},
	{tokenType: FLOAT, match: matchFloat},
	{tokenType: INTEGER, match: matchDigits},
	{tokenType: BOOLEAN, match: matchWord("true", "false")},
	{tokenType: NOT, match: matchWord("NOT")},
	{tokenType: AND, match: matchWord("AND")},
	{tokenType: OR, match: matchWord("OR")},
	{tokenType: TEXT, match: matchText},
}

// Lexer tokenizes a filter string.
type Lexer struct {
	err      error  // First error encountered; the lexer emits ILLEGAL from then on
	input    string // The input string being tokenized
	position int    // Current position in input (points to current char)
}

// NewLexer creates a new Lexer for the given input string.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize splits the whole input into tokens. The returned slice always ends with an EOF token.
// Lexing stops at the first unrecognized character or unterminated quoted literal, which is
// reported as a LexError.
func Tokenize(input string) ([]Token, error) {
	lexer := NewLexer(input)

	var tokens []Token

	for {
		tok := lexer.NextToken()

		if tok.Type == ILLEGAL {
			return nil, lexer.Err()
		}

		tokens = append(tokens, tok)

		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

// Err returns the error that stopped the lexer, if any.
func (l *Lexer) Err() error {
	return l.err
}

// NextToken reads and returns the next token from the input.
func (l *Lexer) NextToken() Token {
	if l.err != nil {
		return NewToken(ILLEGAL, "", l.position)
	}

	l.skipWhitespace()

	startPosition := l.position

	if l.position >= len(l.input) {
		return NewToken(EOF, "", startPosition)
	}

	switch ch := l.input[l.position]; ch {
	case '.':
		return l.fixed(DOT, 1)
	case '(':
		return l.fixed(LPAREN, 1)
	case ')':
		return l.fixed(RPAREN, 1)
	case ',':
		return l.fixed(COMMA, 1)
	case '-':
		return l.fixed(MINUS, 1)
	case '*':
		return l.fixed(ASTERISK, 1)
	case '=':
		return l.fixed(EQUALS, 1)
	case ':':
		return l.fixed(HAS, 1)
	case '<':
		if l.peekChar() == '=' {
			return l.fixed(LESS_EQUALS, 2) //nolint:mnd
		}

		return l.fixed(LESS_THAN, 1)
	case '>':
		if l.peekChar() == '=' {
			return l.fixed(GREATER_EQUALS, 2) //nolint:mnd
		}

		return l.fixed(GREATER_THAN, 1)
	case '!':
		if l.peekChar() == '=' {
			return l.fixed(NOT_EQUALS, 2) //nolint:mnd
		}

		return l.illegal(ErrorCodeIllegalCharacter, "unexpected character '!', did you mean '!='?", "!")
	case '"', '\'':
		return l.readQuoted(ch)
	default:
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		if isWordChar(r) {
			return l.readLiteral()
		}

		return l.illegal(ErrorCodeIllegalCharacter, fmt.Sprintf("unexpected character %q", r), l.input[l.position:l.position+size])
	}
}

// fixed emits a token of the given length starting at the current position.
func (l *Lexer) fixed(tokenType TokenType, length int) Token {
	tok := NewToken(tokenType, l.input[l.position:l.position+length], l.position)
	l.position += length

	return tok
}

// illegal records a LexError at the current position and returns an ILLEGAL token.
func (l *Lexer) illegal(code ErrorCode, message, literal string) Token {
	l.err = NewLexError(code, message, literal, l.position)

	return NewToken(ILLEGAL, literal, l.position)
}

// peekChar returns the character after the current one without advancing the position.
func (l *Lexer) peekChar() byte {
	if l.position+1 >= len(l.input) {
		return 0
	}

	return l.input[l.position+1]
}

// skipWhitespace skips over whitespace characters.
func (l *Lexer) skipWhitespace() {
	for l.position < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		if !unicode.IsSpace(r) {
			return
		}

		l.position += size
	}
}

// readLiteral classifies the unquoted literal at the current position using lexRules.
func (l *Lexer) readLiteral() Token {
	rest := l.input[l.position:]

	bestType, bestLength := ILLEGAL, 0

	for _, rule := range lexRules {
		if length := rule.match(rest); length > bestLength {
			bestType, bestLength = rule.tokenType, length
		}
	}

	return l.fixed(bestType, bestLength)
}

// readQuoted reads a quoted literal. Backslash escapes the next character. The literal is
// DATETIME if its content is exactly a timestamp, STRING otherwise.
func (l *Lexer) readQuoted(quote byte) Token {
	startPosition := l.position

	for i := startPosition + 1; i < len(l.input); i++ {
		switch l.input[i] {
		case '\\':
			i++
		case quote:
			literal := l.input[startPosition : i+1]
			l.position = i + 1

			if content := literal[1 : len(literal)-1]; matchDateTime(content) == len(content) && content != "" {
				return NewToken(DATETIME, literal, startPosition)
			}

			return NewToken(STRING, literal, startPosition)
		}
	}

	return l.illegal(ErrorCodeUnterminatedString, "unterminated quoted literal", l.input[startPosition:])
}

// isWordChar returns true if the character can be part of a TEXT literal.
func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func matchDateTime(input string) int {
	if loc := dateTimePattern.FindStringIndex(input); loc != nil {
		return loc[1]
	}

	return 0
}

// matchDigits matches `[0-9]+`.
func matchDigits(input string) int {
	n := 0
	for n < len(input) && isDigit(input[n]) {
		n++
	}

	return n
}

// matchFloat matches `[0-9]+\.[0-9]+`.
func matchFloat(input string) int {
	whole := matchDigits(input)
	if whole == 0 || whole >= len(input) || input[whole] != '.' {
		return 0
	}

	fraction := matchDigits(input[whole+1:])
	if fraction == 0 {
		return 0
	}

	return whole + 1 + fraction
}

// matchDuration matches `[0-9]+(\.[0-9]+)?s`.
func matchDuration(input string) int {
	n := matchFloat(input)
	if n == 0 {
		n = matchDigits(input)
	}

	if n == 0 || n >= len(input) || input[n] != 's' {
		return 0
	}

	return n + 1
}

// matchText matches a run of letters, digits and underscores.
func matchText(input string) int {
	n := 0

	for n < len(input) {
		r, size := utf8.DecodeRuneInString(input[n:])
		if !isWordChar(r) {
			break
		}

		n += size
	}

	return n
}

// matchWord returns a matcher accepting one of the given case-sensitive words as a prefix.
func matchWord(words ...string) func(string) int {
	return func(input string) int {
		for _, word := range words {
			if strings.HasPrefix(input, word) {
				return len(word)
			}
		}

		return 0
	}
}
