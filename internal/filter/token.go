package filter

import "strings"

// TokenType represents the type of a token.
type TokenType int

const (
	// ILLEGAL is emitted for input the lexer cannot classify; the lexer stops there.
	ILLEGAL TokenType = iota
	EOF

	// Literals
	TEXT     // bare word: foo, com, retries
	STRING   // quoted: "foo", 'bar*'
	DATETIME // 2012-04-21T11:30:00-04:00, optionally quoted
	DURATION // 20s, 1.5s
	FLOAT    // 3.14
	INTEGER  // 42
	BOOLEAN  // true, false
	ASTERISK // *

	// Keywords
	NOT
	AND
	OR

	// Punctuation
	DOT    // .
	LPAREN // (
	RPAREN // )
	COMMA  // ,
	MINUS  // -

	// Comparators
	LESS_EQUALS    // <=
	LESS_THAN      // <
	GREATER_EQUALS // >=
	GREATER_THAN   // >
	NOT_EQUALS     // !=
	EQUALS         // =
	HAS            // :
)

var tokenTypeNames = map[TokenType]string{
	ILLEGAL:        "ILLEGAL",
	EOF:            "EOF",
	TEXT:           "TEXT",
	STRING:         "STRING",
	DATETIME:       "DATETIME",
	DURATION:       "DURATION",
	FLOAT:          "FLOAT",
	INTEGER:        "INTEGER",
	BOOLEAN:        "BOOLEAN",
	ASTERISK:       "ASTERISK",
	NOT:            "NOT",
	AND:            "AND",
	OR:             "OR",
	DOT:            "DOT",
	LPAREN:         "LPAREN",
	RPAREN:         "RPAREN",
	COMMA:          "COMMA",
	MINUS:          "MINUS",
	LESS_EQUALS:    "LESS_EQUALS",
	LESS_THAN:      "LESS_THAN",
	GREATER_EQUALS: "GREATER_EQUALS",
	GREATER_THAN:   "GREATER_THAN",
	NOT_EQUALS:     "NOT_EQUALS",
	EQUALS:         "EQUALS",
	HAS:            "HAS",
}

// String returns the name of the token type.
func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}

	return "UNKNOWN"
}

// IsValue returns true for the literal token types that can form a Value.
func (t TokenType) IsValue() bool {
	return t >= TEXT && t <= ASTERISK
}

// IsKeyword returns true for the reserved words NOT, AND and OR.
func (t TokenType) IsKeyword() bool {
	return t == NOT || t == AND || t == OR
}

// IsComparator returns true for the comparator tokens.
func (t TokenType) IsComparator() bool {
	return t >= LESS_EQUALS && t <= HAS
}

// TokenTypes is an ordered set of token types, used to report what the parser expected.
type TokenTypes []TokenType

func (types TokenTypes) String() string {
	names := make([]string, len(types))

	for i, t := range types {
		names[i] = t.String()
	}

	return strings.Join(names, ", ")
}

// Contains returns true if the set holds t.
func (types TokenTypes) Contains(t TokenType) bool {
	for _, typ := range types {
		if typ == t {
			return true
		}
	}

	return false
}

// Token represents a lexical token.
type Token struct {
	Literal  string    // The raw lexeme, including quotes for STRING
	Type     TokenType // The token type
	Position int       // Byte offset of the token in the input
	Length   int       // Length of the lexeme in bytes
}

// NewToken creates a new token spanning the given literal.
func NewToken(tokenType TokenType, literal string, position int) Token {
	return Token{
		Type:     tokenType,
		Literal:  literal,
		Position: position,
		Length:   len(literal),
	}
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Position + t.Length
}
