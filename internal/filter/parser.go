package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gruntwork-io/listfilter/internal/errors"
)

var (
	// valueTypes are the tokens that start a comparable.
	valueTypes = TokenTypes{TEXT, STRING, DATETIME, DURATION, FLOAT, INTEGER, BOOLEAN, ASTERISK}

	// simpleStartTypes are the tokens that start a restriction or composite.
	simpleStartTypes = append(TokenTypes{LPAREN}, valueTypes...)

	// termStartTypes are the tokens that start a term.
	termStartTypes = append(TokenTypes{NOT, MINUS}, simpleStartTypes...)

	// fieldTypes are the tokens allowed after a `.` in a member or function name.
	fieldTypes = append(TokenTypes{NOT, AND, OR}, valueTypes...)
)

// Parser builds a Filter from a token stream using recursive descent, one method per
// grammar rule.
//
//	filter      : expression*
//	expression  : sequence (AND sequence)*
//	sequence    : factor factor*
//	factor      : term (OR term)*
//	term        : [NOT | -] simple
//	simple      : restriction | composite
//	restriction : comparable [comparator arg]
//	composite   : ( expression )
//	comparable  : function | member
//	member      : value (. field)*
//	function    : name (. name)* ( [arg (, arg)*] )
//	arg         : comparable | composite
type Parser struct {
	config    *Config
	tokens    []Token
	curToken  Token
	peekToken Token
	index     int
	depth     int
}

// NewParser creates a new Parser for the given tokens. A stream that does not end with EOF is
// treated as if it did.
func NewParser(tokens []Token, cfg *Config) *Parser {
	p := &Parser{
		config: cfg,
		tokens: tokens,
		index:  -2, //nolint:mnd
	}

	// Read two tokens to initialize curToken and peekToken
	p.nextToken()
	p.nextToken()

	return p
}

// ParseTokens parses a token stream produced by Tokenize.
func ParseTokens(tokens []Token, cfg *Config) (*Filter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.New(err)
	}

	return NewParser(tokens, cfg).ParseFilter()
}

// ParseFilter parses the whole token stream. The first error aborts the parse.
func (p *Parser) ParseFilter() (*Filter, error) {
	filter := &Filter{Position: p.curToken.Position}

	for p.curToken.Type != EOF {
		if !p.curTokenStartsTerm() {
			if len(filter.Expressions) == 0 {
				return nil, NewSyntaxError(p.curToken, termStartTypes...)
			}

			return nil, NewSyntaxError(p.curToken, AND, OR, EOF)
		}

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		filter.Expressions = append(filter.Expressions, expr)
	}

	return filter, nil
}

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.index++
	p.curToken = p.peekToken
	p.peekToken = p.tokenAt(p.index + 1)
}

func (p *Parser) tokenAt(i int) Token {
	if i < 0 {
		return Token{}
	}

	if i < len(p.tokens) {
		return p.tokens[i]
	}

	end := 0
	if len(p.tokens) > 0 {
		end = p.tokens[len(p.tokens)-1].End()
	}

	return NewToken(EOF, "", end)
}

func (p *Parser) curTokenStartsTerm() bool {
	switch p.curToken.Type {
	case NOT, MINUS, LPAREN:
		return true
	default:
		return p.curToken.Type.IsValue()
	}
}

// expectCur consumes the current token if it has the given type.
func (p *Parser) expectCur(tokenType TokenType, expected ...TokenType) error {
	if p.curToken.Type != tokenType {
		return NewSyntaxError(p.curToken, expected...)
	}

	p.nextToken()

	return nil
}

// enterNesting increments the depth counter for the `(` at position.
func (p *Parser) enterNesting(position int) error {
	p.depth++

	if maxDepth := p.config.maxDepth(); p.depth > maxDepth {
		return NewMaxDepthExceededError(position, maxDepth)
	}

	return nil
}

func (p *Parser) leaveNesting() {
	p.depth--
}

func (p *Parser) parseExpression() (*Expression, error) {
	seq, err := p.parseSequence()
	if err != nil {
		return nil, err
	}

	expr := &Expression{Sequences: []*Sequence{seq}, Position: seq.Position}

	for p.curToken.Type == AND {
		p.nextToken()

		if seq, err = p.parseSequence(); err != nil {
			return nil, err
		}

		expr.Sequences = append(expr.Sequences, seq)
	}

	return expr, nil
}

func (p *Parser) parseSequence() (*Sequence, error) {
	factor, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	seq := &Sequence{Factors: []*Factor{factor}, Position: factor.Position}

	for p.curTokenStartsTerm() {
		if factor, err = p.parseFactor(); err != nil {
			return nil, err
		}

		seq.Factors = append(seq.Factors, factor)
	}

	return seq, nil
}

func (p *Parser) parseFactor() (*Factor, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	factor := &Factor{Terms: []*Term{term}, Position: term.Position}

	for p.curToken.Type == OR {
		p.nextToken()

		if term, err = p.parseTerm(); err != nil {
			return nil, err
		}

		factor.Terms = append(factor.Terms, term)
	}

	return factor, nil
}

func (p *Parser) parseTerm() (*Term, error) {
	term := &Term{Position: p.curToken.Position}

	switch p.curToken.Type {
	case NOT:
		term.Negated, term.Negation = true, NegationNot

		p.nextToken()
	case MINUS:
		term.Negated, term.Negation = true, NegationMinus

		p.nextToken()
	}

	simple, err := p.parseSimple()
	if err != nil {
		return nil, err
	}

	term.Simple = simple

	return term, nil
}

func (p *Parser) parseSimple() (Simple, error) {
	if p.curToken.Type == LPAREN {
		return p.parseComposite()
	}

	if !p.curToken.Type.IsValue() {
		return nil, NewSyntaxError(p.curToken, simpleStartTypes...)
	}

	return p.parseRestriction()
}

func (p *Parser) parseComposite() (*Composite, error) {
	composite := &Composite{Position: p.curToken.Position}

	if err := p.enterNesting(p.curToken.Position); err != nil {
		return nil, err
	}

	p.nextToken()

	if !p.curTokenStartsTerm() {
		return nil, NewSyntaxError(p.curToken, termStartTypes...)
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.expectCur(RPAREN, RPAREN); err != nil {
		return nil, err
	}

	p.leaveNesting()

	composite.Expression = expr

	return composite, nil
}

func (p *Parser) parseRestriction() (*Restriction, error) {
	restriction := &Restriction{Position: p.curToken.Position}

	operand, err := p.parseComparable(false)
	if err != nil {
		return nil, err
	}

	restriction.Comparable = operand

	comparator, ok := ComparatorFromToken(p.curToken.Type)
	if !ok {
		return restriction, nil
	}

	p.nextToken()

	arg, err := p.parseArg()
	if err != nil {
		return nil, err
	}

	restriction.Comparator = comparator
	restriction.Arg = arg

	return restriction, nil
}

func (p *Parser) parseArg() (Arg, error) {
	switch {
	case p.curToken.Type == LPAREN:
		return p.parseComposite()
	case p.curToken.Type.IsValue(), p.curTokenIsNegativeNumber():
		operand, err := p.parseComparable(true)
		if err != nil {
			return nil, err
		}

		return operand.(Arg), nil
	default:
		// A `-` only starts an arg when it is glued to a number, so it is not listed.
		return nil, NewSyntaxError(p.curToken, simpleStartTypes...)
	}
}

// curTokenIsNegativeNumber returns true for a `-` directly followed by a number or duration.
func (p *Parser) curTokenIsNegativeNumber() bool {
	if p.curToken.Type != MINUS || p.peekToken.Position != p.curToken.End() {
		return false
	}

	switch p.peekToken.Type {
	case INTEGER, FLOAT, DURATION:
		return true
	default:
		return false
	}
}

// parseComparable parses a member or a function. A run of names followed by `(` is a
// function. Negative numbers are only folded in arg positions.
func (p *Parser) parseComparable(inArg bool) (Comparable, error) {
	position := p.curToken.Position

	negative := inArg && p.curTokenIsNegativeNumber()
	if negative {
		p.nextToken()
	}

	first := p.curToken
	p.nextToken()

	names := []Token{first}

	for p.curToken.Type == DOT {
		p.nextToken()

		if !fieldTypes.Contains(p.curToken.Type) {
			return nil, NewSyntaxError(p.curToken, fieldTypes...)
		}

		names = append(names, p.curToken)
		p.nextToken()
	}

	if !negative && p.curToken.Type == LPAREN && isFunctionName(names) {
		return p.parseFunction(names)
	}

	value, err := newValue(first, negative)
	if err != nil {
		return nil, err
	}

	member := &Member{Value: value, Position: position}

	for _, tok := range names[1:] {
		field, err := newField(tok)
		if err != nil {
			return nil, err
		}

		member.Fields = append(member.Fields, field)
	}

	return member, nil
}

// isFunctionName returns true if the tokens can name a function: TEXT, followed by TEXT or
// reserved words.
func isFunctionName(names []Token) bool {
	if names[0].Type != TEXT {
		return false
	}

	for _, tok := range names[1:] {
		if tok.Type != TEXT && !tok.Type.IsKeyword() {
			return false
		}
	}

	return true
}

func (p *Parser) parseFunction(names []Token) (*Function, error) {
	function := &Function{Position: names[0].Position}

	for _, tok := range names {
		function.Name = append(function.Name, tok.Literal)
	}

	allowed, err := p.config.IsFunctionAllowed(function.QualifiedName())
	if err != nil {
		return nil, errors.New(err)
	}

	if !allowed {
		return nil, NewUnknownFunctionError(function.QualifiedName(), function.Position)
	}

	if err := p.enterNesting(p.curToken.Position); err != nil {
		return nil, err
	}

	p.nextToken()

	if p.curToken.Type != RPAREN {
		for {
			arg, err := p.parseArg()
			if err != nil {
				return nil, err
			}

			function.Args = append(function.Args, arg)

			if p.curToken.Type != COMMA {
				break
			}

			p.nextToken()
		}
	}

	if err := p.expectCur(RPAREN, COMMA, RPAREN); err != nil {
		return nil, err
	}

	p.leaveNesting()

	return function, nil
}

// newField converts a token after a `.` into a value. Reserved words become text.
func newField(tok Token) (Value, error) {
	if tok.Type.IsKeyword() {
		return &TextValue{Value: tok.Literal, Position: tok.Position}, nil
	}

	return newValue(tok, false)
}

// newValue converts a literal token into a value. A negative value starts at the `-` directly
// before the token.
func newValue(tok Token, negative bool) (Value, error) {
	raw, position := tok.Literal, tok.Position
	if negative {
		raw, position = NegationMinus+raw, position-1
	}

	switch tok.Type {
	case INTEGER:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, NewLexError(ErrorCodeInvalidLiteral, fmt.Sprintf("integer %s is out of range", raw), raw, position)
		}

		return &IntegerValue{Raw: raw, Value: n, Position: position}, nil
	case FLOAT:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, NewLexError(ErrorCodeInvalidLiteral, fmt.Sprintf("number %s is out of range", raw), raw, position)
		}

		return &FloatValue{Raw: raw, Value: f, Position: position}, nil
	case DURATION:
		seconds, err := strconv.ParseFloat(strings.TrimSuffix(raw, "s"), 64)
		if err != nil {
			return nil, NewLexError(ErrorCodeInvalidLiteral, fmt.Sprintf("duration %s is out of range", raw), raw, position)
		}

		return &DurationValue{Raw: raw, Seconds: seconds, Position: position}, nil
	case BOOLEAN:
		return &BooleanValue{Raw: raw, Value: raw == "true", Position: position}, nil
	case ASTERISK:
		return &AsteriskValue{Position: position}, nil
	case DATETIME:
		return newDateTimeValue(raw, position)
	case STRING:
		return newStringValue(raw, position), nil
	case TEXT:
		return &TextValue{Value: raw, Position: position}, nil
	default:
		return nil, NewSyntaxError(tok, valueTypes...)
	}
}

func newDateTimeValue(raw string, position int) (*DateTimeValue, error) {
	content, quoted := raw, isQuote(raw[0])
	if quoted {
		content = raw[1 : len(raw)-1]
	}

	t, err := time.Parse(time.RFC3339Nano, content)
	if err != nil {
		return nil, NewLexError(ErrorCodeInvalidLiteral, fmt.Sprintf("invalid timestamp %s", content), raw, position)
	}

	return &DateTimeValue{Raw: raw, Time: t, Quoted: quoted, Position: position}, nil
}

// newStringValue strips the quotes, records the wildcard markers and resolves escapes.
// A lone `*` is a prefix wildcard.
func newStringValue(raw string, position int) *StringValue {
	content := raw[1 : len(raw)-1]
	value := &StringValue{Raw: raw, Position: position}

	if strings.HasPrefix(content, "*") {
		value.PrefixWildcard = true
		content = content[1:]
	}

	if strings.HasSuffix(content, "*") && !isEscaped(content, len(content)-1) {
		value.SuffixWildcard = true
		content = content[:len(content)-1]
	}

	value.Value = unescape(content)

	return value
}

// isEscaped returns true if the character at i is preceded by an odd number of backslashes.
func isEscaped(s string, i int) bool {
	backslashes := 0

	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		backslashes++
	}

	return backslashes%2 == 1
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			sb.WriteByte(s[i])
			continue
		}

		i++

		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		default:
			sb.WriteByte(s[i])
		}
	}

	return sb.String()
}

func isQuote(ch byte) bool {
	return ch == '"' || ch == '\''
}
