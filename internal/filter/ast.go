package filter

import (
	"strings"
	"time"
)

// Node is the interface that all AST nodes implement.
type Node interface {
	// Pos returns the byte offset of the node's first token in the filter.
	Pos() int
	// String returns the canonical text of the node. Parsing it again yields an equal tree.
	String() string
}

// Simple is either a *Restriction or a *Composite.
type Simple interface {
	Node
	simpleNode()
}

// Comparable is either a *Function or a *Member.
type Comparable interface {
	Node
	comparableNode()
}

// Arg is the right hand side of a restriction or a function argument: a *Function, a *Member
// or a *Composite.
type Arg interface {
	Node
	argNode()
}

// Value is a single literal: *IntegerValue, *FloatValue, *BooleanValue, *AsteriskValue,
// *DurationValue, *DateTimeValue, *StringValue or *TextValue.
type Value interface {
	Node
	// Lexeme returns the literal as it was written, quotes included.
	Lexeme() string
	valueNode()
}

// Filter is the root of the tree. A filter with no expressions matches everything. Multiple
// expressions are implicitly conjoined.
type Filter struct {
	Expressions []*Expression
	Position    int
}

func (f *Filter) Pos() int { return f.Position }

func (f *Filter) String() string {
	return joinNodes(f.Expressions, " ")
}

// IsEmpty returns true for a filter that matches everything.
func (f *Filter) IsEmpty() bool {
	return len(f.Expressions) == 0
}

// Expression is one or more sequences joined by explicit AND.
type Expression struct {
	Sequences []*Sequence
	Position  int
}

func (e *Expression) Pos() int { return e.Position }

func (e *Expression) String() string {
	return joinNodes(e.Sequences, " AND ")
}

// Sequence is one or more factors conjoined by adjacency, e.g. `a b`.
type Sequence struct {
	Factors  []*Factor
	Position int
}

func (s *Sequence) Pos() int { return s.Position }

func (s *Sequence) String() string {
	return joinNodes(s.Factors, " ")
}

// Factor is one or more terms joined by explicit OR.
type Factor struct {
	Terms    []*Term
	Position int
}

func (f *Factor) Pos() int { return f.Position }

func (f *Factor) String() string {
	return joinNodes(f.Terms, " OR ")
}

// Negation spellings of a Term.
const (
	NegationNot   = "NOT"
	NegationMinus = "-"
)

// Term is a simple, optionally negated with `NOT` or `-`.
type Term struct {
	Simple   Simple
	Negation string // NegationNot, NegationMinus or empty
	Position int
	Negated  bool
}

func (t *Term) Pos() int { return t.Position }

func (t *Term) String() string {
	switch {
	case !t.Negated:
		return t.Simple.String()
	case t.Negation == NegationMinus:
		return NegationMinus + t.Simple.String()
	default:
		return NegationNot + " " + t.Simple.String()
	}
}

// Restriction compares a comparable with an arg. A global restriction has neither a
// comparator nor an arg.
type Restriction struct {
	Comparable Comparable
	Arg        Arg
	Comparator Comparator
	Position   int
}

func (r *Restriction) simpleNode() {}
func (r *Restriction) Pos() int    { return r.Position }

func (r *Restriction) String() string {
	if r.IsGlobal() {
		return r.Comparable.String()
	}

	if r.Comparator == ComparatorHas {
		return r.Comparable.String() + r.Comparator.String() + r.Arg.String()
	}

	return r.Comparable.String() + " " + r.Comparator.String() + " " + r.Arg.String()
}

// IsGlobal returns true for a restriction without comparator and arg.
func (r *Restriction) IsGlobal() bool {
	return r.Comparator == ComparatorNone
}

// Composite is a parenthesized expression.
type Composite struct {
	Expression *Expression
	Position   int
}

func (c *Composite) simpleNode() {}
func (c *Composite) argNode()    {}
func (c *Composite) Pos() int    { return c.Position }

func (c *Composite) String() string {
	return "(" + c.Expression.String() + ")"
}

// Member is a value followed by zero or more dotted fields, e.g. `m.labels.env`.
type Member struct {
	Value    Value
	Fields   []Value
	Position int
}

func (m *Member) comparableNode() {}
func (m *Member) argNode()        {}
func (m *Member) Pos() int        { return m.Position }

// String joins the value and fields with `.`. An integer followed by `.` and a digit would lex
// back as a float or duration, so such a field is printed as `1 .5`.
func (m *Member) String() string {
	var sb strings.Builder

	prev := m.Value.String()
	sb.WriteString(prev)

	for _, field := range m.Fields {
		next := field.String()

		if isInteger(prev) && startsWithDigit(next) {
			sb.WriteByte(' ')
		}

		sb.WriteByte('.')
		sb.WriteString(next)

		prev = next
	}

	return sb.String()
}

// isInteger returns true for an optionally negative run of digits.
func isInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")

	return s != "" && matchDigits(s) == len(s)
}

func startsWithDigit(s string) bool {
	return s != "" && isDigit(s[0])
}

// Path returns the lexemes of the value and fields.
func (m *Member) Path() []string {
	path := make([]string, 0, len(m.Fields)+1)
	path = append(path, m.Value.Lexeme())

	for _, field := range m.Fields {
		path = append(path, field.Lexeme())
	}

	return path
}

// Function is a call of a dot-qualified name, e.g. `geo.distance(a, b)`.
type Function struct {
	Name     []string
	Args     []Arg
	Position int
}

func (f *Function) comparableNode() {}
func (f *Function) argNode()        {}
func (f *Function) Pos() int        { return f.Position }

func (f *Function) String() string {
	return f.QualifiedName() + "(" + joinNodes(f.Args, ", ") + ")"
}

// QualifiedName returns the name segments joined with `.`.
func (f *Function) QualifiedName() string {
	return strings.Join(f.Name, ".")
}

// IntegerValue is an integer literal.
type IntegerValue struct {
	Raw      string
	Value    int64
	Position int
}

// FloatValue is a floating point literal.
type FloatValue struct {
	Raw      string
	Value    float64
	Position int
}

// BooleanValue is `true` or `false`.
type BooleanValue struct {
	Raw      string
	Position int
	Value    bool
}

// AsteriskValue is the bare wildcard `*`.
type AsteriskValue struct {
	Position int
}

// DurationValue is a number of seconds, e.g. `20s` or `1.5s`.
type DurationValue struct {
	Raw      string
	Seconds  float64
	Position int
}

// Duration returns the value as a time.Duration.
func (v *DurationValue) Duration() time.Duration {
	return time.Duration(v.Seconds * float64(time.Second))
}

// DateTimeValue is an RFC 3339 timestamp, optionally quoted.
type DateTimeValue struct {
	Time     time.Time
	Raw      string
	Position int
	Quoted   bool
}

// StringValue is a quoted literal. Value has the quotes and wildcard markers removed and the
// escapes resolved.
type StringValue struct {
	Raw            string
	Value          string
	Position       int
	PrefixWildcard bool
	SuffixWildcard bool
}

// TextValue is a bare word. Reserved words in field positions are also text.
type TextValue struct {
	Value    string
	Position int
}

func (v *IntegerValue) Pos() int       { return v.Position }
func (v *IntegerValue) String() string { return v.Raw }
func (v *IntegerValue) Lexeme() string { return v.Raw }
func (v *IntegerValue) valueNode()     {}

func (v *FloatValue) Pos() int       { return v.Position }
func (v *FloatValue) String() string { return v.Raw }
func (v *FloatValue) Lexeme() string { return v.Raw }
func (v *FloatValue) valueNode()     {}

func (v *BooleanValue) Pos() int       { return v.Position }
func (v *BooleanValue) String() string { return v.Raw }
func (v *BooleanValue) Lexeme() string { return v.Raw }
func (v *BooleanValue) valueNode()     {}

func (v *AsteriskValue) Pos() int       { return v.Position }
func (v *AsteriskValue) String() string { return "*" }
func (v *AsteriskValue) Lexeme() string { return "*" }
func (v *AsteriskValue) valueNode()     {}

func (v *DurationValue) Pos() int       { return v.Position }
func (v *DurationValue) String() string { return v.Raw }
func (v *DurationValue) Lexeme() string { return v.Raw }
func (v *DurationValue) valueNode()     {}

func (v *DateTimeValue) Pos() int       { return v.Position }
func (v *DateTimeValue) String() string { return v.Raw }
func (v *DateTimeValue) Lexeme() string { return v.Raw }
func (v *DateTimeValue) valueNode()     {}

func (v *StringValue) Pos() int       { return v.Position }
func (v *StringValue) String() string { return v.Raw }
func (v *StringValue) Lexeme() string { return v.Raw }
func (v *StringValue) valueNode()     {}

func (v *TextValue) Pos() int       { return v.Position }
func (v *TextValue) String() string { return v.Value }
func (v *TextValue) Lexeme() string { return v.Value }
func (v *TextValue) valueNode()     {}

// Comparator is the operator of a restriction.
type Comparator int

const (
	// ComparatorNone marks a global restriction.
	ComparatorNone Comparator = iota
	ComparatorLessEquals
	ComparatorLessThan
	ComparatorGreaterEquals
	ComparatorGreaterThan
	ComparatorNotEquals
	ComparatorEquals
	ComparatorHas
)

var comparatorSymbols = map[Comparator]string{
	ComparatorNone:          "",
	ComparatorLessEquals:    "<=",
	ComparatorLessThan:      "<",
	ComparatorGreaterEquals: ">=",
	ComparatorGreaterThan:   ">",
	ComparatorNotEquals:     "!=",
	ComparatorEquals:        "=",
	ComparatorHas:           ":",
}

var comparatorTokens = map[TokenType]Comparator{
	LESS_EQUALS:    ComparatorLessEquals,
	LESS_THAN:      ComparatorLessThan,
	GREATER_EQUALS: ComparatorGreaterEquals,
	GREATER_THAN:   ComparatorGreaterThan,
	NOT_EQUALS:     ComparatorNotEquals,
	EQUALS:         ComparatorEquals,
	HAS:            ComparatorHas,
}

// String returns the comparator symbol.
func (c Comparator) String() string {
	return comparatorSymbols[c]
}

// ComparatorFromToken returns the comparator for a comparator token type.
func ComparatorFromToken(t TokenType) (Comparator, bool) {
	c, ok := comparatorTokens[t]
	return c, ok
}

func joinNodes[T Node](nodes []T, sep string) string {
	parts := make([]string, len(nodes))

	for i, node := range nodes {
		parts[i] = node.String()
	}

	return strings.Join(parts, sep)
}
