package filter_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gruntwork-io/listfilter/internal/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "", expected: ""},
		{input: "prod", expected: "prod"},
		{input: "package=com.google AND NOT retries<10", expected: "package = com.google AND NOT retries < 10"},
		{input: "a   b OR c", expected: "a b OR c"},
		{input: "(a OR b)   c", expected: "(a OR b) c"},
		{input: "-( a OR b )", expected: "-(a OR b)"},
		{input: "NOT(a OR b)", expected: "NOT (a OR b)"},
		{input: "regex(m.key,'^.*prod.*$')", expected: "regex(m.key, '^.*prod.*$')"},
		{input: "geo.distance( a , b )<100", expected: "geo.distance(a, b) < 100"},
		{input: "labels : env", expected: "labels:env"},
		{input: "labels:*", expected: "labels:*"},
		{input: `name="*-prod"`, expected: `name = "*-prod"`},
		{input: "t>-1.5", expected: "t > -1.5"},
		{input: "ts>=2012-04-21T11:30:00Z", expected: "ts >= 2012-04-21T11:30:00Z"},
		{input: `ts>="2012-04-21T11:30:00Z"`, expected: `ts >= "2012-04-21T11:30:00Z"`},
		{input: "d<20s", expected: "d < 20s"},
		{input: "a.AND.OR", expected: "a.AND.OR"},
		{input: "f(g(h(x)))", expected: "f(g(h(x)))"},
		{input: "a (b)", expected: "a(b)"},
		{input: "regex (m.key)", expected: "regex(m.key)"},
		{input: "a=(b OR c)", expected: "a = (b OR c)"},
		{input: "x != true", expected: "x != true"},
		{input: "a<=1 b>=2", expected: "a <= 1 b >= 2"},
		{input: "now()", expected: "now()"},
		{input: "x = 1 .5", expected: "x = 1 .5"},
		{input: "x = a.1 .5s", expected: "x = a.1 .5s"},
		{input: "x = v1.5", expected: "x = v1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			f, err := filter.Parse(tt.input, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f.String())
		})
	}
}

func TestNode_StringRoundTrip(t *testing.T) {
	t.Parallel()

	queries := []string{
		"",
		"package=com.google AND NOT retries < 10",
		"a b OR c",
		"a AND b c OR -d AND (e OR f)",
		"NOT (a OR b)",
		"-(a OR b)",
		"regex(m.key, '^.*prod.*$')",
		"geo.distance(a,b) < 100 OR geo.OR(x)",
		`name = "*prod*" AND owner:'\'quoted\''`,
		"t > -1.5 AND d <= -20s AND n = -3",
		"ts >= 2012-04-21T11:30:00.25+02:00",
		"a.b.c.1.true.* : *",
		"(((a)))",
		"f((a OR b), -1, \"x\")",
		"a (b) c(d)",
		"x.y.AND = z.NOT",
		"x = 1 .5",
		"x = -1 .2 .5abc",
		"t.2012 .04 = 1.5 .2",
	}

	for _, query := range queries {
		t.Run(query, func(t *testing.T) {
			t.Parallel()

			first, err := filter.Parse(query, nil)
			require.NoError(t, err)

			canonical := first.String()

			second, err := filter.Parse(canonical, nil)
			require.NoError(t, err, "canonical form %q does not parse", canonical)

			if diff := cmp.Diff(first, second, ignorePositions); diff != "" {
				t.Errorf("round trip of %q through %q changed the tree (-first +second):\n%s", query, canonical, diff)
			}

			assert.Equal(t, canonical, second.String())
		})
	}
}

func TestComparator_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tokenType filter.TokenType
		expected  string
	}{
		{tokenType: filter.LESS_EQUALS, expected: "<="},
		{tokenType: filter.LESS_THAN, expected: "<"},
		{tokenType: filter.GREATER_EQUALS, expected: ">="},
		{tokenType: filter.GREATER_THAN, expected: ">"},
		{tokenType: filter.NOT_EQUALS, expected: "!="},
		{tokenType: filter.EQUALS, expected: "="},
		{tokenType: filter.HAS, expected: ":"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			comparator, ok := filter.ComparatorFromToken(tt.tokenType)
			require.True(t, ok)
			assert.Equal(t, tt.expected, comparator.String())
		})
	}

	_, ok := filter.ComparatorFromToken(filter.TEXT)
	assert.False(t, ok)
	assert.Empty(t, filter.ComparatorNone.String())
}

func TestMember_Path(t *testing.T) {
	t.Parallel()

	f, err := filter.Parse(`labels."team name".OR`, nil)
	require.NoError(t, err)

	m := f.Expressions[0].Sequences[0].Factors[0].Terms[0].Simple.(*filter.Restriction).Comparable.(*filter.Member)
	assert.Equal(t, []string{"labels", `"team name"`, "OR"}, m.Path())
}

func TestRestriction_IsGlobal(t *testing.T) {
	t.Parallel()

	f, err := filter.Parse("a b = c", nil)
	require.NoError(t, err)

	factors := f.Expressions[0].Sequences[0].Factors
	assert.True(t, factors[0].Terms[0].Simple.(*filter.Restriction).IsGlobal())
	assert.False(t, factors[1].Terms[0].Simple.(*filter.Restriction).IsGlobal())
}

func TestWalk(t *testing.T) {
	t.Parallel()

	f, err := filter.Parse("a.b = 1 OR NOT f(x, (y))", nil)
	require.NoError(t, err)

	var visited []string

	filter.Walk(f, func(node filter.Node) bool {
		visited = append(visited, fmt.Sprintf("%T %s", node, node))
		return true
	})

	assert.Equal(t, []string{
		"*filter.Filter a.b = 1 OR NOT f(x, (y))",
		"*filter.Expression a.b = 1 OR NOT f(x, (y))",
		"*filter.Sequence a.b = 1 OR NOT f(x, (y))",
		"*filter.Factor a.b = 1 OR NOT f(x, (y))",
		"*filter.Term a.b = 1",
		"*filter.Restriction a.b = 1",
		"*filter.Member a.b",
		"*filter.TextValue a",
		"*filter.TextValue b",
		"*filter.Member 1",
		"*filter.IntegerValue 1",
		"*filter.Term NOT f(x, (y))",
		"*filter.Restriction f(x, (y))",
		"*filter.Function f(x, (y))",
		"*filter.Member x",
		"*filter.TextValue x",
		"*filter.Composite (y)",
		"*filter.Expression y",
		"*filter.Sequence y",
		"*filter.Factor y",
		"*filter.Term y",
		"*filter.Restriction y",
		"*filter.Member y",
		"*filter.TextValue y",
	}, visited)
}

func TestWalk_SkipsChildren(t *testing.T) {
	t.Parallel()

	f, err := filter.Parse("f(g(x)) AND h(y)", nil)
	require.NoError(t, err)

	var functions []string

	filter.Walk(f, func(node filter.Node) bool {
		fn, ok := node.(*filter.Function)
		if !ok {
			return true
		}

		functions = append(functions, fn.QualifiedName())

		return false
	})

	assert.Equal(t, []string{"f", "h"}, functions)
}

func TestFilter_Functions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected []string
	}{
		{input: "a = b", expected: nil},
		{input: "f(g(x)) AND h(y)", expected: []string{"f", "g", "h"}},
		{input: "geo.distance(a, b) < 1 OR a = (regex(c, 'd'))", expected: []string{"geo.distance", "regex"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			f, err := filter.Parse(tt.input, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f.Functions())
		})
	}
}

func TestChildren(t *testing.T) {
	t.Parallel()

	f, err := filter.Parse("a.b = f(1, c) d", nil)
	require.NoError(t, err)

	sequence := f.Expressions[0].Sequences[0]
	restriction := sequence.Factors[0].Terms[0].Simple.(*filter.Restriction)
	global := sequence.Factors[1].Terms[0].Simple.(*filter.Restriction)

	var texts []string
	for _, child := range filter.Children(restriction) {
		texts = append(texts, child.String())
	}

	assert.Equal(t, []string{"a.b", "f(1, c)"}, texts)
	assert.Len(t, filter.Children(global), 1, "a global restriction has no arg")
	assert.Len(t, filter.Children(sequence), 2)
	assert.Empty(t, filter.Children(&filter.IntegerValue{Raw: "1", Value: 1}))
}
