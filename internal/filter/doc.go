// Package filter provides a lexer and parser for AIP-160 list filters, the filter strings API
// callers use to select resources, e.g. `package=com.google AND NOT retries < 10`.
//
// # Overview
//
// The package implements the front half of a compiler:
//  1. Lexer: Tokenizes the filter string
//  2. Parser: Builds an immutable Abstract Syntax Tree (AST) from the tokens
//
// What a comparator or a function means against a resource is left to the host, which walks the
// returned tree. The parser only consults the optional function allowlist.
//
// # Filter Syntax
//
// ## Restrictions
//
//	package=com.google          # Member compared with a member
//	retries < 10                # Comparators: < <= > >= = != :
//	labels:env                  # Has operator
//	create_time > 2012-04-21T11:30:00Z
//	timeout >= 20s              # Durations are seconds
//	name = "*-prod"             # Quoted values, with wildcard markers
//	temperature > -10           # Negative numbers as the right hand side
//	prod                        # Global restriction, no comparator
//
// ## Functions
//
//	regex(m.key, '^.*prod.*$')  # Name followed by '('
//	geo.distance(a, b) < 100    # Qualified names
//
// Any run of text names followed by '(' is a call, whitespace in between or not. Wrap a
// grouped expression after a member in an explicit AND to keep them apart: `a AND (b)`.
//
// ## Operators
//
//	a AND b                     # Explicit conjunction
//	a b                         # Conjunction by adjacency (sequence)
//	a OR b                      # Disjunction
//	NOT a, -a                   # Negation
//	(a OR b) AND c              # Grouping
//
// Operators are case-sensitive: `a and b` is a sequence of three restrictions.
//
// # Operator Precedence
//
// From loosest to tightest:
//  1. AND
//  2. Adjacency
//  3. OR
//  4. NOT and -
//
// This means `a b OR c` is `a (b OR c)`, not `(a b) OR c`.
//
// # Usage Examples
//
//	f, err := filter.Parse("package=com.google AND NOT retries < 10", nil)
//	if err != nil {
//	    fmt.Fprint(os.Stderr, filter.FormatDiagnostic(query, err, false))
//	}
//
//	filter.Walk(f, func(node filter.Node) bool {
//	    // evaluate restrictions
//	    return true
//	})
//
// # Limits
//
// Filters usually come from untrusted clients. Config bounds the input length (default 4096
// bytes) and the nesting of parentheses and function calls (default 32), and can restrict the
// callable functions with glob patterns:
//
//	cfg := &filter.Config{AllowedFunctionNames: []string{"regex", "geo.*"}}
//
// # Concurrency
//
// Parsing holds no shared state and may run concurrently. Returned trees are never mutated. A
// Config is safe to share once built, and Cache memoizes parses for a hot set of filters.
package filter
