package filter

import "context"

// Parse parses a filter string. Input longer than the configured maximum is rejected before
// lexing. Empty or whitespace-only input yields a Filter with no expressions.
func Parse(input string, cfg *Config) (*Filter, error) {
	if maxLength := cfg.maxInputLength(); len(input) > maxLength {
		return nil, NewInputTooLongError(len(input), maxLength)
	}

	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}

	return ParseTokens(tokens, cfg)
}

// ParseContext is Parse wrapped with telemetry.
func ParseContext(ctx context.Context, input string, cfg *Config) (*Filter, error) {
	var filter *Filter

	err := TraceFilterParse(ctx, input, func(ctx context.Context) error {
		var err error

		filter, err = Parse(input, cfg)

		return err
	})

	return filter, err
}

// MustParse is like Parse but panics on error. It simplifies initialization of filters known
// to be valid.
func MustParse(input string) *Filter {
	filter, err := Parse(input, nil)
	if err != nil {
		panic(err)
	}

	return filter
}

// Functions returns the qualified names of every function the filter calls, in source order.
func (f *Filter) Functions() []string {
	var names []string

	Walk(f, func(node Node) bool {
		if fn, ok := node.(*Function); ok {
			names = append(names, fn.QualifiedName())
		}

		return true
	})

	return names
}
