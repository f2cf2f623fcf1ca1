package tokens

import (
	"fmt"

	"github.com/mgutz/ansi"
	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/listfilter/cli/commands"
	"github.com/gruntwork-io/listfilter/internal/filter"
	"github.com/gruntwork-io/listfilter/options"
)

func Run(ctx *cli.Context, opts *options.ListFilterOptions) error {
	query, err := commands.SingleFilterArg(ctx)
	if err != nil {
		return err
	}

	tokens, err := filter.Tokenize(query)
	if err != nil {
		return commands.ReportInvalidFilter(opts, query, err)
	}

	colorizer := NewColorizer(opts.UseColorOutput())

	for _, tok := range tokens {
		if _, err := fmt.Fprintf(opts.Writer, "%4d  %s  %q\n", tok.Position, colorizer.Colorize(tok.Type), tok.Literal); err != nil {
			return err
		}
	}

	return nil
}

const typeWidth = 14

// Colorizer colors token types by class: values, keywords, punctuation and comparators.
type Colorizer struct {
	valueColorizer      func(string) string
	keywordColorizer    func(string) string
	comparatorColorizer func(string) string
	otherColorizer      func(string) string
}

func NewColorizer(enabled bool) *Colorizer {
	if !enabled {
		plain := func(s string) string { return s }

		return &Colorizer{
			valueColorizer:      plain,
			keywordColorizer:    plain,
			comparatorColorizer: plain,
			otherColorizer:      plain,
		}
	}

	return &Colorizer{
		valueColorizer:      ansi.ColorFunc("green"),
		keywordColorizer:    ansi.ColorFunc("magenta+b"),
		comparatorColorizer: ansi.ColorFunc("yellow"),
		otherColorizer:      ansi.ColorFunc("white+d"),
	}
}

// Colorize returns the padded name of the token type.
func (c *Colorizer) Colorize(tokenType filter.TokenType) string {
	name := fmt.Sprintf("%-*s", typeWidth, tokenType)

	switch {
	case tokenType.IsValue():
		return c.valueColorizer(name)
	case tokenType.IsKeyword():
		return c.keywordColorizer(name)
	case tokenType.IsComparator():
		return c.comparatorColorizer(name)
	default:
		return c.otherColorizer(name)
	}
}
