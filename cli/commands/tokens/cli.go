// Package tokens provides the `listfilter tokens` command, which prints the token stream of a filter.
package tokens

import (
	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/listfilter/options"
)

const (
	CommandName = "tokens"
)

func NewCommand(opts *options.ListFilterOptions) *cli.Command {
	return &cli.Command{
		Name:      CommandName,
		Usage:     "Print the tokens of a filter, one per line: offset, type and lexeme.",
		ArgsUsage: "<filter>",
		Action: func(ctx *cli.Context) error {
			return Run(ctx, opts)
		},
	}
}
