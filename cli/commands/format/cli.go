// Package format provides the `listfilter format` command, which prints the canonical form of a filter.
package format

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/listfilter/cli/commands"
	"github.com/gruntwork-io/listfilter/internal/filter"
	"github.com/gruntwork-io/listfilter/options"
)

const (
	CommandName  = "format"
	CommandAlias = "fmt"
)

func NewCommand(opts *options.ListFilterOptions) *cli.Command {
	return &cli.Command{
		Name:      CommandName,
		Aliases:   []string{CommandAlias},
		Usage:     "Print the canonical form of a filter.",
		ArgsUsage: "<filter>",
		Action: func(ctx *cli.Context) error {
			return Run(ctx, opts)
		},
	}
}

func Run(ctx *cli.Context, opts *options.ListFilterOptions) error {
	query, err := commands.SingleFilterArg(ctx)
	if err != nil {
		return err
	}

	cfg, err := opts.FilterConfig()
	if err != nil {
		return err
	}

	f, err := filter.ParseContext(ctx.Context, query, cfg)
	if err != nil {
		return commands.ReportInvalidFilter(opts, query, err)
	}

	_, err = fmt.Fprintln(opts.Writer, f.String())

	return err
}
