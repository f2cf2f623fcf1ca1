// Package parse provides the `listfilter parse` command, which prints the syntax tree of a filter.
package parse

import (
	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/listfilter/cli/flags"
	"github.com/gruntwork-io/listfilter/options"
)

const (
	CommandName = "parse"

	FormatFlagName = "format"
)

func NewFlags(opts *Options, prefix flags.Prefix) []cli.Flag {
	lfPrefix := prefix.Prepend(flags.LfPrefix)

	return []cli.Flag{
		&cli.StringFlag{
			Name:        FormatFlagName,
			Aliases:     []string{"f"},
			EnvVars:     lfPrefix.EnvVars(FormatFlagName),
			Destination: &opts.Format,
			Value:       opts.Format,
			Usage:       "Output format of the tree. Valid values: text, json, yaml.",
			DefaultText: FormatText,
		},
	}
}

func NewCommand(opts *options.ListFilterOptions) *cli.Command {
	cmdOpts := NewOptions(opts)

	return &cli.Command{
		Name:      CommandName,
		Usage:     "Parse a filter and print its syntax tree.",
		ArgsUsage: "<filter>",
		Flags:     NewFlags(cmdOpts, flags.Prefix{CommandName}),
		Before: func(_ *cli.Context) error {
			return cmdOpts.Validate()
		},
		Action: func(ctx *cli.Context) error {
			return Run(ctx, cmdOpts)
		},
	}
}
