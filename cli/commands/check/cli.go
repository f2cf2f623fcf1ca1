// Package check provides the `listfilter check` command, which validates several filters at once.
package check

import (
	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/listfilter/cli/flags"
	"github.com/gruntwork-io/listfilter/options"
)

const (
	CommandName = "check"

	QuietFlagName = "quiet"
)

type Options struct {
	*options.ListFilterOptions

	// Quiet suppresses the combined filter printed on success.
	Quiet bool
}

func NewFlags(opts *Options, prefix flags.Prefix) []cli.Flag {
	lfPrefix := prefix.Prepend(flags.LfPrefix)

	return []cli.Flag{
		&cli.BoolFlag{
			Name:        QuietFlagName,
			Aliases:     []string{"q"},
			EnvVars:     lfPrefix.EnvVars(QuietFlagName),
			Destination: &opts.Quiet,
			Value:       opts.Quiet,
			Usage:       "Only report invalid filters.",
		},
	}
}

func NewCommand(opts *options.ListFilterOptions) *cli.Command {
	cmdOpts := &Options{ListFilterOptions: opts}

	return &cli.Command{
		Name:      CommandName,
		Usage:     "Parse every filter, report all invalid ones and print the valid filters conjoined.",
		ArgsUsage: "<filter>...",
		Flags:     NewFlags(cmdOpts, flags.Prefix{CommandName}),
		Action: func(ctx *cli.Context) error {
			return Run(ctx, cmdOpts)
		},
	}
}
