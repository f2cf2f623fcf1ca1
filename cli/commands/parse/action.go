package parse

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/gruntwork-io/listfilter/cli/commands"
	"github.com/gruntwork-io/listfilter/internal/errors"
	"github.com/gruntwork-io/listfilter/internal/filter"
)

func Run(ctx *cli.Context, opts *Options) error {
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
		return commands.ReportInvalidFilter(opts.ListFilterOptions, query, err)
	}

	return Output(opts, f)
}

// Output writes the tree of f to the writer in the configured format.
func Output(opts *Options, f *filter.Filter) error {
	tree := NewTree(f)

	switch opts.Format {
	case FormatText:
		return WriteText(opts.Writer, tree)
	case FormatJSON:
		jsonBytes, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return errors.New(err)
		}

		_, err = fmt.Fprintln(opts.Writer, string(jsonBytes))

		return err
	case FormatYAML:
		encoder := yaml.NewEncoder(opts.Writer)
		encoder.SetIndent(2) //nolint:mnd

		if err := encoder.Encode(tree); err != nil {
			return errors.New(err)
		}

		return encoder.Close()
	default:
		return errors.New(commands.InvalidFormatError{Format: opts.Format, Allowed: formats})
	}
}
