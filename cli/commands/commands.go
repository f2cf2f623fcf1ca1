// Package commands provides what the listfilter commands share: argument checks and
// diagnostic output.
package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/listfilter/internal/errors"
	"github.com/gruntwork-io/listfilter/internal/filter"
	"github.com/gruntwork-io/listfilter/options"
)

// SingleFilterArg returns the only argument of the command.
func SingleFilterArg(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		return "", errors.New(WrongNumberOfArgsError{Command: ctx.Command.Name, Expected: 1, Actual: ctx.NArg()})
	}

	return ctx.Args().First(), nil
}

// ReportInvalidFilter prints the diagnostic of a rejected filter to the error writer. Filter
// errors become InvalidFiltersError, anything else is returned as is.
func ReportInvalidFilter(opts *options.ListFilterOptions, query string, err error) error {
	if _, ok := filter.AsPositionedError(err); !ok {
		return err
	}

	if _, err := fmt.Fprint(opts.ErrWriter, filter.FormatDiagnostic(query, err, opts.UseColor())); err != nil {
		return errors.New(err)
	}

	return errors.New(InvalidFiltersError{Count: 1})
}
