package check

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/listfilter/cli/commands"
	"github.com/gruntwork-io/listfilter/internal/errors"
	"github.com/gruntwork-io/listfilter/internal/filter"
	"github.com/gruntwork-io/listfilter/pkg/log"
)

func Run(ctx *cli.Context, opts *Options) error {
	queries := ctx.Args().Slice()
	if len(queries) == 0 {
		return errors.New(commands.MissingArgsError{Command: CommandName})
	}

	cfg, err := opts.FilterConfig()
	if err != nil {
		return err
	}

	logger := log.LoggerFromContext(ctx.Context).WithField(log.FieldKeyCommand, CommandName)
	logger.Debugf("Checking %d filters", len(queries))

	cache := filter.NewCache(cfg, len(queries))

	filters, err := cache.ParseAll(ctx.Context, queries)

	stats := cache.Stats()
	logger.Debugf("Parsed %d filters (hits=%d misses=%d)", len(queries), stats.Hits, stats.Misses)

	if err != nil {
		return report(opts, err)
	}

	if !opts.Quiet {
		if _, err := fmt.Fprintln(opts.Writer, filters.String()); err != nil {
			return errors.New(err)
		}
	}

	logger.Debugf("All %d filters are valid", len(queries))

	return nil
}

// report prints a diagnostic for every rejected query.
func report(opts *Options, err error) error {
	var invalid int

	for _, parseErr := range errors.UnwrapMultiErrors(err) {
		var queryErr filter.QueryError
		if !errors.As(parseErr, &queryErr) {
			return parseErr
		}

		if _, err := fmt.Fprint(opts.ErrWriter, filter.FormatDiagnostic(queryErr.Query, parseErr, opts.UseColor())); err != nil {
			return errors.New(err)
		}

		invalid++
	}

	return errors.New(commands.InvalidFiltersError{Count: invalid})
}
