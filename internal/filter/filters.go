package filter

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gruntwork-io/listfilter/internal/errors"
)

// Filters holds several parsed filters, one per query, that are implicitly conjoined.
type Filters []*Filter

// ParseAll parses every query with the same config. All failures are collected into a single
// *errors.MultiError, each as a QueryError naming the query index, in query order.
// No filters are returned if any query fails.
func ParseAll(queries []string, cfg *Config) (Filters, error) {
	if len(queries) == 0 {
		return Filters{}, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.New(err)
	}

	return parseAll(queries, func(query string) (*Filter, error) {
		return Parse(query, cfg)
	})
}

// parseAll runs parse over every query, serially or on a bounded pool of goroutines, and
// collects the failures as QueryErrors in query order.
func parseAll(queries []string, parse func(query string) (*Filter, error)) (Filters, error) {
	filters := make(Filters, len(queries))
	parseErrs := make([]error, len(queries))

	parseOne := func(i int) {
		filter, err := parse(queries[i])
		if err != nil {
			parseErrs[i] = errors.New(QueryError{Err: err, Query: queries[i], Index: i})

			return
		}

		filters[i] = filter
	}

	if shouldUseParallelization(len(queries)) {
		var g errgroup.Group

		g.SetLimit(WorkerPoolSize())

		for i := range queries {
			g.Go(func() error {
				parseOne(i)

				return nil
			})
		}

		_ = g.Wait()
	} else {
		for i := range queries {
			parseOne(i)
		}
	}

	var errs *errors.MultiError

	for _, err := range parseErrs {
		if err != nil {
			errs = errs.Append(err)
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return filters, nil
}

// ParseAllContext is ParseAll wrapped with telemetry.
func ParseAllContext(ctx context.Context, queries []string, cfg *Config) (Filters, error) {
	var filters Filters

	err := TraceFilterParseAll(ctx, len(queries), func(ctx context.Context) error {
		var err error

		filters, err = ParseAll(queries, cfg)

		return err
	})

	return filters, err
}

// String returns the canonical form of every non-empty filter, parenthesized and joined with AND.
func (f Filters) String() string {
	parts := make([]string, 0, len(f))

	for _, filter := range f {
		if filter == nil || filter.IsEmpty() {
			continue
		}

		parts = append(parts, "("+filter.String()+")")
	}

	return strings.Join(parts, " AND ")
}

// Functions returns the qualified names of every function called by the filters, in order.
func (f Filters) Functions() []string {
	var names []string

	for _, filter := range f {
		names = append(names, filter.Functions()...)
	}

	return names
}
