package filter

import (
	"context"

	"github.com/gruntwork-io/listfilter/telemetry"
)

// Telemetry operation names for filter operations.
const (
	TelemetryOpFilterParse    = "filter_parse"
	TelemetryOpFilterParseAll = "filter_parse_all"
)

// Telemetry attribute keys for filter operations.
const (
	AttrFilterQuery  = "filter.query"
	AttrFilterLength = "filter.length"
	AttrFilterCount  = "filter.count"
)

// TraceFilterParse wraps filter parsing with telemetry.
// The underlying Telemeter.Collect handles nil/unconfigured telemetry gracefully.
func TraceFilterParse(ctx context.Context, query string, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpFilterParse, map[string]any{
		AttrFilterQuery:  query,
		AttrFilterLength: len(query),
	}, fn)
}

// TraceFilterParseAll wraps parsing of several filters with telemetry.
func TraceFilterParseAll(ctx context.Context, filterCount int, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpFilterParseAll, map[string]any{
		AttrFilterCount: filterCount,
	}, fn)
}
