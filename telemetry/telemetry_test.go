package telemetry_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/gruntwork-io/listfilter/internal/errors"
	"github.com/gruntwork-io/listfilter/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestNewTelemeter_Disabled(t *testing.T) {
	t.Parallel()

	for _, opts := range []*telemetry.Options{nil, {}, {TraceExporter: "none", MetricExporter: "none"}} {
		tlm, err := telemetry.NewTelemeter(context.Background(), "lf", "test", io.Discard, opts)
		require.NoError(t, err)
		assert.Nil(t, tlm.Tracer)
		assert.Nil(t, tlm.Meter)

		called := false
		err = tlm.Collect(context.Background(), "op", nil, func(ctx context.Context) error {
			called = true
			return nil
		})

		require.NoError(t, err)
		assert.True(t, called)

		tlm.Count(context.Background(), "op", 1)
		require.NoError(t, tlm.Shutdown(context.Background()))
	}
}

func TestNewTelemeter_ConsoleTraces(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := context.Background()

	tlm, err := telemetry.NewTelemeter(ctx, "lf", "test", &buf, &telemetry.Options{TraceExporter: "console"})
	require.NoError(t, err)
	require.NotNil(t, tlm.Tracer)

	expected := errors.New("parse failed")

	err = tlm.Collect(ctx, "filter_parse", map[string]any{"filter.length": 5}, func(ctx context.Context) error {
		assert.True(t, trace.SpanContextFromContext(ctx).IsValid())
		return expected
	})
	require.ErrorIs(t, err, expected)

	require.NoError(t, tlm.Shutdown(ctx))
	assert.Contains(t, buf.String(), "filter_parse")
	assert.Contains(t, buf.String(), "filter.length")
}

func TestNewTelemeter_HTTPTraceExporterNeedsEndpoint(t *testing.T) {
	t.Parallel()

	_, err := telemetry.NewTelemeter(context.Background(), "lf", "test", io.Discard, &telemetry.Options{TraceExporter: "http"})
	require.Error(t, err)

	var missing *telemetry.ErrorMissingEnvVariable
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"LF_TELEMETRY_TRACE_EXPORTER_HTTP_ENDPOINT"}, missing.Vars)
}

func TestParseTraceParent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		sampled bool
		wantErr bool
	}{
		{input: "00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-01", sampled: true},
		{input: "00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-00", sampled: false},
		{input: "00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331", wantErr: true},
		{input: "00-xyz-b7ad6b7169203331-01", wantErr: true},
		{input: "00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			sc, err := telemetry.ParseTraceParent(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, sc.IsRemote())
			assert.Equal(t, "0af7651916cd43dd8448eb211c80319c", sc.TraceID().String())
			assert.Equal(t, tt.sampled, sc.IsSampled())
		})
	}
}

func TestCleanMetricName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "filter_parse_duration", expected: "filter_parse_duration"},
		{input: "filter parse!!count", expected: "filter_parse_count"},
		{input: "__filter__", expected: "filter"},
		{input: "filter.cache/hit-count", expected: "filter.cache/hit-count"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, telemetry.CleanMetricName(tt.input))
		})
	}
}

func TestTelemeterFromContext(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, telemetry.TelemeterFromContext(context.Background()))

	tlm := &telemetry.Telemeter{}
	ctx := telemetry.ContextWithTelemeter(context.Background(), tlm)

	assert.Same(t, tlm, telemetry.TelemeterFromContext(ctx))
}
