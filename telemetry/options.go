package telemetry

// Options configures which exporters receive traces and metrics.
// Empty exporter names disable collection.
type Options struct {
	// TraceExporter is one of "none", "console", "otlpHttp", "otlpGrpc", "http".
	TraceExporter string
	// TraceExporterHTTPEndpoint is required by the "http" trace exporter.
	TraceExporterHTTPEndpoint string
	// TraceParent is a W3C traceparent header value the spans are parented to.
	TraceParent string
	// MetricExporter is one of "none", "console", "otlpHttp", "grpcHttp".
	MetricExporter string

	TraceExporterInsecureEndpoint  bool
	MetricExporterInsecureEndpoint bool
}
