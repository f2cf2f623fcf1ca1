// Package global provides CLI global flags.
package global

import (
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/listfilter/cli/flags"
	"github.com/gruntwork-io/listfilter/internal/filter"
	"github.com/gruntwork-io/listfilter/options"
	"github.com/gruntwork-io/listfilter/pkg/log"
)

const (
	// Logs related flags.

	LogLevelFlagName = "log-level"
	NoColorFlagName  = "no-color"

	WorkingDirFlagName = "working-dir"

	// Parser config flags.

	ConfigFlagName            = "config"
	NoConfigDiscoveryFlagName = "no-config-discovery"
	MaxDepthFlagName          = "max-depth"
	MaxInputLengthFlagName    = "max-input-length"
	AllowFunctionFlagName     = "allow-function"

	// Telemetry flags.

	TelemetryTraceExporterFlagName                  = "telemetry-trace-exporter"
	TelemetryTraceExporterInsecureEndpointFlagName  = "telemetry-trace-exporter-insecure-endpoint"
	TelemetryTraceExporterHTTPEndpointFlagName      = "telemetry-trace-exporter-http-endpoint"
	TraceParentFlagName                             = "traceparent"
	TelemetryMetricExporterFlagName                 = "telemetry-metric-exporter"
	TelemetryMetricExporterInsecureEndpointFlagName = "telemetry-metric-exporter-insecure-endpoint"
)

// NewFlags creates and returns global flags.
func NewFlags(opts *options.ListFilterOptions) []cli.Flag {
	return []cli.Flag{
		NewLogLevelFlag(opts),
		&cli.BoolFlag{
			Name:        NoColorFlagName,
			EnvVars:     append(flags.EnvVarsWithLfPrefix(NoColorFlagName), "NO_COLOR"),
			Destination: &opts.NoColor,
			Value:       opts.NoColor,
			Usage:       "Disable color in diagnostics and log output.",
			Action: func(_ *cli.Context, noColor bool) error {
				if noColor {
					opts.Logger.SetOptions(log.WithColors(false))
				}

				return nil
			},
		},
		&cli.StringFlag{
			Name:        WorkingDirFlagName,
			EnvVars:     flags.EnvVarsWithLfPrefix(WorkingDirFlagName),
			Destination: &opts.WorkingDir,
			Value:       opts.WorkingDir,
			DefaultText: "current directory",
			Usage:       "The directory config file discovery starts from.",
		},
		&cli.StringFlag{
			Name:        ConfigFlagName,
			Aliases:     []string{"c"},
			EnvVars:     flags.EnvVarsWithLfPrefix(ConfigFlagName),
			Destination: &opts.ConfigPath,
			Value:       opts.ConfigPath,
			Usage:       "Path to a .hcl, .json or .yaml file with max_depth, max_input_length and allowed_functions.",
		},
		&cli.BoolFlag{
			Name:        NoConfigDiscoveryFlagName,
			EnvVars:     flags.EnvVarsWithLfPrefix(NoConfigDiscoveryFlagName),
			Destination: &opts.NoConfigDiscovery,
			Value:       opts.NoConfigDiscovery,
			Usage:       "Do not look up a config file when --config is not set.",
		},
		&cli.IntFlag{
			Name:        MaxDepthFlagName,
			EnvVars:     flags.EnvVarsWithLfPrefix(MaxDepthFlagName),
			Destination: &opts.MaxDepth,
			Value:       opts.MaxDepth,
			Usage:       "Maximum nesting of parentheses and function calls.",
			DefaultText: strconv.Itoa(filter.DefaultMaxDepth),
		},
		&cli.IntFlag{
			Name:        MaxInputLengthFlagName,
			EnvVars:     flags.EnvVarsWithLfPrefix(MaxInputLengthFlagName),
			Destination: &opts.MaxInputLength,
			Value:       opts.MaxInputLength,
			Usage:       "Maximum filter length in bytes.",
			DefaultText: strconv.Itoa(filter.DefaultMaxInputLength),
		},
		&cli.StringSliceFlag{
			Name:    AllowFunctionFlagName,
			EnvVars: flags.EnvVarsWithLfPrefix(AllowFunctionFlagName),
			Usage:   "Glob pattern of a callable function, e.g. 'geo.*'. May be repeated. All functions are allowed if unset.",
			Action: func(_ *cli.Context, names []string) error {
				opts.AllowedFunctions = names
				return nil
			},
		},

		// Telemetry related flags.

		&cli.StringFlag{
			Name:        TelemetryTraceExporterFlagName,
			EnvVars:     flags.EnvVarsWithLfPrefix(TelemetryTraceExporterFlagName),
			Destination: &opts.Telemetry.TraceExporter,
			Value:       opts.Telemetry.TraceExporter,
			Usage:       "Enables telemetry tracing. Valid values: none, console, otlpHttp, otlpGrpc, http.",
		},
		&cli.BoolFlag{
			Name:        TelemetryTraceExporterInsecureEndpointFlagName,
			EnvVars:     flags.EnvVarsWithLfPrefix(TelemetryTraceExporterInsecureEndpointFlagName),
			Destination: &opts.Telemetry.TraceExporterInsecureEndpoint,
			Value:       opts.Telemetry.TraceExporterInsecureEndpoint,
			Usage:       "Use an insecure connection for the trace exporter.",
		},
		&cli.StringFlag{
			Name:        TelemetryTraceExporterHTTPEndpointFlagName,
			EnvVars:     flags.EnvVarsWithLfPrefix(TelemetryTraceExporterHTTPEndpointFlagName),
			Destination: &opts.Telemetry.TraceExporterHTTPEndpoint,
			Value:       opts.Telemetry.TraceExporterHTTPEndpoint,
			Usage:       "The endpoint of the http trace exporter.",
		},
		&cli.StringFlag{
			Name:        TraceParentFlagName,
			EnvVars:     []string{"TRACEPARENT"},
			Destination: &opts.Telemetry.TraceParent,
			Value:       opts.Telemetry.TraceParent,
			Usage:       "W3C traceparent the spans are parented to.",
			Hidden:      true,
		},
		&cli.StringFlag{
			Name:        TelemetryMetricExporterFlagName,
			EnvVars:     flags.EnvVarsWithLfPrefix(TelemetryMetricExporterFlagName),
			Destination: &opts.Telemetry.MetricExporter,
			Value:       opts.Telemetry.MetricExporter,
			Usage:       "Enables telemetry metrics. Valid values: none, console, otlpHttp, grpcHttp.",
		},
		&cli.BoolFlag{
			Name:        TelemetryMetricExporterInsecureEndpointFlagName,
			EnvVars:     flags.EnvVarsWithLfPrefix(TelemetryMetricExporterInsecureEndpointFlagName),
			Destination: &opts.Telemetry.MetricExporterInsecureEndpoint,
			Value:       opts.Telemetry.MetricExporterInsecureEndpoint,
			Usage:       "Use an insecure connection for the metric exporter.",
		},
	}
}

// NewLogLevelFlag creates a flag for specifying the log level.
func NewLogLevelFlag(opts *options.ListFilterOptions) cli.Flag {
	return &cli.StringFlag{
		Name:        LogLevelFlagName,
		EnvVars:     flags.EnvVarsWithLfPrefix(LogLevelFlagName),
		DefaultText: opts.LogLevel.String(),
		Usage:       "Sets the logging level. Valid values: " + log.AllLevels.String() + ".",
		Action: func(_ *cli.Context, val string) error {
			level, err := log.ParseLevel(val)
			if err != nil {
				return err
			}

			opts.LogLevel = level
			opts.Logger.SetOptions(log.WithLevel(level))

			return nil
		},
	}
}
