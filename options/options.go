// Package options provides a set of options that configure the behavior of the listfilter program.
package options

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/gruntwork-io/listfilter/internal/cliconfig"
	"github.com/gruntwork-io/listfilter/internal/errors"
	"github.com/gruntwork-io/listfilter/internal/filter"
	"github.com/gruntwork-io/listfilter/pkg/log"
	"github.com/gruntwork-io/listfilter/telemetry"
)

const ContextKey ctxKey = iota

const (
	defaultLogLevel = log.InfoLevel
)

type ctxKey byte

// ListFilterOptions represents options that configure the behavior of the listfilter program.
type ListFilterOptions struct {
	// Writer is where command output goes.
	Writer io.Writer
	// ErrWriter is where diagnostics and logs go.
	ErrWriter io.Writer
	// Logger is the logger passed down through the context.
	Logger log.Logger
	// Telemetry selects the trace and metric exporters.
	Telemetry *telemetry.Options
	// ConfigPath is an explicit config file. When empty, DefaultConfigFilename is looked up from WorkingDir.
	ConfigPath string
	// WorkingDir is where config discovery starts.
	WorkingDir string
	// AppVersion is reported to telemetry.
	AppVersion string
	// AllowedFunctions overrides the allowlist of the config file when set.
	AllowedFunctions []string
	// MaxDepth overrides the config file when positive.
	MaxDepth int
	// MaxInputLength overrides the config file when positive.
	MaxInputLength int
	// LogLevel is the minimum level of the logger.
	LogLevel log.Level
	// NoColor disables colored diagnostics even on a terminal.
	NoColor bool
	// NoConfigDiscovery disables looking up DefaultConfigFilename.
	NoConfigDiscovery bool
}

// NewListFilterOptions creates a new ListFilterOptions object with reasonable defaults for real usage.
func NewListFilterOptions() *ListFilterOptions {
	return NewListFilterOptionsWithWriters(os.Stdout, os.Stderr)
}

func NewListFilterOptionsWithWriters(stdout, stderr io.Writer) *ListFilterOptions {
	workingDir, _ := os.Getwd()

	return &ListFilterOptions{
		Writer:     stdout,
		ErrWriter:  stderr,
		Logger:     log.New(log.WithOutput(stderr), log.WithLevel(defaultLogLevel), log.WithColors(isTerminal(stderr))),
		LogLevel:   defaultLogLevel,
		Telemetry:  &telemetry.Options{},
		WorkingDir: workingDir,
	}
}

// OptionsFromContext tries to retrieve options from context, otherwise, returns its own instance.
func (opts *ListFilterOptions) OptionsFromContext(ctx context.Context) *ListFilterOptions {
	if val := ctx.Value(ContextKey); val != nil {
		if opts, ok := val.(*ListFilterOptions); ok {
			return opts
		}
	}

	return opts
}

// Clone creates a copy of the options. Slices are copied so the clone can be modified independently.
func (opts *ListFilterOptions) Clone() *ListFilterOptions {
	newOpts := *opts

	if opts.AllowedFunctions != nil {
		newOpts.AllowedFunctions = append([]string{}, opts.AllowedFunctions...)
	}

	if opts.Telemetry != nil {
		telemetryOpts := *opts.Telemetry
		newOpts.Telemetry = &telemetryOpts
	}

	newOpts.Logger = opts.Logger.Clone()

	return &newOpts
}

// UseColor reports whether diagnostics written to ErrWriter should be colored.
func (opts *ListFilterOptions) UseColor() bool {
	return !opts.NoColor && isTerminal(opts.ErrWriter)
}

// UseColorOutput reports whether output written to Writer should be colored.
func (opts *ListFilterOptions) UseColorOutput() bool {
	return !opts.NoColor && isTerminal(opts.Writer)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// FilterConfig builds the parser config from the config file, if any, with the flag values on top.
func (opts *ListFilterOptions) FilterConfig() (*filter.Config, error) {
	fileCfg, err := opts.loadConfigFile()
	if err != nil {
		return nil, err
	}

	cfg := fileCfg.FilterConfig()

	if opts.MaxDepth > 0 {
		cfg.MaxDepth = opts.MaxDepth
	}

	if opts.MaxInputLength > 0 {
		cfg.MaxInputLength = opts.MaxInputLength
	}

	if len(opts.AllowedFunctions) > 0 {
		cfg.AllowedFunctionNames = opts.AllowedFunctions
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.New(err)
	}

	return cfg, nil
}

func (opts *ListFilterOptions) loadConfigFile() (*cliconfig.Config, error) {
	path := opts.ConfigPath

	if path == "" && !opts.NoConfigDiscovery && opts.WorkingDir != "" {
		discovered, err := cliconfig.DiscoveryPath(opts.WorkingDir)
		if err != nil {
			return nil, err
		}

		path = discovered
	}

	if path == "" {
		return nil, nil
	}

	opts.Logger.Debugf("Loading config file %s", path)

	cfg, err := cliconfig.LoadConfig(path)
	if err != nil {
		return nil, errors.New(err)
	}

	return cfg, nil
}
