package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a logger instance.
type Option func(logger *logger)

// WithLevel sets the minimum level that is written.
func WithLevel(level Level) Option {
	return func(logger *logger) {
		logger.Logger.SetLevel(level.ToLogrusLevel())
	}
}

// WithOutput sets the destination of log entries.
func WithOutput(output io.Writer) Option {
	return func(logger *logger) {
		logger.Logger.SetOutput(output)
	}
}

// WithColors enables or disables ANSI colors of the default text formatter.
func WithColors(enabled bool) Option {
	return func(logger *logger) {
		logger.Logger.SetFormatter(&logrus.TextFormatter{
			DisableColors:    !enabled,
			ForceColors:      enabled,
			DisableTimestamp: true,
		})
	}
}
