// Package log provides a leveled logger with structured logging support.
package log

var std = New()

// Default returns the standard logger, used where no logger is carried in the context.
func Default() Logger {
	return std
}
