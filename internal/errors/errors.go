// Package errors wraps errors with stack traces and aggregates independent failures,
// so callers up the chain can print a trace at debug level without losing the original type.
package errors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// New returns an error carrying a stack trace. The value may be an error, in which case it is
// wrapped (and returned as is if it already holds a stack trace), or anything else, which is
// formatted with `%v`. New returns nil for a nil value.
func New(val any) error {
	if val == nil {
		return nil
	}

	return newWithSkip(2, val) //nolint:mnd
}

// Errorf formats according to a format specifier and returns the result with a stack trace.
// The `%w` verb is supported.
func Errorf(format string, vals ...any) error {
	return newWithSkip(2, fmt.Errorf(format, vals...)) //nolint:mnd,err113
}

// WithStackTraceAndPrefix wraps err with a stack trace and prepends the formatted message.
// Returns nil if err is nil.
func WithStackTraceAndPrefix(err error, message string, args ...any) error {
	if err == nil {
		return nil
	}

	return goerrors.WrapPrefix(err, fmt.Sprintf(message, args...), 1)
}

func newWithSkip(skip int, val any) error {
	if err, ok := val.(error); ok {
		if ContainsStackTrace(err) {
			return err
		}

		return goerrors.Wrap(err, skip)
	}

	return goerrors.Wrap(fmt.Errorf("%v", val), skip) //nolint:err113
}

// As finds the first error in err's tree that matches target, and if one is found, sets
// target to that error value and returns true. Otherwise, it returns false.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
