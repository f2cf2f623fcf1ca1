package commands

import "fmt"

// WrongNumberOfArgsError is returned when a command gets more or fewer filters than it takes.
type WrongNumberOfArgsError struct {
	Command  string
	Expected int
	Actual   int
}

func (err WrongNumberOfArgsError) Error() string {
	return fmt.Sprintf("%s takes %d filter argument(s), got %d. Quote the filter, e.g. '%s \"a = 1 AND b\"'", err.Command, err.Expected, err.Actual, err.Command)
}

// MissingArgsError is returned when a command needs at least one filter.
type MissingArgsError struct {
	Command string
}

func (err MissingArgsError) Error() string {
	return fmt.Sprintf("%s needs at least one filter argument", err.Command)
}

// InvalidFiltersError is returned once the diagnostics of rejected filters have been printed.
type InvalidFiltersError struct {
	Count int
}

func (err InvalidFiltersError) Error() string {
	if err.Count == 1 {
		return "1 invalid filter"
	}

	return fmt.Sprintf("%d invalid filters", err.Count)
}

// ExitCode implements `cli.ExitCoder`.
func (err InvalidFiltersError) ExitCode() int {
	return 1
}

// InvalidFormatError is returned for an unknown --format value.
type InvalidFormatError struct {
	Format  string
	Allowed []string
}

func (err InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format %q, valid values: %v", err.Format, err.Allowed)
}
