package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v2"

	lfcli "github.com/gruntwork-io/listfilter/cli"
	"github.com/gruntwork-io/listfilter/cli/commands"
	"github.com/gruntwork-io/listfilter/internal/errors"
	"github.com/gruntwork-io/listfilter/options"
	"github.com/gruntwork-io/listfilter/pkg/log"
)

// The main entrypoint for listfilter
func main() {
	opts := options.NewListFilterOptions()

	defer errors.Recover(checkForErrorsAndExit(opts.Logger))

	app := lfcli.NewApp(opts)
	err := app.RunContext(context.Background(), os.Args)

	checkForErrorsAndExit(opts.Logger)(err)
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit 0.
func checkForErrorsAndExit(logger log.Logger) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(0)
		}

		var invalidErr commands.InvalidFiltersError
		if errors.As(err, &invalidErr) {
			// The diagnostics are already printed.
			logger.Debug(err.Error())
		} else {
			logger.Error(err.Error())
		}

		if errStack := errors.ErrorStack(err); errStack != "" {
			logger.Trace(errStack)
		}

		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) && exitCoder.ExitCode() != 0 {
		return exitCoder.ExitCode()
	}

	return 1
}
