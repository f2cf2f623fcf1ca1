// Package cli provides the listfilter CLI app and its commands.
package cli

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/listfilter/cli/commands/check"
	"github.com/gruntwork-io/listfilter/cli/commands/format"
	"github.com/gruntwork-io/listfilter/cli/commands/parse"
	"github.com/gruntwork-io/listfilter/cli/commands/tokens"
	"github.com/gruntwork-io/listfilter/cli/flags/global"
	"github.com/gruntwork-io/listfilter/internal/errors"
	"github.com/gruntwork-io/listfilter/options"
	"github.com/gruntwork-io/listfilter/pkg/log"
	"github.com/gruntwork-io/listfilter/telemetry"
)

const AppName = "listfilter"

// Version is set at build time, e.g. `-ldflags "-X github.com/gruntwork-io/listfilter/cli.Version=v1.0.0"`.
var Version = "dev"

// App is the listfilter CLI.
type App struct {
	*cli.App
	opts *options.ListFilterOptions
}

// NewApp creates the listfilter CLI App.
func NewApp(opts *options.ListFilterOptions) *App {
	app := &App{
		App: &cli.App{
			Name:      AppName,
			Usage:     "Parse, validate and format AIP-160 list filters.",
			UsageText: AppName + " [global options] <command> [options] <filter>...",
			Version:   Version,
			Writer:    opts.Writer,
			ErrWriter: opts.ErrWriter,
			Flags:     global.NewFlags(opts),
			Commands: []*cli.Command{
				parse.NewCommand(opts),
				tokens.NewCommand(opts),
				format.NewCommand(opts),
				check.NewCommand(opts),
			},
			// Errors are reported by the caller of RunContext.
			ExitErrHandler: func(*cli.Context, error) {},
		},
		opts: opts,
	}

	opts.AppVersion = Version

	return app
}

// RunContext runs the app with the logger and the telemeter set on the context.
func (app *App) RunContext(ctx context.Context, args []string) error {
	ctx = log.ContextWithLogger(ctx, app.opts.Logger)

	var tlm *telemetry.Telemeter

	app.Before = func(cliCtx *cli.Context) error {
		var err error

		tlm, err = telemetry.NewTelemeter(cliCtx.Context, AppName, app.opts.AppVersion, app.opts.ErrWriter, app.opts.Telemetry)
		if err != nil {
			return err
		}

		cliCtx.Context = telemetry.ContextWithTelemeter(cliCtx.Context, tlm)

		return nil
	}

	defer func() {
		if err := tlm.Shutdown(context.Background()); err != nil {
			app.opts.Logger.Errorf("Failed to shut down telemetry: %v", err)
		}
	}()

	if err := app.App.RunContext(ctx, args); err != nil {
		return errors.New(err)
	}

	return nil
}
