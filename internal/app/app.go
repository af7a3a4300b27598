// Package app wires configuration, monitoring, and presentation into the
// executable. It owns process lifecycle concerns: argument parsing, signal
// handling, logging setup, and exit codes.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/DCRepairCenter/sysstatus/internal/cli"
	"github.com/DCRepairCenter/sysstatus/internal/config"
	apperrors "github.com/DCRepairCenter/sysstatus/internal/errors"
	"github.com/DCRepairCenter/sysstatus/internal/logging"
	"github.com/DCRepairCenter/sysstatus/internal/monitor"
	"github.com/DCRepairCenter/sysstatus/internal/tui"
	"github.com/DCRepairCenter/sysstatus/internal/ui"
)

// Application represents the sysstatus application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer

	monitorOpts []monitor.Option
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithMonitorOptions appends options passed to the monitor constructor.
// Tests use this to substitute probe implementations.
func WithMonitorOptions(opts ...monitor.Option) AppOption {
	return func(a *Application) { a.monitorOpts = append(a.monitorOpts, opts...) }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "sysstatus"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	logger := logging.NewLogger(a.ErrWriter, "sysstatus")
	runID := uuid.NewString()
	logger.Debug("starting run",
		logging.String("run_id", runID),
		logging.Bool("watch", a.Config.Watch),
		logging.Dur("interval", a.Config.Interval))

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	mon, err := a.newMonitor(ctx, logger)
	if err != nil {
		logger.Error("monitor initialization failed", err)
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	if a.Config.Watch {
		return tui.Run(ctx, mon, a.Config, Version)
	}

	return a.runStatus(ctx, mon, out)
}

// newMonitor builds the monitor with configuration and test overrides applied.
func (a *Application) newMonitor(ctx context.Context, logger logging.Logger) (*monitor.Monitor, error) {
	opts := []monitor.Option{monitor.WithLogger(logger)}
	if sigs := a.Config.MeetingSignatures(); sigs != nil {
		opts = append(opts, monitor.WithMeetingSignatures(sigs))
	}
	opts = append(opts, a.monitorOpts...)
	return monitor.New(ctx, opts...)
}

// runStatus executes the one-shot status command.
func (a *Application) runStatus(ctx context.Context, mon *monitor.Monitor, out io.Writer) int {
	var (
		report cli.StatusReport
		err    error
	)
	if a.useSpinner(out) {
		report, err = cli.GatherStatusWithSpinner(ctx, mon, out)
	} else {
		report, err = cli.GatherStatus(ctx, mon)
	}
	if err != nil {
		if ctx.Err() != nil {
			fmt.Fprintf(a.ErrWriter, "Interrupted.\n")
			return apperrors.ExitErrorCanceled
		}
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	outputCfg := cli.OutputConfig{
		JSON:    a.Config.JSON,
		Quiet:   a.Config.Quiet,
		Verbose: a.Config.Verbose,
	}
	if err := cli.DisplayStatus(out, report, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// useSpinner reports whether the gather should animate a spinner.
// Spinners are reserved for interactive terminals with decorated output.
func (a *Application) useSpinner(out io.Writer) bool {
	if a.Config.Quiet || a.Config.JSON {
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
