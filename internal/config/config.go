// Package config defines the application configuration and its resolution
// chain: CLI flags > environment variables > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/DCRepairCenter/sysstatus/internal/errors"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "SYSSTATUS_"

// Defaults for flag values.
const (
	// DefaultInterval is the watch-mode polling interval.
	DefaultInterval = 2 * time.Second
	// MinInterval bounds how aggressively watch mode may poll the OS.
	MinInterval = 100 * time.Millisecond
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Watch enables the interactive watch dashboard instead of a one-shot
	// status report.
	Watch bool
	// Interval is the polling interval in watch mode.
	Interval time.Duration
	// MeetingApps optionally overrides the meeting-app signature set as a
	// comma-separated list. Empty means the built-in defaults.
	MeetingApps string
	// JSON emits the one-shot status as a JSON object instead of text.
	JSON bool
	// Quiet suppresses informational output (spinner, headings).
	Quiet bool
	// NoColor disables ANSI colors in text output.
	NoColor bool
	// Verbose enables debug-level logging.
	Verbose bool
}

// MeetingSignatures returns the configured signature override as a slice,
// or nil when the built-in defaults should be used.
func (c AppConfig) MeetingSignatures() []string {
	if strings.TrimSpace(c.MeetingApps) == "" {
		return nil
	}
	parts := strings.Split(c.MeetingApps, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for flags not explicitly set.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: Destination for usage and error output.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when -h/--help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{Interval: DefaultInterval}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.BoolVar(&cfg.Watch, "watch", false, "run the interactive watch dashboard")
	fs.BoolVar(&cfg.Watch, "w", false, "shorthand for -watch")
	fs.DurationVar(&cfg.Interval, "interval", DefaultInterval, "polling interval in watch mode")
	fs.StringVar(&cfg.MeetingApps, "meeting-apps", "", "comma-separated meeting-app signatures (overrides built-ins)")
	fs.BoolVar(&cfg.JSON, "json", false, "emit status as JSON")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress informational output")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "Reports system status: CPU load, memory usage, meeting-app and fullscreen detection.\n\n")
		fs.PrintDefaults()
		fmt.Fprintf(errWriter, "\nEnvironment variables (overridden by flags): %sWATCH, %sINTERVAL, %sMEETING_APPS, %sJSON, %sQUIET, %sNO_COLOR, %sVERBOSE\n",
			EnvPrefix, EnvPrefix, EnvPrefix, EnvPrefix, EnvPrefix, EnvPrefix, EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c AppConfig) Validate() error {
	if c.Interval < MinInterval {
		return apperrors.NewConfigError("interval %s is below the %s minimum", c.Interval, MinInterval)
	}
	if c.Watch && c.JSON {
		return apperrors.NewConfigError("-watch and -json are mutually exclusive")
	}
	return nil
}
