package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/DCRepairCenter/sysstatus/internal/ui"
)

const (
	// warnThresholdPct is the usage percentage at which a value is rendered in
	// the warning color.
	warnThresholdPct = 70.0
	// critThresholdPct is the usage percentage at which a value is rendered in
	// the error color.
	critThresholdPct = 90.0
)

// OutputConfig holds configuration for status output.
type OutputConfig struct {
	// JSON emits the report as a single JSON object.
	JSON bool
	// Quiet mode suppresses decorations and prints bare values.
	Quiet bool
	// Verbose adds timing details to the output.
	Verbose bool
}

// DisplayStatus writes a status report to out according to the configuration.
// It dispatches to the JSON, quiet, or decorated renderer.
//
// Parameters:
//   - out: The output writer.
//   - report: The snapshot to render.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if encoding fails (JSON mode only).
func DisplayStatus(out io.Writer, report StatusReport, config OutputConfig) error {
	if config.JSON {
		return DisplayJSONStatus(out, report)
	}
	if config.Quiet {
		DisplayQuietStatus(out, report)
		return nil
	}
	displayDecoratedStatus(out, report, config.Verbose)
	return nil
}

// DisplayJSONStatus encodes the report as an indented JSON object.
// The field set is stable and intended for scripting.
func DisplayJSONStatus(out io.Writer, report StatusReport) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode status report: %w", err)
	}
	return nil
}

// FormatQuietStatus formats a report as a single machine-friendly line:
// cpu memory fullscreen meeting, space separated.
func FormatQuietStatus(report StatusReport) string {
	return fmt.Sprintf("%.1f %.1f %t %t",
		report.CPUPercent, report.MemoryPercent, report.Fullscreen, report.Meeting)
}

// DisplayQuietStatus outputs a report in quiet mode (minimal output).
func DisplayQuietStatus(out io.Writer, report StatusReport) {
	fmt.Fprintln(out, FormatQuietStatus(report))
}

// displayDecoratedStatus renders the human-readable report with usage bars
// and severity colors.
func displayDecoratedStatus(out io.Writer, report StatusReport, verbose bool) {
	theme := ui.GetCurrentTheme()

	fmt.Fprintf(out, "%sSystem Status%s  %s\n",
		theme.Bold, theme.Reset,
		ui.Colorize(theme.Secondary, report.Timestamp.Format("2006-01-02 15:04:05")))

	fmt.Fprintf(out, "  CPU     %s %s\n",
		ui.Colorize(ui.PercentColor(report.CPUPercent, warnThresholdPct, critThresholdPct),
			usageBar(report.CPUPercent, UsageBarWidth)),
		FormatPercent(report.CPUPercent))
	fmt.Fprintf(out, "  Memory  %s %s\n",
		ui.Colorize(ui.PercentColor(report.MemoryPercent, warnThresholdPct, critThresholdPct),
			usageBar(report.MemoryPercent, UsageBarWidth)),
		FormatPercent(report.MemoryPercent))

	fmt.Fprintf(out, "  Fullscreen  %s\n", formatBool(theme, report.Fullscreen))
	fmt.Fprintf(out, "  Meeting     %s\n", formatBool(theme, report.Meeting))

	if verbose {
		fmt.Fprintf(out, "\n%s\n",
			ui.Colorize(theme.Secondary,
				fmt.Sprintf("sampled in %s", FormatExecutionDuration(report.Elapsed))))
	}
}

// formatBool renders a boolean as a colored yes/no marker.
func formatBool(theme ui.Theme, v bool) string {
	if v {
		return ui.Colorize(theme.Warning, "yes")
	}
	return ui.Colorize(theme.Secondary, "no")
}
