// Package cli implements the command-line presentation layer.
//
// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their
// behavior:
//
//   - Gather* functions query the monitor and return data without performing
//     any I/O on the terminal. Examples: [GatherStatus].
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayStatus], [DisplayQuietStatus], [DisplayJSONStatus].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatPercent], [FormatExecutionDuration].
package cli

import (
	"context"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
)

// StatusSource is the subset of monitor operations the presenter consumes.
// Using an interface here decouples the presentation layer from the concrete
// monitor implementation and allows tests to substitute a fake.
type StatusSource interface {
	// CPUUsage returns the current total CPU utilization as a percentage.
	CPUUsage(ctx context.Context) (float64, error)
	// MemoryUsage returns the current memory utilization as a percentage.
	MemoryUsage(ctx context.Context) (float64, error)
	// IsFullscreen reports whether the foreground window covers the screen.
	IsFullscreen(ctx context.Context) (bool, error)
	// IsMeetingApp reports whether a known meeting application is running.
	IsMeetingApp(ctx context.Context) (bool, error)
}

// StatusReport aggregates one complete snapshot of the system state.
// JSON tags define the machine-readable output contract of the --json flag.
type StatusReport struct {
	// Timestamp records when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`
	// CPUPercent is the total CPU utilization in [0, 100].
	CPUPercent float64 `json:"cpu_percent"`
	// MemoryPercent is the memory utilization in [0, 100].
	MemoryPercent float64 `json:"memory_percent"`
	// Fullscreen reports whether the foreground window covers the screen.
	Fullscreen bool `json:"fullscreen"`
	// Meeting reports whether a known meeting application is running.
	Meeting bool `json:"meeting"`
	// Elapsed is the wall-clock time spent gathering the snapshot.
	Elapsed time.Duration `json:"elapsed_ns"`
}

// GatherStatus queries all monitor operations and assembles a StatusReport.
// The queries run through an errgroup so a context cancellation aborts the
// whole gather and the first failing query is reported. The monitor itself
// serializes concurrent access internally.
//
// Parameters:
//   - ctx: The context controlling cancellation of the gather.
//   - src: The monitor to query.
//
// Returns:
//   - StatusReport: The assembled snapshot (zero value on error).
//   - error: The first query error encountered, or nil.
func GatherStatus(ctx context.Context, src StatusSource) (StatusReport, error) {
	start := time.Now()
	var report StatusReport

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := src.CPUUsage(gctx)
		if err != nil {
			return err
		}
		report.CPUPercent = v
		return nil
	})
	g.Go(func() error {
		v, err := src.MemoryUsage(gctx)
		if err != nil {
			return err
		}
		report.MemoryPercent = v
		return nil
	})
	g.Go(func() error {
		v, err := src.IsFullscreen(gctx)
		if err != nil {
			return err
		}
		report.Fullscreen = v
		return nil
	})
	g.Go(func() error {
		v, err := src.IsMeetingApp(gctx)
		if err != nil {
			return err
		}
		report.Meeting = v
		return nil
	})

	if err := g.Wait(); err != nil {
		return StatusReport{}, err
	}

	report.Timestamp = time.Now()
	report.Elapsed = time.Since(start)
	return report, nil
}

// GatherStatusWithSpinner runs GatherStatus while animating a spinner on out.
// The spinner is only useful on interactive terminals; callers decide whether
// to use this variant or the plain GatherStatus.
func GatherStatusWithSpinner(ctx context.Context, src StatusSource, out io.Writer) (StatusReport, error) {
	sp := newSpinner(out)
	sp.UpdateSuffix(" Sampling system state...")
	sp.Start()
	defer sp.Stop()
	return GatherStatus(ctx, src)
}
