package monitor

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/DCRepairCenter/sysstatus/internal/errors"
	"github.com/DCRepairCenter/sysstatus/internal/logging"
)

// tracerName identifies this instrumentation scope to the otel provider.
const tracerName = "github.com/DCRepairCenter/sysstatus/internal/monitor"

// Monitor answers system-status queries by polling OS counters on demand.
// Zero caching: every read re-queries the OS through the probe. The
// zero value is not usable; construct with New.
//
// The mutex is held for the duration of each refresh+read so a reading is
// never assembled from two interleaved refreshes.
type Monitor struct {
	mu         sync.Mutex
	probe      ResourceProbe
	display    DisplayProbe
	signatures []string
	logger     logging.Logger
	tracer     trace.Tracer
}

// Option configures a Monitor during construction.
type Option func(*Monitor)

// WithProbe substitutes the OS resource probe. Used by tests and by
// embedders that already own a sampling facility.
func WithProbe(p ResourceProbe) Option {
	return func(m *Monitor) { m.probe = p }
}

// WithDisplayProbe substitutes the display probe.
func WithDisplayProbe(p DisplayProbe) Option {
	return func(m *Monitor) { m.display = p }
}

// WithMeetingSignatures overrides the meeting-app signature set. Signatures
// are matched case-insensitively as substrings of process names.
func WithMeetingSignatures(signatures []string) Option {
	return func(m *Monitor) { m.signatures = normalizeSignatures(signatures) }
}

// WithLogger sets the logger. Defaults to a no-op-level default logger.
func WithLogger(l logging.Logger) Option {
	return func(m *Monitor) { m.logger = l }
}

// WithTracer sets the otel tracer. Defaults to the global provider's tracer.
func WithTracer(t trace.Tracer) Option {
	return func(m *Monitor) { m.tracer = t }
}

// New constructs a Monitor and performs the full initial scan so the first
// CPU reading has a reference window. A failed initial scan surfaces as an
// InitializationError.
func New(ctx context.Context, opts ...Option) (*Monitor, error) {
	m := &Monitor{
		signatures: normalizeSignatures(defaultMeetingSignatures),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.probe == nil {
		m.probe = NewGopsutilProbe()
	}
	if m.display == nil {
		m.display = NewDisplayProbe()
	}
	if m.logger == nil {
		m.logger = logging.NewDefaultLogger()
	}
	if m.tracer == nil {
		m.tracer = otel.Tracer(tracerName)
	}

	if err := m.Refresh(ctx); err != nil {
		return nil, apperrors.InitializationError{Cause: err}
	}
	m.logger.Debug("monitor initialized",
		logging.Int("signatures", len(m.signatures)))
	return m, nil
}

// CPUUsage refreshes only the CPU counters and returns the aggregate
// (global, not per-core) utilization since the previous refresh, in [0,100].
func (m *Monitor) CPUUsage(ctx context.Context) (float64, error) {
	ctx, span := m.tracer.Start(ctx, "monitor.CPUUsage")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	pct, err := m.probe.RefreshCPU(ctx)
	if err != nil {
		return 0, apperrors.NewQueryError("cpu", err)
	}
	pct = clampPercent(pct)
	span.SetAttributes(attribute.Float64("cpu.percent", pct))
	return pct, nil
}

// MemoryUsage refreshes the memory counters and returns used/total as a
// percentage in [0,100]. A reported total of zero resolves to 0.0 — a
// defined degenerate result, not an error.
func (m *Monitor) MemoryUsage(ctx context.Context) (float64, error) {
	ctx, span := m.tracer.Start(ctx, "monitor.MemoryUsage")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	sample, err := m.probe.RefreshMemory(ctx)
	if err != nil {
		return 0, apperrors.NewQueryError("memory", err)
	}
	if sample.TotalBytes == 0 {
		return 0.0, nil
	}
	pct := clampPercent(float64(sample.UsedBytes) / float64(sample.TotalBytes) * 100.0)
	span.SetAttributes(attribute.Float64("memory.percent", pct))
	return pct, nil
}

// IsFullscreen reports whether the active foreground window covers the
// primary display. On platforms where foreground-window enumeration is
// unsupported (currently all of them) it returns false: intentional
// degraded behavior, not an error.
func (m *Monitor) IsFullscreen(ctx context.Context) (bool, error) {
	ctx, span := m.tracer.Start(ctx, "monitor.IsFullscreen")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	window, err := m.display.ForegroundWindowBounds(ctx)
	if err != nil {
		if errors.Is(err, ErrDisplayUnsupported) {
			m.logger.Debug("fullscreen detection unavailable", logging.Err(err))
			return false, nil
		}
		return false, apperrors.NewQueryError("display", err)
	}
	screen, err := m.display.ScreenBounds(ctx)
	if err != nil {
		if errors.Is(err, ErrDisplayUnsupported) {
			return false, nil
		}
		return false, apperrors.NewQueryError("display", err)
	}

	full := CoversScreen(window, screen, BorderTolerancePx)
	span.SetAttributes(attribute.Bool("display.fullscreen", full))
	return full, nil
}

// IsMeetingApp refreshes the full process list and reports whether any
// process name contains one of the configured meeting-app signatures
// (case-insensitive, first match wins). Best-effort heuristic: false
// positives and negatives are possible and accepted.
func (m *Monitor) IsMeetingApp(ctx context.Context) (bool, error) {
	ctx, span := m.tracer.Start(ctx, "monitor.IsMeetingApp")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	names, err := m.probe.RefreshProcesses(ctx)
	if err != nil {
		return false, apperrors.NewQueryError("processes", err)
	}
	span.SetAttributes(attribute.Int("processes.count", len(names)))
	for _, name := range names {
		if matchesAnySignature(name, m.signatures) {
			return true, nil
		}
	}
	return false, nil
}

// Refresh forces a full resync of all tracked counters (CPU, memory,
// process list). Subsequent reads observe this refreshed state until
// overwritten by another refresh.
func (m *Monitor) Refresh(ctx context.Context) error {
	ctx, span := m.tracer.Start(ctx, "monitor.Refresh")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.probe.RefreshCPU(ctx); err != nil {
		return apperrors.NewQueryError("cpu", err)
	}
	if _, err := m.probe.RefreshMemory(ctx); err != nil {
		return apperrors.NewQueryError("memory", err)
	}
	if _, err := m.probe.RefreshProcesses(ctx); err != nil {
		return apperrors.NewQueryError("processes", err)
	}
	return nil
}

// MeetingSignatures returns a copy of the active signature set.
func (m *Monitor) MeetingSignatures() []string {
	out := make([]string, len(m.signatures))
	copy(out, m.signatures)
	return out
}

// clampPercent bounds v to [0,100]. OS counters occasionally report slightly
// out-of-range values around refresh boundaries.
func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
