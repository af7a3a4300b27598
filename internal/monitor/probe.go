//go:generate mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks

package monitor

import (
	"context"
	"image"
)

// MemorySample holds the memory counters reported by a single refresh.
type MemorySample struct {
	// TotalBytes is the total physical memory reported by the OS.
	TotalBytes uint64
	// UsedBytes is the memory currently in use.
	UsedBytes uint64
}

// ResourceProbe abstracts the operating system's facility for reporting
// process lists and memory/CPU counters. Each method performs a narrow
// refresh of the corresponding counter group and returns the refreshed
// values; callers are expected to serialize access (the Monitor does).
//
// The production implementation is backed by gopsutil; tests substitute
// mocks so monitor logic can be verified without real OS facilities.
type ResourceProbe interface {
	// RefreshCPU re-reads the CPU counters and returns the aggregate busy
	// percentage across all logical cores since the previous refresh.
	RefreshCPU(ctx context.Context) (float64, error)

	// RefreshMemory re-reads the memory counters.
	RefreshMemory(ctx context.Context) (MemorySample, error)

	// RefreshProcesses re-enumerates running processes and returns their
	// names. Iteration order is unspecified.
	RefreshProcesses(ctx context.Context) ([]string, error)
}

// DisplayProbe abstracts foreground-window and screen geometry queries.
// Platforms lacking a capability return ErrUnsupported from the
// corresponding method, which the Monitor treats as a defined degraded
// result rather than an error.
type DisplayProbe interface {
	// ForegroundWindowBounds returns the bounding rectangle of the active
	// foreground window.
	ForegroundWindowBounds(ctx context.Context) (image.Rectangle, error)

	// ScreenBounds returns the bounding rectangle of the primary display.
	ScreenBounds(ctx context.Context) (image.Rectangle, error)
}
