package monitor

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"

	"github.com/kbinani/screenshot"
)

// ErrDisplayUnsupported is returned by DisplayProbe methods on platforms
// that cannot answer the query. The Monitor maps it to the defined degraded
// result (IsFullscreen == false) instead of an error.
var ErrDisplayUnsupported = errors.New("display query not supported")

// BorderTolerancePx is the per-edge slack, in pixels, allowed when comparing
// the foreground window rectangle against the screen rectangle. Some window
// managers report fullscreen windows a few pixels larger or smaller than the
// display due to OS-added borders.
const BorderTolerancePx = 2

// CoversScreen reports whether the window rectangle covers the screen
// rectangle, allowing up to tolerance pixels of slack on each edge.
func CoversScreen(window, screen image.Rectangle, tolerance int) bool {
	if window.Empty() || screen.Empty() {
		return false
	}
	return window.Min.X <= screen.Min.X+tolerance &&
		window.Min.Y <= screen.Min.Y+tolerance &&
		window.Max.X >= screen.Max.X-tolerance &&
		window.Max.Y >= screen.Max.Y-tolerance
}

// screenshotDisplayProbe answers screen-geometry queries via the screenshot
// library. Foreground-window enumeration is a platform capability this
// project has never shipped (see IsFullscreen), so ForegroundWindowBounds
// reports unsupported everywhere.
type screenshotDisplayProbe struct{}

// Verify interface compliance.
var _ DisplayProbe = screenshotDisplayProbe{}

// NewDisplayProbe returns the default DisplayProbe for this platform.
func NewDisplayProbe() DisplayProbe {
	return screenshotDisplayProbe{}
}

// ForegroundWindowBounds always reports unsupported.
func (screenshotDisplayProbe) ForegroundWindowBounds(_ context.Context) (image.Rectangle, error) {
	return image.Rectangle{}, fmt.Errorf("foreground window bounds on %s: %w", runtime.GOOS, ErrDisplayUnsupported)
}

// ScreenBounds returns the bounding rectangle of the primary display.
func (screenshotDisplayProbe) ScreenBounds(_ context.Context) (image.Rectangle, error) {
	if screenshot.NumActiveDisplays() < 1 {
		return image.Rectangle{}, fmt.Errorf("no active displays: %w", ErrDisplayUnsupported)
	}
	return screenshot.GetDisplayBounds(0), nil
}
