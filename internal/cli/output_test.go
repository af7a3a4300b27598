package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/DCRepairCenter/sysstatus/internal/ui"
)

func sampleReport() StatusReport {
	return StatusReport{
		Timestamp:     time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		CPUPercent:    37.5,
		MemoryPercent: 82.1,
		Fullscreen:    false,
		Meeting:       true,
		Elapsed:       120 * time.Millisecond,
	}
}

func TestDisplayJSONStatus(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := DisplayJSONStatus(&buf, sampleReport()); err != nil {
		t.Fatalf("DisplayJSONStatus returned unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got := decoded["cpu_percent"]; got != 37.5 {
		t.Errorf("cpu_percent = %v, want 37.5", got)
	}
	if got := decoded["memory_percent"]; got != 82.1 {
		t.Errorf("memory_percent = %v, want 82.1", got)
	}
	if got := decoded["fullscreen"]; got != false {
		t.Errorf("fullscreen = %v, want false", got)
	}
	if got := decoded["meeting"]; got != true {
		t.Errorf("meeting = %v, want true", got)
	}
}

func TestFormatQuietStatus(t *testing.T) {
	t.Parallel()

	got := FormatQuietStatus(sampleReport())
	want := "37.5 82.1 false true"
	if got != want {
		t.Errorf("FormatQuietStatus() = %q, want %q", got, want)
	}
}

func TestDisplayStatus_Dispatch(t *testing.T) {
	// Force the no-color theme so decorated output is stable.
	ui.InitTheme(true)

	tests := []struct {
		name     string
		config   OutputConfig
		contains []string
		excludes []string
	}{
		{
			name:     "json mode",
			config:   OutputConfig{JSON: true},
			contains: []string{`"cpu_percent": 37.5`, `"meeting": true`},
		},
		{
			name:     "quiet mode",
			config:   OutputConfig{Quiet: true},
			contains: []string{"37.5 82.1 false true"},
			excludes: []string{"System Status"},
		},
		{
			name:     "decorated mode",
			config:   OutputConfig{},
			contains: []string{"System Status", "CPU", "Memory", "37.5%", "82.1%", "Meeting", "yes"},
			excludes: []string{"sampled in"},
		},
		{
			name:     "decorated verbose mode",
			config:   OutputConfig{Verbose: true},
			contains: []string{"System Status", "sampled in 120ms"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := DisplayStatus(&buf, sampleReport(), tt.config); err != nil {
				t.Fatalf("DisplayStatus returned unexpected error: %v", err)
			}
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, banned := range tt.excludes {
				if strings.Contains(out, banned) {
					t.Errorf("output unexpectedly contains %q:\n%s", banned, out)
				}
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	if got := FormatPercent(42.25); got != "42.2%" {
		t.Errorf("FormatPercent(42.25) = %q, want %q", got, "42.2%")
	}
	if got := FormatPercent(0); got != "0.0%" {
		t.Errorf("FormatPercent(0) = %q, want %q", got, "0.0%")
	}
}
