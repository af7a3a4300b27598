package metrics

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/DCRepairCenter/sysstatus/internal/logging"
)

// fakeSource returns canned readings, optionally failing a subset of queries.
type fakeSource struct {
	cpu        float64
	mem        float64
	meeting    bool
	cpuErr     error
	memErr     error
	meetingErr error
}

func (f *fakeSource) CPUUsage(context.Context) (float64, error)    { return f.cpu, f.cpuErr }
func (f *fakeSource) MemoryUsage(context.Context) (float64, error) { return f.mem, f.memErr }
func (f *fakeSource) IsMeetingApp(context.Context) (bool, error)   { return f.meeting, f.meetingErr }

func quietLogger() logging.Logger {
	return logging.NewLogger(io.Discard, "test")
}

func TestCollector_HealthyScrape(t *testing.T) {
	source := &fakeSource{cpu: 42.5, mem: 61.25, meeting: true}
	c := NewCollector(source, quietLogger())

	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	expected := `
# HELP sysstatus_cpu_percent Aggregate CPU utilization since the previous refresh (0-100).
# TYPE sysstatus_cpu_percent gauge
sysstatus_cpu_percent 42.5
# HELP sysstatus_meeting_app 1 when a running process matches a meeting-app signature, else 0.
# TYPE sysstatus_meeting_app gauge
sysstatus_meeting_app 1
# HELP sysstatus_memory_percent Physical memory usage (0-100); 0 when total memory is reported as 0.
# TYPE sysstatus_memory_percent gauge
sysstatus_memory_percent 61.25
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"sysstatus_cpu_percent", "sysstatus_memory_percent", "sysstatus_meeting_app")
	if err != nil {
		t.Errorf("unexpected gather result: %v", err)
	}
}

func TestCollector_MeetingGaugeZero(t *testing.T) {
	source := &fakeSource{meeting: false}
	c := NewCollector(source, quietLogger())

	if got := testutil.CollectAndCount(c, "sysstatus_meeting_app"); got != 1 {
		t.Fatalf("expected 1 meeting gauge, got %d", got)
	}

	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	expected := `
# HELP sysstatus_meeting_app 1 when a running process matches a meeting-app signature, else 0.
# TYPE sysstatus_meeting_app gauge
sysstatus_meeting_app 0
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "sysstatus_meeting_app"); err != nil {
		t.Errorf("unexpected gather result: %v", err)
	}
}

func TestCollector_FailedQuerySkipsGaugeAndCounts(t *testing.T) {
	source := &fakeSource{cpu: 10, mem: 20, cpuErr: errors.New("counters unavailable")}
	c := NewCollector(source, quietLogger())

	if got := testutil.CollectAndCount(c, "sysstatus_cpu_percent"); got != 0 {
		t.Errorf("failed cpu query should emit no cpu gauge, got %d", got)
	}
	if got := testutil.CollectAndCount(c, "sysstatus_memory_percent"); got != 1 {
		t.Errorf("memory gauge should still be reported, got %d", got)
	}
	if got := testutil.ToFloat64(c.scrapeErrors); got < 1 {
		t.Errorf("scrape error counter should have incremented, got %f", got)
	}
}

func TestCollector_Describe(t *testing.T) {
	c := NewCollector(&fakeSource{}, quietLogger())

	ch := make(chan *prometheus.Desc, 8)
	c.Describe(ch)
	close(ch)

	count := 0
	for range ch {
		count++
	}
	if count != 4 {
		t.Errorf("expected 4 descriptors (3 gauges + error counter), got %d", count)
	}
}
