package monitor_test

import (
	"context"
	"testing"

	"github.com/DCRepairCenter/sysstatus/internal/monitor"
)

// These tests exercise the production gopsutil probe against the live
// system, mirroring the range invariants the mocked tests pin down.

func TestRealProbe_Ranges(t *testing.T) {
	ctx := context.Background()
	m, err := monitor.New(ctx)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	cpu, err := m.CPUUsage(ctx)
	if err != nil {
		t.Fatalf("CPUUsage failed: %v", err)
	}
	if cpu < 0 || cpu > 100 {
		t.Errorf("CPUUsage out of range: %f", cpu)
	}

	mem, err := m.MemoryUsage(ctx)
	if err != nil {
		t.Fatalf("MemoryUsage failed: %v", err)
	}
	if mem <= 0 || mem > 100 {
		t.Errorf("expected MemoryUsage in (0,100] on a running system, got %f", mem)
	}
}

func TestRealProbe_RefreshThenRead(t *testing.T) {
	ctx := context.Background()
	m, err := monitor.New(ctx)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := m.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if _, err := m.CPUUsage(ctx); err != nil {
		t.Errorf("CPUUsage after Refresh failed: %v", err)
	}
	if _, err := m.IsMeetingApp(ctx); err != nil {
		t.Errorf("IsMeetingApp failed: %v", err)
	}
}

func TestRealProbe_ProcessEnumeration(t *testing.T) {
	probe := monitor.NewGopsutilProbe()
	names, err := probe.RefreshProcesses(context.Background())
	if err != nil {
		t.Fatalf("RefreshProcesses failed: %v", err)
	}
	if len(names) == 0 {
		t.Error("expected at least one running process")
	}
}
