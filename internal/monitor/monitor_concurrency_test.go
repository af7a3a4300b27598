package monitor_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/DCRepairCenter/sysstatus/internal/monitor"
)

// instrumentedProbe asserts that the Monitor never allows two refreshes to
// interleave: every Refresh* method trips a guard on entry and clears it on
// exit, flagging a violation if the guard was already held.
type instrumentedProbe struct {
	inRefresh  atomic.Int32
	violations atomic.Int32
	calls      atomic.Int64
}

func (p *instrumentedProbe) enter() {
	if !p.inRefresh.CompareAndSwap(0, 1) {
		p.violations.Add(1)
	}
	p.calls.Add(1)
	// Widen the race window so interleaving, if possible, actually happens.
	time.Sleep(50 * time.Microsecond)
}

func (p *instrumentedProbe) exit() { p.inRefresh.Store(0) }

func (p *instrumentedProbe) RefreshCPU(context.Context) (float64, error) {
	p.enter()
	defer p.exit()
	return 42.0, nil
}

func (p *instrumentedProbe) RefreshMemory(context.Context) (monitor.MemorySample, error) {
	p.enter()
	defer p.exit()
	return monitor.MemorySample{TotalBytes: 8 << 30, UsedBytes: 2 << 30}, nil
}

func (p *instrumentedProbe) RefreshProcesses(context.Context) ([]string, error) {
	p.enter()
	defer p.exit()
	return []string{"explorer", "zoom"}, nil
}

// TestMonitor_ConcurrentCallers hammers a single Monitor from many
// goroutines and asserts that no two refreshes ever interleave and every
// result is within range. Run with -race for full effect.
func TestMonitor_ConcurrentCallers(t *testing.T) {
	probe := &instrumentedProbe{}
	m, err := monitor.New(context.Background(), monitor.WithProbe(probe))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	const (
		workers    = 16
		iterations = 50
	)

	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		worker := w
		g.Go(func() error {
			for i := 0; i < iterations; i++ {
				switch (worker + i) % 4 {
				case 0:
					cpu, err := m.CPUUsage(ctx)
					if err != nil {
						return err
					}
					if cpu < 0 || cpu > 100 {
						t.Errorf("CPUUsage %f out of range", cpu)
					}
				case 1:
					mem, err := m.MemoryUsage(ctx)
					if err != nil {
						return err
					}
					if mem < 0 || mem > 100 {
						t.Errorf("MemoryUsage %f out of range", mem)
					}
				case 2:
					if _, err := m.IsMeetingApp(ctx); err != nil {
						return err
					}
				case 3:
					if err := m.Refresh(ctx); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent caller failed: %v", err)
	}

	if v := probe.violations.Load(); v != 0 {
		t.Errorf("observed %d interleaved refreshes, want 0", v)
	}
	if probe.calls.Load() == 0 {
		t.Fatal("instrumented probe was never exercised")
	}
}
