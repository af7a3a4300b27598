package monitor

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// gopsutilProbe is the production ResourceProbe, backed by gopsutil's
// platform-specific counter and process readers.
type gopsutilProbe struct{}

// Verify interface compliance.
var _ ResourceProbe = gopsutilProbe{}

// NewGopsutilProbe returns the production ResourceProbe.
func NewGopsutilProbe() ResourceProbe {
	return gopsutilProbe{}
}

// RefreshCPU samples aggregate CPU utilization. Interval 0 means "busy
// fraction since the previous call", matching the poll-on-demand contract:
// the very first sample after construction reflects the window since the
// initial scan.
func (gopsutilProbe) RefreshCPU(ctx context.Context) (float64, error) {
	pcts, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, err
	}
	if len(pcts) == 0 {
		return 0, nil
	}
	return pcts[0], nil
}

// RefreshMemory reads physical memory counters.
func (gopsutilProbe) RefreshMemory(ctx context.Context) (MemorySample, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemorySample{}, err
	}
	return MemorySample{TotalBytes: vm.Total, UsedBytes: vm.Used}, nil
}

// RefreshProcesses enumerates running processes and collects their names.
// Processes that exit mid-scan (or whose names are unreadable due to
// privileges) are skipped rather than failing the whole enumeration.
func (gopsutilProbe) RefreshProcesses(ctx context.Context) ([]string, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
