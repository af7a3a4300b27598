package monitor

import (
	"context"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// settableProbe is a minimal in-package fake whose readings the properties
// drive directly.
type settableProbe struct {
	cpu   float64
	mem   MemorySample
	procs []string
}

func (p *settableProbe) RefreshCPU(context.Context) (float64, error) { return p.cpu, nil }
func (p *settableProbe) RefreshMemory(context.Context) (MemorySample, error) {
	return p.mem, nil
}
func (p *settableProbe) RefreshProcesses(context.Context) ([]string, error) {
	return p.procs, nil
}

// TestMemoryUsage_PropertyBased verifies that for any pair of counters with
// used <= total the reported percentage stays within [0,100], and that a
// zero total always degenerates to exactly 0.0.
func TestMemoryUsage_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	probe := &settableProbe{}
	m, err := New(context.Background(), WithProbe(probe))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	properties.Property("percentage stays within [0,100]", prop.ForAll(
		func(total, used uint64) bool {
			if used > total {
				used = total
			}
			probe.mem = MemorySample{TotalBytes: total, UsedBytes: used}
			pct, err := m.MemoryUsage(context.Background())
			if err != nil {
				return false
			}
			return pct >= 0.0 && pct <= 100.0
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.Property("zero total resolves to exactly 0.0", prop.ForAll(
		func(used uint64) bool {
			probe.mem = MemorySample{TotalBytes: 0, UsedBytes: used}
			pct, err := m.MemoryUsage(context.Background())
			return err == nil && pct == 0.0
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestSignatureMatching_PropertyBased verifies the substring heuristic:
// embedding any signature anywhere in a process name matches regardless of
// case, and names built from a signature-free alphabet never match.
func TestSignatureMatching_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	sigs := normalizeSignatures(DefaultMeetingSignatures())

	properties.Property("embedded signature always matches", prop.ForAll(
		func(prefix, suffix string, sigIdx int, upper bool) bool {
			sig := sigs[sigIdx%len(sigs)]
			if upper {
				sig = strings.ToUpper(sig)
			}
			return matchesAnySignature(prefix+sig+suffix, sigs)
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.IntRange(0, len(sigs)-1),
		gen.Bool(),
	))

	properties.Property("signature-free names never match", prop.ForAll(
		func(name string) bool {
			lower := strings.ToLower(name)
			for _, sig := range sigs {
				if strings.Contains(lower, sig) {
					return true // generator accidentally produced a signature; vacuously pass
				}
			}
			return !matchesAnySignature(name, sigs)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

// TestClampPercent_PropertyBased pins the clamp helper to its contract.
func TestClampPercent_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("result is always within [0,100]", prop.ForAll(
		func(v float64) bool {
			c := clampPercent(v)
			return c >= 0.0 && c <= 100.0
		},
		gen.Float64(),
	))

	properties.Property("in-range values pass through unchanged", prop.ForAll(
		func(v float64) bool {
			return clampPercent(v) == v
		},
		gen.Float64Range(0.0, 100.0),
	))

	properties.TestingRun(t)
}
