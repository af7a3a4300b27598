// Package metrics exposes system-status readings as Prometheus metrics.
//
// The collector is exposition-only: it implements prometheus.Collector so an
// embedding host can register it with its own registry and serve it however
// it likes. This package deliberately starts no HTTP server.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/DCRepairCenter/sysstatus/internal/logging"
)

// StatusSource is the subset of the monitor surface the collector scrapes.
type StatusSource interface {
	CPUUsage(ctx context.Context) (float64, error)
	MemoryUsage(ctx context.Context) (float64, error)
	IsMeetingApp(ctx context.Context) (bool, error)
}

// Collector translates a StatusSource into Prometheus gauges at scrape time.
// Each Collect triggers fresh narrow refreshes; staleness is bounded by the
// scrape interval of whatever registry the host wires this into.
type Collector struct {
	source StatusSource
	logger logging.Logger

	cpuDesc     *prometheus.Desc
	memDesc     *prometheus.Desc
	meetingDesc *prometheus.Desc

	scrapeErrors prometheus.Counter
}

// Verify interface compliance.
var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a Collector over the given source.
func NewCollector(source StatusSource, logger logging.Logger) *Collector {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Collector{
		source: source,
		logger: logger,
		cpuDesc: prometheus.NewDesc(
			"sysstatus_cpu_percent",
			"Aggregate CPU utilization since the previous refresh (0-100).",
			nil, nil,
		),
		memDesc: prometheus.NewDesc(
			"sysstatus_memory_percent",
			"Physical memory usage (0-100); 0 when total memory is reported as 0.",
			nil, nil,
		),
		meetingDesc: prometheus.NewDesc(
			"sysstatus_meeting_app",
			"1 when a running process matches a meeting-app signature, else 0.",
			nil, nil,
		),
		scrapeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sysstatus_scrape_errors_total",
			Help: "Total number of failed status queries during scrapes.",
		}),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.cpuDesc
	ch <- c.memDesc
	ch <- c.meetingDesc
	c.scrapeErrors.Describe(ch)
}

// Collect implements prometheus.Collector. A failed query skips its gauge
// and bumps the error counter; the remaining gauges are still reported.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()

	if cpu, err := c.source.CPUUsage(ctx); err != nil {
		c.scrapeErrors.Inc()
		c.logger.Error("cpu scrape failed", err)
	} else {
		ch <- prometheus.MustNewConstMetric(c.cpuDesc, prometheus.GaugeValue, cpu)
	}

	if mem, err := c.source.MemoryUsage(ctx); err != nil {
		c.scrapeErrors.Inc()
		c.logger.Error("memory scrape failed", err)
	} else {
		ch <- prometheus.MustNewConstMetric(c.memDesc, prometheus.GaugeValue, mem)
	}

	if meeting, err := c.source.IsMeetingApp(ctx); err != nil {
		c.scrapeErrors.Inc()
		c.logger.Error("meeting-app scrape failed", err)
	} else {
		v := 0.0
		if meeting {
			v = 1.0
		}
		ch <- prometheus.MustNewConstMetric(c.meetingDesc, prometheus.GaugeValue, v)
	}

	c.scrapeErrors.Collect(ch)
}
