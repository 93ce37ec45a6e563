package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"portvr/painel/pkg/config"
	"portvr/painel/pkg/export"
)

// Collector records export and scheduler metrics in its own registry.
//
// Metrics:
//   - portvr_export_total: exports by format and outcome
//   - portvr_export_duration_seconds: encode + save duration by format
//   - portvr_export_records_total: records exported by format
//   - portvr_export_bytes_total: bytes written by format
//   - portvr_export_last_success_timestamp_seconds: time of the last success by format
//   - portvr_schedule_runs_total: scheduled runs by job and status
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	exportsTotal  *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	recordsTotal  *prometheus.CounterVec
	bytesTotal    *prometheus.CounterVec
	lastSuccess   *prometheus.GaugeVec
	scheduledRuns *prometheus.CounterVec

	now func() time.Time
}

// NewCollector creates a collector whose metrics are registered with registry.
// A nil registry gets a fresh one.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}

	factory := promauto.With(registry)
	return &Collector{
		config:   cfg,
		registry: registry,
		now:      time.Now,

		exportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "export",
				Name:      "total",
				Help:      "Total number of exports by format and outcome",
			},
			[]string{"format", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: "export",
				Name:      "duration_seconds",
				Help:      "Time spent encoding and saving exports",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"format"},
		),
		recordsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "export",
				Name:      "records_total",
				Help:      "Total number of records exported",
			},
			[]string{"format"},
		),
		bytesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "export",
				Name:      "bytes_total",
				Help:      "Total number of bytes written by exports",
			},
			[]string{"format"},
		),
		lastSuccess: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: "export",
				Name:      "last_success_timestamp_seconds",
				Help:      "Unix time of the last successful export",
			},
			[]string{"format"},
		),
		scheduledRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "schedule",
				Name:      "runs_total",
				Help:      "Total number of scheduled export runs by job and status",
			},
			[]string{"job", "status"},
		),
	}
}

// ObserveExport implements export.Observer.
func (c *Collector) ObserveExport(format export.Format, outcome export.Outcome, records, bytes int, duration time.Duration) {
	if !c.config.Enabled {
		return
	}

	f := string(format)
	c.exportsTotal.WithLabelValues(f, string(outcome)).Inc()
	if outcome != export.OutcomeSuccess {
		return
	}
	c.duration.WithLabelValues(f).Observe(duration.Seconds())
	c.recordsTotal.WithLabelValues(f).Add(float64(records))
	c.bytesTotal.WithLabelValues(f).Add(float64(bytes))
	c.lastSuccess.WithLabelValues(f).Set(float64(c.now().Unix()))
}

// ObserveScheduledRun records the outcome of a scheduled job run.
func (c *Collector) ObserveScheduledRun(job string, err error) {
	if !c.config.Enabled {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	c.scheduledRuns.WithLabelValues(job, status).Inc()
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes all metrics to path in the Prometheus text format,
// for pickup by a node exporter textfile collector. It does nothing when
// metrics are disabled or no path is configured.
func (c *Collector) WriteTextfile() error {
	if !c.config.Enabled || c.config.TextfilePath == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(c.config.TextfilePath, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
