// Package metrics provides Prometheus metrics for exports and scheduled
// runs.
//
// The tools are short-lived commands, so metrics are not served over HTTP.
// Instead the Collector writes its registry to a textfile on exit, which a
// node exporter textfile collector can pick up:
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	exporter := export.New(saver, export.WithObserver(collector))
//	defer collector.WriteTextfile()
package metrics
