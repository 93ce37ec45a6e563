// Package telemetry groups the observability packages of the Port VR tools.
//
// # Components
//
//   - logging: slog logger construction with e-mail redaction
//   - metrics: Prometheus export metrics written to a textfile
package telemetry
