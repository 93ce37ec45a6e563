// Package logging builds the slog logger used across the Port VR tools.
//
// Logs are written as JSON, logfmt-style text or compact console text. When
// PII redaction is enabled, e-mail addresses in string attributes are masked
// (admin@portvr.com becomes a***@portvr.com) and attributes whose key looks
// like a secret are replaced with ***.
//
//	logger, err := logging.New(logging.Config{Level: "debug", Format: "json", RedactPII: true})
//	slog.SetDefault(logger)
package logging
