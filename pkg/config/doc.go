// Package config provides configuration management for the Port VR panel
// tools.
//
// Configuration is read from an optional YAML file (portvr.yaml by default),
// completed with defaults and overridden by environment variables:
//
//	cfg, err := config.LoadConfigWithEnvOverrides("portvr.yaml")
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention PORTVR_SECTION_FIELD:
//
//   - PORTVR_EXPORT_OUTPUT_DIR overrides export.output_dir
//   - PORTVR_SESSION_BACKEND overrides session.backend
//   - PORTVR_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// # Configuration Precedence
//
//  1. Default values (defined in defaults.go)
//  2. Values from the YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Example Configuration
//
//	export:
//	  output_dir: "exports"
//	  default_format: "xlsx"
//	session:
//	  backend: "sqlite"
//	  sqlite:
//	    path: "data/session.db"
//	schedule:
//	  jobs:
//	    - cron: "0 3 * * *"
//	      dataset: "history"
//	      format: "xlsx"
//	telemetry:
//	  logging:
//	    level: "info"
//	    format: "text"
package config
