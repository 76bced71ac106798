// Package logging provides structured logging utilities for the info service.
//
// # Overview
//
// This package wraps the standard library slog package with service-wide
// defaults and conventions: JSON output to stderr, environment-based log
// level configuration, module/version context on every record, and source
// location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("infod", version)
//
//	    // Use slog as normal
//	    slog.Info("request served", "pod", podName)
//	    slog.Error("server exited", "error", err)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("infod", version, "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug infod serve
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server listening",
//	    "module": "info-service",
//	    "version": "1.0",
//	    "port": 8000
//	}
package logging
