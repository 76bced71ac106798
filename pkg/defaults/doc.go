// Package defaults provides centralized configuration constants for the
// info service.
//
// This package defines the timeout values used across the codebase.
// Centralizing these values ensures consistency and makes tuning easier.
package defaults
