// Package errors provides structured error types shared across the info
// service. Errors carry a stable ErrorCode for programmatic handling (and
// for mapping onto HTTP error responses in pkg/server), a human-readable
// message, an optional wrapped cause, and optional debugging context.
package errors
