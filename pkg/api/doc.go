// Package api wires the info service together: logging, pod identity,
// the application route table, and the HTTP server lifecycle.
package api
