// Package info implements the application metadata endpoint: the
// configuration loader for APP_TITLE/APP_VERSION and the /get_info
// handler that serves them.
package info
