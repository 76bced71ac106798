// Package cli implements the infod command line interface.
//
// Commands:
//
//	serve  run the HTTP server until interrupted
//	env    print the effective configuration (json or yaml)
//
// A .env file in the working directory is loaded at startup for local
// development; variables already present in the environment win.
package cli
