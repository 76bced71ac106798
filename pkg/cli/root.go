package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

const (
	name           = "infod"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Version: version,
		Usage:   "Application metadata service with Prometheus instrumentation",
		Description: fmt.Sprintf(`infod - info service

Version: %s
Commit:  %s
Built:   %s

Serves application title/version metadata on /get_info and Prometheus
counters on /metrics, intended to run as a multi-replica Deployment
behind a Kubernetes Service.`, version, commit, date),
		Commands: []*cli.Command{
			serveCmd(),
			envCmd(),
		},
	}
}

// Execute runs the CLI. It loads a local .env file when present (real
// environment variables win) and handles SIGINT/SIGTERM for graceful
// shutdown.
func Execute() {
	// Optional local overrides for development; ignored when absent.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
