package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/devopscloud/info-service/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP server until interrupted",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (overrides the PORT environment variable)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error); overrides LOG_LEVEL",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve(ctx, api.Options{
				Port:     int(cmd.Int("port")),
				LogLevel: cmd.String("log-level"),
			})
		},
	}
}
