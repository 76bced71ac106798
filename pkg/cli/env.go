package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/devopscloud/info-service/pkg/defaults"
	"github.com/devopscloud/info-service/pkg/info"
	"github.com/devopscloud/info-service/pkg/k8s"
	"github.com/devopscloud/info-service/pkg/serializers"
	"github.com/devopscloud/info-service/pkg/server"
)

// effectiveEnv is the payload printed by the env command: the values the
// server would serve and listen on if started right now.
type effectiveEnv struct {
	Title   string          `json:"title" yaml:"title"`
	Version string          `json:"version" yaml:"version"`
	Port    int             `json:"port" yaml:"port"`
	Pod     k8s.PodIdentity `json:"pod" yaml:"pod"`
}

func envCmd() *cli.Command {
	return &cli.Command{
		Name:  "env",
		Usage: "Print the effective configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   string(serializers.FormatJSON),
				Usage:   "Output format (json, yaml)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializers.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			appCfg := info.NewConfig()
			srvCfg := server.NewConfig()

			lookupCtx, cancel := context.WithTimeout(ctx, defaults.K8sPodLookupTimeout)
			defer cancel()

			// Best effort; off-cluster this is just the hostname.
			var client k8s.Interface
			if c, err := k8s.GetKubeClient(); err == nil {
				client = c
			}

			env := effectiveEnv{
				Title:   appCfg.Title,
				Version: appCfg.Version,
				Port:    srvCfg.Port,
				Pod:     k8s.ResolveIdentity(lookupCtx, client),
			}

			return serializers.NewWriter(outFormat, cmd.Root().Writer).Serialize(env)
		},
	}
}
