package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/devopscloud/info-service/pkg/defaults"
	"github.com/devopscloud/info-service/pkg/info"
	"github.com/devopscloud/info-service/pkg/k8s"
	"github.com/devopscloud/info-service/pkg/logging"
	"github.com/devopscloud/info-service/pkg/server"
)

const (
	name           = "info-service"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/devopscloud/info-service/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Options carries CLI overrides for Serve.
type Options struct {
	// Port overrides the PORT env var when non-zero.
	Port int
	// LogLevel overrides LOG_LEVEL when non-empty.
	LogLevel string
}

// Serve starts the info service and blocks until ctx is cancelled.
// It configures logging, resolves the serving pod identity, sets up
// routes, and handles graceful shutdown.
func Serve(ctx context.Context, opts Options) error {
	if opts.LogLevel != "" {
		logging.SetDefaultStructuredLoggerWithLevel(name, version, opts.LogLevel)
	} else {
		logging.SetDefaultStructuredLogger(name, version)
	}

	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	pod := resolvePod(ctx)
	slog.Info("serving pod",
		"pod", pod.Name,
		"namespace", pod.Namespace,
		"node", pod.Node,
	)

	cfg := info.NewConfig()
	h := info.NewHandler(cfg, pod)

	routes := map[string]http.HandlerFunc{
		"/get_info": h.HandleGetInfo,
	}

	srvCfg := server.NewConfig()
	srvCfg.Name = name
	srvCfg.Version = cfg.Version
	srvCfg.Handlers = routes
	if opts.Port > 0 {
		srvCfg.Port = opts.Port
	}

	s := server.New(server.WithConfig(srvCfg))

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// resolvePod resolves the serving pod identity, degrading to the
// HOSTNAME-derived name when no cluster is reachable.
func resolvePod(ctx context.Context) k8s.PodIdentity {
	lookupCtx, cancel := context.WithTimeout(ctx, defaults.K8sPodLookupTimeout)
	defer cancel()

	client, err := k8s.GetKubeClient()
	if err != nil {
		slog.Debug("no kubernetes client available", "error", err)
		return k8s.ResolveIdentity(lookupCtx, nil)
	}

	return k8s.ResolveIdentity(lookupCtx, client)
}
