package info

import (
	"log/slog"
	"net/http"

	apperrors "github.com/devopscloud/info-service/pkg/errors"
	"github.com/devopscloud/info-service/pkg/k8s"
	"github.com/devopscloud/info-service/pkg/serializers"
	"github.com/devopscloud/info-service/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// infoRequests counts requests served by the info endpoint. The server
// middleware tracks all routes with method/path/status labels; this is
// the endpoint's own tally.
var infoRequests = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "infod_info_requests_total",
		Help: "Total number of requests served by the info endpoint",
	},
)

// Handler serves the application metadata endpoint.
type Handler struct {
	config *Config
	pod    k8s.PodIdentity
}

// NewHandler creates a Handler serving the given metadata. The pod
// identity is only used for the per-request serving log.
func NewHandler(cfg *Config, pod k8s.PodIdentity) *Handler {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Handler{
		config: cfg,
		pod:    pod,
	}
}

// HandleGetInfo handles GET /get_info. The response body carries exactly
// the configured title and version, keyed by the environment variables
// they were sourced from.
func (h *Handler) HandleGetInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	infoRequests.Inc()

	slog.Info("request served",
		"pod", h.pod.Name,
		"path", r.URL.Path,
	)

	serializers.RespondJSON(w, http.StatusOK, h.config)
}
