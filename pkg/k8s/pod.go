package k8s

import (
	"context"
	"log/slog"
	"os"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// UnknownPodName is reported when the pod name cannot be determined,
	// typically when running outside a cluster.
	UnknownPodName = "unknown-pod"

	namespaceFile = "/var/run/secrets/kubernetes.io/serviceaccount/namespace"
)

// PodIdentity describes the pod serving this process. Name is always set;
// Namespace and Node are populated only when the API server could be
// queried at startup.
type PodIdentity struct {
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Node      string `json:"node,omitempty" yaml:"node,omitempty"`
}

// PodName returns the name of the pod running this process. Kubernetes
// sets HOSTNAME to the pod name.
func PodName() string {
	if name := os.Getenv("HOSTNAME"); name != "" {
		return name
	}
	return UnknownPodName
}

// Namespace returns the pod's namespace from POD_NAMESPACE (downward API)
// or the mounted service account, empty when neither is available.
func Namespace() string {
	if ns := os.Getenv("POD_NAMESPACE"); ns != "" {
		return ns
	}
	if data, err := os.ReadFile(namespaceFile); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

// ResolveIdentity resolves the serving pod's identity, enriching it with
// namespace and node name when a client and namespace are available.
// Lookup failure degrades to the name-only identity, never an error.
func ResolveIdentity(ctx context.Context, client Interface) PodIdentity {
	id := PodIdentity{Name: PodName()}

	ns := Namespace()
	if client == nil || ns == "" || id.Name == UnknownPodName {
		return id
	}

	pod, err := client.CoreV1().Pods(ns).Get(ctx, id.Name, metav1.GetOptions{})
	if err != nil {
		slog.Debug("pod metadata lookup failed",
			"pod", id.Name,
			"namespace", ns,
			"error", err,
		)
		return id
	}

	id.Namespace = pod.Namespace
	id.Node = pod.Spec.NodeName

	return id
}
