// Package k8s provides Kubernetes integration for the info service:
// clientset construction with automatic kubeconfig/in-cluster discovery,
// and resolution of the serving pod's identity for request logging.
package k8s
