package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEnvCommand_JSON(t *testing.T) {
	t.Setenv("APP_TITLE", "Test App")
	t.Setenv("APP_VERSION", "2.3")
	t.Setenv("PORT", "9000")
	t.Setenv("HOSTNAME", "infod-test-pod")
	t.Setenv("KUBECONFIG", "/nonexistent/kubeconfig")

	var buf bytes.Buffer
	cmd := rootCmd()
	cmd.Writer = &buf

	if err := cmd.Run(t.Context(), []string{name, "env", "--format", "json"}); err != nil {
		t.Fatalf("env command failed: %v", err)
	}

	var env effectiveEnv
	if err := json.Unmarshal(buf.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}

	if env.Title != "Test App" || env.Version != "2.3" {
		t.Errorf("unexpected metadata: %+v", env)
	}

	if env.Port != 9000 {
		t.Errorf("expected port 9000, got %d", env.Port)
	}

	if env.Pod.Name != "infod-test-pod" {
		t.Errorf("expected pod name from HOSTNAME, got %q", env.Pod.Name)
	}
}

func TestEnvCommand_YAML(t *testing.T) {
	t.Setenv("APP_TITLE", "")
	t.Setenv("APP_VERSION", "")
	t.Setenv("PORT", "")
	t.Setenv("KUBECONFIG", "/nonexistent/kubeconfig")

	var buf bytes.Buffer
	cmd := rootCmd()
	cmd.Writer = &buf

	if err := cmd.Run(t.Context(), []string{name, "env", "--format", "yaml"}); err != nil {
		t.Fatalf("env command failed: %v", err)
	}

	var env effectiveEnv
	if err := yaml.Unmarshal(buf.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}

	if env.Title != "Devops for Cloud Assignment" || env.Version != "1.0" {
		t.Errorf("expected defaults, got %+v", env)
	}

	if env.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", env.Port)
	}
}

func TestEnvCommand_UnknownFormat(t *testing.T) {
	cmd := rootCmd()
	cmd.Writer = &bytes.Buffer{}

	if err := cmd.Run(t.Context(), []string{name, "env", "--format", "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}
