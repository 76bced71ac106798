package info

import "os"

const (
	// EnvTitle is the environment variable holding the application title.
	EnvTitle = "APP_TITLE"
	// EnvVersion is the environment variable holding the application version.
	EnvVersion = "APP_VERSION"

	// DefaultTitle is used when APP_TITLE is not set.
	DefaultTitle = "Devops for Cloud Assignment"
	// DefaultVersion is used when APP_VERSION is not set.
	DefaultVersion = "1.0"
)

// Config holds the application metadata served on the info endpoint.
// Values are read once at process start and never mutated; changing them
// requires a restart (typically a Deployment rollout).
type Config struct {
	Title   string `json:"APP_TITLE" yaml:"APP_TITLE"`
	Version string `json:"APP_VERSION" yaml:"APP_VERSION"`
}

// NewConfig reads the application metadata from the environment,
// substituting defaults for unset variables. It never fails.
func NewConfig() *Config {
	return &Config{
		Title:   envOrDefault(EnvTitle, DefaultTitle),
		Version: envOrDefault(EnvVersion, DefaultVersion),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
