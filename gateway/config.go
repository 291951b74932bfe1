// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Environment variables that seed a default session at startup. Both
// must be set for seeding to happen; otherwise sessions are created
// only through the connect operation.
const (
	EnvBackendURL = "N8N_API_URL"
	EnvBackendKey = "N8N_API_KEY"
)

// Config is the top-level configuration for the server. Everything in
// it is optional: with no config file and no environment variables the
// server starts with an empty registry and waits for connect.
type Config struct {
	// LogLevel sets the minimum level for stderr logging: "debug",
	// "info", "warn", or "error". Defaults to "info".
	LogLevel string `yaml:"log_level"`

	// Backend, when set, seeds a default session at startup by running
	// the same connect path (probe, register) as the connect operation.
	Backend *BackendConfig `yaml:"backend"`
}

// BackendConfig identifies one n8n instance and the credential used to
// reach it.
type BackendConfig struct {
	// URL is the base URL of the n8n instance, without the /api/v1
	// suffix.
	URL string `yaml:"url"`

	// APIKey names where the API key comes from: "env:NAME",
	// "file:PATH", or the literal key itself.
	APIKey CredentialSpec `yaml:"api_key"`
}

// CredentialSpec wraps a CredentialSource so it can be parsed straight
// out of a YAML scalar.
type CredentialSpec struct {
	Source CredentialSource
}

// UnmarshalYAML parses the scalar credential notation. Only scalars are
// accepted; there is no struct form.
func (s *CredentialSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("api_key must be a string (env:NAME, file:PATH, or the literal key)")
	}
	s.Source = ParseCredentialSource(value.Value)
	return nil
}

// LoadConfig loads a configuration from a YAML file and applies
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	return &config, nil
}

// logLevels are the accepted log_level values.
var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.LogLevel != "" && !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("unknown log_level %q (supported: debug, info, warn, error)", c.LogLevel)
	}

	if c.Backend != nil {
		if c.Backend.URL == "" {
			return fmt.Errorf("backend: url is required")
		}
		if c.Backend.APIKey.Source == nil {
			return fmt.Errorf("backend: api_key is required")
		}
	}

	return nil
}

// BackendFromEnvironment builds a backend seed from N8N_API_URL and
// N8N_API_KEY. Returns nil unless both are set: a URL without a key
// (or the reverse) cannot form a session.
func BackendFromEnvironment() *BackendConfig {
	url := os.Getenv(EnvBackendURL)
	if url == "" || os.Getenv(EnvBackendKey) == "" {
		return nil
	}
	return &BackendConfig{
		URL:    url,
		APIKey: CredentialSpec{Source: EnvCredential{Name: EnvBackendKey}},
	}
}

// SeedSession establishes the default session described by backend:
// the same connect path as the connect operation, so a probe failure
// means no session is registered. The caller decides whether that
// failure is fatal; at serve startup it is only a warning, since the
// caller can still connect explicitly.
func (g *Gateway) SeedSession(ctx context.Context, backend *BackendConfig) (string, error) {
	key, err := backend.APIKey.Source.Read()
	if err != nil {
		return "", fmt.Errorf("reading backend credential: %w", err)
	}
	id, _, err := g.ConnectWithKey(ctx, backend.URL, key)
	return id, err
}
