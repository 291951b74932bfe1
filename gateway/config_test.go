// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		path := writeConfig(t, `
log_level: debug
backend:
  url: https://n8n.example.com
  api_key: env:N8N_API_KEY
`)
		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %q, want debug", config.LogLevel)
		}
		if config.Backend == nil {
			t.Fatal("Backend is nil")
		}
		if config.Backend.URL != "https://n8n.example.com" {
			t.Errorf("Backend.URL = %q", config.Backend.URL)
		}
		if _, ok := config.Backend.APIKey.Source.(EnvCredential); !ok {
			t.Errorf("APIKey.Source = %T, want EnvCredential", config.Backend.APIKey.Source)
		}
		if err := config.Validate(); err != nil {
			t.Errorf("Validate: %v", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		config, err := LoadConfig(writeConfig(t, "{}\n"))
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if config.LogLevel != "info" {
			t.Errorf("LogLevel = %q, want info default", config.LogLevel)
		}
		if config.Backend != nil {
			t.Error("Backend should be nil when not configured")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		if _, err := LoadConfig(writeConfig(t, "log_level: [unclosed\n")); err == nil {
			t.Fatal("expected error for malformed yaml")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("unknown log level", func(t *testing.T) {
		config := &Config{LogLevel: "verbose"}
		err := config.Validate()
		if err == nil {
			t.Fatal("expected error for unknown log level")
		}
		if !strings.Contains(err.Error(), "verbose") {
			t.Errorf("error %q should name the bad level", err)
		}
	})

	t.Run("backend without url", func(t *testing.T) {
		config := &Config{Backend: &BackendConfig{
			APIKey: CredentialSpec{Source: LiteralCredential{Value: "k"}},
		}}
		if err := config.Validate(); err == nil {
			t.Fatal("expected error for backend without url")
		}
	})

	t.Run("backend without api key", func(t *testing.T) {
		config := &Config{Backend: &BackendConfig{URL: "https://n8n.example.com"}}
		if err := config.Validate(); err == nil {
			t.Fatal("expected error for backend without api_key")
		}
	})
}

func TestBackendFromEnvironment(t *testing.T) {
	t.Run("both set", func(t *testing.T) {
		t.Setenv(EnvBackendURL, "https://n8n.example.com")
		t.Setenv(EnvBackendKey, "env-key")
		backend := BackendFromEnvironment()
		if backend == nil {
			t.Fatal("expected backend when both variables are set")
		}
		if backend.URL != "https://n8n.example.com" {
			t.Errorf("URL = %q", backend.URL)
		}
		key, err := backend.APIKey.Source.Read()
		if err != nil {
			t.Fatalf("reading key: %v", err)
		}
		defer key.Close()
		if key.String() != "env-key" {
			t.Errorf("key = %q, want env-key", key.String())
		}
	})

	t.Run("url only", func(t *testing.T) {
		t.Setenv(EnvBackendURL, "https://n8n.example.com")
		t.Setenv(EnvBackendKey, "")
		if BackendFromEnvironment() != nil {
			t.Error("expected nil backend without an API key")
		}
	})

	t.Run("key only", func(t *testing.T) {
		t.Setenv(EnvBackendURL, "")
		t.Setenv(EnvBackendKey, "env-key")
		if BackendFromEnvironment() != nil {
			t.Error("expected nil backend without a URL")
		}
	})
}
