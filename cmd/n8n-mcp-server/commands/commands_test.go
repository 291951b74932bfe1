// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/illuminaresolutions/n8n-mcp-server/cmd/n8n-mcp-server/cli/doctor"
	"github.com/illuminaresolutions/n8n-mcp-server/gateway"
)

func TestArgumentBag(t *testing.T) {
	t.Run("inline JSONC is normalized", func(t *testing.T) {
		params := &invokeParams{
			Args: `{
				// the workflow to fetch
				workflowId: "wf-1",
				active: true, // trailing comma next line
			}`,
		}
		bag, err := argumentBag(params)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(bag) == "" {
			t.Fatal("expected a normalized argument bag")
		}
		var decoded map[string]any
		if err := json.Unmarshal(bag, &decoded); err != nil {
			t.Fatalf("normalized bag is not valid JSON: %v", err)
		}
		if decoded["workflowId"] != "wf-1" {
			t.Fatalf("workflowId: got %v", decoded["workflowId"])
		}
	})

	t.Run("args file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "args.jsonc")
		if err := os.WriteFile(path, []byte(`{name: "W1"}`), 0o600); err != nil {
			t.Fatal(err)
		}
		bag, err := argumentBag(&invokeParams{ArgsFile: path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(bag, &decoded); err != nil {
			t.Fatalf("normalized bag is not valid JSON: %v", err)
		}
		if decoded["name"] != "W1" {
			t.Fatalf("name: got %v", decoded["name"])
		}
	})

	t.Run("both sources rejected", func(t *testing.T) {
		_, err := argumentBag(&invokeParams{Args: "{}", ArgsFile: "args.json"})
		if err == nil {
			t.Fatal("expected mutual-exclusion error")
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := argumentBag(&invokeParams{Args: "not an object at all"})
		if err == nil {
			t.Fatal("expected error for invalid JSON")
		}
	})

	t.Run("absent bag is nil", func(t *testing.T) {
		bag, err := argumentBag(&invokeParams{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bag != nil {
			t.Fatalf("expected nil bag, got %q", bag)
		}
	})
}

func TestDoctorChecks(t *testing.T) {
	t.Run("no backend configured", func(t *testing.T) {
		t.Setenv(gateway.EnvBackendURL, "")
		t.Setenv(gateway.EnvBackendKey, "")

		results := doctorChecks(context.Background(), "")
		if !doctor.Healthy(results) {
			t.Fatal("missing backend is a warning, not a failure")
		}
		byName := resultsByName(results)
		if byName["backend"].Status != doctor.StatusWarn {
			t.Fatalf("backend: got %s, want warn", byName["backend"].Status)
		}
		if byName["credential"].Status != doctor.StatusSkip {
			t.Fatalf("credential: got %s, want skip", byName["credential"].Status)
		}
		if byName["probe"].Status != doctor.StatusSkip {
			t.Fatalf("probe: got %s, want skip", byName["probe"].Status)
		}
	})

	t.Run("healthy environment backend", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/v1/workflows" {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data": []}`))
		}))
		defer backend.Close()
		t.Setenv(gateway.EnvBackendURL, backend.URL)
		t.Setenv(gateway.EnvBackendKey, "test-key")

		results := doctorChecks(context.Background(), "")
		if !doctor.Healthy(results) {
			t.Fatalf("expected healthy report, got %+v", results)
		}
		byName := resultsByName(results)
		if byName["probe"].Status != doctor.StatusPass {
			t.Fatalf("probe: got %s, want pass", byName["probe"].Status)
		}
	})

	t.Run("rejected key fails the probe", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"unauthorized"}`))
		}))
		defer backend.Close()
		t.Setenv(gateway.EnvBackendURL, backend.URL)
		t.Setenv(gateway.EnvBackendKey, "revoked-key")

		results := doctorChecks(context.Background(), "")
		if doctor.Healthy(results) {
			t.Fatal("expected unhealthy report for rejected key")
		}
		byName := resultsByName(results)
		if byName["probe"].Status != doctor.StatusFail {
			t.Fatalf("probe: got %s, want fail", byName["probe"].Status)
		}
		if byName["probe"].Hint == "" {
			t.Fatal("probe failure should carry a hint")
		}
	})

	t.Run("unreadable config fails immediately", func(t *testing.T) {
		results := doctorChecks(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
		if doctor.Healthy(results) {
			t.Fatal("expected unhealthy report for missing config")
		}
		if len(results) != 1 || results[0].Name != "config" {
			t.Fatalf("expected a single config failure, got %+v", results)
		}
	})
}

func resultsByName(results []doctor.Result) map[string]doctor.Result {
	byName := make(map[string]doctor.Result, len(results))
	for _, result := range results {
		byName[result.Name] = result
	}
	return byName
}
