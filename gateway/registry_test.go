// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"strings"
	"testing"

	"github.com/illuminaresolutions/n8n-mcp-server/lib/secret"
	"github.com/illuminaresolutions/n8n-mcp-server/n8n"
)

// newTestKey creates a locked buffer holding value and arranges for it
// to be released when the test finishes. Close is idempotent, so tests
// that close the buffer themselves are fine.
func newTestKey(t *testing.T, value string) *secret.Buffer {
	t.Helper()
	key, err := secret.NewFromBytes([]byte(value))
	if err != nil {
		t.Fatalf("creating test key: %v", err)
	}
	t.Cleanup(func() { key.Close() })
	return key
}

// newTestClient builds a connector client for baseURL with a throwaway
// API key.
func newTestClient(t *testing.T, baseURL string) *n8n.Client {
	t.Helper()
	client, err := n8n.NewClient(n8n.ClientConfig{
		BaseURL: baseURL,
		APIKey:  newTestKey(t, "test-api-key"),
	})
	if err != nil {
		t.Fatalf("creating test client: %v", err)
	}
	return client
}

func TestSessionID_RoundTrip(t *testing.T) {
	urls := []string{
		"https://n8n.example.com",
		"http://localhost:5678",
		"https://n8n.internal:8443/automation",
	}
	for _, baseURL := range urls {
		t.Run(baseURL, func(t *testing.T) {
			id := SessionID(baseURL)
			if id == "" {
				t.Fatal("SessionID returned empty string")
			}
			if strings.ContainsAny(id, "+/=") {
				t.Errorf("session id %q is not URL-safe", id)
			}
			back, err := BaseURL(id)
			if err != nil {
				t.Fatalf("BaseURL(%q): %v", id, err)
			}
			if back != baseURL {
				t.Errorf("round trip: got %q, want %q", back, baseURL)
			}
		})
	}
}

func TestSessionID_Deterministic(t *testing.T) {
	first := SessionID("https://n8n.example.com")
	second := SessionID("https://n8n.example.com")
	if first != second {
		t.Errorf("same URL produced different ids: %q and %q", first, second)
	}
	other := SessionID("https://other.example.com")
	if first == other {
		t.Error("different URLs produced the same id")
	}
}

func TestBaseURL_Malformed(t *testing.T) {
	_, err := BaseURL("%%%not-base64%%%")
	if err == nil {
		t.Fatal("expected error for malformed session id")
	}
	if !strings.Contains(err.Error(), "malformed session id") {
		t.Errorf("error = %q, want mention of malformed session id", err)
	}
}

func TestRegistry_RegisterAndResolve(t *testing.T) {
	registry := NewRegistry()
	client := newTestClient(t, "https://n8n.example.com")
	id := SessionID(client.BaseURL())

	registry.Register(id, client)

	resolved, ok := registry.Resolve(id)
	if !ok {
		t.Fatal("Resolve did not find registered session")
	}
	if resolved != client {
		t.Error("Resolve returned a different client")
	}
	if got := registry.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}

	if _, ok := registry.Resolve("unknown-session"); ok {
		t.Error("Resolve found a session that was never registered")
	}
}

func TestRegistry_ReplaceKeepsDisplacedClientUsable(t *testing.T) {
	registry := NewRegistry()

	firstKey, err := secret.NewFromBytes([]byte("first-key"))
	if err != nil {
		t.Fatalf("creating key: %v", err)
	}
	t.Cleanup(func() { firstKey.Close() })
	first, err := n8n.NewClient(n8n.ClientConfig{
		BaseURL: "https://n8n.example.com",
		APIKey:  firstKey,
	})
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	second := newTestClient(t, "https://n8n.example.com")

	id := SessionID("https://n8n.example.com")
	registry.Register(id, first)

	// A dispatch that resolved the session before the reconnect holds
	// the first client across the replacement.
	held, ok := registry.Resolve(id)
	if !ok || held != first {
		t.Fatal("Resolve did not return the first client")
	}

	registry.Register(id, second)

	if got := registry.Len(); got != 1 {
		t.Errorf("Len() = %d after reconnect, want 1", got)
	}
	resolved, ok := registry.Resolve(id)
	if !ok || resolved != second {
		t.Error("Resolve should return the replacement client")
	}

	// The displaced client's key must stay readable: the holder may
	// still be mid-request. It is released at process exit, not here.
	if got := firstKey.String(); got != "first-key" {
		t.Errorf("displaced client key = %q, want %q", got, "first-key")
	}
}

func TestRegistry_ReRegisterSameClient(t *testing.T) {
	registry := NewRegistry()
	client := newTestClient(t, "https://n8n.example.com")
	id := SessionID(client.BaseURL())

	registry.Register(id, client)
	registry.Register(id, client)

	if got := registry.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
	resolved, ok := registry.Resolve(id)
	if !ok || resolved != client {
		t.Fatal("Resolve did not return the client after re-registration")
	}
	// Registering the same client twice must not close its key.
	if resolved.BaseURL() == "" {
		t.Error("client unusable after re-registration")
	}
}
