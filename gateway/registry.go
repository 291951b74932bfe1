// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/illuminaresolutions/n8n-mcp-server/n8n"
)

// SessionID derives the session identifier for a backend base URL. The
// encoding is a reversible base64url of the normalized URL, not a
// secret: the same URL always yields the same identifier, which makes
// reconnecting idempotent and lets a caller reconstruct the identifier
// from the URL alone. Anyone who knows the URL can therefore name the
// session; acceptable for a single-client stdio process, but do not
// reuse this scheme where sessions need to be unguessable.
func SessionID(baseURL string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(baseURL))
}

// BaseURL decodes a session identifier back to the backend base URL it
// was derived from.
func BaseURL(sessionID string) (string, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(sessionID)
	if err != nil {
		return "", fmt.Errorf("gateway: malformed session id: %w", err)
	}
	return string(decoded), nil
}

// Registry maps session identifiers to live backend connectors. It is
// shared mutable state dispatched to from concurrent callers, so all
// access goes through an RWMutex. Sessions live for the process
// lifetime: there is no expiry, no capacity bound, and no teardown
// operation.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]*n8n.Client
}

// NewRegistry creates an empty registry. Construct one per gateway and
// inject it rather than sharing process-wide state, so tests can run
// isolated instances.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]*n8n.Client)}
}

// Register stores the client under the given session identifier,
// replacing any previous client in place. The displaced client is left
// open: a concurrent dispatch that resolved it before the replacement
// may still be mid-request, and closing it under that caller would
// release the API key it is reading. Sessions are process-lifetime, so
// the displaced key buffer is reclaimed at exit; the leak is bounded by
// the number of reconnects to the same URL.
func (r *Registry) Register(id string, client *n8n.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[id] = client
}

// Resolve returns the client registered under the session identifier.
func (r *Registry) Resolve(id string) (*n8n.Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[id]
	return client, ok
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}
