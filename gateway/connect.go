// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"

	"github.com/illuminaresolutions/n8n-mcp-server/lib/secret"
	"github.com/illuminaresolutions/n8n-mcp-server/n8n"
)

type connectParams struct {
	URL    string `json:"url" desc:"base URL of the n8n instance, for example https://n8n.example.com" required:"true"`
	APIKey string `json:"apiKey" desc:"n8n API key with access to the admin REST API" required:"true"`
}

func connectOperation() Operation {
	return Operation{
		Name:    "connect",
		Summary: "Establish a session with an n8n instance",
		Description: "Verifies that the n8n instance at the given URL is reachable " +
			"with the given API key, then returns a session id. Pass that id as " +
			"the sessionId argument of every other operation. Connecting again " +
			"with the same URL replaces the stored credentials for that session.",
		Params:      func() any { return &connectParams{} },
		Session:     false,
		Annotations: Idempotent(),
	}
}

// Connect moves the API key into locked memory and establishes a
// session via ConnectWithKey. Returns the session id and the normalized
// base URL the id was derived from.
func (g *Gateway) Connect(ctx context.Context, baseURL, apiKey string) (string, string, error) {
	key, err := secret.NewFromBytes([]byte(apiKey))
	if err != nil {
		return "", "", Internal("storing API key: %v", err)
	}
	return g.ConnectWithKey(ctx, baseURL, key)
}

// ConnectWithKey builds a client for the given backend, verifies
// connectivity with a probe request, and registers the client under
// the session id derived from the URL. Takes ownership of key: it is
// released if construction or the probe fails; once registered it
// lives until process exit, even if a later reconnect replaces the
// session (see [Registry.Register]).
func (g *Gateway) ConnectWithKey(ctx context.Context, baseURL string, key *secret.Buffer) (string, string, error) {
	client, err := n8n.NewClient(n8n.ClientConfig{
		BaseURL: baseURL,
		APIKey:  key,
		Logger:  g.logger,
	})
	if err != nil {
		key.Close()
		return "", "", Validation("%v", err)
	}
	if err := client.Probe(ctx); err != nil {
		client.Close()
		return "", "", err
	}
	id := SessionID(client.BaseURL())
	g.registry.Register(id, client)
	g.logger.Info("session established", "url", client.BaseURL(), "session_id", id)
	return id, client.BaseURL(), nil
}
