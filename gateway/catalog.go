// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"

	"github.com/illuminaresolutions/n8n-mcp-server/n8n"
)

// Operation is one static catalog entry: a named, schema-described unit
// of work the gateway can dispatch. Descriptors are defined at process
// start and never mutated.
type Operation struct {
	// Name is the wire name of the operation. Names are a fixed
	// compatibility contract and must never change.
	Name string

	// Summary is a one-line description for listings.
	Summary string

	// Description is usage guidance for the calling model: what the
	// operation does, what it returns, and any sharp edges (full
	// replacement semantics, Enterprise-only features).
	Description string

	// Params returns a pointer to a fresh parameter struct for this
	// operation. Struct tags (json, desc, required, default, enum)
	// drive both schema advertisement and argument validation.
	Params func() any

	// Session is false only for connect, which creates a session
	// instead of using one. All other operations resolve a sessionId
	// argument against the registry before invoking.
	Session bool

	// Confirm is the short confirmation phrase prefixed to a mutating
	// operation's success payload. Empty for read-only operations.
	Confirm string

	// Annotations advertise behavioral hints to the protocol layer.
	Annotations *Annotations

	// Invoke calls the single connector method matching this operation
	// with the validated, typed parameters. A nil payload with a nil
	// error means success with no body. Invoke is nil for connect: the
	// gateway constructs and probes the client itself.
	Invoke func(ctx context.Context, client *n8n.Client, params any) (any, error)
}

// SessionParams is embedded by the parameter struct of every operation
// that targets an established session.
type SessionParams struct {
	SessionID string `json:"sessionId" desc:"session identifier returned by connect" required:"true"`
}

// sessionID lets the dispatcher extract the session identifier from
// any parameter struct embedding SessionParams.
func (p SessionParams) sessionID() string { return p.SessionID }

// sessionCarrier is satisfied by every parameter struct that embeds
// SessionParams.
type sessionCarrier interface {
	sessionID() string
}

// Catalog returns the operation descriptors in their advertised order.
// A fresh slice is built on each call so no caller can mutate another's
// view.
func Catalog() []Operation {
	operations := []Operation{connectOperation()}
	operations = append(operations, workflowOperations()...)
	operations = append(operations, projectOperations()...)
	operations = append(operations, userOperations()...)
	operations = append(operations, variableOperations()...)
	operations = append(operations, executionOperations()...)
	operations = append(operations, tagOperations()...)
	operations = append(operations, auditOperations()...)
	return operations
}
