// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/illuminaresolutions/n8n-mcp-server/n8n"
)

// sessionGuidance is the fixed failure text for calls that reference a
// missing or unknown session. It must tell the caller how to recover.
const sessionGuidance = "session not initialized: call connect with the backend URL and API key first"

// Envelope is the uniform outcome of a dispatched operation: exactly
// one per call, success or failure, never a raised error. Category and
// Retryable are only meaningful when IsError is set.
type Envelope struct {
	Text      string
	IsError   bool
	Category  ErrorCategory
	Retryable bool
}

// Gateway validates incoming operation calls, resolves their session,
// and invokes the matching connector method. It holds no per-call
// state; concurrent Dispatch calls are safe.
type Gateway struct {
	registry *Registry
	catalog  []Operation
	byName   map[string]*Operation
	logger   *slog.Logger
}

// New builds a gateway around the given session registry. The catalog
// is fixed at construction; the name index is built once rather than
// switched on per call.
func New(registry *Registry, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	catalog := Catalog()
	byName := make(map[string]*Operation, len(catalog))
	for i := range catalog {
		byName[catalog[i].Name] = &catalog[i]
	}
	return &Gateway{
		registry: registry,
		catalog:  catalog,
		byName:   byName,
		logger:   logger,
	}
}

// Operations returns the catalog in its advertised order.
func (g *Gateway) Operations() []Operation {
	return g.catalog
}

// Dispatch runs one operation call from name and raw argument bag to
// envelope. It never panics and never returns an error: every failure,
// including a recovered panic, becomes a failure envelope.
func (g *Gateway) Dispatch(ctx context.Context, name string, args json.RawMessage) (envelope Envelope) {
	defer func() {
		if recovered := recover(); recovered != nil {
			g.logger.Error("panic during dispatch", "operation", name, "panic", recovered)
			envelope = g.failure(name, Internal("internal fault dispatching %s: %v", name, recovered))
		}
	}()

	g.logger.Debug("dispatching operation", "operation", name)

	op, ok := g.byName[name]
	if !ok {
		return g.failure(name, Validation("unknown operation %q", name))
	}

	if !op.Session {
		params, err := decodeArguments(op, args)
		if err != nil {
			return g.failure(name, err)
		}
		p := params.(*connectParams)
		id, baseURL, err := g.Connect(ctx, p.URL, p.APIKey)
		if err != nil {
			return g.failure(name, err)
		}
		return Envelope{Text: fmt.Sprintf(
			"connected to %s\nsession id: %s\nuse this session id in subsequent operations",
			baseURL, id)}
	}

	// The required-presence check skips sessionId: an absent session
	// must produce the guidance message below, not a validation error.
	params, err := decodeArguments(op, args, "sessionId")
	if err != nil {
		return g.failure(name, err)
	}
	carrier, ok := params.(sessionCarrier)
	if !ok {
		return g.failure(name, Internal("operation %s does not accept a session", name))
	}
	id := carrier.sessionID()
	if id == "" {
		return g.failure(name, Session(sessionGuidance))
	}
	client, ok := g.registry.Resolve(id)
	if !ok {
		return g.failure(name, Session(sessionGuidance))
	}

	payload, err := op.Invoke(ctx, client, params)
	if err != nil {
		return g.failure(name, err)
	}
	return g.success(op, payload)
}

// success renders a payload as indented JSON, prefixed by the
// operation's confirmation phrase when it has one. A nil payload (the
// backend answered 204) renders as the confirmation alone.
func (g *Gateway) success(op *Operation, payload any) Envelope {
	text := op.Confirm
	if !isNilPayload(payload) {
		rendered, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return g.failure(op.Name, Internal("encoding response: %v", err))
		}
		if text != "" {
			text += "\n\n" + string(rendered)
		} else {
			text = string(rendered)
		}
	}
	g.logger.Debug("operation succeeded", "operation", op.Name)
	return Envelope{Text: text}
}

// isNilPayload treats typed nils (a nil *WorkflowList, a nil
// json.RawMessage) the same as untyped nil so they render as an empty
// payload rather than the string "null".
func isNilPayload(payload any) bool {
	if payload == nil {
		return true
	}
	value := reflect.ValueOf(payload)
	switch value.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return value.IsNil()
	}
	return false
}

// failure classifies an error and wraps it into a failure envelope.
func (g *Gateway) failure(name string, err error) Envelope {
	category, text := classify(err)
	g.logger.Debug("operation failed",
		"operation", name,
		"category", string(category),
		"error", text)
	return Envelope{
		Text:      text,
		IsError:   true,
		Category:  category,
		Retryable: category.Retryable(),
	}
}

// classify maps the heterogeneous failure sources to a category and a
// self-contained message: one branch per error variant rather than
// message scraping. Connector errors keep their own text; everything
// unrecognized lands in the internal category with its raw message.
func classify(err error) (ErrorCategory, string) {
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr.Category, toolErr.Error()
	}
	var connErr *n8n.ConnectivityError
	if errors.As(err, &connErr) {
		return CategoryConnectivity, connErr.Error()
	}
	var apiErr *n8n.APIError
	if errors.As(err, &apiErr) {
		return CategoryBackend, apiErr.Error()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryConnectivity, "request timed out"
	}
	if errors.Is(err, context.Canceled) {
		return CategoryInternal, "operation canceled"
	}
	return CategoryInternal, err.Error()
}
