// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/illuminaresolutions/n8n-mcp-server/cmd/n8n-mcp-server/cli"
	"github.com/illuminaresolutions/n8n-mcp-server/gateway"
	"github.com/illuminaresolutions/n8n-mcp-server/lib/version"
)

// Server is an MCP server that exposes the gateway's operation catalog
// as tools over JSON-RPC 2.0 on newline-delimited stdio.
type Server struct {
	gateway     *gateway.Gateway
	logger      *slog.Logger
	tools       []toolDescription
	initialized bool
}

// NewServer creates an MCP server around a dispatch gateway. Tool
// descriptions are built once from the gateway's operation catalog:
// each operation's parameter struct is reflected into a JSON Schema
// for the tools/list advertisement. A schema failure is a programming
// error in a parameter struct, not a runtime condition, so it fails
// construction rather than silently dropping the operation.
func NewServer(gw *gateway.Gateway, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	operations := gw.Operations()
	tools := make([]toolDescription, 0, len(operations))
	for _, op := range operations {
		inputSchema, err := cli.ParamsSchema(op.Params())
		if err != nil {
			return nil, fmt.Errorf("mcp: input schema for %s: %w", op.Name, err)
		}
		tools = append(tools, toolDescription{
			Name:        op.Name,
			Title:       op.Summary,
			Description: op.Description,
			InputSchema: inputSchema,
			Annotations: resolveAnnotations(op.Annotations),
		})
	}

	return &Server{
		gateway: gw,
		logger:  logger,
		tools:   tools,
	}, nil
}

// resolveAnnotations translates an operation's behavioral annotations
// into MCP protocol hints. Nil annotations stay nil, letting clients
// apply the protocol defaults (destructive, non-idempotent, open-world).
func resolveAnnotations(annotations *gateway.Annotations) *toolAnnotations {
	if annotations == nil {
		return nil
	}
	return &toolAnnotations{
		ReadOnlyHint:    annotations.ReadOnly,
		DestructiveHint: annotations.Destructive,
		IdempotentHint:  annotations.Idempotent,
		OpenWorldHint:   annotations.OpenWorld,
	}
}

// Serve runs the server on os.Stdin and os.Stdout. This is the entry
// point for "n8n-mcp-server serve".
func (s *Server) Serve(ctx context.Context) error {
	return s.Run(ctx, os.Stdin, os.Stdout)
}

// Run processes JSON-RPC 2.0 requests from input and writes responses
// to output until input reaches EOF. Each request occupies a single
// line (newline-delimited JSON-RPC, not Content-Length framed). The
// context is passed through to backend calls made by tools/call.
func (s *Server) Run(ctx context.Context, input io.Reader, output io.Writer) error {
	scanner := bufio.NewScanner(input)
	// MCP messages can be large: a tools/call carrying a full workflow
	// node graph easily exceeds the default scanner buffer.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	encoder := json.NewEncoder(output)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			if writeErr := writeError(encoder, json.RawMessage("null"), codeParseError, "parse error: "+err.Error()); writeErr != nil {
				return fmt.Errorf("mcp: writing parse error response: %w", writeErr)
			}
			continue
		}

		if req.JSONRPC != "2.0" {
			if !req.isNotification() {
				if writeErr := writeError(encoder, req.ID, codeInvalidRequest, "unsupported JSON-RPC version"); writeErr != nil {
					return fmt.Errorf("mcp: writing version error response: %w", writeErr)
				}
			}
			continue
		}

		// Notifications have no ID and receive no response.
		if req.isNotification() {
			continue
		}

		if err := s.dispatch(ctx, encoder, &req); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// dispatch routes a JSON-RPC request to the appropriate handler.
func (s *Server) dispatch(ctx context.Context, encoder *json.Encoder, req *request) error {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(encoder, req)
	case "ping":
		// Answered even before initialize: clients use pings as a
		// liveness check while starting up.
		return s.handlePing(encoder, req)
	case "tools/list":
		if !s.initialized {
			return writeError(encoder, req.ID, codeInvalidRequest, "server not initialized (call initialize first)")
		}
		return s.handleToolsList(encoder, req)
	case "tools/call":
		if !s.initialized {
			return writeError(encoder, req.ID, codeInvalidRequest, "server not initialized (call initialize first)")
		}
		return s.handleToolsCall(ctx, encoder, req)
	default:
		return writeError(encoder, req.ID, codeMethodNotFound, "unknown method: "+req.Method)
	}
}

func (s *Server) handleInitialize(encoder *json.Encoder, req *request) error {
	if len(req.Params) == 0 {
		return writeError(encoder, req.ID, codeInvalidParams, "params required for initialize")
	}

	var params initializeParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return writeError(encoder, req.ID, codeInvalidParams, "invalid initialize params: "+err.Error())
	}

	// The MCP specification says the server responds with its own
	// protocol version and the client decides whether it can proceed.
	// Clients requesting a different version are not rejected — MCP
	// versions are additive, so older clients simply ignore fields
	// they don't recognize.
	s.initialized = true
	s.logger.Debug("mcp session initialized",
		"client", params.ClientInfo.Name,
		"client_version", params.ClientInfo.Version,
		"requested_protocol", params.ProtocolVersion)

	return writeResult(encoder, req.ID, initializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities: serverCapabilities{
			Tools: &toolCapability{},
		},
		ServerInfo: serverInfo{
			Name:    "n8n-mcp-server",
			Version: version.Short(),
		},
	})
}

func (s *Server) handlePing(encoder *json.Encoder, req *request) error {
	return writeResult(encoder, req.ID, map[string]any{})
}

func (s *Server) handleToolsList(encoder *json.Encoder, req *request) error {
	return writeResult(encoder, req.ID, toolsListResult{Tools: s.tools})
}

// handleToolsCall forwards the call to the dispatch gateway and wraps
// the resulting envelope. An unknown tool name produces an isError
// result rather than a JSON-RPC error: to the calling agent a typoed
// operation name is a recoverable tool failure, the same as a typoed
// argument, and the gateway owns that classification.
func (s *Server) handleToolsCall(ctx context.Context, encoder *json.Encoder, req *request) error {
	if len(req.Params) == 0 {
		return writeError(encoder, req.ID, codeInvalidParams, "params required for tools/call")
	}

	var params toolsCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return writeError(encoder, req.ID, codeInvalidParams, "invalid tools/call params: "+err.Error())
	}

	envelope := s.gateway.Dispatch(ctx, params.Name, params.Arguments)
	return writeResult(encoder, req.ID, buildToolResult(envelope))
}

// buildToolResult assembles a toolsCallResult from a dispatch
// envelope: one text content block, the error flag, and structured
// error metadata when the call failed.
func buildToolResult(envelope gateway.Envelope) toolsCallResult {
	result := toolsCallResult{
		// MCP requires at least one content block in the result, so
		// an empty success payload still produces an empty text block.
		Content: []contentBlock{{Type: "text", Text: envelope.Text}},
	}
	if envelope.IsError {
		result.IsError = true
		result.ErrorInfo = &errorInfo{
			Category:  string(envelope.Category),
			Retryable: envelope.Retryable,
		}
	}
	return result
}

// writeResult sends a JSON-RPC 2.0 success response.
func writeResult(encoder *json.Encoder, id json.RawMessage, result any) error {
	return encoder.Encode(response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

// writeError sends a JSON-RPC 2.0 error response.
func writeError(encoder *json.Encoder, id json.RawMessage, code int, message string) error {
	return encoder.Encode(response{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &rpcError{Code: code, Message: message},
	})
}
