// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import "fmt"

// ErrorCategory classifies tool errors so that MCP clients can make
// programmatic decisions (retry, fix input, reconnect) without parsing
// error message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// missing required parameters, wrong types, unparseable values.
	// The request never reached the backend. The caller should fix
	// the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategorySession indicates the call referenced a session that was
	// never established or is unknown to the registry. The caller must
	// run connect first.
	CategorySession ErrorCategory = "session"

	// CategoryConnectivity indicates the backend could not be reached:
	// DNS failure, TLS failure, connection refused, timeout. The
	// backend state is unknown. The caller may back off and retry.
	CategoryConnectivity ErrorCategory = "connectivity"

	// CategoryBackend indicates the backend was reached and answered
	// with a non-success status: bad request, missing resource,
	// licensing restriction. Retrying with the same input will not
	// help.
	CategoryBackend ErrorCategory = "backend"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures, panics recovered at the dispatch boundary. The caller
	// should report the error rather than retry.
	CategoryInternal ErrorCategory = "internal"
)

// Retryable reports whether an error of this category may succeed if
// the caller retries without changing anything. Only connectivity
// failures qualify: the backend gives no idempotency guarantees, so
// nothing else is retried automatically either.
func (c ErrorCategory) Retryable() bool {
	return c == CategoryConnectivity
}

// ToolError is a categorized error surfaced through the dispatch
// gateway. The MCP server inspects the Category to produce structured
// error metadata alongside the human-readable error text, enabling
// agents to make programmatic recovery decisions.
//
// ToolError wraps an inner error, preserving the full error chain for
// debugging while adding category metadata for the MCP layer. Use the
// category-specific constructors (Validation, Session, etc.) rather
// than constructing ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is an optional recovery instruction appended to the
	// message after a blank line. Keep it imperative and concrete:
	// "Run connect with the backend URL and API key first."
	Hint string
}

// Error returns the underlying error message, with the recovery hint
// appended after a blank line when one is set. The category is not
// included in the string; it travels separately via the MCP errorInfo
// field, not in the text content block.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// WithHint attaches a recovery instruction to the error and returns
// the same pointer for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the ToolError wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Session creates a session error: the referenced session was never
// established.
func Session(format string, args ...any) *ToolError {
	return &ToolError{Category: CategorySession, Err: fmt.Errorf(format, args...)}
}

// Connectivity creates a connectivity error: the backend could not be
// reached.
func Connectivity(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryConnectivity, Err: fmt.Errorf(format, args...)}
}

// Backend creates a backend error: the backend answered with a
// non-success status.
func Backend(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryBackend, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or
// I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
