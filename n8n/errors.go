// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package n8n

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"
)

// APIError represents a non-2xx response from a reachable backend.
// Callers can use errors.As to extract the structured information:
//
//	var apiErr *n8n.APIError
//	if errors.As(err, &apiErr) {
//	    if apiErr.StatusCode == http.StatusNotFound { ... }
//	}
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Message is the human-readable failure description: the backend's
	// parsed "message" field, the literal body text when the body is
	// not JSON, or the HTTP status text when the body is empty.
	// Licensing refusals are rewritten to the Enterprise-license
	// explanation before the error is returned.
	Message string
	// Raw is the unparsed response body, kept for logging.
	Raw []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("n8n: backend returned %d: %s", e.StatusCode, e.Message)
}

// IsStatus checks whether err is an *APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}
	return false
}

// newAPIError builds an APIError from a non-2xx response body. The
// backend's error responses carry a "message" field; anything else is
// surfaced as literal text. A body mentioning a licensing restriction
// is rewritten wholesale: the backend's own phrasing ("feature is not
// licensed" and variants) reads as a bug to a tool-calling client,
// when the real remedy is an Enterprise license.
func newAPIError(statusCode int, method, path string, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Raw: body}

	var parsed struct {
		Message string `json:"message"`
	}
	switch {
	case json.Unmarshal(body, &parsed) == nil && parsed.Message != "":
		apiErr.Message = parsed.Message
	case len(strings.TrimSpace(string(body))) > 0:
		apiErr.Message = strings.TrimSpace(string(body))
	default:
		apiErr.Message = http.StatusText(statusCode)
	}

	if strings.Contains(strings.ToLower(string(body)), "license") {
		apiErr.Message = fmt.Sprintf(
			"this operation requires an n8n Enterprise license with the relevant feature enabled (requested: %s %s)",
			method, path)
	}

	return apiErr
}

// ConnectivityError represents a transport-level failure reaching the
// backend: the request never produced an HTTP response. The message
// names the backend URL and a classified cause so the caller can tell
// a typo'd URL from a down instance without reading a stack trace.
type ConnectivityError struct {
	// URL is the backend base URL the client tried to reach.
	URL string
	// Err is the underlying transport error.
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("cannot reach n8n at %s: %s", e.URL, connectivityCause(e.Err))
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// connectivityCause maps a transport error to a short cause phrase.
// Unrecognized errors pass through as their own text.
func connectivityCause(err error) string {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "dns lookup failed"
	}
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return "tls handshake failed"
	}
	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return "tls handshake failed"
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return "connection refused"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "request timed out"
	}
	return err.Error()
}
