// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package n8n

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"testing"
)

func TestAPIError_Format(t *testing.T) {
	err := &APIError{StatusCode: 403, Message: "access denied"}
	expected := "n8n: backend returned 403: access denied"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestIsStatus(t *testing.T) {
	apiErr := &APIError{StatusCode: http.StatusNotFound, Message: "not found"}

	if !IsStatus(apiErr, http.StatusNotFound) {
		t.Error("IsStatus should match 404")
	}
	if IsStatus(apiErr, http.StatusForbidden) {
		t.Error("IsStatus should not match 403")
	}
	if !IsStatus(fmt.Errorf("wrapped: %w", apiErr), http.StatusNotFound) {
		t.Error("IsStatus should match through wrapping")
	}
	if IsStatus(context.Canceled, http.StatusNotFound) {
		t.Error("IsStatus should return false for non-API errors")
	}
}

func TestNewAPIError_MessageSelection(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"parsed message field", 401, `{"message":"unauthorized"}`, "unauthorized"},
		{"json without message field", 500, `{"error":"boom"}`, `{"error":"boom"}`},
		{"plain text body", 502, "upstream exploded\n", "upstream exploded"},
		{"empty body", 502, "", "Bad Gateway"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := newAPIError(tc.status, "GET", "/api/v1/workflows", []byte(tc.body))
			if err.Message != tc.want {
				t.Errorf("Message = %q, want %q", err.Message, tc.want)
			}
			if err.StatusCode != tc.status {
				t.Errorf("StatusCode = %d, want %d", err.StatusCode, tc.status)
			}
		})
	}
}

func TestNewAPIError_LicenseRewrite(t *testing.T) {
	err := newAPIError(403, "POST", "/api/v1/projects",
		[]byte(`{"message":"Plan lacks license for this feature"}`))

	want := "this operation requires an n8n Enterprise license with the relevant feature enabled (requested: POST /api/v1/projects)"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
	// The raw body is preserved for logging even when the message is
	// rewritten.
	if len(err.Raw) == 0 {
		t.Error("Raw body should be preserved")
	}
}

// timeoutError implements net.Error with Timeout() == true, standing in
// for a transport-level deadline failure.
type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestConnectivityCause(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			"dns failure",
			&net.DNSError{Err: "no such host", Name: "n8n.internal", IsNotFound: true},
			"dns lookup failed",
		},
		{
			"certificate verification",
			&tls.CertificateVerificationError{Err: errors.New("x509: certificate signed by unknown authority")},
			"tls handshake failed",
		},
		{
			"tls record header",
			tls.RecordHeaderError{Msg: "first record does not look like a TLS handshake"},
			"tls handshake failed",
		},
		{
			"connection refused",
			fmt.Errorf("dial tcp 127.0.0.1:5678: %w", syscall.ECONNREFUSED),
			"connection refused",
		},
		{
			"context deadline",
			fmt.Errorf("request: %w", context.DeadlineExceeded),
			"request timed out",
		},
		{
			"net.Error timeout",
			timeoutError{},
			"request timed out",
		},
		{
			"unclassified passes through",
			errors.New("wire fell out"),
			"wire fell out",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := connectivityCause(tc.err); got != tc.want {
				t.Errorf("connectivityCause() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestConnectivityError(t *testing.T) {
	underlying := fmt.Errorf("dial tcp: %w", syscall.ECONNREFUSED)
	err := &ConnectivityError{URL: "https://n8n.example.com", Err: underlying}

	expected := "cannot reach n8n at https://n8n.example.com: connection refused"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}

	// The transport error stays reachable through the chain.
	if !errors.Is(err, syscall.ECONNREFUSED) {
		t.Error("expected errors.Is to find ECONNREFUSED through Unwrap")
	}
}
