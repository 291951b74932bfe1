// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP I/O utilities shared by the backend
// connector.
//
// [ReadResponse] bounds response body reads at MaxResponseSize to prevent
// unbounded memory allocation from a misbehaving or malicious server. It is
// for JSON API responses (the n8n public REST API) — not for streaming
// responses or large binary downloads, which should be read incrementally
// with io.Copy.
package netutil

import "io"

// MaxResponseSize is the bound on JSON API response body reads: 256 MB. This
// exists solely to prevent a pathological response from exhausting system
// memory. Legitimate JSON API responses are orders of magnitude smaller; the
// limit is intentionally generous so that it never interferes with normal
// operation.
const MaxResponseSize int64 = 256 << 20

// ReadResponse reads a JSON API response body up to MaxResponseSize bytes.
// Use instead of io.ReadAll when reading HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}
