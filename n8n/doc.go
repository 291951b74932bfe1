// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

// Package n8n wraps the public REST API of an n8n workflow-automation
// instance (the /api/v1 surface) for administrative operations.
//
// [Client] is bound at construction to exactly one backend base URL and
// one API key. The key lives in mmap-backed [secret.Buffer] memory
// (locked against swap, excluded from core dumps) for the life of the
// client; callers must call Close to release it. One method exists per
// remote operation: workflow CRUD plus activate/deactivate, project and
// user administration, variables, execution records, tags and their
// workflow bindings, and security audit generation.
//
// Every call is a fresh round trip. The client performs no retries, no
// caching, and sets no timeout beyond the transport default: the
// backend gives no idempotency guarantees, so replaying a mutating call
// on an ambiguous failure risks double-effect.
//
// Failures are normalized into two structured types. A reachable
// backend that answers non-2xx yields [*APIError] with the HTTP status
// and the backend's message (licensing refusals are rewritten into an
// explanation that the operation needs an Enterprise license). A
// transport-level failure (DNS, TLS, connection refused, timeout)
// yields [*ConnectivityError] naming the backend URL and a classified
// cause. Request URLs are built by string concatenation with
// per-segment escaping rather than url.URL assembly, which re-encodes
// already-encoded path segments.
package n8n
