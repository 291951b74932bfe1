// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

// Package gateway is the heart of the server: the session registry and
// the request-dispatch machinery between a tool-calling client and one
// or more n8n backends.
//
// [Registry] maps opaque session identifiers to live [n8n.Client]
// connectors. Identifiers derive deterministically from the backend
// base URL ([SessionID] and [BaseURL] are inverses), so connecting
// twice to the same URL is idempotent: the second connect replaces the
// first in place and returns the same identifier.
//
// [Catalog] enumerates the supported operations as static [Operation]
// descriptors: wire name, parameter struct, behavioral [Annotations],
// confirmation phrase, and an invoke function bound to exactly one
// connector method. The descriptor set is fixed at process start and
// never mutated.
//
// [Gateway.Dispatch] runs the per-call state machine: validate the
// argument bag against the descriptor, resolve the session (connect
// skips resolution and instead probes and registers a new backend),
// invoke the connector, and wrap the outcome in an [Envelope]. Every
// heterogeneous failure (bad arguments, unknown session, transport
// failure, backend refusal, panic) is coerced into exactly one
// failure-flagged envelope with a single human-readable message; the
// gateway never raises past its boundary, and credentials never appear
// in envelopes or logs.
package gateway
