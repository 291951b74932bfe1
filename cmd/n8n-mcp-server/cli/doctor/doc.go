// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

// Package doctor provides the reporting infrastructure for the doctor
// command: a [Result] per health check (configuration readable,
// credential resolvable, backend reachable, API key accepted) with a
// consistent checklist rendering and a machine-readable JSON form.
//
// The checks themselves live with the doctor command; this package
// only knows how to represent and print their outcomes.
package doctor
