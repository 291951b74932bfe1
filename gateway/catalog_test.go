// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"strings"
	"testing"
)

// catalogNames is the advertised operation order. The names are a
// compatibility contract with deployed agents; changing one is a
// breaking change.
var catalogNames = []string{
	"connect",
	"list-workflows", "get-workflow", "create-workflow", "update-workflow",
	"delete-workflow", "activate-workflow", "deactivate-workflow",
	"list-projects", "create-project", "update-project", "delete-project",
	"list-users", "create-user", "get-user", "delete-user",
	"list-variables", "create-variable", "delete-variable",
	"list-executions", "get-execution", "delete-execution",
	"list-tags", "create-tag", "get-tag", "update-tag", "delete-tag",
	"get-workflow-tags", "update-workflow-tags",
	"generate-audit",
}

func TestCatalog_NamesAndOrder(t *testing.T) {
	catalog := Catalog()
	if len(catalog) != len(catalogNames) {
		t.Fatalf("catalog has %d operations, want %d", len(catalog), len(catalogNames))
	}
	for i, want := range catalogNames {
		if catalog[i].Name != want {
			t.Errorf("catalog[%d] = %q, want %q", i, catalog[i].Name, want)
		}
	}
}

func TestCatalog_Stable(t *testing.T) {
	first := Catalog()
	second := Catalog()
	if len(first) != len(second) {
		t.Fatalf("catalog size changed between calls: %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Errorf("position %d: %q then %q", i, first[i].Name, second[i].Name)
		}
	}
}

func TestCatalog_Descriptors(t *testing.T) {
	seen := make(map[string]bool)
	for _, op := range Catalog() {
		if seen[op.Name] {
			t.Errorf("duplicate operation name %q", op.Name)
		}
		seen[op.Name] = true

		if op.Summary == "" {
			t.Errorf("%s: missing summary", op.Name)
		}
		if op.Description == "" {
			t.Errorf("%s: missing description", op.Name)
		}
		if op.Params == nil {
			t.Errorf("%s: missing params constructor", op.Name)
			continue
		}
		if op.Annotations == nil {
			t.Errorf("%s: missing annotations", op.Name)
		}

		params := op.Params()
		if op.Session {
			if _, ok := params.(sessionCarrier); !ok {
				t.Errorf("%s: params do not embed SessionParams", op.Name)
			}
			if op.Invoke == nil {
				t.Errorf("%s: missing invoke", op.Name)
			}
		} else {
			if op.Name != "connect" {
				t.Errorf("%s: only connect may skip the session", op.Name)
			}
			if _, ok := params.(sessionCarrier); ok {
				t.Errorf("%s: connect must not take a session id", op.Name)
			}
		}
	}
}

func TestCatalog_ConfirmMatchesVerb(t *testing.T) {
	for _, op := range Catalog() {
		verb, _, _ := strings.Cut(op.Name, "-")
		mutating := false
		switch verb {
		case "create", "update", "delete", "activate", "deactivate":
			mutating = true
		}
		if mutating && op.Confirm == "" {
			t.Errorf("%s: mutating operation without confirmation phrase", op.Name)
		}
		if !mutating && op.Confirm != "" {
			t.Errorf("%s: read operation with confirmation phrase %q", op.Name, op.Confirm)
		}
		if op.Confirm != "" && !strings.HasSuffix(op.Confirm, ".") {
			t.Errorf("%s: confirmation %q should be a sentence", op.Name, op.Confirm)
		}
	}
}

func TestCatalog_AnnotationsMatchVerb(t *testing.T) {
	for _, op := range Catalog() {
		a := op.Annotations
		if a == nil {
			continue
		}
		verb, _, _ := strings.Cut(op.Name, "-")
		switch verb {
		case "list", "get", "generate":
			if a.ReadOnly == nil || !*a.ReadOnly {
				t.Errorf("%s: should be annotated read-only", op.Name)
			}
		case "delete":
			if a.Destructive == nil || !*a.Destructive {
				t.Errorf("%s: should be annotated destructive", op.Name)
			}
		case "create":
			if a.Destructive == nil || *a.Destructive {
				t.Errorf("%s: create is additive, not destructive", op.Name)
			}
		case "update", "activate", "deactivate", "connect":
			if a.Idempotent == nil || !*a.Idempotent {
				t.Errorf("%s: should be annotated idempotent", op.Name)
			}
		}
		if a.OpenWorld == nil || !*a.OpenWorld {
			t.Errorf("%s: every operation talks to an external instance", op.Name)
		}
	}
}
