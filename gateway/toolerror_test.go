// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestToolError_ErrorWithoutHint(t *testing.T) {
	err := Validation("missing required field %q", "url")
	if err.Error() != `missing required field "url"` {
		t.Errorf("Error() = %q, want %q", err.Error(), `missing required field "url"`)
	}
}

func TestToolError_ErrorWithHint(t *testing.T) {
	err := Session("no session with id %q", "bogus").
		WithHint("Run connect with the backend URL and API key first.")

	want := "no session with id \"bogus\"\n\nRun connect with the backend URL and API key first."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestToolError_WithHintReturnsReceiver(t *testing.T) {
	original := Validation("bad input")
	chained := original.WithHint("fix it")
	if original != chained {
		t.Error("WithHint should return the same pointer")
	}
}

func TestToolError_WithHintPreservesCategory(t *testing.T) {
	err := Backend("workflow %q not found", "wf-17").
		WithHint("Run list-workflows to see available workflows.")

	if err.Category != CategoryBackend {
		t.Errorf("Category = %q, want %q", err.Category, CategoryBackend)
	}
}

func TestToolError_HintSurvivesErrorsAs(t *testing.T) {
	inner := Validation("bad url").WithHint("use https://host[:port] format")
	wrapped := fmt.Errorf("connect failed: %w", inner)

	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) {
		t.Fatal("errors.As should find ToolError in wrapped chain")
	}
	if toolErr.Hint != "use https://host[:port] format" {
		t.Errorf("Hint = %q after unwrap, want %q", toolErr.Hint, "use https://host[:port] format")
	}
}

func TestToolError_EmptyHintNotAppended(t *testing.T) {
	err := Internal("unexpected failure")
	if strings.Contains(err.Error(), "\n\n") {
		t.Error("empty hint should not add blank line to error message")
	}
}

func TestToolError_AllCategories(t *testing.T) {
	tests := []struct {
		name     string
		err      *ToolError
		category ErrorCategory
	}{
		{"Validation", Validation("bad"), CategoryValidation},
		{"Session", Session("not initialized"), CategorySession},
		{"Connectivity", Connectivity("unreachable"), CategoryConnectivity},
		{"Backend", Backend("rejected"), CategoryBackend},
		{"Internal", Internal("bug"), CategoryInternal},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.err.Category != test.category {
				t.Errorf("Category = %q, want %q", test.err.Category, test.category)
			}
			// All constructors should support WithHint.
			hinted := test.err.WithHint("try again")
			if hinted.Hint != "try again" {
				t.Errorf("Hint = %q after WithHint, want %q", hinted.Hint, "try again")
			}
		})
	}
}

func TestErrorCategory_Retryable(t *testing.T) {
	if !CategoryConnectivity.Retryable() {
		t.Error("connectivity errors should be retryable")
	}
	for _, category := range []ErrorCategory{CategoryValidation, CategorySession, CategoryBackend, CategoryInternal} {
		if category.Retryable() {
			t.Errorf("category %q should not be retryable", category)
		}
	}
}
