// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package n8n

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Variables are an Enterprise feature, like projects.

// ListVariables returns the instance-level variables.
func (c *Client) ListVariables(ctx context.Context) (*VariableList, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/variables", nil)
	if err != nil {
		return nil, fmt.Errorf("n8n: list variables failed: %w", err)
	}

	var list VariableList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse variable list: %w", err)
	}
	return &list, nil
}

// CreateVariable creates a key/value variable. The backend answers
// with an empty body on success.
func (c *Client) CreateVariable(ctx context.Context, key, value string) error {
	request := Variable{Key: key, Value: value}
	if _, err := c.doRequest(ctx, http.MethodPost, "/variables", request); err != nil {
		return fmt.Errorf("n8n: create variable failed: %w", err)
	}
	return nil
}

// DeleteVariable removes a variable by identifier. The backend answers
// 204 on success.
func (c *Client) DeleteVariable(ctx context.Context, id string) error {
	if _, err := c.doRequest(ctx, http.MethodDelete, "/variables/"+url.PathEscape(id), nil); err != nil {
		return fmt.Errorf("n8n: delete variable failed: %w", err)
	}
	return nil
}
