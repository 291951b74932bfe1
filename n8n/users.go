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

// ListUsers returns the instance's members.
func (c *Client) ListUsers(ctx context.Context) (*UserList, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/users", nil)
	if err != nil {
		return nil, fmt.Errorf("n8n: list users failed: %w", err)
	}

	var list UserList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse user list: %w", err)
	}
	return &list, nil
}

// GetUser returns one user. The backend accepts either the user
// identifier or the email address as the selector.
func (c *Client) GetUser(ctx context.Context, idOrEmail string) (*User, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/users/"+url.PathEscape(idOrEmail), nil)
	if err != nil {
		return nil, fmt.Errorf("n8n: get user failed: %w", err)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse user: %w", err)
	}
	return &user, nil
}

// CreateUsers invites users to the instance. The endpoint takes a
// batch; results are positional and per-invitation failures come back
// in the result elements, not as a call-level error.
func (c *Client) CreateUsers(ctx context.Context, invitations []UserCreate) ([]UserCreateResult, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/users", invitations)
	if err != nil {
		return nil, fmt.Errorf("n8n: create users failed: %w", err)
	}

	var results []UserCreateResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse user invitations: %w", err)
	}
	return results, nil
}

// DeleteUser removes a user by identifier or email address. The
// backend answers 204 on success.
func (c *Client) DeleteUser(ctx context.Context, idOrEmail string) error {
	if _, err := c.doRequest(ctx, http.MethodDelete, "/users/"+url.PathEscape(idOrEmail), nil); err != nil {
		return fmt.Errorf("n8n: delete user failed: %w", err)
	}
	return nil
}
