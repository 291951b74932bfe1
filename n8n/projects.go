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

// Projects are an Enterprise feature: on an unlicensed instance every
// method here comes back as an APIError carrying the Enterprise-license
// explanation.

// ListProjects returns the instance's projects.
func (c *Client) ListProjects(ctx context.Context) (*ProjectList, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/projects", nil)
	if err != nil {
		return nil, fmt.Errorf("n8n: list projects failed: %w", err)
	}

	var list ProjectList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse project list: %w", err)
	}
	return &list, nil
}

// CreateProject creates a team project with the given name.
func (c *Client) CreateProject(ctx context.Context, name string) (*Project, error) {
	request := Project{Name: name}
	body, err := c.doRequest(ctx, http.MethodPost, "/projects", request)
	if err != nil {
		return nil, fmt.Errorf("n8n: create project failed: %w", err)
	}
	if body == nil {
		return nil, nil
	}

	var project Project
	if err := json.Unmarshal(body, &project); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse created project: %w", err)
	}
	return &project, nil
}

// UpdateProject renames a project. The backend answers 204 on success.
func (c *Client) UpdateProject(ctx context.Context, id, name string) error {
	request := Project{Name: name}
	if _, err := c.doRequest(ctx, http.MethodPut, "/projects/"+url.PathEscape(id), request); err != nil {
		return fmt.Errorf("n8n: update project failed: %w", err)
	}
	return nil
}

// DeleteProject removes a project. The backend answers 204 on success.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	if _, err := c.doRequest(ctx, http.MethodDelete, "/projects/"+url.PathEscape(id), nil); err != nil {
		return fmt.Errorf("n8n: delete project failed: %w", err)
	}
	return nil
}
