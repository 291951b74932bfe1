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

// ListWorkflows returns the workflows visible to the API key.
func (c *Client) ListWorkflows(ctx context.Context) (*WorkflowList, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/workflows", nil)
	if err != nil {
		return nil, fmt.Errorf("n8n: list workflows failed: %w", err)
	}

	var list WorkflowList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse workflow list: %w", err)
	}
	return &list, nil
}

// GetWorkflow returns one workflow by identifier, including its node
// and connection graphs.
func (c *Client) GetWorkflow(ctx context.Context, id string) (*Workflow, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/workflows/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("n8n: get workflow failed: %w", err)
	}

	var workflow Workflow
	if err := json.Unmarshal(body, &workflow); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse workflow: %w", err)
	}
	return &workflow, nil
}

// CreateWorkflow creates a workflow and returns the backend's
// representation of it (with the assigned identifier). New workflows
// are always created inactive; activate separately.
func (c *Client) CreateWorkflow(ctx context.Context, definition *WorkflowDefinition) (*Workflow, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/workflows", definition)
	if err != nil {
		return nil, fmt.Errorf("n8n: create workflow failed: %w", err)
	}

	var workflow Workflow
	if err := json.Unmarshal(body, &workflow); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse created workflow: %w", err)
	}
	return &workflow, nil
}

// UpdateWorkflow replaces a workflow's definition wholesale (the
// backend has no partial update) and returns the stored result.
func (c *Client) UpdateWorkflow(ctx context.Context, id string, definition *WorkflowDefinition) (*Workflow, error) {
	body, err := c.doRequest(ctx, http.MethodPut, "/workflows/"+url.PathEscape(id), definition)
	if err != nil {
		return nil, fmt.Errorf("n8n: update workflow failed: %w", err)
	}

	var workflow Workflow
	if err := json.Unmarshal(body, &workflow); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse updated workflow: %w", err)
	}
	return &workflow, nil
}

// DeleteWorkflow removes a workflow and returns the backend's record
// of what was deleted.
func (c *Client) DeleteWorkflow(ctx context.Context, id string) (*Workflow, error) {
	body, err := c.doRequest(ctx, http.MethodDelete, "/workflows/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("n8n: delete workflow failed: %w", err)
	}
	if body == nil {
		return nil, nil
	}

	var workflow Workflow
	if err := json.Unmarshal(body, &workflow); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse deleted workflow: %w", err)
	}
	return &workflow, nil
}

// ActivateWorkflow switches a workflow's triggers on.
func (c *Client) ActivateWorkflow(ctx context.Context, id string) (*Workflow, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/workflows/"+url.PathEscape(id)+"/activate", nil)
	if err != nil {
		return nil, fmt.Errorf("n8n: activate workflow failed: %w", err)
	}

	var workflow Workflow
	if err := json.Unmarshal(body, &workflow); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse activated workflow: %w", err)
	}
	return &workflow, nil
}

// DeactivateWorkflow switches a workflow's triggers off.
func (c *Client) DeactivateWorkflow(ctx context.Context, id string) (*Workflow, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/workflows/"+url.PathEscape(id)+"/deactivate", nil)
	if err != nil {
		return nil, fmt.Errorf("n8n: deactivate workflow failed: %w", err)
	}

	var workflow Workflow
	if err := json.Unmarshal(body, &workflow); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse deactivated workflow: %w", err)
	}
	return &workflow, nil
}
