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

// ListTags returns the instance's tags.
func (c *Client) ListTags(ctx context.Context) (*TagList, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("n8n: list tags failed: %w", err)
	}

	var list TagList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse tag list: %w", err)
	}
	return &list, nil
}

// GetTag returns one tag by identifier.
func (c *Client) GetTag(ctx context.Context, id string) (*Tag, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/tags/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("n8n: get tag failed: %w", err)
	}

	var tag Tag
	if err := json.Unmarshal(body, &tag); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse tag: %w", err)
	}
	return &tag, nil
}

// CreateTag creates a tag with the given name.
func (c *Client) CreateTag(ctx context.Context, name string) (*Tag, error) {
	request := Tag{Name: name}
	body, err := c.doRequest(ctx, http.MethodPost, "/tags", request)
	if err != nil {
		return nil, fmt.Errorf("n8n: create tag failed: %w", err)
	}

	var tag Tag
	if err := json.Unmarshal(body, &tag); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse created tag: %w", err)
	}
	return &tag, nil
}

// UpdateTag renames a tag and returns the stored result.
func (c *Client) UpdateTag(ctx context.Context, id, name string) (*Tag, error) {
	request := Tag{Name: name}
	body, err := c.doRequest(ctx, http.MethodPut, "/tags/"+url.PathEscape(id), request)
	if err != nil {
		return nil, fmt.Errorf("n8n: update tag failed: %w", err)
	}

	var tag Tag
	if err := json.Unmarshal(body, &tag); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse updated tag: %w", err)
	}
	return &tag, nil
}

// DeleteTag removes a tag and returns the backend's record of what was
// deleted. Bound workflows keep running; they just lose the label.
func (c *Client) DeleteTag(ctx context.Context, id string) (*Tag, error) {
	body, err := c.doRequest(ctx, http.MethodDelete, "/tags/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("n8n: delete tag failed: %w", err)
	}
	if body == nil {
		return nil, nil
	}

	var tag Tag
	if err := json.Unmarshal(body, &tag); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse deleted tag: %w", err)
	}
	return &tag, nil
}

// GetWorkflowTags returns the tags bound to one workflow.
func (c *Client) GetWorkflowTags(ctx context.Context, workflowID string) ([]Tag, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/workflows/"+url.PathEscape(workflowID)+"/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("n8n: get workflow tags failed: %w", err)
	}

	var tags []Tag
	if err := json.Unmarshal(body, &tags); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse workflow tags: %w", err)
	}
	return tags, nil
}

// UpdateWorkflowTags replaces a workflow's tag binding with the given
// set and returns the new binding. An empty set clears all tags.
func (c *Client) UpdateWorkflowTags(ctx context.Context, workflowID string, tags []TagRef) ([]Tag, error) {
	if tags == nil {
		// A nil slice marshals as null; the backend wants [].
		tags = []TagRef{}
	}
	body, err := c.doRequest(ctx, http.MethodPut, "/workflows/"+url.PathEscape(workflowID)+"/tags", tags)
	if err != nil {
		return nil, fmt.Errorf("n8n: update workflow tags failed: %w", err)
	}

	var bound []Tag
	if err := json.Unmarshal(body, &bound); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse workflow tags: %w", err)
	}
	return bound, nil
}
