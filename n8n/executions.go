// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package n8n

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Executions are records of past workflow runs. The gateway reads and
// deletes them; it never starts, stops, or retries a run.

// ListExecutions returns execution records, newest first. options may
// be nil for an unfiltered listing.
func (c *Client) ListExecutions(ctx context.Context, options *ExecutionListOptions) (*ExecutionList, error) {
	query := url.Values{}
	if options != nil {
		if options.Status != "" {
			query.Set("status", options.Status)
		}
		if options.WorkflowID != "" {
			query.Set("workflowId", options.WorkflowID)
		}
		if options.ProjectID != "" {
			query.Set("projectId", options.ProjectID)
		}
		if options.IncludeData {
			query.Set("includeData", "true")
		}
		if options.Limit > 0 {
			query.Set("limit", strconv.Itoa(options.Limit))
		}
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/executions", nil, query)
	if err != nil {
		return nil, fmt.Errorf("n8n: list executions failed: %w", err)
	}

	var list ExecutionList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse execution list: %w", err)
	}
	return &list, nil
}

// GetExecution returns one execution record. includeData adds the full
// run payload, which can be large.
func (c *Client) GetExecution(ctx context.Context, id int64, includeData bool) (*Execution, error) {
	query := url.Values{}
	if includeData {
		query.Set("includeData", "true")
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/executions/"+strconv.FormatInt(id, 10), nil, query)
	if err != nil {
		return nil, fmt.Errorf("n8n: get execution failed: %w", err)
	}

	var execution Execution
	if err := json.Unmarshal(body, &execution); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse execution: %w", err)
	}
	return &execution, nil
}

// DeleteExecution removes an execution record and returns the
// backend's record of what was deleted.
func (c *Client) DeleteExecution(ctx context.Context, id int64) (*Execution, error) {
	body, err := c.doRequest(ctx, http.MethodDelete, "/executions/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, fmt.Errorf("n8n: delete execution failed: %w", err)
	}
	if body == nil {
		return nil, nil
	}

	var execution Execution
	if err := json.Unmarshal(body, &execution); err != nil {
		return nil, fmt.Errorf("n8n: failed to parse deleted execution: %w", err)
	}
	return &execution, nil
}
