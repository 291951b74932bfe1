// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package n8n

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type auditRequest struct {
	AdditionalOptions *auditAdditionalOptions `json:"additionalOptions,omitempty"`
}

type auditAdditionalOptions struct {
	DaysAbandonedWorkflow int      `json:"daysAbandonedWorkflow,omitempty"`
	Categories            []string `json:"categories,omitempty"`
}

// GenerateAudit asks the backend for a security audit of the instance
// (risky nodes, unprotected webhooks, abandoned workflows, instance
// settings). The report shape is backend-defined and passes through
// opaquely. options may be nil for the default audit.
func (c *Client) GenerateAudit(ctx context.Context, options *AuditOptions) (json.RawMessage, error) {
	request := auditRequest{}
	if options != nil && (options.DaysAbandonedWorkflow > 0 || len(options.Categories) > 0) {
		request.AdditionalOptions = &auditAdditionalOptions{
			DaysAbandonedWorkflow: options.DaysAbandonedWorkflow,
			Categories:            options.Categories,
		}
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/audit", request)
	if err != nil {
		return nil, fmt.Errorf("n8n: generate audit failed: %w", err)
	}
	return json.RawMessage(body), nil
}
