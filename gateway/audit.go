// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"

	"github.com/illuminaresolutions/n8n-mcp-server/n8n"
)

type generateAuditParams struct {
	SessionParams
	DaysAbandonedWorkflow int      `json:"daysAbandonedWorkflow" desc:"consider a workflow abandoned after this many days without execution"`
	Categories            []string `json:"categories" desc:"audit categories to run: credentials, database, nodes, filesystem, instance; all run when omitted"`
}

func auditOperations() []Operation {
	return []Operation{
		{
			Name:    "generate-audit",
			Summary: "Generate a security audit report",
			Description: "Runs n8n's built-in security audit and returns the report: " +
				"unused credentials, risky node types, filesystem access, and " +
				"instance settings. The report shape is defined by the backend and " +
				"passed through unchanged.",
			Params:      func() any { return &generateAuditParams{} },
			Session:     true,
			Annotations: ReadOnly(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*generateAuditParams)
				return client.GenerateAudit(ctx, &n8n.AuditOptions{
					DaysAbandonedWorkflow: p.DaysAbandonedWorkflow,
					Categories:            p.Categories,
				})
			},
		},
	}
}
