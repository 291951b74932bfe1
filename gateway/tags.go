// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"

	"github.com/illuminaresolutions/n8n-mcp-server/n8n"
)

type listTagsParams struct {
	SessionParams
}

type createTagParams struct {
	SessionParams
	Name string `json:"name" desc:"tag name" required:"true"`
}

type tagIDParams struct {
	SessionParams
	TagID string `json:"tagId" desc:"tag identifier" required:"true"`
}

type updateTagParams struct {
	SessionParams
	TagID string `json:"tagId" desc:"tag identifier" required:"true"`
	Name  string `json:"name" desc:"new tag name" required:"true"`
}

type workflowTagsParams struct {
	SessionParams
	WorkflowID string `json:"workflowId" desc:"workflow identifier" required:"true"`
}

type updateWorkflowTagsParams struct {
	SessionParams
	WorkflowID string   `json:"workflowId" desc:"workflow identifier" required:"true"`
	TagIDs     []string `json:"tagIds" desc:"tag identifiers to assign; replaces the current set" required:"true"`
}

func tagOperations() []Operation {
	return []Operation{
		{
			Name:        "list-tags",
			Summary:     "List all tags",
			Description: "Returns every workflow tag defined on the instance.",
			Params:      func() any { return &listTagsParams{} },
			Session:     true,
			Annotations: ReadOnly(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				return client.ListTags(ctx)
			},
		},
		{
			Name:        "create-tag",
			Summary:     "Create a tag",
			Description: "Creates a workflow tag with the given name.",
			Params:      func() any { return &createTagParams{} },
			Session:     true,
			Confirm:     "Tag created.",
			Annotations: Create(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*createTagParams)
				return client.CreateTag(ctx, p.Name)
			},
		},
		{
			Name:        "get-tag",
			Summary:     "Get one tag by id",
			Description: "Returns a single workflow tag.",
			Params:      func() any { return &tagIDParams{} },
			Session:     true,
			Annotations: ReadOnly(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*tagIDParams)
				return client.GetTag(ctx, p.TagID)
			},
		},
		{
			Name:        "update-tag",
			Summary:     "Rename a tag",
			Description: "Renames an existing workflow tag.",
			Params:      func() any { return &updateTagParams{} },
			Session:     true,
			Confirm:     "Tag updated.",
			Annotations: Idempotent(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*updateTagParams)
				return client.UpdateTag(ctx, p.TagID, p.Name)
			},
		},
		{
			Name:    "delete-tag",
			Summary: "Delete a tag",
			Description: "Permanently deletes a workflow tag. Workflows carrying the " +
				"tag simply lose it.",
			Params:      func() any { return &tagIDParams{} },
			Session:     true,
			Confirm:     "Tag deleted.",
			Annotations: Destructive(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*tagIDParams)
				return client.DeleteTag(ctx, p.TagID)
			},
		},
		{
			Name:        "get-workflow-tags",
			Summary:     "Get the tags of a workflow",
			Description: "Returns the tags currently assigned to a workflow.",
			Params:      func() any { return &workflowTagsParams{} },
			Session:     true,
			Annotations: ReadOnly(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*workflowTagsParams)
				return client.GetWorkflowTags(ctx, p.WorkflowID)
			},
		},
		{
			Name:    "update-workflow-tags",
			Summary: "Replace the tags of a workflow",
			Description: "Replaces the full set of tags assigned to a workflow. Pass " +
				"an empty list to clear all tags.",
			Params:      func() any { return &updateWorkflowTagsParams{} },
			Session:     true,
			Confirm:     "Workflow tags updated.",
			Annotations: Idempotent(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*updateWorkflowTagsParams)
				refs := make([]n8n.TagRef, 0, len(p.TagIDs))
				for _, id := range p.TagIDs {
					refs = append(refs, n8n.TagRef{ID: id})
				}
				return client.UpdateWorkflowTags(ctx, p.WorkflowID, refs)
			},
		},
	}
}
