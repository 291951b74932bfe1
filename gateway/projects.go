// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"

	"github.com/illuminaresolutions/n8n-mcp-server/n8n"
)

type listProjectsParams struct {
	SessionParams
}

type createProjectParams struct {
	SessionParams
	Name string `json:"name" desc:"project name" required:"true"`
}

type updateProjectParams struct {
	SessionParams
	ProjectID string `json:"projectId" desc:"project identifier" required:"true"`
	Name      string `json:"name" desc:"new project name" required:"true"`
}

type deleteProjectParams struct {
	SessionParams
	ProjectID string `json:"projectId" desc:"project identifier" required:"true"`
}

// Project operations require an n8n Enterprise license with the
// projects feature. Without one the backend answers 403 and the
// connector rewrites the message to say so.
func projectOperations() []Operation {
	return []Operation{
		{
			Name:    "list-projects",
			Summary: "List all projects",
			Description: "Returns every project on the instance. Requires an n8n " +
				"Enterprise license with the projects feature enabled.",
			Params:      func() any { return &listProjectsParams{} },
			Session:     true,
			Annotations: ReadOnly(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				return client.ListProjects(ctx)
			},
		},
		{
			Name:    "create-project",
			Summary: "Create a new project",
			Description: "Creates a project with the given name. Requires an n8n " +
				"Enterprise license with the projects feature enabled.",
			Params:      func() any { return &createProjectParams{} },
			Session:     true,
			Confirm:     "Project created.",
			Annotations: Create(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*createProjectParams)
				return client.CreateProject(ctx, p.Name)
			},
		},
		{
			Name:    "update-project",
			Summary: "Rename a project",
			Description: "Renames an existing project. Requires an n8n Enterprise " +
				"license with the projects feature enabled.",
			Params:      func() any { return &updateProjectParams{} },
			Session:     true,
			Confirm:     "Project updated.",
			Annotations: Idempotent(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*updateProjectParams)
				return nil, client.UpdateProject(ctx, p.ProjectID, p.Name)
			},
		},
		{
			Name:    "delete-project",
			Summary: "Delete a project",
			Description: "Permanently deletes a project. Requires an n8n Enterprise " +
				"license with the projects feature enabled.",
			Params:      func() any { return &deleteProjectParams{} },
			Session:     true,
			Confirm:     "Project deleted.",
			Annotations: Destructive(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*deleteProjectParams)
				return nil, client.DeleteProject(ctx, p.ProjectID)
			},
		},
	}
}
