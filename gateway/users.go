// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"

	"github.com/illuminaresolutions/n8n-mcp-server/n8n"
)

type listUsersParams struct {
	SessionParams
}

type createUserParams struct {
	SessionParams
	Email string `json:"email" desc:"email address to invite" required:"true"`
	Role  string `json:"role" desc:"global role for the new user" enum:"global:admin,global:member" default:"global:member"`
}

// userIDParams serves operations addressing one user. The backend
// accepts either the user id or the email address as the selector.
type userIDParams struct {
	SessionParams
	UserID string `json:"userId" desc:"user id or email address" required:"true"`
}

func userOperations() []Operation {
	return []Operation{
		{
			Name:    "list-users",
			Summary: "List all users",
			Description: "Returns every user account on the instance with its role " +
				"and pending state.",
			Params:      func() any { return &listUsersParams{} },
			Session:     true,
			Annotations: ReadOnly(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				return client.ListUsers(ctx)
			},
		},
		{
			Name:    "create-user",
			Summary: "Invite a new user",
			Description: "Invites a user by email with the given global role. The " +
				"result includes an invite acceptance URL to pass along when the " +
				"instance cannot send email itself.",
			Params:      func() any { return &createUserParams{} },
			Session:     true,
			Confirm:     "User created.",
			Annotations: Create(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*createUserParams)
				results, err := client.CreateUsers(ctx, []n8n.UserCreate{{Email: p.Email, Role: p.Role}})
				if err != nil {
					return nil, err
				}
				// One invite in, one result out.
				if len(results) == 1 {
					return results[0], nil
				}
				return results, nil
			},
		},
		{
			Name:    "get-user",
			Summary: "Get one user by id or email",
			Description: "Returns a single user account. The selector may be the " +
				"user id or the email address.",
			Params:      func() any { return &userIDParams{} },
			Session:     true,
			Annotations: ReadOnly(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*userIDParams)
				return client.GetUser(ctx, p.UserID)
			},
		},
		{
			Name:    "delete-user",
			Summary: "Delete a user",
			Description: "Permanently deletes a user account. The selector may be " +
				"the user id or the email address.",
			Params:      func() any { return &userIDParams{} },
			Session:     true,
			Confirm:     "User deleted.",
			Annotations: Destructive(),
			Invoke: func(ctx context.Context, client *n8n.Client, params any) (any, error) {
				p := params.(*userIDParams)
				return nil, client.DeleteUser(ctx, p.UserID)
			},
		},
	}
}
