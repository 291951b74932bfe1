// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package n8n

import "encoding/json"

// Workflow is the backend's workflow representation. Structures the
// gateway never interprets (node graphs, connection maps, settings)
// stay as raw JSON: the backend is authoritative on their shape and
// versions them independently of this client. Timestamps pass through
// as the backend's RFC 3339 strings.
type Workflow struct {
	ID          string            `json:"id,omitempty"`
	Name        string            `json:"name"`
	Active      bool              `json:"active"`
	Nodes       []json.RawMessage `json:"nodes,omitempty"`
	Connections json.RawMessage   `json:"connections,omitempty"`
	Settings    json.RawMessage   `json:"settings,omitempty"`
	StaticData  json.RawMessage   `json:"staticData,omitempty"`
	Tags        []Tag             `json:"tags,omitempty"`
	CreatedAt   string            `json:"createdAt,omitempty"`
	UpdatedAt   string            `json:"updatedAt,omitempty"`
}

// WorkflowList is one page of workflows. NextCursor passes through
// verbatim; the gateway does no pagination of its own.
type WorkflowList struct {
	Data       []Workflow `json:"data"`
	NextCursor string     `json:"nextCursor,omitempty"`
}

// WorkflowDefinition is the writable subset of a workflow, sent on
// create and update. The backend requires Nodes, Connections, and
// Settings to be present (empty array / empty object when unused), so
// none of them carry omitempty.
type WorkflowDefinition struct {
	Name        string            `json:"name"`
	Nodes       []json.RawMessage `json:"nodes"`
	Connections json.RawMessage   `json:"connections"`
	Settings    json.RawMessage   `json:"settings"`
	StaticData  json.RawMessage   `json:"staticData,omitempty"`
}

// Project is an n8n project (an Enterprise feature for grouping
// workflows and credentials under shared ownership).
type Project struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// ProjectList is one page of projects.
type ProjectList struct {
	Data       []Project `json:"data"`
	NextCursor string    `json:"nextCursor,omitempty"`
}

// User is an n8n instance member.
type User struct {
	ID        string `json:"id,omitempty"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      string `json:"role,omitempty"`
	IsPending bool   `json:"isPending,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// UserList is one page of users.
type UserList struct {
	Data       []User `json:"data"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// UserCreate is one invitation in a create-users request. Role is
// "global:admin" or "global:member"; the backend defaults to member
// when omitted.
type UserCreate struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// UserCreateResult is one element of the create-users response,
// positionally matching the request. A failed invitation carries
// Error; a successful one carries the invited user.
type UserCreateResult struct {
	User  *InvitedUser `json:"user,omitempty"`
	Error string       `json:"error,omitempty"`
}

// InvitedUser describes a freshly invited user, including the URL the
// invitee must visit to accept (surfaced so the caller can relay it
// when the instance has no outbound email).
type InvitedUser struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	InviteAcceptURL string `json:"inviteAcceptUrl,omitempty"`
	EmailSent       bool   `json:"emailSent,omitempty"`
}

// Variable is an instance-level key/value variable (an Enterprise
// feature; workflows reference them as $vars.key).
type Variable struct {
	ID    string `json:"id,omitempty"`
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type,omitempty"`
}

// VariableList is one page of variables.
type VariableList struct {
	Data       []Variable `json:"data"`
	NextCursor string     `json:"nextCursor,omitempty"`
}

// Execution is the record of one past workflow run. Execution
// identifiers are numeric, unlike the string identifiers of every
// other resource. Data is the full run payload and is only populated
// when the caller asked for it.
type Execution struct {
	ID         int64           `json:"id"`
	Status     string          `json:"status,omitempty"`
	Mode       string          `json:"mode,omitempty"`
	Finished   bool            `json:"finished"`
	WorkflowID string          `json:"workflowId,omitempty"`
	StartedAt  string          `json:"startedAt,omitempty"`
	StoppedAt  string          `json:"stoppedAt,omitempty"`
	WaitTill   string          `json:"waitTill,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// ExecutionList is one page of execution records.
type ExecutionList struct {
	Data       []Execution `json:"data"`
	NextCursor string      `json:"nextCursor,omitempty"`
}

// ExecutionListOptions filter a ListExecutions call. Zero values mean
// "no filter". Status is one of "error", "success", "waiting".
type ExecutionListOptions struct {
	Status      string
	WorkflowID  string
	ProjectID   string
	IncludeData bool
	Limit       int
}

// Tag labels workflows for filtering and grouping.
type Tag struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// TagList is one page of tags.
type TagList struct {
	Data       []Tag  `json:"data"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// TagRef names a tag by identifier. UpdateWorkflowTags takes the full
// desired set as refs; the backend replaces the binding wholesale.
type TagRef struct {
	ID string `json:"id"`
}

// AuditOptions tune a security audit run. Categories selects report
// sections ("credentials", "database", "nodes", "filesystem",
// "instance"); empty means all. DaysAbandonedWorkflow is the age in
// days after which an inactive workflow counts as abandoned; zero
// keeps the backend default.
type AuditOptions struct {
	DaysAbandonedWorkflow int
	Categories            []string
}
