package dto

import (
	"time"

	"github.com/jacksonlmp/taskflow/internal/service"
)

// Task write shapes accept title, description, completed and an assignee
// reference. Organization, creator, ids and timestamps are exclusively
// server-derived.
type CreateTaskRequest struct {
	Title        string `json:"title" binding:"required,min=1,max=200"`
	Description  string `json:"description"`
	Completed    bool   `json:"completed"`
	AssignedToID *int64 `json:"assigned_to_id,string"`
}

type PatchTaskRequest struct {
	Title        *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description  *string `json:"description"`
	Completed    *bool   `json:"completed"`
	AssignedToID *int64  `json:"assigned_to_id,string"`
}

type TaskResponse struct {
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Organization *OrganizationResponse `json:"organization"`
	CreatedBy    *UserResponse         `json:"created_by"`
	AssignedTo   *UserResponse         `json:"assigned_to"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	ID           int64                 `json:"id,string"`
	Completed    bool                  `json:"completed"`
}

func ToTaskResponse(d *service.TaskDetail) *TaskResponse {
	return &TaskResponse{
		ID:           d.Task.ID,
		Title:        d.Task.Title,
		Description:  d.Task.Description,
		Completed:    d.Task.Completed,
		Organization: ToOrganizationResponse(d.Organization, d.OrgMemberCount),
		CreatedBy:    ToUserResponse(d.CreatedBy),
		AssignedTo:   ToUserResponse(d.AssignedTo),
		CreatedAt:    d.Task.CreatedAt,
		UpdatedAt:    d.Task.UpdatedAt,
	}
}

func ToTaskResponses(details []service.TaskDetail) []TaskResponse {
	result := make([]TaskResponse, len(details))
	for i := range details {
		result[i] = *ToTaskResponse(&details[i])
	}
	return result
}
