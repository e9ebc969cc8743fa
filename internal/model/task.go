package model

import "time"

// Task is the unit of work. Organization, creator and assignee are
// nullable: records predating multi-tenancy carry no organization, and
// deleting a user nulls the task references instead of deleting the task.
type Task struct {
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	OrganizationID *int64    `json:"organization_id"`
	CreatedBy      *int64    `json:"created_by"`
	AssignedTo     *int64    `json:"assigned_to"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ID             int64     `json:"id"`
	Completed      bool      `json:"completed"`
}
