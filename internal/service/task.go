package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jacksonlmp/taskflow/common/id"
	"github.com/jacksonlmp/taskflow/internal/model"
	"github.com/jacksonlmp/taskflow/internal/store"
)

// TaskDetail carries a task with its nested creator, assignee and
// organization resolved (each may be absent on tasks predating
// multi-tenancy or after a user deletion).
type TaskDetail struct {
	Task           model.Task
	Organization   *model.Organization
	OrgMemberCount int64
	CreatedBy      *model.User
	AssignedTo     *model.User
}

type CreateTaskParams struct {
	Title       string
	Description string
	Completed   bool
	AssignedTo  *int64
}

// PatchTaskParams applies only its non-nil fields.
type PatchTaskParams struct {
	Title       *string
	Description *string
	Completed   *bool
	AssignedTo  *int64
}

type TaskService interface {
	List(ctx context.Context, userID int64) ([]TaskDetail, error)
	Get(ctx context.Context, taskID, userID int64) (*TaskDetail, error)
	// Create sets created_by to the caller and organization to the
	// caller's default organization; a caller with no profile gets a task
	// with no organization, which is not an error.
	Create(ctx context.Context, userID int64, params CreateTaskParams) (*TaskDetail, error)
	Update(ctx context.Context, taskID, userID int64, params CreateTaskParams) (*TaskDetail, error)
	Patch(ctx context.Context, taskID, userID int64, params PatchTaskParams) (*TaskDetail, error)
	Delete(ctx context.Context, taskID, userID int64) error
}

type taskService struct {
	stores store.Provider
}

func NewTaskService(stores store.Provider) TaskService {
	return &taskService{stores: stores}
}

func (s *taskService) List(ctx context.Context, userID int64) ([]TaskDetail, error) {
	tasks, err := s.stores.Tasks().ListVisibleToUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return s.assemble(ctx, tasks)
}

func (s *taskService) Get(ctx context.Context, taskID, userID int64) (*TaskDetail, error) {
	task, err := s.stores.Tasks().GetVisibleToUser(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	return s.assembleOne(ctx, task)
}

func (s *taskService) Create(ctx context.Context, userID int64, params CreateTaskParams) (*TaskDetail, error) {
	var orgID *int64
	org, err := defaultOrganization(ctx, s.stores, userID)
	switch {
	case err == nil:
		orgID = &org.ID
	case errors.Is(err, ErrNoOrganization):
		// The task is created without an organization.
	default:
		return nil, err
	}

	task := &model.Task{
		ID:             id.New(),
		Title:          params.Title,
		Description:    params.Description,
		Completed:      params.Completed,
		OrganizationID: orgID,
		CreatedBy:      &userID,
		AssignedTo:     params.AssignedTo,
	}
	if err := s.stores.Tasks().Create(ctx, task); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	slog.InfoContext(ctx, "task created",
		"task_id", task.ID,
		"created_by", userID,
	)

	return s.assembleOne(ctx, task)
}

func (s *taskService) Update(ctx context.Context, taskID, userID int64, params CreateTaskParams) (*TaskDetail, error) {
	task, err := s.stores.Tasks().GetVisibleToUser(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	task.Title = params.Title
	task.Description = params.Description
	task.Completed = params.Completed
	task.AssignedTo = params.AssignedTo

	if err := s.stores.Tasks().Update(ctx, task); err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return s.assembleOne(ctx, task)
}

func (s *taskService) Patch(ctx context.Context, taskID, userID int64, params PatchTaskParams) (*TaskDetail, error) {
	task, err := s.stores.Tasks().GetVisibleToUser(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		task.Title = *params.Title
	}
	if params.Description != nil {
		task.Description = *params.Description
	}
	if params.Completed != nil {
		task.Completed = *params.Completed
	}
	if params.AssignedTo != nil {
		task.AssignedTo = params.AssignedTo
	}

	if err := s.stores.Tasks().Update(ctx, task); err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return s.assembleOne(ctx, task)
}

func (s *taskService) Delete(ctx context.Context, taskID, userID int64) error {
	if _, err := s.stores.Tasks().GetVisibleToUser(ctx, taskID, userID); err != nil {
		return err
	}
	return s.stores.Tasks().Delete(ctx, taskID)
}

func (s *taskService) assembleOne(ctx context.Context, task *model.Task) (*TaskDetail, error) {
	details, err := s.assemble(ctx, []model.Task{*task})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *taskService) assemble(ctx context.Context, tasks []model.Task) ([]TaskDetail, error) {
	if len(tasks) == 0 {
		return []TaskDetail{}, nil
	}

	var userIDs, orgIDs []int64
	seenUsers := make(map[int64]bool)
	seenOrgs := make(map[int64]bool)
	collectUser := func(id *int64) {
		if id != nil && !seenUsers[*id] {
			seenUsers[*id] = true
			userIDs = append(userIDs, *id)
		}
	}
	for _, t := range tasks {
		collectUser(t.CreatedBy)
		collectUser(t.AssignedTo)
		if t.OrganizationID != nil && !seenOrgs[*t.OrganizationID] {
			seenOrgs[*t.OrganizationID] = true
			orgIDs = append(orgIDs, *t.OrganizationID)
		}
	}

	users, err := s.stores.Users().ListByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("resolving users: %w", err)
	}
	usersByID := make(map[int64]model.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	orgs, err := s.stores.Organizations().ListByIDs(ctx, orgIDs)
	if err != nil {
		return nil, fmt.Errorf("resolving organizations: %w", err)
	}
	orgsByID := make(map[int64]model.Organization, len(orgs))
	for _, o := range orgs {
		orgsByID[o.ID] = o
	}

	counts, err := s.stores.Organizations().CountMembersByIDs(ctx, orgIDs)
	if err != nil {
		return nil, fmt.Errorf("counting members: %w", err)
	}

	lookupUser := func(id *int64) *model.User {
		if id == nil {
			return nil
		}
		if u, ok := usersByID[*id]; ok {
			return &u
		}
		return nil
	}

	details := make([]TaskDetail, len(tasks))
	for i, t := range tasks {
		detail := TaskDetail{
			Task:       t,
			CreatedBy:  lookupUser(t.CreatedBy),
			AssignedTo: lookupUser(t.AssignedTo),
		}
		if t.OrganizationID != nil {
			if org, ok := orgsByID[*t.OrganizationID]; ok {
				detail.Organization = &org
				detail.OrgMemberCount = counts[org.ID]
			}
		}
		details[i] = detail
	}
	return details, nil
}
