package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jacksonlmp/taskflow/core/db/sqlc"
	"github.com/jacksonlmp/taskflow/internal/model"
)

type taskStore struct {
	queries *sqlc.Queries
}

func newTaskStore(queries *sqlc.Queries) TaskStore {
	return &taskStore{queries: queries}
}

func (s *taskStore) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	row, err := s.queries.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTaskModel(row), nil
}

func (s *taskStore) GetVisibleToUser(ctx context.Context, id, userID int64) (*model.Task, error) {
	row, err := s.queries.GetTaskVisibleToUser(ctx, sqlc.GetTaskVisibleToUserParams{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTaskModel(row), nil
}

func (s *taskStore) ListVisibleToUser(ctx context.Context, userID int64) ([]model.Task, error) {
	rows, err := s.queries.ListTasksVisibleToUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Task, len(rows))
	for i, row := range rows {
		result[i] = *toTaskModel(row)
	}
	return result, nil
}

func (s *taskStore) Create(ctx context.Context, task *model.Task) error {
	row, err := s.queries.CreateTask(ctx, sqlc.CreateTaskParams{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		Completed:      task.Completed,
		OrganizationID: task.OrganizationID,
		CreatedBy:      task.CreatedBy,
		AssignedTo:     task.AssignedTo,
	})
	if err != nil {
		return translateError(err)
	}
	*task = *toTaskModel(row)
	return nil
}

func (s *taskStore) Update(ctx context.Context, task *model.Task) error {
	row, err := s.queries.UpdateTask(ctx, sqlc.UpdateTaskParams{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		AssignedTo:  task.AssignedTo,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*task = *toTaskModel(row)
	return nil
}

func (s *taskStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteTask(ctx, id)
}

func toTaskModel(row sqlc.Task) *model.Task {
	return &model.Task{
		ID:             row.ID,
		Title:          row.Title,
		Description:    row.Description,
		Completed:      row.Completed,
		OrganizationID: row.OrganizationID,
		CreatedBy:      row.CreatedBy,
		AssignedTo:     row.AssignedTo,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
