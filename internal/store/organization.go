package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jacksonlmp/taskflow/core/db/sqlc"
	"github.com/jacksonlmp/taskflow/internal/model"
)

type organizationStore struct {
	queries *sqlc.Queries
}

func newOrganizationStore(queries *sqlc.Queries) OrganizationStore {
	return &organizationStore{queries: queries}
}

func (s *organizationStore) GetByID(ctx context.Context, id int64) (*model.Organization, error) {
	row, err := s.queries.GetOrganization(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) GetBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	row, err := s.queries.GetOrganizationBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) GetForUser(ctx context.Context, id, userID int64) (*model.Organization, error) {
	row, err := s.queries.GetOrganizationForUser(ctx, sqlc.GetOrganizationForUserParams{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) ListByUser(ctx context.Context, userID int64) ([]model.Organization, error) {
	rows, err := s.queries.ListOrganizationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toOrganizationModels(rows), nil
}

func (s *organizationStore) ListByIDs(ctx context.Context, ids []int64) ([]model.Organization, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.queries.ListOrganizationsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toOrganizationModels(rows), nil
}

func (s *organizationStore) CountMembers(ctx context.Context, orgID int64) (int64, error) {
	return s.queries.CountOrganizationMembers(ctx, orgID)
}

func (s *organizationStore) CountMembersByIDs(ctx context.Context, ids []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}
	rows, err := s.queries.CountMembersByOrganizations(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.OrganizationID] = row.MemberCount
	}
	return counts, nil
}

func (s *organizationStore) Create(ctx context.Context, org *model.Organization) error {
	row, err := s.queries.CreateOrganization(ctx, sqlc.CreateOrganizationParams{
		ID:          org.ID,
		Name:        org.Name,
		Slug:        org.Slug,
		Description: org.Description,
		IsActive:    org.IsActive,
	})
	if err != nil {
		return translateError(err)
	}
	*org = *toOrganizationModel(row)
	return nil
}

func (s *organizationStore) Update(ctx context.Context, org *model.Organization) error {
	row, err := s.queries.UpdateOrganization(ctx, sqlc.UpdateOrganizationParams{
		ID:          org.ID,
		Name:        org.Name,
		Description: org.Description,
		IsActive:    org.IsActive,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*org = *toOrganizationModel(row)
	return nil
}

func (s *organizationStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteOrganization(ctx, id)
}

func toOrganizationModel(row sqlc.Organization) *model.Organization {
	return &model.Organization{
		ID:          row.ID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func toOrganizationModels(rows []sqlc.Organization) []model.Organization {
	result := make([]model.Organization, len(rows))
	for i, row := range rows {
		result[i] = *toOrganizationModel(row)
	}
	return result
}
