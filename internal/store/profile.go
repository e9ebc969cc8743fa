package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jacksonlmp/taskflow/core/db/sqlc"
	"github.com/jacksonlmp/taskflow/internal/model"
)

type profileStore struct {
	queries *sqlc.Queries
}

func newProfileStore(queries *sqlc.Queries) ProfileStore {
	return &profileStore{queries: queries}
}

func (s *profileStore) GetByID(ctx context.Context, id int64) (*model.Profile, error) {
	row, err := s.queries.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toProfileModel(row), nil
}

func (s *profileStore) GetForUser(ctx context.Context, id, userID int64) (*model.Profile, error) {
	row, err := s.queries.GetProfileForUser(ctx, sqlc.GetProfileForUserParams{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toProfileModel(row), nil
}

func (s *profileStore) ListByUser(ctx context.Context, userID int64) ([]model.Profile, error) {
	rows, err := s.queries.ListProfilesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfileModels(rows), nil
}

func (s *profileStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.Profile, error) {
	rows, err := s.queries.ListProfilesByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return toProfileModels(rows), nil
}

func (s *profileStore) ListVisibleToUser(ctx context.Context, userID int64) ([]model.Profile, error) {
	rows, err := s.queries.ListProfilesVisibleToUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfileModels(rows), nil
}

func (s *profileStore) Create(ctx context.Context, profile *model.Profile) error {
	row, err := s.queries.CreateProfile(ctx, sqlc.CreateProfileParams{
		ID:             profile.ID,
		UserID:         profile.UserID,
		OrganizationID: profile.OrganizationID,
		Role:           string(profile.Role),
	})
	if err != nil {
		return translateError(err)
	}
	*profile = *toProfileModel(row)
	return nil
}

func (s *profileStore) Update(ctx context.Context, profile *model.Profile) error {
	row, err := s.queries.UpdateProfileRole(ctx, sqlc.UpdateProfileRoleParams{
		ID:   profile.ID,
		Role: string(profile.Role),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*profile = *toProfileModel(row)
	return nil
}

func (s *profileStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteProfile(ctx, id)
}

func toProfileModel(row sqlc.Profile) *model.Profile {
	return &model.Profile{
		ID:             row.ID,
		UserID:         row.UserID,
		OrganizationID: row.OrganizationID,
		Role:           model.Role(row.Role),
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}

func toProfileModels(rows []sqlc.Profile) []model.Profile {
	result := make([]model.Profile, len(rows))
	for i, row := range rows {
		result[i] = *toProfileModel(row)
	}
	return result
}
