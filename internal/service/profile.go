package service

import (
	"context"
	"fmt"

	"github.com/jacksonlmp/taskflow/common/id"
	"github.com/jacksonlmp/taskflow/internal/model"
	"github.com/jacksonlmp/taskflow/internal/store"
)

// ProfileDetail carries a profile with its user and organization resolved
// for the read representation.
type ProfileDetail struct {
	Profile        model.Profile
	User           model.User
	Organization   model.Organization
	OrgMemberCount int64
}

type ProfileService interface {
	List(ctx context.Context, userID int64) ([]ProfileDetail, error)
	Get(ctx context.Context, profileID, userID int64) (*ProfileDetail, error)
	// Create joins the caller to an organization with the given role.
	Create(ctx context.Context, userID, orgID int64, role model.Role) (*ProfileDetail, error)
	UpdateRole(ctx context.Context, profileID, userID int64, role model.Role) (*ProfileDetail, error)
	Delete(ctx context.Context, profileID, userID int64) error
}

type profileService struct {
	stores store.Provider
}

func NewProfileService(stores store.Provider) ProfileService {
	return &profileService{stores: stores}
}

func (s *profileService) List(ctx context.Context, userID int64) ([]ProfileDetail, error) {
	profiles, err := s.stores.Profiles().ListVisibleToUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	return assembleProfileDetails(ctx, s.stores, profiles, nil)
}

func (s *profileService) Get(ctx context.Context, profileID, userID int64) (*ProfileDetail, error) {
	profile, err := s.stores.Profiles().GetForUser(ctx, profileID, userID)
	if err != nil {
		return nil, err
	}
	details, err := assembleProfileDetails(ctx, s.stores, []model.Profile{*profile}, nil)
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *profileService) Create(ctx context.Context, userID, orgID int64, role model.Role) (*ProfileDetail, error) {
	if _, err := s.stores.Organizations().GetByID(ctx, orgID); err != nil {
		return nil, err
	}

	if role == "" {
		role = model.RoleMember
	}

	profile := &model.Profile{
		ID:             id.New(),
		UserID:         userID,
		OrganizationID: orgID,
		Role:           role,
	}
	if err := s.stores.Profiles().Create(ctx, profile); err != nil {
		return nil, err
	}

	details, err := assembleProfileDetails(ctx, s.stores, []model.Profile{*profile}, nil)
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *profileService) UpdateRole(ctx context.Context, profileID, userID int64, role model.Role) (*ProfileDetail, error) {
	profile, err := s.stores.Profiles().GetForUser(ctx, profileID, userID)
	if err != nil {
		return nil, err
	}

	profile.Role = role
	if err := s.stores.Profiles().Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	details, err := assembleProfileDetails(ctx, s.stores, []model.Profile{*profile}, nil)
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *profileService) Delete(ctx context.Context, profileID, userID int64) error {
	if _, err := s.stores.Profiles().GetForUser(ctx, profileID, userID); err != nil {
		return err
	}
	return s.stores.Profiles().Delete(ctx, profileID)
}

// assembleProfileDetails resolves the nested user and organization for
// each profile with batched lookups. knownOrgs short-circuits
// organization fetches the caller already has.
func assembleProfileDetails(ctx context.Context, stores store.Provider, profiles []model.Profile, knownOrgs map[int64]*model.Organization) ([]ProfileDetail, error) {
	if len(profiles) == 0 {
		return []ProfileDetail{}, nil
	}

	userIDs := make([]int64, 0, len(profiles))
	orgIDs := make([]int64, 0, len(profiles))
	seenUsers := make(map[int64]bool)
	seenOrgs := make(map[int64]bool)
	for _, p := range profiles {
		if !seenUsers[p.UserID] {
			seenUsers[p.UserID] = true
			userIDs = append(userIDs, p.UserID)
		}
		if !seenOrgs[p.OrganizationID] {
			seenOrgs[p.OrganizationID] = true
			orgIDs = append(orgIDs, p.OrganizationID)
		}
	}

	users, err := stores.Users().ListByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("resolving users: %w", err)
	}
	usersByID := make(map[int64]model.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	orgsByID := make(map[int64]model.Organization, len(orgIDs))
	for id, org := range knownOrgs {
		orgsByID[id] = *org
	}
	missing := make([]int64, 0, len(orgIDs))
	for _, id := range orgIDs {
		if _, ok := orgsByID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		orgs, err := stores.Organizations().ListByIDs(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("resolving organizations: %w", err)
		}
		for _, o := range orgs {
			orgsByID[o.ID] = o
		}
	}

	counts, err := stores.Organizations().CountMembersByIDs(ctx, orgIDs)
	if err != nil {
		return nil, fmt.Errorf("counting members: %w", err)
	}

	details := make([]ProfileDetail, len(profiles))
	for i, p := range profiles {
		details[i] = ProfileDetail{
			Profile:        p,
			User:           usersByID[p.UserID],
			Organization:   orgsByID[p.OrganizationID],
			OrgMemberCount: counts[p.OrganizationID],
		}
	}
	return details, nil
}
