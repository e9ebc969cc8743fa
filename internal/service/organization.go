package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jacksonlmp/taskflow/common"
	"github.com/jacksonlmp/taskflow/common/id"
	"github.com/jacksonlmp/taskflow/internal/model"
	"github.com/jacksonlmp/taskflow/internal/store"
)

// ErrNoOrganization means the user holds no profile anywhere, so no
// default organization can be resolved.
var ErrNoOrganization = errors.New("no organization found for user")

// OrganizationDetail pairs an organization with its member count, which
// is computed on read and never persisted.
type OrganizationDetail struct {
	Organization model.Organization
	MemberCount  int64
}

type UpdateOrganizationParams struct {
	Name        string
	Description string
}

type OrganizationService interface {
	List(ctx context.Context, userID int64) ([]OrganizationDetail, error)
	Get(ctx context.Context, orgID, userID int64) (*OrganizationDetail, error)
	Create(ctx context.Context, userID int64, name, description string) (*OrganizationDetail, error)
	Update(ctx context.Context, orgID, userID int64, params UpdateOrganizationParams) (*OrganizationDetail, error)
	Delete(ctx context.Context, orgID, userID int64) error
	Members(ctx context.Context, orgID, userID int64) ([]ProfileDetail, error)
	// Current resolves the user's default organization: the organization of
	// the first profile when the user's profiles are ordered by role
	// descending. ErrNoOrganization when the user holds no profile.
	Current(ctx context.Context, userID int64) (*OrganizationDetail, error)
}

type organizationService struct {
	stores store.Provider
	tx     store.TxRunner
}

func NewOrganizationService(stores store.Provider, tx store.TxRunner) OrganizationService {
	return &organizationService{
		stores: stores,
		tx:     tx,
	}
}

func (s *organizationService) List(ctx context.Context, userID int64) ([]OrganizationDetail, error) {
	orgs, err := s.stores.Organizations().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	return s.withMemberCounts(ctx, orgs)
}

func (s *organizationService) Get(ctx context.Context, orgID, userID int64) (*OrganizationDetail, error) {
	org, err := s.stores.Organizations().GetForUser(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, org)
}

// Create inserts the organization and an owner profile for the creator in
// one transaction. The slug is derived from the name; a duplicate slug
// fails the whole creation (no suffixing).
func (s *organizationService) Create(ctx context.Context, userID int64, name, description string) (*OrganizationDetail, error) {
	slug, err := common.Slugify(name, "")
	if err != nil {
		return nil, fmt.Errorf("generating slug: %w", err)
	}

	org := &model.Organization{
		ID:          id.New(),
		Name:        name,
		Slug:        slug,
		Description: description,
		IsActive:    true,
	}

	err = s.tx.WithTx(ctx, func(stores store.Provider) error {
		if err := stores.Organizations().Create(ctx, org); err != nil {
			return fmt.Errorf("creating organization: %w", err)
		}

		profile := &model.Profile{
			ID:             id.New(),
			UserID:         userID,
			OrganizationID: org.ID,
			Role:           model.RoleOwner,
		}
		if err := stores.Profiles().Create(ctx, profile); err != nil {
			return fmt.Errorf("creating owner profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "organization created",
		"organization_id", org.ID,
		"slug", org.Slug,
		"owner_id", userID,
	)

	return &OrganizationDetail{Organization: *org, MemberCount: 1}, nil
}

func (s *organizationService) Update(ctx context.Context, orgID, userID int64, params UpdateOrganizationParams) (*OrganizationDetail, error) {
	org, err := s.stores.Organizations().GetForUser(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	org.Name = params.Name
	org.Description = params.Description

	if err := s.stores.Organizations().Update(ctx, org); err != nil {
		return nil, fmt.Errorf("updating organization: %w", err)
	}
	return s.detail(ctx, org)
}

func (s *organizationService) Delete(ctx context.Context, orgID, userID int64) error {
	if _, err := s.stores.Organizations().GetForUser(ctx, orgID, userID); err != nil {
		return err
	}
	if err := s.stores.Organizations().Delete(ctx, orgID); err != nil {
		return fmt.Errorf("deleting organization: %w", err)
	}

	slog.InfoContext(ctx, "organization deleted", "organization_id", orgID)
	return nil
}

func (s *organizationService) Members(ctx context.Context, orgID, userID int64) ([]ProfileDetail, error) {
	org, err := s.stores.Organizations().GetForUser(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	profiles, err := s.stores.Profiles().ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}

	return assembleProfileDetails(ctx, s.stores, profiles, map[int64]*model.Organization{org.ID: org})
}

func (s *organizationService) Current(ctx context.Context, userID int64) (*OrganizationDetail, error) {
	org, err := defaultOrganization(ctx, s.stores, userID)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, org)
}

// defaultOrganization picks the user's default organization: profiles
// ordered by role value descending, first one wins. The ordering is
// lexical on the role string, matching the behavior task creation has
// always had, and is deliberately kept that way.
func defaultOrganization(ctx context.Context, stores store.Provider, userID int64) (*model.Organization, error) {
	profiles, err := stores.Profiles().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	if len(profiles) == 0 {
		return nil, ErrNoOrganization
	}

	org, err := stores.Organizations().GetByID(ctx, profiles[0].OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("getting default organization: %w", err)
	}
	return org, nil
}

func (s *organizationService) detail(ctx context.Context, org *model.Organization) (*OrganizationDetail, error) {
	count, err := s.stores.Organizations().CountMembers(ctx, org.ID)
	if err != nil {
		return nil, fmt.Errorf("counting members: %w", err)
	}
	return &OrganizationDetail{Organization: *org, MemberCount: count}, nil
}

func (s *organizationService) withMemberCounts(ctx context.Context, orgs []model.Organization) ([]OrganizationDetail, error) {
	ids := make([]int64, len(orgs))
	for i, org := range orgs {
		ids[i] = org.ID
	}
	counts, err := s.stores.Organizations().CountMembersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("counting members: %w", err)
	}

	details := make([]OrganizationDetail, len(orgs))
	for i, org := range orgs {
		details[i] = OrganizationDetail{Organization: org, MemberCount: counts[org.ID]}
	}
	return details, nil
}
