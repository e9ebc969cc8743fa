package store

import (
	"context"
	"errors"

	"github.com/jacksonlmp/taskflow/internal/model"
)

var ErrNotFound = errors.New("not found")

// DuplicateError reports a unique-constraint violation. The constraint
// name lets callers map the failure to a field-level validation error.
type DuplicateError struct {
	Constraint string
}

func (e *DuplicateError) Error() string {
	return "duplicate value violates constraint " + e.Constraint
}

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
}

type OrganizationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*model.Organization, error)
	// GetForUser returns the organization only when userID holds a profile
	// in it; anything else is ErrNotFound.
	GetForUser(ctx context.Context, id, userID int64) (*model.Organization, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Organization, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Organization, error)
	CountMembers(ctx context.Context, orgID int64) (int64, error)
	CountMembersByIDs(ctx context.Context, ids []int64) (map[int64]int64, error)
	Create(ctx context.Context, org *model.Organization) error
	Update(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, id int64) error
}

type ProfileStore interface {
	GetByID(ctx context.Context, id int64) (*model.Profile, error)
	// GetForUser returns the profile only when its organization is one
	// userID belongs to.
	GetForUser(ctx context.Context, id, userID int64) (*model.Profile, error)
	// ListByUser returns userID's own profiles ordered by role descending.
	ListByUser(ctx context.Context, userID int64) ([]model.Profile, error)
	ListByOrganization(ctx context.Context, orgID int64) ([]model.Profile, error)
	ListVisibleToUser(ctx context.Context, userID int64) ([]model.Profile, error)
	Create(ctx context.Context, profile *model.Profile) error
	Update(ctx context.Context, profile *model.Profile) error
	Delete(ctx context.Context, id int64) error
}

type TaskStore interface {
	GetByID(ctx context.Context, id int64) (*model.Task, error)
	// GetVisibleToUser returns the task only when it is in one of userID's
	// organizations, or userID created it, or userID is assigned to it.
	GetVisibleToUser(ctx context.Context, id, userID int64) (*model.Task, error)
	ListVisibleToUser(ctx context.Context, userID int64) ([]model.Task, error)
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id int64) error
}

type SessionStore interface {
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) error
}
