package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jacksonlmp/taskflow/core/db/sqlc"
)

// Provider hands out the entity stores backed by one queryable (the pool
// or a transaction).
type Provider interface {
	Users() UserStore
	Organizations() OrganizationStore
	Profiles() ProfileStore
	Tasks() TaskStore
	Sessions() SessionStore
}

// TxRunner executes fn with stores bound to a single transaction,
// committing when fn returns nil and rolling back otherwise.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(Provider) error) error
}

type Stores struct {
	provider
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Stores {
	return &Stores{
		provider: provider{queries: sqlc.New(pool)},
		pool:     pool,
	}
}

func (s *Stores) WithTx(ctx context.Context, fn func(Provider) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(provider{queries: s.queries.WithTx(tx)}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

type provider struct {
	queries *sqlc.Queries
}

func (p provider) Users() UserStore                 { return newUserStore(p.queries) }
func (p provider) Organizations() OrganizationStore { return newOrganizationStore(p.queries) }
func (p provider) Profiles() ProfileStore           { return newProfileStore(p.queries) }
func (p provider) Tasks() TaskStore                 { return newTaskStore(p.queries) }
func (p provider) Sessions() SessionStore           { return newSessionStore(p.queries) }

// translateError maps Postgres unique violations onto DuplicateError so
// the rest of the system never inspects driver errors.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return &DuplicateError{Constraint: pgErr.ConstraintName}
	}
	return err
}
