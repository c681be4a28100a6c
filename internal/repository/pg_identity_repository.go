package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/memberhub/backend/internal/model"
)

// IdentityRepository looks up auth credential records. Writes go through
// UserRepository so profile and identity stay in step.
type IdentityRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Identity, error)
}

// PgIdentityRepository is the PostgreSQL implementation of IdentityRepository.
type PgIdentityRepository struct {
	pool *pgxpool.Pool
}

// NewPgIdentityRepository creates a PgIdentityRepository backed by the given pool.
func NewPgIdentityRepository(pool *pgxpool.Pool) *PgIdentityRepository {
	return &PgIdentityRepository{pool: pool}
}

var _ IdentityRepository = (*PgIdentityRepository)(nil)

// FindByEmail returns the credential record for an email address.
func (r *PgIdentityRepository) FindByEmail(ctx context.Context, email string) (*model.Identity, error) {
	var ident model.Identity
	err := r.pool.QueryRow(ctx,
		`SELECT user_id, email, password_hash, created_at FROM auth_identities WHERE email = $1`,
		email,
	).Scan(&ident.UserID, &ident.Email, &ident.PasswordHash, &ident.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ident, nil
}
