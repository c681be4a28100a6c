package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/memberhub/backend/internal/model"
)

// UserRepository defines persistence for registered account profiles and
// their paired identity records.
type UserRepository interface {
	// CreateWithIdentity inserts the profile row and its credential record in
	// one transaction.
	CreateWithIdentity(ctx context.Context, u *model.User, passwordHash string) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateRole(ctx context.Context, id, role string) error
	UpdateProfile(ctx context.Context, id string, upd model.MemberUpdate) error
	// DeleteWithIdentity removes the identity record and the profile row in
	// one transaction. Every users row has a credential child referencing it,
	// so this is the only way to delete an account.
	DeleteWithIdentity(ctx context.Context, id string) error
}

// PgUserRepository は UserRepository の PostgreSQL 実装
type PgUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgUserRepository は PgUserRepository を生成する
func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

var _ UserRepository = (*PgUserRepository)(nil)

const userSelectCols = `id, email, full_name, COALESCE(student_id, ''),
	COALESCE(course, ''), COALESCE(year, ''), status, role, created_at, updated_at`

func scanProfile(scan func(...any) error) (*model.User, error) {
	var u model.User
	if err := scan(&u.ID, &u.Email, &u.FullName, &u.StudentID, &u.Course, &u.Year, &u.Status, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// duplicateEmail maps a unique-violation on the email columns to
// ErrDuplicateEmail.
func duplicateEmail(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateEmail
	}
	return err
}

// CreateWithIdentity inserts the users row and the auth_identities row
// together so a crash cannot leave a credential without a profile.
func (r *PgUserRepository) CreateWithIdentity(ctx context.Context, u *model.User, passwordHash string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.QueryRow(ctx,
		`INSERT INTO users (id, email, full_name, student_id, course, year, status, role)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8)
		 RETURNING created_at, updated_at`,
		u.ID, u.Email, u.FullName, u.StudentID, u.Course, u.Year, u.Status, u.Role,
	).Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		return duplicateEmail(err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO auth_identities (user_id, email, password_hash) VALUES ($1, $2, $3)`,
		u.ID, u.Email, passwordHash); err != nil {
		return duplicateEmail(err)
	}

	return tx.Commit(ctx)
}

// FindByID は ID でプロフィールを取得する
func (r *PgUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userSelectCols+` FROM users WHERE id = $1`, id)
	u, err := scanProfile(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

// FindByEmail はメールアドレスでプロフィールを取得する
func (r *PgUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userSelectCols+` FROM users WHERE email = $1`, email)
	u, err := scanProfile(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

// List returns all profiles ordered by created_at desc.
func (r *PgUserRepository) List(ctx context.Context) ([]*model.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userSelectCols+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		u, err := scanProfile(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateStatus changes the account status.
func (r *PgUserRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateRole changes the account role. Takes effect on the next admin check;
// nothing role-related is cached.
func (r *PgUserRepository) UpdateRole(ctx context.Context, id, role string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`,
		role, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProfile overwrites the editable profile fields. Email is never updated.
func (r *PgUserRepository) UpdateProfile(ctx context.Context, id string, upd model.MemberUpdate) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users
		 SET full_name = $1, student_id = NULLIF($2, ''), course = NULLIF($3, ''),
		     year = NULLIF($4, ''), status = $5, updated_at = NOW()
		 WHERE id = $6`,
		upd.Name, upd.StudentID, upd.Course, upd.Year, upd.Status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteWithIdentity removes the credential record and the profile row in one
// transaction. The credential must go first: auth_identities.user_id
// references users(id), so deleting the profile alone would trip the
// foreign key.
func (r *PgUserRepository) DeleteWithIdentity(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM auth_identities WHERE user_id = $1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}
