package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/memberhub/backend/internal/model"
)

// MemberRepository defines persistence for the members collection
// (membership applications submitted through the public form).
// It is defined here (in repository) to avoid an import cycle with service.
type MemberRepository interface {
	Save(ctx context.Context, m *model.Member) error
	List(ctx context.Context) ([]*model.Member, error)
	FindByID(ctx context.Context, id string) (*model.Member, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateRole(ctx context.Context, id, role string) error
	UpdateProfile(ctx context.Context, id string, upd model.MemberUpdate) error
	Delete(ctx context.Context, id string) error
}

// PgMemberRepository is the PostgreSQL implementation of MemberRepository.
type PgMemberRepository struct {
	pool *pgxpool.Pool
}

// NewPgMemberRepository creates a PgMemberRepository backed by the given pool.
func NewPgMemberRepository(pool *pgxpool.Pool) *PgMemberRepository {
	return &PgMemberRepository{pool: pool}
}

// Ensure PgMemberRepository implements MemberRepository at compile time.
var _ MemberRepository = (*PgMemberRepository)(nil)

const memberSelectCols = `id, COALESCE(name, ''), email, COALESCE(student_id, ''),
	COALESCE(course, ''), COALESCE(year, ''), status, role, created_at`

func scanMember(scan func(...any) error) (*model.Member, error) {
	var m model.Member
	m.Source = model.SourceMembers
	if err := scan(&m.ID, &m.Name, &m.Email, &m.StudentID, &m.Course, &m.Year, &m.Status, &m.Role, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// Save inserts a new members row. The caller assigns the ID; created_at is
// populated from the database RETURNING clause.
func (r *PgMemberRepository) Save(ctx context.Context, m *model.Member) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO members (id, name, email, student_id, course, year, status, role)
		 VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8)
		 RETURNING created_at`,
		m.ID, m.Name, m.Email, m.StudentID, m.Course, m.Year, m.Status, m.Role,
	).Scan(&m.CreatedAt)
}

// List returns all membership applications ordered by creation time descending.
func (r *PgMemberRepository) List(ctx context.Context) ([]*model.Member, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+memberSelectCols+` FROM members ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*model.Member
	for rows.Next() {
		m, err := scanMember(rows.Scan)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// FindByID returns a single application by id.
func (r *PgMemberRepository) FindByID(ctx context.Context, id string) (*model.Member, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+memberSelectCols+` FROM members WHERE id = $1`, id)
	m, err := scanMember(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return m, err
}

// UpdateStatus changes the status of an application.
func (r *PgMemberRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE members SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateRole changes the role of an application.
func (r *PgMemberRepository) UpdateRole(ctx context.Context, id, role string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE members SET role = $1, updated_at = NOW() WHERE id = $2`,
		role, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProfile overwrites the editable fields of an application.
// Email is never updated.
func (r *PgMemberRepository) UpdateProfile(ctx context.Context, id string, upd model.MemberUpdate) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE members
		 SET name = NULLIF($1, ''), student_id = NULLIF($2, ''), course = NULLIF($3, ''),
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

// Delete removes an application row.
func (r *PgMemberRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
