package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/memberhub/backend/internal/model"
)

// MessageRepository defines persistence for contact messages.
type MessageRepository interface {
	Save(ctx context.Context, msg *model.Message) error
	List(ctx context.Context) ([]*model.Message, error)
	FindByID(ctx context.Context, id string) (*model.Message, error)
	// ReplyAndNotify records the reply on the message and, when n is non-nil,
	// inserts the matching notification. Both writes commit together.
	ReplyAndNotify(ctx context.Context, id, reply, repliedBy string, n *model.Notification) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// PgMessageRepository is the PostgreSQL implementation of MessageRepository.
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPgMessageRepository creates a PgMessageRepository backed by the given pool.
func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

var _ MessageRepository = (*PgMessageRepository)(nil)

const messageSelectCols = `id, COALESCE(name, ''), COALESCE(email, ''), message, status,
	COALESCE(reply, ''), replied_at, COALESCE(replied_by, ''), created_at`

func scanMessage(scan func(...any) error) (*model.Message, error) {
	var m model.Message
	if err := scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Status, &m.Reply, &m.RepliedAt, &m.RepliedBy, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// Save inserts a new messages row. The caller assigns the ID; created_at is
// populated from the database RETURNING clause.
func (r *PgMessageRepository) Save(ctx context.Context, msg *model.Message) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO messages (id, name, email, message, status)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5)
		 RETURNING created_at`,
		msg.ID, msg.Name, msg.Email, msg.Message, msg.Status,
	).Scan(&msg.CreatedAt)
}

// List returns all messages ordered by creation time descending.
func (r *PgMessageRepository) List(ctx context.Context) ([]*model.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+messageSelectCols+` FROM messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.Message
	for rows.Next() {
		m, err := scanMessage(rows.Scan)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// FindByID returns a single message by id.
func (r *PgMessageRepository) FindByID(ctx context.Context, id string) (*model.Message, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+messageSelectCols+` FROM messages WHERE id = $1`, id)
	m, err := scanMessage(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return m, err
}

// ReplyAndNotify updates the reply fields and inserts the notification inside
// one transaction. A repeated reply overwrites the previous reply fields; the
// notification insert is unconditional when n is non-nil, so each reply
// produces a fresh feed entry.
func (r *PgMessageRepository) ReplyAndNotify(ctx context.Context, id, reply, repliedBy string, n *model.Notification) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx,
		`UPDATE messages
		 SET reply = $1, replied_at = NOW(), replied_by = $2, status = $3
		 WHERE id = $4`,
		reply, repliedBy, model.MessageReplied, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if n != nil {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_notifications
			   (id, user_email, user_name, subject, message, original_message, replied_by, read)
			 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, FALSE)`,
			n.ID, n.UserEmail, n.UserName, n.Subject, n.Message, n.OriginalMessage, n.RepliedBy); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// UpdateStatus changes the status of a message.
func (r *PgMessageRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE messages SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a message row. Notifications already fanned out from it are
// left untouched.
func (r *PgMessageRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
