package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/memberhub/backend/internal/model"
)

// NotificationRepository defines persistence for the per-user notification
// feed. Creation happens only inside MessageRepository.ReplyAndNotify;
// notifications are never deleted.
type NotificationRepository interface {
	ListForUser(ctx context.Context, email string) ([]*model.Notification, error)
	CountUnread(ctx context.Context, email string) (int, error)
	MarkRead(ctx context.Context, id string) error
	// MarkAllRead flips every unread notification for the email and returns
	// how many rows changed. Idempotent; a second call returns 0.
	MarkAllRead(ctx context.Context, email string) (int64, error)
}

// PgNotificationRepository is the PostgreSQL implementation of NotificationRepository.
type PgNotificationRepository struct {
	pool *pgxpool.Pool
}

// NewPgNotificationRepository creates a PgNotificationRepository backed by the given pool.
func NewPgNotificationRepository(pool *pgxpool.Pool) *PgNotificationRepository {
	return &PgNotificationRepository{pool: pool}
}

var _ NotificationRepository = (*PgNotificationRepository)(nil)

// ListForUser returns notifications for an exact email match, newest first.
// Served by the composite (user_email, created_at DESC) index.
func (r *PgNotificationRepository) ListForUser(ctx context.Context, email string) ([]*model.Notification, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_email, COALESCE(user_name, ''), subject, message,
		        COALESCE(original_message, ''), replied_by, read, created_at
		 FROM user_notifications
		 WHERE user_email = $1
		 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserEmail, &n.UserName, &n.Subject, &n.Message,
			&n.OriginalMessage, &n.RepliedBy, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}
	return notifications, rows.Err()
}

// CountUnread returns the number of unread notifications for an email.
func (r *PgNotificationRepository) CountUnread(ctx context.Context, email string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM user_notifications WHERE user_email = $1 AND read = FALSE`,
		email).Scan(&count)
	return count, err
}

// MarkRead sets read=true on a single notification. Already-read rows are a
// no-op, not an error.
func (r *PgNotificationRepository) MarkRead(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE user_notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkAllRead flips all unread notifications for the email in one statement.
func (r *PgNotificationRepository) MarkAllRead(ctx context.Context, email string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE user_notifications SET read = TRUE WHERE user_email = $1 AND read = FALSE`,
		email)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
