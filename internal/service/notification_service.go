package service

import (
	"context"
	"log/slog"

	"github.com/memberhub/backend/internal/model"
	"github.com/memberhub/backend/internal/repository"
)

// NotificationService exposes the per-user notification feed. Entries are
// created only by MessageService.Reply; this service never writes new ones.
type NotificationService interface {
	ListForUser(ctx context.Context, email string) ([]*model.Notification, error)
	UnreadCount(ctx context.Context, email string) (int, error)
	MarkRead(ctx context.Context, id string) error
	// MarkAllRead is idempotent: a retry after partial completion simply
	// flips whatever is still unread.
	MarkAllRead(ctx context.Context, email string) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService creates a NotificationService backed by the given repository.
func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) ListForUser(ctx context.Context, email string) ([]*model.Notification, error) {
	return s.repo.ListForUser(ctx, email)
}

func (s *notificationService) UnreadCount(ctx context.Context, email string) (int, error) {
	return s.repo.CountUnread(ctx, email)
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, email string) error {
	n, err := s.repo.MarkAllRead(ctx, email)
	if err != nil {
		return err
	}
	if n > 0 {
		slog.Debug("notifications marked read", "email", email, "count", n)
	}
	return nil
}
