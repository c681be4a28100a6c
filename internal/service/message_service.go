package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/memberhub/backend/internal/model"
	"github.com/memberhub/backend/internal/repository"
)

// defaultReplySubject is the subject line for reply notifications.
const defaultReplySubject = "Reply to your message"

// MessageService defines the business logic for the contact-message inbox.
type MessageService interface {
	// Submit stores a new message with status unread. ID and CreatedAt are
	// server-assigned.
	Submit(ctx context.Context, msg *model.Message) error

	// List returns all messages, newest first.
	List(ctx context.Context) ([]*model.Message, error)

	// Reply records the admin reply on the message and, when the message
	// carries a requester email, creates the matching notification. Both
	// writes commit together. Replying again overwrites the reply fields and
	// produces a fresh notification.
	Reply(ctx context.Context, id, content, adminEmail string) error

	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type messageService struct {
	msgRepo repository.MessageRepository
}

// NewMessageService creates a MessageService backed by the given repository.
func NewMessageService(msgRepo repository.MessageRepository) MessageService {
	return &messageService{msgRepo: msgRepo}
}

// Submit stores a new contact message with status unread.
func (s *messageService) Submit(ctx context.Context, msg *model.Message) error {
	msg.ID = uuid.NewString()
	msg.Status = model.MessageUnread
	msg.CreatedAt = time.Now().UTC()
	return s.msgRepo.Save(ctx, msg)
}

// List returns all messages ordered by creation time descending.
func (s *messageService) List(ctx context.Context) ([]*model.Message, error) {
	return s.msgRepo.List(ctx)
}

// Reply loads the message to pick up the requester email and original
// content, then hands both effects to the repository as one transaction.
func (s *messageService) Reply(ctx context.Context, id, content, adminEmail string) error {
	if adminEmail == "" {
		adminEmail = "Admin"
	}

	msg, err := s.msgRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	var n *model.Notification
	if msg.Email != "" {
		n = &model.Notification{
			ID:              uuid.NewString(),
			UserEmail:       msg.Email,
			UserName:        msg.Name,
			Subject:         defaultReplySubject,
			Message:         content,
			OriginalMessage: msg.Message,
			RepliedBy:       adminEmail,
		}
	}

	return s.msgRepo.ReplyAndNotify(ctx, id, content, adminEmail, n)
}

// UpdateStatus changes the status of a message.
func (s *messageService) UpdateStatus(ctx context.Context, id, status string) error {
	return s.msgRepo.UpdateStatus(ctx, id, status)
}

// Delete removes a message.
func (s *messageService) Delete(ctx context.Context, id string) error {
	return s.msgRepo.Delete(ctx, id)
}
