package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/memberhub/backend/internal/repository"
)

// Typed errors for the privileged delete operation. The string values are the
// wire-visible error codes.
var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrInvalidArgument  = errors.New("invalid-argument")
	ErrPermissionDenied = errors.New("permission-denied")
)

// MemberDeletionService deletes a registered member's identity record and
// profile together. Only callers whose profile currently carries the admin
// role may invoke it.
type MemberDeletionService interface {
	DeleteMember(ctx context.Context, callerID, targetID string) error
}

type memberDeletionService struct {
	userRepo repository.UserRepository
}

// NewMemberDeletionService creates a MemberDeletionService.
func NewMemberDeletionService(userRepo repository.UserRepository) MemberDeletionService {
	return &memberDeletionService{userRepo: userRepo}
}

// DeleteMember validates the caller, then removes the target's identity
// record and profile in one transaction. The caller's role is read fresh on
// every call, so revoking admin takes effect immediately. No deletion step
// runs unless the permission check passes.
func (s *memberDeletionService) DeleteMember(ctx context.Context, callerID, targetID string) error {
	if callerID == "" {
		return ErrUnauthenticated
	}
	if targetID == "" {
		return ErrInvalidArgument
	}

	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPermissionDenied
		}
		return fmt.Errorf("look up caller: %w", err)
	}
	if !caller.IsAdmin() {
		return ErrPermissionDenied
	}

	if err := s.userRepo.DeleteWithIdentity(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete member %s: %w", targetID, err)
	}
	return nil
}
