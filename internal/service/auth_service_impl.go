package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/memberhub/backend/internal/model"
	"github.com/memberhub/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	userRepo     repository.UserRepository
	identityRepo repository.IdentityRepository
}

// NewAuthService creates an AuthService backed by the given repositories.
func NewAuthService(userRepo repository.UserRepository, identityRepo repository.IdentityRepository) AuthService {
	return &authServiceImpl{userRepo: userRepo, identityRepo: identityRepo}
}

// Register hashes the password and creates the identity record and profile in
// one transaction. New accounts start pending until an admin approves them.
func (s *authServiceImpl) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		ID:        uuid.NewString(),
		Email:     in.Email,
		FullName:  in.FullName,
		StudentID: in.StudentID,
		Course:    in.Course,
		Year:      in.Year,
		Status:    model.StatusPending,
		Role:      model.RoleMember,
	}
	if err := s.userRepo.CreateWithIdentity(ctx, u, string(hash)); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies the password against the identity record. Pending accounts
// may log in; they just are not approved members yet.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*model.User, error) {
	ident, err := s.identityRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ident.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.userRepo.FindByID(ctx, ident.UserID)
}
