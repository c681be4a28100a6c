package service

import (
	"context"
	"errors"

	"github.com/memberhub/backend/internal/model"
)

// ErrInvalidCredentials is returned by Login for an unknown email or a wrong
// password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Email     string
	Password  string
	FullName  string
	StudentID string
	Course    string
	Year      string
}

// AuthService manages account registration and credential checks. Session
// issuance is the handler's concern.
type AuthService interface {
	// Register creates an identity record and a pending profile together.
	Register(ctx context.Context, in RegisterInput) (*model.User, error)

	// Login verifies the password and returns the matching profile.
	Login(ctx context.Context, email, password string) (*model.User, error)
}
