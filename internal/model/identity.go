package model

import "time"

// Identity is an auth credential record, distinct from the user profile for
// the same person. Deleting an account removes both together.
type Identity struct {
	UserID       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
