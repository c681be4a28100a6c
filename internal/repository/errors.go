package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when an insert would violate an email
// uniqueness constraint (users or auth_identities).
var ErrDuplicateEmail = errors.New("email already registered")
