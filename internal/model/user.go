package model

import "time"

// User is a registered account profile (a document in the users collection).
// The matching credential record lives separately as an Identity.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	StudentID string    `json:"student_id,omitempty"`
	Course    string    `json:"course,omitempty"`
	Year      string    `json:"year,omitempty"`
	Status    string    `json:"status"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the account currently holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
