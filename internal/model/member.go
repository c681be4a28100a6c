package model

import "time"

// Source tags identify which backing collection a directory entry came from.
// Every mutation on a Member is routed by this tag; an empty or unknown tag
// falls back to the members collection.
const (
	SourceMembers = "members"
	SourceUsers   = "users"
)

// Member statuses and roles shared by both backing collections.
const (
	StatusActive   = "active"
	StatusPending  = "pending"
	StatusInactive = "inactive"

	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Member is the logical directory entry reconciled from the members and
// users collections. Source records provenance; IDs are unique only within
// their source collection.
type Member struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"` // "members" | "users"
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	StudentID string    `json:"student_id"`
	Course    string    `json:"course"`
	Year      string    `json:"year"`
	Status    string    `json:"status"` // "active" | "pending" | "inactive"
	Role      string    `json:"role"`   // "member" | "admin"
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the entry carries the admin role.
func (m *Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}

// MemberListOptions carries filter parameters for the reconciled listing.
type MemberListOptions struct {
	// Search matches name, email or student id, case-insensitively.
	Search string
	// IncludeAdmins keeps role=admin entries in the result. Member-facing
	// listings leave this false.
	IncludeAdmins bool
}

// MemberStats are aggregate counts over the reconciled list, excluding
// admin accounts.
type MemberStats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Active  int `json:"active"`
}

// MemberUpdate carries the editable profile fields for an admin edit.
// Email is deliberately absent; it cannot be changed.
type MemberUpdate struct {
	Name      string `json:"name"`
	StudentID string `json:"student_id"`
	Course    string `json:"course"`
	Year      string `json:"year"`
	Status    string `json:"status"`
}
