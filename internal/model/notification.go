package model

import "time"

// Notification is a per-user feed entry created as a side effect of an admin
// reply. Reply and original content are denormalized copies taken at creation
// time; they are not kept in sync with the message afterwards.
type Notification struct {
	ID              string    `json:"id"`
	UserEmail       string    `json:"user_email"`
	UserName        string    `json:"user_name,omitempty"`
	Subject         string    `json:"subject"`
	Message         string    `json:"message"`
	OriginalMessage string    `json:"original_message"`
	RepliedBy       string    `json:"replied_by"`
	Read            bool      `json:"read"`
	CreatedAt       time.Time `json:"created_at"`
}
