package model

import "time"

// Message statuses. A replied message may be replied to again; there is no
// terminal state.
const (
	MessageUnread  = "unread"
	MessageReplied = "replied"
)

// Message represents a message submitted via the contact form. It is mutated
// only by admin actions (reply, status change) and deleted by admins.
type Message struct {
	ID        string     `json:"id"`
	Name      string     `json:"name,omitempty"`
	Email     string     `json:"email,omitempty"`
	Message   string     `json:"message"`
	Status    string     `json:"status"` // "unread" | "replied"
	Reply     string     `json:"reply,omitempty"`
	RepliedAt *time.Time `json:"replied_at,omitempty"`
	RepliedBy string     `json:"replied_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
