package chat

import "time"

// Message roles as stored in session history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message records a single conversation turn. Immutable once appended.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
