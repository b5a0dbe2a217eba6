package chat

import "time"

// Session captures a transient in-memory conversation thread.
type Session struct {
	ID        string    `json:"chat_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
