package user

import "time"

// AnonymousID is the sentinel used when the caller omits a user id.
const AnonymousID = "anonymous"

// Profile captures the per-user attributes exposed to the frontend.
type Profile struct {
	Name       string     `json:"name"`
	Premium    bool       `json:"premium"`
	JoinedAt   time.Time  `json:"joined_at"`
	UpgradedAt *time.Time `json:"upgraded_at,omitempty"`
}
