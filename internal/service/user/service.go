package user

import (
	"context"
	"sync"
	"time"

	"github.com/nightrelay/dark-ai/backend/internal/model/user"
)

// Service encapsulates in-memory user profiles. Profiles are created lazily
// and never deleted.
type Service struct {
	mu       sync.RWMutex
	profiles map[string]user.Profile
}

// NewService bootstraps the in-memory profile service.
func NewService() *Service {
	return &Service{profiles: make(map[string]user.Profile)}
}

// Get returns the profile for the user, creating a default one on first read.
func (s *Service) Get(_ context.Context, userID string) user.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile, ok := s.profiles[userID]; ok {
		return profile
	}

	profile := user.Profile{
		Name:     displayName(userID),
		Premium:  false,
		JoinedAt: time.Now().UTC(),
	}
	s.profiles[userID] = profile
	return profile
}

// IsPremium reports the premium flag without creating a profile.
func (s *Service) IsPremium(_ context.Context, userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[userID].Premium
}

// Upgrade flips the user to premium, creating the profile if needed.
// Calling it again is a no-op beyond refreshing the upgrade timestamp.
func (s *Service) Upgrade(_ context.Context, userID string) user.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	profile, ok := s.profiles[userID]
	if !ok {
		profile = user.Profile{
			Name:     displayName(userID),
			JoinedAt: now,
		}
	}
	profile.Premium = true
	profile.UpgradedAt = &now
	s.profiles[userID] = profile
	return profile
}

// Count reports the number of known profiles.
func (s *Service) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

// displayName maps the anonymous sentinel to a friendly label.
func displayName(userID string) string {
	if userID == user.AnonymousID {
		return "Guest"
	}
	return userID
}
