package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nightrelay/dark-ai/backend/internal/model/chat"
)

// ErrSessionNotFound is returned when a chat id has no live session.
var ErrSessionNotFound = errors.New("chat session not found")

// historyCap bounds per-session history; oldest messages are dropped first.
const historyCap = 50

// Service encapsulates in-memory conversation state for the process lifetime.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]chat.Session
	messages map[string][]chat.Message
}

// NewService bootstraps the in-memory chat service.
func NewService() *Service {
	return &Service{
		sessions: make(map[string]chat.Session),
		messages: make(map[string][]chat.Message),
	}
}

// Append records a message on the session, creating the session on first use.
// History is truncated to the most recent entries after every append.
func (s *Service) Append(_ context.Context, chatID, userID, role, content string) chat.Message {
	message := chat.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[chatID]; !ok {
		s.sessions[chatID] = chat.Session{
			ID:        chatID,
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		}
	}

	history := append(s.messages[chatID], message)
	if len(history) > historyCap {
		history = history[len(history)-historyCap:]
	}
	s.messages[chatID] = history

	return message
}

// History returns a copy of the stored messages for the session.
func (s *Service) History(_ context.Context, chatID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.messages[chatID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]chat.Message, len(messages))
	copy(copied, messages)
	return copied, nil
}

// Delete removes the session and its history.
func (s *Service) Delete(_ context.Context, chatID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[chatID]; !ok {
		return ErrSessionNotFound
	}

	delete(s.sessions, chatID)
	delete(s.messages, chatID)
	return nil
}

// Count reports the number of live sessions.
func (s *Service) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
