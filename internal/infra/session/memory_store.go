package session

import (
	"context"
	"sync"
	"time"

	"otobiznes/internal/domain/service"
)

type memoryEntry struct {
	token     string
	expiresAt time.Time
}

type memoryTokenStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryTokenStore keeps tokens in process memory. Tokens are lost on restart.
func NewMemoryTokenStore(ttl time.Duration) service.TokenStore {
	return &memoryTokenStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *memoryTokenStore) Load(_ context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if !ok {
		return "", service.ErrTokenNotFound
	}
	if s.ttl > 0 && s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, sessionID)
		s.mu.Unlock()

		return "", service.ErrTokenNotFound
	}

	return entry.token, nil
}

// Save also sweeps expired entries so sessions that never come back do not pile up.
func (s *memoryTokenStore) Save(_ context.Context, sessionID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.ttl > 0 {
		for id, entry := range s.entries {
			if now.After(entry.expiresAt) {
				delete(s.entries, id)
			}
		}
	}
	s.entries[sessionID] = memoryEntry{token: token, expiresAt: now.Add(s.ttl)}

	return nil
}

func (s *memoryTokenStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)

	return nil
}
