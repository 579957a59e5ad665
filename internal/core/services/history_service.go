package services

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/smart_converter/internal/core/domain"
	portssvc "github.com/SscSPs/smart_converter/internal/core/ports/services"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// historyService keeps one bounded history per session in an expiring LRU.
// Sessions untouched for idleTimeout are dropped by the cache, and the
// least recently used session is evicted once maxSessions is exceeded.
type historyService struct {
	BaseService
	mu       sync.Mutex // serializes edits of a session's History
	capacity int
	sessions *expirable.LRU[string, *domain.History]
	now      func() time.Time
}

// NewHistoryService creates a history store holding up to capacity entries
// per session. A zero maxSessions or idleTimeout disables that limit.
func NewHistoryService(capacity, maxSessions int, idleTimeout time.Duration) portssvc.HistorySvcFacade {
	return newHistoryService(capacity, maxSessions, idleTimeout, time.Now)
}

func newHistoryService(capacity, maxSessions int, idleTimeout time.Duration, now func() time.Time) *historyService {
	if capacity <= 0 {
		capacity = domain.DefaultHistoryCapacity
	}
	return &historyService{
		capacity: capacity,
		sessions: expirable.NewLRU[string, *domain.History](maxSessions, nil, idleTimeout),
		now:      now,
	}
}

func (s *historyService) RecordConversion(ctx context.Context, sessionID string, kind domain.ConversionKind, text string) {
	if sessionID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.sessions.Get(sessionID)
	if !ok {
		h = domain.NewHistory(s.capacity)
		s.LogDebug(ctx, "Starting session history")
	}
	h.Add(domain.HistoryEntry{Kind: kind, Text: text, RecordedAt: s.now()})
	// Add renews the idle deadline
	s.sessions.Add(sessionID, h)
}

func (s *historyService) ListHistory(ctx context.Context, sessionID string) []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.sessions.Get(sessionID)
	if !ok {
		return []domain.HistoryEntry{}
	}
	s.sessions.Add(sessionID, h)
	return h.Entries()
}

func (s *historyService) ClearHistory(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.sessions.Get(sessionID); ok {
		h.Clear()
		s.sessions.Add(sessionID, h)
	}
}

func (s *historyService) EndSession(ctx context.Context, sessionID string) {
	s.sessions.Remove(sessionID)
}
