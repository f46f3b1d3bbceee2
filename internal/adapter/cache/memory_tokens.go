package cache

import (
	"context"
	"sync"
	"time"

	"github.com/giovannicg/INMEDT/internal/security"
	"github.com/giovannicg/INMEDT/internal/usecase"
)

// sweepInterval bounds how often Set scans for expired entries of sessions
// that will never be read again.
const sweepInterval = time.Minute

type memEntry struct {
	token   string
	expires time.Time
}

// MemoryTokens is the single-process fallback when redis is not configured.
type MemoryTokens struct {
	mu       sync.Mutex
	m        map[string]memEntry
	fallback time.Duration
	now      func() time.Time
	swept    time.Time
}

func NewMemoryTokens(fallback time.Duration) *MemoryTokens {
	return &MemoryTokens{m: map[string]memEntry{}, fallback: fallback, now: time.Now}
}

// Len counts stored tokens, expired ones included until the next sweep.
func (m *MemoryTokens) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.m)
}

// sweep drops expired entries. Callers hold mu.
func (m *MemoryTokens) sweep(now time.Time) {
	if now.Sub(m.swept) < sweepInterval {
		return
	}
	for id, e := range m.m {
		if !now.Before(e.expires) {
			delete(m.m, id)
		}
	}
	m.swept = now
}

func (m *MemoryTokens) ForSession(sessionID string) usecase.TokenStore {
	return &memSessionTokens{m: m, id: sessionID}
}

type memSessionTokens struct {
	m  *MemoryTokens
	id string
}

func (s *memSessionTokens) Get(context.Context) (string, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	e, ok := s.m.m[s.id]
	if !ok {
		return "", nil
	}
	if !s.m.now().Before(e.expires) {
		delete(s.m.m, s.id)
		return "", nil
	}
	return e.token, nil
}

func (s *memSessionTokens) Set(_ context.Context, token string) error {
	now := s.m.now()
	ttl := security.TTL(token, now, s.m.fallback)
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.sweep(now)
	if ttl <= 0 {
		delete(s.m.m, s.id)
		return nil
	}
	s.m.m[s.id] = memEntry{token: token, expires: now.Add(ttl)}
	return nil
}

func (s *memSessionTokens) Clear(context.Context) error {
	s.m.mu.Lock()
	delete(s.m.m, s.id)
	s.m.mu.Unlock()
	return nil
}
