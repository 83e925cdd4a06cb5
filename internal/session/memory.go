package session

import (
	"context"
	"sync"
	"time"
)

type stored struct {
	token   string
	savedAt time.Time
}

// MemoryStore keeps tokens in process memory; they are lost on restart.
// A token older than ttl is gone, matching the session cookie lifetime.
type MemoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu     sync.Mutex
	tokens map[string]stored
	swept  time.Time
}

// NewMemoryStore keeps each token for ttl after its last Put. A ttl of zero
// keeps tokens until Delete.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, tokens: make(map[string]stored)}
}

func (m *MemoryStore) expired(s stored, now time.Time) bool {
	return m.ttl > 0 && now.Sub(s.savedAt) >= m.ttl
}

func (m *MemoryStore) Get(_ context.Context, id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.tokens[id]
	if !ok {
		return "", ErrNotFound
	}
	if m.expired(s, m.now()) {
		delete(m.tokens, id)
		return "", ErrNotFound
	}
	return s.token, nil
}

func (m *MemoryStore) Put(_ context.Context, id, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.sweep(now)
	m.tokens[id] = stored{token: token, savedAt: now}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tokens[id]; !ok {
		return ErrNotFound
	}
	delete(m.tokens, id)
	return nil
}

// sweep drops expired tokens, at most once per ttl.
func (m *MemoryStore) sweep(now time.Time) {
	if m.ttl <= 0 || now.Sub(m.swept) < m.ttl {
		return
	}
	m.swept = now
	for id, s := range m.tokens {
		if m.expired(s, now) {
			delete(m.tokens, id)
		}
	}
}
