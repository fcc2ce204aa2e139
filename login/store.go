package login

import (
	"sync"
	"time"

	"github.com/kbukum/baasic/httpclient"
)

// TokenStore keeps the current access token.
type TokenStore interface {
	httpclient.TokenSource

	// Token returns the stored token, if any, expired or not.
	Token() (*Token, bool)
	SetToken(t *Token)
	Clear()
}

// MemoryStore is a TokenStore held in memory. The zero value is ready to use.
type MemoryStore struct {
	mu    sync.RWMutex
	token *Token
	now   func() time.Time
}

var _ TokenStore = (*MemoryStore)(nil)

// StoreOption configures a MemoryStore.
type StoreOption func(*MemoryStore)

// WithStoreClock sets the time source expiry is checked against.
func WithStoreClock(now func() time.Time) StoreOption {
	return func(s *MemoryStore) { s.now = now }
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(opts ...StoreOption) *MemoryStore {
	s := &MemoryStore{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Token returns a copy of the stored token.
func (s *MemoryStore) Token() (*Token, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == nil {
		return nil, false
	}
	t := *s.token
	return &t, true
}

// SetToken stores a copy of t. A nil t clears the store.
func (s *MemoryStore) SetToken(t *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t == nil {
		s.token = nil
		return
	}
	cp := *t
	s.token = &cp
}

// Clear removes the stored token.
func (s *MemoryStore) Clear() {
	s.SetToken(nil)
}

// AccessToken implements httpclient.TokenSource. Expired tokens are not sent.
func (s *MemoryStore) AccessToken() (string, string, bool) {
	t, ok := s.Token()
	if !ok || t.AccessToken == "" || t.Expired(s.clock()) {
		return "", "", false
	}
	return t.Scheme(), t.AccessToken, true
}

func (s *MemoryStore) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
