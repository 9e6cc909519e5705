package session

import "sync"

// TokenHolder is the single in-memory slot for the bearer token. The store
// is the only writer; the HTTP transport reads it at call time so a logout
// is visible to every request issued afterwards.
type TokenHolder struct {
	mu    sync.RWMutex
	token string
}

func NewTokenHolder() *TokenHolder {
	return &TokenHolder{}
}

// Token returns the current bearer token, or "" when anonymous.
func (h *TokenHolder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *TokenHolder) set(token string) {
	h.mu.Lock()
	h.token = token
	h.mu.Unlock()
}
