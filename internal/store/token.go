package store

import "sync"

// TokenHolder is the in-memory home of the bearer token. Only the auth
// store writes it; the API client and everything else read it through the
// api.TokenSource interface, injected at startup so nothing has to reach
// back into the store tree at call time.
type TokenHolder struct {
	mu    sync.RWMutex
	token string
}

func NewTokenHolder() *TokenHolder {
	return &TokenHolder{}
}

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
