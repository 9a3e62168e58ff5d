package session

import (
	"healthpredict-client/internal/app/contracts"
	"sync"
)

// LazyCredentials breaks the construction cycle between the gateway and the
// session store: the gateway is built against it first, the store is bound
// afterwards. Unbound it reads as "no token".
type LazyCredentials struct {
	mu    sync.RWMutex
	store contracts.SessionStore
}

func NewLazyCredentials() *LazyCredentials {
	return &LazyCredentials{}
}

func (c *LazyCredentials) Bind(store contracts.SessionStore) {
	c.mu.Lock()
	c.store = store
	c.mu.Unlock()
}

func (c *LazyCredentials) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.store == nil {
		return ""
	}
	return c.store.Token()
}
