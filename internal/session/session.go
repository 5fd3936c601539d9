// Package session carries the wallet/session state supplied by an external
// wallet-connection provider. The service only consumes this state; it never
// manages the wallet lifecycle itself.
package session

import "sync"

// Session is a point-in-time view of the wallet connection.
type Session struct {
	Connected bool
	Address   string
	ChainID   uint64
}

// Provider yields the current wallet session. Injected into every component
// that needs connection state so tests can substitute their own.
type Provider interface {
	Current() Session
}

// Static is a Provider backed by an updatable value. The production wiring
// updates it from the connection callback; tests set it directly.
type Static struct {
	mu      sync.RWMutex
	session Session
}

func NewStatic(s Session) *Static {
	return &Static{session: s}
}

func (p *Static) Current() Session {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.session
}

func (p *Static) Set(s Session) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.session = s
}
