// Package gate derives content-access decisions from token ownership.
package gate

import (
	"context"
	"time"

	"mintgate/internal/session"
	"mintgate/internal/state"
)

// Decision is the derived access verdict.
type Decision struct {
	HasAccess bool
	NFTCount  uint64
}

// Evaluate is a pure function of the connection and balance inputs.
// Access requires every condition: a connected session with an address, a
// configured contract, and ownership of at least one token.
func Evaluate(connected bool, address string, balance uint64, configured bool) Decision {
	return Decision{
		HasAccess: connected && address != "" && configured && balance > 0,
		NFTCount:  balance,
	}
}

// Refresher re-derives the decision from the cached state view after a
// fixed delay. The delay smooths a race against an in-flight balance read;
// the balance read itself remains the source of truth.
type Refresher struct {
	hook     *state.Hook
	sessions session.Provider
	delay    time.Duration
}

func NewRefresher(hook *state.Hook, sessions session.Provider, delay time.Duration) *Refresher {
	return &Refresher{hook: hook, sessions: sessions, delay: delay}
}

// Check evaluates immediately from the current session and cached balance.
func (r *Refresher) Check() Decision {
	current := r.sessions.Current()
	return Evaluate(current.Connected, current.Address, r.hook.View().Balance, r.hook.Configured())
}

// Refresh waits the configured delay, then re-evaluates. Returns the stale
// decision early if the context is cancelled during the wait.
func (r *Refresher) Refresh(ctx context.Context) Decision {
	select {
	case <-ctx.Done():
		return r.Check()
	case <-time.After(r.delay):
	}
	return r.Check()
}
