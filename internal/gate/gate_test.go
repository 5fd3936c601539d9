package gate

import (
	"context"
	"errors"
	"testing"
	"time"

	"mintgate/internal/chain"
	"mintgate/internal/session"
	"mintgate/internal/state"

	"github.com/stretchr/testify/assert"
)

const addr = "0x1111111111111111111111111111111111111111"

func TestEvaluateTruthTable(t *testing.T) {
	cases := []struct {
		name       string
		connected  bool
		address    string
		balance    uint64
		configured bool
		want       bool
	}{
		{"all conditions met", true, addr, 1, true, true},
		{"disconnected", false, addr, 1, true, false},
		{"no address", true, "", 1, true, false},
		{"zero balance", true, addr, 0, true, false},
		{"unconfigured contract", true, addr, 1, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision := Evaluate(tc.connected, tc.address, tc.balance, tc.configured)
			assert.Equal(t, tc.want, decision.HasAccess)
			assert.Equal(t, tc.balance, decision.NFTCount)
		})
	}
}

func TestRefresherFailsClosedOnBalanceError(t *testing.T) {
	// The balance read failing must deny access, not panic or propagate.
	client := &chain.Mock{
		BalanceFn: func(ctx context.Context, address string) (uint64, error) {
			return 0, errors.New("rpc: connection refused")
		},
		TotalSupplyFn: func(ctx context.Context) (uint64, error) {
			return 5, nil
		},
		CollectionStatusFn: func(ctx context.Context) (*chain.CollectionStatus, error) {
			return &chain.CollectionStatus{}, nil
		},
	}

	sessions := session.NewStatic(session.Session{Connected: true, Address: addr})
	hook := state.New(client, sessions, nil, true)
	hook.Refetch(context.Background())

	refresher := NewRefresher(hook, sessions, time.Millisecond)
	decision := refresher.Refresh(context.Background())

	assert.False(t, decision.HasAccess)
	assert.Zero(t, decision.NFTCount)
}

func TestRefresherGrantsAccessWithBalance(t *testing.T) {
	client := &chain.Mock{
		BalanceFn: func(ctx context.Context, address string) (uint64, error) {
			return 2, nil
		},
		TotalSupplyFn: func(ctx context.Context) (uint64, error) {
			return 6, nil
		},
		CollectionStatusFn: func(ctx context.Context) (*chain.CollectionStatus, error) {
			return &chain.CollectionStatus{}, nil
		},
	}

	sessions := session.NewStatic(session.Session{Connected: true, Address: addr})
	hook := state.New(client, sessions, nil, true)
	hook.Refetch(context.Background())

	refresher := NewRefresher(hook, sessions, time.Millisecond)
	decision := refresher.Refresh(context.Background())

	assert.True(t, decision.HasAccess)
	assert.Equal(t, uint64(2), decision.NFTCount)
}

func TestRefresherSeesDisconnect(t *testing.T) {
	client := &chain.Mock{
		BalanceFn: func(ctx context.Context, address string) (uint64, error) {
			return 1, nil
		},
		TotalSupplyFn: func(ctx context.Context) (uint64, error) {
			return 1, nil
		},
		CollectionStatusFn: func(ctx context.Context) (*chain.CollectionStatus, error) {
			return &chain.CollectionStatus{}, nil
		},
	}

	sessions := session.NewStatic(session.Session{Connected: true, Address: addr})
	hook := state.New(client, sessions, nil, true)
	hook.Refetch(context.Background())

	refresher := NewRefresher(hook, sessions, time.Millisecond)
	assert.True(t, refresher.Check().HasAccess)

	sessions.Set(session.Session{Connected: false})
	assert.False(t, refresher.Check().HasAccess)
}
