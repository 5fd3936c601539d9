package state

import (
	"context"
	"errors"
	"testing"

	"mintgate/internal/catalog"
	"mintgate/internal/chain"
	"mintgate/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addr = "0x2222222222222222222222222222222222222222"

func connectedSessions() *session.Static {
	return session.NewStatic(session.Session{Connected: true, Address: addr})
}

func statusForAll(current, max uint64, active bool) *chain.CollectionStatus {
	n := catalog.Count()
	status := &chain.CollectionStatus{
		Supplies:    make([]uint64, n),
		MaxSupplies: make([]uint64, n),
		ActiveFlags: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		status.Supplies[i] = current
		status.MaxSupplies[i] = max
		status.ActiveFlags[i] = active
	}
	return status
}

func TestRefetchReconcilesSupplies(t *testing.T) {
	client := &chain.Mock{
		BalanceFn:     func(ctx context.Context, address string) (uint64, error) { return 1, nil },
		TotalSupplyFn: func(ctx context.Context) (uint64, error) { return 7, nil },
		CollectionStatusFn: func(ctx context.Context) (*chain.CollectionStatus, error) {
			return statusForAll(1, 3, true), nil
		},
	}

	hook := New(client, connectedSessions(), nil, true)
	view := hook.Refetch(context.Background())

	assert.Equal(t, uint64(1), view.Balance)
	assert.Equal(t, uint64(7), view.TotalSupply)
	require.Len(t, view.Supplies, catalog.Count())

	for _, info := range view.Supplies {
		assert.Equal(t, uint64(2), info.RemainingSupply)
		assert.True(t, info.Active)
	}
}

func TestRefetchClampsNegativeRemaining(t *testing.T) {
	// currentSupply > maxSupply is a reconciliation defect; the remainder
	// must render as zero, never negative.
	client := &chain.Mock{
		BalanceFn:     func(ctx context.Context, address string) (uint64, error) { return 0, nil },
		TotalSupplyFn: func(ctx context.Context) (uint64, error) { return 0, nil },
		CollectionStatusFn: func(ctx context.Context) (*chain.CollectionStatus, error) {
			return statusForAll(5, 3, true), nil
		},
	}

	hook := New(client, connectedSessions(), nil, true)
	view := hook.Refetch(context.Background())

	for _, info := range view.Supplies {
		assert.Zero(t, info.RemainingSupply)
	}
}

func TestRefetchSoldOut(t *testing.T) {
	client := &chain.Mock{
		BalanceFn:     func(ctx context.Context, address string) (uint64, error) { return 0, nil },
		TotalSupplyFn: func(ctx context.Context) (uint64, error) { return 12, nil },
		CollectionStatusFn: func(ctx context.Context) (*chain.CollectionStatus, error) {
			return statusForAll(3, 3, true), nil
		},
	}

	hook := New(client, connectedSessions(), nil, true)
	hook.Refetch(context.Background())

	info, ok := hook.SupplyFor(1)
	require.True(t, ok)
	assert.Equal(t, uint64(3), info.CurrentSupply)
	assert.Zero(t, info.RemainingSupply)
}

func TestRefetchUnconfiguredShortCircuits(t *testing.T) {
	// No function fields are set: any call on the mock would panic, which
	// is exactly what an unconfigured refetch must never do.
	hook := New(&chain.Mock{}, connectedSessions(), nil, false)
	view := hook.Refetch(context.Background())

	assert.Zero(t, view.Balance)
	assert.Zero(t, view.TotalSupply)
	assert.Empty(t, view.Supplies)
}

func TestRefetchDegradesOnReadErrors(t *testing.T) {
	client := &chain.Mock{
		BalanceFn: func(ctx context.Context, address string) (uint64, error) {
			return 0, errors.New("rpc timeout")
		},
		TotalSupplyFn: func(ctx context.Context) (uint64, error) {
			return 0, errors.New("rpc timeout")
		},
		CollectionStatusFn: func(ctx context.Context) (*chain.CollectionStatus, error) {
			return nil, errors.New("rpc timeout")
		},
	}

	hook := New(client, connectedSessions(), nil, true)
	view := hook.Refetch(context.Background())

	assert.Zero(t, view.Balance)
	assert.Zero(t, view.TotalSupply)
	assert.Empty(t, view.Supplies)
}

func TestRefetchSkipsBalanceWhenDisconnected(t *testing.T) {
	balanceCalled := false
	client := &chain.Mock{
		BalanceFn: func(ctx context.Context, address string) (uint64, error) {
			balanceCalled = true
			return 9, nil
		},
		TotalSupplyFn: func(ctx context.Context) (uint64, error) { return 0, nil },
		CollectionStatusFn: func(ctx context.Context) (*chain.CollectionStatus, error) {
			return statusForAll(0, 3, true), nil
		},
	}

	sessions := session.NewStatic(session.Session{Connected: false})
	hook := New(client, sessions, nil, true)
	view := hook.Refetch(context.Background())

	assert.False(t, balanceCalled)
	assert.Zero(t, view.Balance)
}

func TestSupplyForUnknownItem(t *testing.T) {
	hook := New(&chain.Mock{}, connectedSessions(), nil, false)
	_, ok := hook.SupplyFor(99)
	assert.False(t, ok)
}
