package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SqliteStorage {
	t.Helper()

	store, err := NewSqliteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return store
}

func TestMintAttemptJournal(t *testing.T) {
	store := newTestStorage(t)

	attempt := &MintAttempt{
		Address:  "0xaaa",
		ItemID:   1,
		Status:   AttemptSubmitting,
		UnixTime: time.Now().Unix(),
	}
	require.NoError(t, store.RecordMintAttempt(attempt))
	require.NotZero(t, attempt.ID)

	require.NoError(t, store.UpdateMintAttempt(&MintAttempt{
		ID:     attempt.ID,
		TxHash: "0xdead",
		Status: AttemptPendingConfirmation,
	}))

	attempts, err := store.GetMintAttempts("0xaaa")
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, "0xdead", attempts[0].TxHash)
	assert.Equal(t, AttemptPendingConfirmation, attempts[0].Status)

	attempts, err = store.GetMintAttempts("0xbbb")
	require.NoError(t, err)
	assert.Empty(t, attempts)
}

func TestGetPendingMintAttempts(t *testing.T) {
	store := newTestStorage(t)

	now := time.Now().Unix()
	for i, status := range []AttemptStatus{AttemptSubmitting, AttemptPendingConfirmation, AttemptConfirmed, AttemptFailed} {
		require.NoError(t, store.RecordMintAttempt(&MintAttempt{
			Address:  "0xaaa",
			ItemID:   uint64(i + 1),
			Status:   status,
			UnixTime: now + int64(i),
		}))
	}

	pending, err := store.GetPendingMintAttempts()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, AttemptSubmitting, pending[0].Status)
	assert.Equal(t, AttemptPendingConfirmation, pending[1].Status)
}

func TestSupplySnapshotsUpsert(t *testing.T) {
	store := newTestStorage(t)

	require.NoError(t, store.SaveSupplySnapshots([]*SupplySnapshot{
		{ItemID: 1, CurrentSupply: 0, MaxSupply: 3, Active: true, TakenUnixTime: 100},
		{ItemID: 2, CurrentSupply: 1, MaxSupply: 3, Active: true, TakenUnixTime: 100},
	}))

	// Second save for the same items must replace, not duplicate.
	require.NoError(t, store.SaveSupplySnapshots([]*SupplySnapshot{
		{ItemID: 1, CurrentSupply: 2, MaxSupply: 3, Active: false, TakenUnixTime: 200},
	}))

	snapshots, err := store.LatestSupplySnapshots()
	require.NoError(t, err)
	require.Len(t, snapshots, 2)

	assert.Equal(t, uint64(1), snapshots[0].ItemID)
	assert.Equal(t, uint64(2), snapshots[0].CurrentSupply)
	assert.False(t, snapshots[0].Active)
	assert.Equal(t, int64(200), snapshots[0].TakenUnixTime)

	assert.Equal(t, uint64(2), snapshots[1].ItemID)
	assert.Equal(t, uint64(1), snapshots[1].CurrentSupply)
}

func TestSaveSupplySnapshotsEmpty(t *testing.T) {
	store := newTestStorage(t)
	assert.NoError(t, store.SaveSupplySnapshots(nil))
}
