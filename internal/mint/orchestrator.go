// Package mint sequences a mint attempt through its lifecycle:
//
//	Idle --initiate--> Submitting --broadcast ok--> PendingConfirmation
//	                              --broadcast fails--> Failed
//	PendingConfirmation --confirmed--> Confirmed
//	PendingConfirmation --reverted/error--> Failed
//	Confirmed/Failed --Dismiss--> Idle
//
// Preconditions are enforced before any network submission; a violated
// precondition never reaches the contract.
package mint

import (
	"context"
	"sync"
	"time"

	"mintgate/internal/catalog"
	"mintgate/internal/chain"
	"mintgate/internal/logger"
	"mintgate/internal/session"
	"mintgate/internal/state"
	"mintgate/internal/storage"

	"go.uber.org/zap"
)

type Status int

const (
	Idle Status = iota
	Submitting
	PendingConfirmation
	Confirmed
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Submitting:
		return "Submitting"
	case PendingConfirmation:
		return "PendingConfirmation"
	case Confirmed:
		return "Confirmed"
	case Failed:
		return "Failed"
	}
	return "Unknown"
}

// Attempt is the observable state of the current mint attempt. TxHash is
// set exactly when the attempt has passed broadcast; ErrorMessage only in
// Failed.
type Attempt struct {
	Status       Status
	ItemID       uint64
	TxHash       string
	ErrorMessage string
}

// Orchestrator runs one mint attempt at a time. A second Mint call while a
// prior attempt is in flight is rejected with ErrAttemptInFlight.
type Orchestrator struct {
	inFlight sync.Mutex // held for the duration of a Mint call

	client   chain.Client
	sessions session.Provider
	hook     *state.Hook
	store    storage.Storage

	refetchDelay time.Duration

	mu        sync.Mutex // guards attempt and journalID
	attempt   Attempt
	journalID int64
}

// New creates an orchestrator. store may be nil to skip journaling.
func New(client chain.Client, sessions session.Provider, hook *state.Hook, store storage.Storage, refetchDelay time.Duration) *Orchestrator {
	return &Orchestrator{
		client:       client,
		sessions:     sessions,
		hook:         hook,
		store:        store,
		refetchDelay: refetchDelay,
	}
}

// Attempt returns the current attempt state.
func (o *Orchestrator) Attempt() Attempt {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.attempt
}

func (o *Orchestrator) setAttempt(attempt Attempt) {
	o.mu.Lock()
	o.attempt = attempt
	o.mu.Unlock()
}

// Mint validates preconditions, broadcasts the transaction and blocks until
// the network confirms or rejects it. On confirmation a state refetch is
// scheduled after the configured delay window so the read path can catch up
// with the write.
func (o *Orchestrator) Mint(ctx context.Context, itemID uint64) error {
	if !o.inFlight.TryLock() {
		return ErrAttemptInFlight
	}
	defer o.inFlight.Unlock()

	if err := o.checkPreconditions(ctx, itemID); err != nil {
		return err
	}

	o.setAttempt(Attempt{Status: Submitting, ItemID: itemID})
	o.journalStart(itemID)

	txHash, err := o.client.SubmitMint(ctx, itemID)
	if err != nil {
		err = chain.Classify(err)
		o.fail(itemID, "", err)
		return err
	}

	o.setAttempt(Attempt{Status: PendingConfirmation, ItemID: itemID, TxHash: txHash})
	o.journalUpdate(txHash, storage.AttemptPendingConfirmation, "")

	reverted, err := o.client.WaitMined(ctx, txHash)
	if err != nil {
		o.fail(itemID, txHash, err)
		return err
	}
	if reverted {
		o.fail(itemID, txHash, ErrReverted)
		return ErrReverted
	}

	o.setAttempt(Attempt{Status: Confirmed, ItemID: itemID, TxHash: txHash})
	o.journalUpdate(txHash, storage.AttemptConfirmed, "")

	logger.Info("mint confirmed",
		zap.Uint64("item id", itemID),
		zap.String("tx hash", txHash),
	)

	// The indexer backing the read path lags the confirmed write; refetch
	// after the compensation window rather than immediately.
	time.AfterFunc(o.refetchDelay, func() {
		o.hook.Refetch(context.Background())
	})

	return nil
}

// Dismiss resets a terminal attempt back to Idle.
func (o *Orchestrator) Dismiss() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.attempt.Status != Confirmed && o.attempt.Status != Failed {
		return ErrNotDismissible
	}

	o.attempt = Attempt{}
	o.journalID = 0
	return nil
}

// checkPreconditions blocks a doomed submission client-side instead of
// relying on the contract revert.
func (o *Orchestrator) checkPreconditions(ctx context.Context, itemID uint64) error {
	current := o.sessions.Current()
	if !current.Connected || current.Address == "" {
		return ErrNotConnected
	}

	if !o.hook.Configured() {
		return chain.ErrNotConfigured
	}

	if itemID == 0 {
		return ErrNoItemSelected
	}
	if !catalog.IsValidID(itemID) {
		return chain.ErrInvalidItem
	}

	supply, ok := o.hook.SupplyFor(itemID)
	if ok {
		if !supply.Active {
			return chain.ErrItemInactive
		}
		if supply.RemainingSupply == 0 {
			return chain.ErrSupplyExhausted
		}
	} else {
		// Nothing cached for the item yet; ask the contract directly.
		remaining, err := o.client.RemainingSupply(ctx, itemID)
		if err != nil {
			logger.Warn("remaining supply read failed, blocking mint", zap.Error(err))
			return chain.Classify(err)
		}
		if remaining == 0 {
			return chain.ErrSupplyExhausted
		}
	}

	remaining, err := o.client.RemainingMints(ctx, current.Address, itemID)
	if err != nil {
		// An unknown entitlement blocks the mint; the read path fails closed.
		logger.Warn("remaining mints read failed, blocking mint", zap.Error(err))
		remaining = 0
	}
	if remaining == 0 {
		return chain.ErrAlreadyMinted
	}

	return nil
}

func (o *Orchestrator) fail(itemID uint64, txHash string, err error) {
	message := UserMessage(err)
	o.setAttempt(Attempt{Status: Failed, ItemID: itemID, TxHash: txHash, ErrorMessage: message})
	o.journalUpdate(txHash, storage.AttemptFailed, message)
	logger.Warn("mint attempt failed", zap.Uint64("item id", itemID), zap.Error(err))
}

func (o *Orchestrator) journalStart(itemID uint64) {
	if o.store == nil {
		return
	}

	attempt := &storage.MintAttempt{
		Address:  o.sessions.Current().Address,
		ItemID:   itemID,
		Status:   storage.AttemptSubmitting,
		UnixTime: time.Now().Unix(),
	}
	if err := o.store.RecordMintAttempt(attempt); err != nil {
		logger.Warn("failed to journal mint attempt", zap.Error(err))
		return
	}

	o.mu.Lock()
	o.journalID = attempt.ID
	o.mu.Unlock()
}

func (o *Orchestrator) journalUpdate(txHash string, status storage.AttemptStatus, message string) {
	if o.store == nil {
		return
	}

	o.mu.Lock()
	id := o.journalID
	o.mu.Unlock()
	if id == 0 {
		return
	}

	err := o.store.UpdateMintAttempt(&storage.MintAttempt{
		ID:           id,
		TxHash:       txHash,
		Status:       status,
		ErrorMessage: message,
	})
	if err != nil {
		logger.Warn("failed to update mint attempt journal", zap.Error(err))
	}
}
