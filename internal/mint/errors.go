package mint

import "errors"

var (
	// ErrNotConnected indicates no wallet session or address is present.
	ErrNotConnected = errors.New("mint: wallet not connected")

	// ErrNoItemSelected indicates no catalog item was chosen.
	ErrNoItemSelected = errors.New("mint: no item selected")

	// ErrAttemptInFlight indicates a prior attempt is still submitting or
	// awaiting confirmation.
	ErrAttemptInFlight = errors.New("mint: attempt already in flight")

	// ErrNotDismissible indicates Dismiss was called outside a terminal
	// state.
	ErrNotDismissible = errors.New("mint: attempt not in a dismissible state")

	// ErrReverted indicates the network confirmed the transaction as failed.
	ErrReverted = errors.New("mint: transaction reverted")
)
