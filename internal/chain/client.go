// Package chain adapts the deployed collection contract to typed read and
// write operations. All methods take a context; writes are broadcast to the
// network and have no local effect until confirmed.
package chain

import "context"

// CollectionStatus mirrors the contract's parallel status arrays, indexed by
// preset item order.
type CollectionStatus struct {
	Supplies    []uint64
	MaxSupplies []uint64
	ActiveFlags []bool
}

// Client is the operation surface the state, mint and inventory packages
// consume. Implementations: EthClient (live network) and Mock (tests).
type Client interface {
	// Balance returns how many collection tokens an address owns.
	Balance(ctx context.Context, address string) (uint64, error)

	// TotalSupply returns the number of tokens minted across all items.
	TotalSupply(ctx context.Context) (uint64, error)

	// CollectionStatus returns per-item supply counters and active flags.
	CollectionStatus(ctx context.Context) (*CollectionStatus, error)

	// RemainingSupply returns maxSupply - currentSupply for one item.
	RemainingSupply(ctx context.Context, itemID uint64) (uint64, error)

	// RemainingMints returns how many mints of the item the address has
	// left under the one-per-address policy (0 or 1).
	RemainingMints(ctx context.Context, address string, itemID uint64) (uint64, error)

	// SubmitMint broadcasts a publicMint transaction for the item and
	// returns its hash. Failures are classified via Classify.
	SubmitMint(ctx context.Context, itemID uint64) (string, error)

	// WaitMined polls for the transaction receipt and reports whether the
	// transaction reverted.
	WaitMined(ctx context.Context, txHash string) (reverted bool, err error)

	// TokenOfOwnerByIndex returns the token id at the given index of the
	// owner's enumeration.
	TokenOfOwnerByIndex(ctx context.Context, address string, index uint64) (uint64, error)

	// TokenURI returns the metadata URI of a token.
	TokenURI(ctx context.Context, tokenID uint64) (string, error)
}
