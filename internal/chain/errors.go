package chain

import "errors"

var (
	// ErrNotConfigured indicates no contract address is mapped for the
	// connected network.
	ErrNotConfigured = errors.New("chain: contract not configured for network")

	// ErrNoSigner indicates a write was attempted without signing keys.
	ErrNoSigner = errors.New("chain: no transaction signer configured")

	// ErrUserRejected indicates the signing party declined the transaction.
	ErrUserRejected = errors.New("chain: user rejected transaction")

	// ErrInsufficientFunds indicates the sender cannot cover value plus gas.
	ErrInsufficientFunds = errors.New("chain: insufficient funds")

	// ErrSupplyExhausted indicates the item's max supply has been reached.
	ErrSupplyExhausted = errors.New("chain: max supply reached")

	// ErrAlreadyMinted indicates the address already used its one mint for
	// the item.
	ErrAlreadyMinted = errors.New("chain: user mint limit reached")

	// ErrInvalidItem indicates the item id is outside the preset catalog.
	ErrInvalidItem = errors.New("chain: invalid nft id")

	// ErrItemInactive indicates minting is toggled off for the item.
	ErrItemInactive = errors.New("chain: nft is not active")
)
