package mint

import (
	"errors"

	"mintgate/internal/chain"
)

// UserMessage maps a mint failure onto the message shown to the user.
// Unclassified errors pass their raw text through as the fallback.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, chain.ErrUserRejected):
		return "You cancelled the transaction."
	case errors.Is(err, chain.ErrInsufficientFunds):
		return "Insufficient balance. Make sure you have enough to cover gas."
	case errors.Is(err, chain.ErrSupplyExhausted):
		return "This item is sold out."
	case errors.Is(err, chain.ErrAlreadyMinted):
		return "You already minted this item. One per person."
	case errors.Is(err, chain.ErrInvalidItem):
		return "Unknown item."
	case errors.Is(err, chain.ErrItemInactive):
		return "This item is not currently mintable."
	case errors.Is(err, chain.ErrNotConfigured):
		return "The collection contract is not configured for this network."
	case errors.Is(err, ErrNotConnected):
		return "Connect your wallet first."
	case errors.Is(err, ErrReverted):
		return "The transaction was rejected by the network."
	default:
		return err.Error()
	}
}
