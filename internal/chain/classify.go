package chain

import "strings"

// revert reason / node message fragments, matched case-insensitively.
// A compatibility shim: nodes surface revert reasons as free text, so the
// mapping is by substring until a structured error code is available.
var classifications = []struct {
	fragment string
	err      error
}{
	{"user rejected", ErrUserRejected},
	{"user denied", ErrUserRejected},
	{"insufficient funds", ErrInsufficientFunds},
	{"max supply reached", ErrSupplyExhausted},
	{"user mint limit reached", ErrAlreadyMinted},
	{"invalid nft id", ErrInvalidItem},
	{"nft is not active", ErrItemInactive},
}

// Classify maps a raw node or signer error onto the package's typed errors.
// Unrecognized errors are returned unchanged so the raw message survives as
// the fallback surfaced to the caller.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	message := strings.ToLower(err.Error())
	for _, c := range classifications {
		if strings.Contains(message, c.fragment) {
			return c.err
		}
	}

	return err
}
