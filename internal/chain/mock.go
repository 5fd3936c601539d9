package chain

import "context"

// Mock is a test double for Client. Function fields must be set before the
// corresponding method is called.
type Mock struct {
	BalanceFn             func(ctx context.Context, address string) (uint64, error)
	TotalSupplyFn         func(ctx context.Context) (uint64, error)
	CollectionStatusFn    func(ctx context.Context) (*CollectionStatus, error)
	RemainingSupplyFn     func(ctx context.Context, itemID uint64) (uint64, error)
	RemainingMintsFn      func(ctx context.Context, address string, itemID uint64) (uint64, error)
	SubmitMintFn          func(ctx context.Context, itemID uint64) (string, error)
	WaitMinedFn           func(ctx context.Context, txHash string) (bool, error)
	TokenOfOwnerByIndexFn func(ctx context.Context, address string, index uint64) (uint64, error)
	TokenURIFn            func(ctx context.Context, tokenID uint64) (string, error)
}

func (m *Mock) Balance(ctx context.Context, address string) (uint64, error) {
	return m.BalanceFn(ctx, address)
}

func (m *Mock) TotalSupply(ctx context.Context) (uint64, error) {
	return m.TotalSupplyFn(ctx)
}

func (m *Mock) CollectionStatus(ctx context.Context) (*CollectionStatus, error) {
	return m.CollectionStatusFn(ctx)
}

func (m *Mock) RemainingSupply(ctx context.Context, itemID uint64) (uint64, error) {
	return m.RemainingSupplyFn(ctx, itemID)
}

func (m *Mock) RemainingMints(ctx context.Context, address string, itemID uint64) (uint64, error) {
	return m.RemainingMintsFn(ctx, address, itemID)
}

func (m *Mock) SubmitMint(ctx context.Context, itemID uint64) (string, error) {
	return m.SubmitMintFn(ctx, itemID)
}

func (m *Mock) WaitMined(ctx context.Context, txHash string) (bool, error) {
	return m.WaitMinedFn(ctx, txHash)
}

func (m *Mock) TokenOfOwnerByIndex(ctx context.Context, address string, index uint64) (uint64, error) {
	return m.TokenOfOwnerByIndexFn(ctx, address, index)
}

func (m *Mock) TokenURI(ctx context.Context, tokenID uint64) (string, error) {
	return m.TokenURIFn(ctx, tokenID)
}
