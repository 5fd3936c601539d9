package chain

import (
	"context"
	"errors"
	"math/big"
	"time"

	"mintgate/internal/config"
	"mintgate/internal/contract"
	"mintgate/internal/logger"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// receiptPollInterval is how often WaitMined asks the node for a receipt.
const receiptPollInterval = 2 * time.Second

// EthClient implements Client over a JSON-RPC endpoint and the collection
// binding. The signer is optional; without one the client is read-only and
// SubmitMint fails with ErrNoSigner.
type EthClient struct {
	rpc        *ethclient.Client
	collection *contract.Collection
	signer     *bind.TransactOpts
}

// Dial connects to the RPC endpoint of the configured network and binds the
// collection contract. Returns ErrNotConfigured when the network has no
// mapped contract address.
func Dial(ctx context.Context, cfg *config.Config, signer *bind.TransactOpts) (*EthClient, error) {
	network, err := cfg.Active()
	if err != nil {
		return nil, ErrNotConfigured
	}

	address, err := cfg.ContractAddress(network.ChainID)
	if err != nil {
		return nil, ErrNotConfigured
	}

	rpc, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return nil, err
	}

	collection, err := contract.NewCollection(common.HexToAddress(address), rpc)
	if err != nil {
		rpc.Close()
		return nil, err
	}

	logger.Info("chain client connected",
		zap.String("network", network.Name),
		zap.Uint64("chain id", network.ChainID),
		zap.String("contract", address),
	)

	return &EthClient{
		rpc:        rpc,
		collection: collection,
		signer:     signer,
	}, nil
}

// Close releases the underlying RPC connection.
func (c *EthClient) Close() {
	c.rpc.Close()
}

func (c *EthClient) Balance(ctx context.Context, address string) (uint64, error) {
	balance, err := c.collection.BalanceOf(&bind.CallOpts{Context: ctx}, common.HexToAddress(address))
	if err != nil {
		return 0, err
	}
	return balance.Uint64(), nil
}

func (c *EthClient) TotalSupply(ctx context.Context) (uint64, error) {
	supply, err := c.collection.TotalSupply(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, err
	}
	return supply.Uint64(), nil
}

func (c *EthClient) CollectionStatus(ctx context.Context) (*CollectionStatus, error) {
	supplies, maxSupplies, activeFlags, err := c.collection.GetAllNFTStatus(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, err
	}

	status := &CollectionStatus{
		Supplies:    make([]uint64, len(supplies)),
		MaxSupplies: make([]uint64, len(maxSupplies)),
		ActiveFlags: activeFlags,
	}
	for i, s := range supplies {
		status.Supplies[i] = s.Uint64()
	}
	for i, m := range maxSupplies {
		status.MaxSupplies[i] = m.Uint64()
	}

	return status, nil
}

func (c *EthClient) RemainingSupply(ctx context.Context, itemID uint64) (uint64, error) {
	remaining, err := c.collection.GetRemainingSupply(&bind.CallOpts{Context: ctx}, new(big.Int).SetUint64(itemID))
	if err != nil {
		return 0, err
	}
	return remaining.Uint64(), nil
}

func (c *EthClient) RemainingMints(ctx context.Context, address string, itemID uint64) (uint64, error) {
	remaining, err := c.collection.GetUserRemainingMints(
		&bind.CallOpts{Context: ctx},
		common.HexToAddress(address),
		new(big.Int).SetUint64(itemID),
	)
	if err != nil {
		return 0, err
	}
	return remaining.Uint64(), nil
}

func (c *EthClient) SubmitMint(ctx context.Context, itemID uint64) (string, error) {
	if c.signer == nil {
		return "", ErrNoSigner
	}

	opts := *c.signer
	opts.Context = ctx

	tx, err := c.collection.PublicMint(&opts, new(big.Int).SetUint64(itemID))
	if err != nil {
		return "", Classify(err)
	}

	logger.Info("mint transaction broadcast",
		zap.Uint64("item id", itemID),
		zap.String("tx hash", tx.Hash().Hex()),
	)
	return tx.Hash().Hex(), nil
}

func (c *EthClient) WaitMined(ctx context.Context, txHash string) (bool, error) {
	hash := common.HexToHash(txHash)

	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.rpc.TransactionReceipt(ctx, hash)
		if err == nil && receipt != nil {
			return receipt.Status == types.ReceiptStatusFailed, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			return false, err
		}

		logger.Debug("receipt not yet available", zap.String("tx hash", txHash))

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *EthClient) TokenOfOwnerByIndex(ctx context.Context, address string, index uint64) (uint64, error) {
	tokenID, err := c.collection.TokenOfOwnerByIndex(
		&bind.CallOpts{Context: ctx},
		common.HexToAddress(address),
		new(big.Int).SetUint64(index),
	)
	if err != nil {
		return 0, err
	}
	return tokenID.Uint64(), nil
}

func (c *EthClient) TokenURI(ctx context.Context, tokenID uint64) (string, error) {
	return c.collection.TokenURI(&bind.CallOpts{Context: ctx}, new(big.Int).SetUint64(tokenID))
}
