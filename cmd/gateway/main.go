package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mintgate/internal/chain"
	"mintgate/internal/config"
	"mintgate/internal/gate"
	"mintgate/internal/inventory"
	"mintgate/internal/ipfs"
	"mintgate/internal/logger"
	"mintgate/internal/mint"
	"mintgate/internal/session"
	"mintgate/internal/state"
	"mintgate/internal/storage"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"math/big"
)

const refetchInterval = 30 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)

	go func() {
		cfg, err := config.Load()
		if err != nil {
			errCh <- err
			return
		}
		if err := config.Validate(cfg); err != nil {
			errCh <- err
			return
		}

		logger.Initialize(logger.Configuration{
			LogFile:   cfg.LogFile,
			ErrorFile: cfg.ErrorFile,
			Level:     cfg.LogLevel,
			Console:   cfg.LogConsole,
		})

		signer, address, err := loadSigner(cfg.ActiveChainID)
		if err != nil {
			errCh <- err
			return
		}

		client, err := chain.Dial(ctx, cfg, signer)
		if err != nil {
			errCh <- err
			return
		}
		defer client.Close()

		store, err := storage.NewSqliteStorage(cfg.DatabasePath)
		if err != nil {
			errCh <- err
			return
		}

		sessions := session.NewStatic(session.Session{
			Connected: address != "",
			Address:   address,
			ChainID:   cfg.ActiveChainID,
		})

		hook := state.New(client, sessions, store, cfg.IsConfigured(cfg.ActiveChainID))
		orchestrator := mint.New(client, sessions, hook, store, cfg.RefetchDelay)
		refresher := gate.NewRefresher(hook, sessions, cfg.GateRecheckDelay)
		fetcher := ipfs.NewFetcher(cfg.IPFSGateway)
		enumerator := inventory.NewEnumerator(client, fetcher, cfg.IPFSGateway, inventory.DefaultMaxInFlight)

		run(ctx, hook, refresher, enumerator, orchestrator, sessions)
	}()

	select {
	case err := <-errCh:
		fmt.Printf("stopping due to error: %v\n", err)
		cancel()
		os.Exit(1)
	case <-waitForInterrupt():
		fmt.Println("interrupt received")
		cancel()
	}
}

// run refreshes the cached contract state on an interval and logs the
// derived gate decision until the context is cancelled.
func run(
	ctx context.Context,
	hook *state.Hook,
	refresher *gate.Refresher,
	enumerator *inventory.Enumerator,
	orchestrator *mint.Orchestrator,
	sessions session.Provider,
) {
	ticker := time.NewTicker(refetchInterval)
	defer ticker.Stop()

	for {
		view := hook.Refetch(ctx)
		decision := refresher.Check()

		logger.Info("contract state refreshed",
			zap.Uint64("balance", view.Balance),
			zap.Uint64("total supply", view.TotalSupply),
			zap.Bool("has access", decision.HasAccess),
			zap.String("mint status", orchestrator.Attempt().Status.String()),
		)

		if decision.HasAccess {
			tokens, err := enumerator.OwnedTokens(ctx, sessions.Current().Address)
			if err != nil {
				logger.Warn("inventory listing failed", zap.Error(err))
			} else {
				logger.Info("inventory", zap.Int("owned tokens", len(tokens)))
			}
		}

		select {
		case <-ctx.Done():
			logger.Info("gateway stopped")
			return
		case <-ticker.C:
		}
	}
}

// loadSigner builds transact opts from PRIVATE_KEY. Without a key the
// service runs read-only.
func loadSigner(chainID uint64) (*bind.TransactOpts, string, error) {
	raw := os.Getenv("PRIVATE_KEY")
	if raw == "" {
		return nil, os.Getenv("WALLET_ADDRESS"), nil
	}

	key, err := crypto.HexToECDSA(raw)
	if err != nil {
		return nil, "", err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, new(big.Int).SetUint64(chainID))
	if err != nil {
		return nil, "", err
	}

	return opts, crypto.PubkeyToAddress(key.PublicKey).Hex(), nil
}

func waitForInterrupt() <-chan os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	return sigCh
}
