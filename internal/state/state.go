// Package state maintains a locally cached view of the collection contract:
// the caller's balance, total supply and per-item supply counters. The view
// is only as fresh as the last Refetch; callers must treat it as eventually
// consistent with the chain.
package state

import (
	"context"
	"sync"
	"time"

	"mintgate/internal/catalog"
	"mintgate/internal/chain"
	"mintgate/internal/logger"
	"mintgate/internal/session"
	"mintgate/internal/storage"

	"go.uber.org/zap"
)

// SupplyInfo is the reconciled per-item supply view.
type SupplyInfo struct {
	ItemID          uint64
	CurrentSupply   uint64
	MaxSupply       uint64
	RemainingSupply uint64
	Active          bool
}

// View is the cached contract state exposed to consumers.
type View struct {
	Balance     uint64
	TotalSupply uint64
	Supplies    []SupplyInfo
}

// Hook owns the cached view and re-issues all underlying reads on Refetch.
// Reads against an unconfigured contract, or reads that fail, degrade to
// zero/empty defaults instead of propagating: gating must fail closed to
// "no access", never crash the consumer.
type Hook struct {
	mu         sync.RWMutex
	client     chain.Client
	sessions   session.Provider
	store      storage.Storage
	configured bool
	view       View
}

// New creates a hook. store may be nil to skip snapshot persistence.
func New(client chain.Client, sessions session.Provider, store storage.Storage, configured bool) *Hook {
	return &Hook{
		client:     client,
		sessions:   sessions,
		store:      store,
		configured: configured,
	}
}

// Configured reports whether a contract address is mapped for the network.
func (h *Hook) Configured() bool {
	return h.configured
}

// View returns the last fetched state.
func (h *Hook) View() View {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.view
}

// SupplyFor returns the cached supply info for one catalog item.
func (h *Hook) SupplyFor(itemID uint64) (SupplyInfo, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, info := range h.view.Supplies {
		if info.ItemID == itemID {
			return info, true
		}
	}
	return SupplyInfo{}, false
}

// Refetch re-issues every underlying read and replaces the cached view.
// The returned view equals the new cache contents.
func (h *Hook) Refetch(ctx context.Context) View {
	if !h.configured {
		logger.Debug("refetch skipped, contract not configured")
		h.replace(View{})
		return View{}
	}

	view := View{}

	current := h.sessions.Current()
	if current.Connected && current.Address != "" {
		balance, err := h.client.Balance(ctx, current.Address)
		if err != nil {
			logger.Warn("balance read failed, defaulting to zero", zap.Error(err))
		} else {
			view.Balance = balance
		}
	}

	totalSupply, err := h.client.TotalSupply(ctx)
	if err != nil {
		logger.Warn("total supply read failed, defaulting to zero", zap.Error(err))
	} else {
		view.TotalSupply = totalSupply
	}

	status, err := h.client.CollectionStatus(ctx)
	if err != nil {
		logger.Warn("collection status read failed, defaulting to empty", zap.Error(err))
	} else {
		view.Supplies = reconcile(status)
	}

	h.replace(view)
	h.persistSnapshots(view)

	return view
}

func (h *Hook) replace(view View) {
	h.mu.Lock()
	h.view = view
	h.mu.Unlock()
}

// reconcile folds the contract's parallel arrays into per-item supply infos,
// aligned with the preset catalog order. A current supply above max supply
// is a reconciliation defect: the remainder is clamped to zero and logged.
func reconcile(status *chain.CollectionStatus) []SupplyInfo {
	supplies := make([]SupplyInfo, 0, len(catalog.Items))

	for i, item := range catalog.Items {
		info := SupplyInfo{ItemID: item.ID}

		if i < len(status.Supplies) {
			info.CurrentSupply = status.Supplies[i]
		}
		if i < len(status.MaxSupplies) {
			info.MaxSupply = status.MaxSupplies[i]
		}
		if i < len(status.ActiveFlags) {
			info.Active = status.ActiveFlags[i]
		}

		if info.CurrentSupply > info.MaxSupply {
			logger.Error("current supply exceeds max supply, clamping remainder",
				zap.Uint64("item id", info.ItemID),
				zap.Uint64("current", info.CurrentSupply),
				zap.Uint64("max", info.MaxSupply),
			)
			info.RemainingSupply = 0
		} else {
			info.RemainingSupply = info.MaxSupply - info.CurrentSupply
		}

		supplies = append(supplies, info)
	}

	return supplies
}

func (h *Hook) persistSnapshots(view View) {
	if h.store == nil || len(view.Supplies) == 0 {
		return
	}

	now := time.Now().Unix()
	snapshots := make([]*storage.SupplySnapshot, len(view.Supplies))
	for i, info := range view.Supplies {
		snapshots[i] = &storage.SupplySnapshot{
			ItemID:        info.ItemID,
			CurrentSupply: info.CurrentSupply,
			MaxSupply:     info.MaxSupply,
			Active:        info.Active,
			TakenUnixTime: now,
		}
	}

	if err := h.store.SaveSupplySnapshots(snapshots); err != nil {
		logger.Warn("failed to persist supply snapshots", zap.Error(err))
	}
}
