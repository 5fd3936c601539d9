// Package inventory enumerates the tokens an address owns. The contract
// offers no batch call; each token costs one round trip for its id and one
// for its URI, so the fan-out is bounded and results are reassembled in
// enumeration order.
package inventory

import (
	"context"

	"mintgate/internal/chain"
	"mintgate/internal/ipfs"
	"mintgate/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxInFlight caps concurrent per-token reads. Balances are small
// (one per catalog item), so a cap matching the catalog size is enough.
const DefaultMaxInFlight = 4

// Token is one owned token with its normalized metadata location. Metadata
// is nil when no fetcher is configured or the document could not be fetched.
type Token struct {
	TokenID    uint64
	TokenURI   string
	GatewayURL string
	Metadata   *ipfs.Metadata
	Index      int
}

// Enumerator fetches owned-token listings through a chain client. A fetcher
// enriches each token with its decoded metadata document; pass nil to list
// token ids and URIs only.
type Enumerator struct {
	client      chain.Client
	fetcher     *ipfs.Fetcher
	gatewayBase string
	maxInFlight int
}

func NewEnumerator(client chain.Client, fetcher *ipfs.Fetcher, gatewayBase string, maxInFlight int) *Enumerator {
	if maxInFlight <= 0 {
		maxInFlight = DefaultMaxInFlight
	}
	return &Enumerator{
		client:      client,
		fetcher:     fetcher,
		gatewayBase: gatewayBase,
		maxInFlight: maxInFlight,
	}
}

// OwnedTokens lists the tokens held by address, ordered by enumeration
// index. A token whose reads fail is skipped rather than failing the whole
// listing; the balance read itself failing returns an empty list.
func (e *Enumerator) OwnedTokens(ctx context.Context, address string) ([]Token, error) {
	if address == "" {
		return nil, nil
	}

	balance, err := e.client.Balance(ctx, address)
	if err != nil {
		logger.Warn("balance read failed, returning empty inventory", zap.Error(err))
		return nil, nil
	}
	if balance == 0 {
		return nil, nil
	}

	slots := make([]*Token, balance)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.maxInFlight)

	for i := uint64(0); i < balance; i++ {
		group.Go(func() error {
			token, err := e.fetchToken(groupCtx, address, i)
			if err != nil {
				logger.Debug("skipping token",
					zap.Uint64("index", i),
					zap.Error(err),
				)
				return nil
			}
			slots[i] = token
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	tokens := make([]Token, 0, balance)
	for _, token := range slots {
		if token != nil {
			tokens = append(tokens, *token)
		}
	}

	return tokens, nil
}

func (e *Enumerator) fetchToken(ctx context.Context, address string, index uint64) (*Token, error) {
	tokenID, err := e.client.TokenOfOwnerByIndex(ctx, address, index)
	if err != nil {
		return nil, err
	}

	tokenURI, err := e.client.TokenURI(ctx, tokenID)
	if err != nil {
		return nil, err
	}

	token := &Token{
		TokenID:    tokenID,
		TokenURI:   tokenURI,
		GatewayURL: ipfs.GatewayURL(tokenURI, e.gatewayBase),
		Index:      int(index),
	}

	if e.fetcher != nil {
		meta, err := e.fetcher.FetchMetadata(ctx, tokenURI)
		if err != nil {
			// The token is still listed; metadata is an enrichment only.
			logger.Debug("metadata fetch failed for token",
				zap.Uint64("token id", tokenID),
				zap.Error(err),
			)
		} else {
			token.Metadata = meta
		}
	}

	return token, nil
}
