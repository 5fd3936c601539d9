package ipfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"mintgate/internal/logger"

	"go.uber.org/zap"
)

// Metadata is the token metadata document referenced by a tokenURI.
type Metadata struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	Attributes  []MetadataAttribute `json:"attributes"`
}

type MetadataAttribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

var ErrMetadataUnavailable = errors.New("ipfs: metadata unavailable")

// Fetcher retrieves metadata documents through an HTTP gateway.
type Fetcher struct {
	client      *http.Client
	gatewayBase string
}

func NewFetcher(gatewayBase string) *Fetcher {
	return &Fetcher{
		client:      &http.Client{Timeout: 15 * time.Second},
		gatewayBase: gatewayBase,
	}
}

// FetchMetadata resolves a token URI to the gateway and decodes the metadata
// document. Gateway rate limiting (429) is retried until the context is done.
func (f *Fetcher) FetchMetadata(ctx context.Context, tokenURI string) (*Metadata, error) {
	url := GatewayURL(tokenURI, f.gatewayBase)
	if url == "" {
		return nil, ErrMetadataUnavailable
	}

	body, err := rateLimitRetry(ctx, func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, errRateLimited
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: gateway status %d", ErrMetadataUnavailable, resp.StatusCode)
		}

		return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	})
	if err != nil {
		logger.Debug("metadata fetch failed", zap.String("url", url), zap.Error(err))
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMetadataUnavailable, err)
	}

	return &meta, nil
}

var errRateLimited = errors.New("ipfs: gateway rate limited")

func rateLimitRetry[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	for {
		result, err := fn()
		if errors.Is(err, errRateLimited) {
			select {
			case <-ctx.Done():
				var zero T
				return zero, ctx.Err()
			case <-time.After(500 * time.Millisecond):
				continue
			}
		}

		return result, err
	}
}
