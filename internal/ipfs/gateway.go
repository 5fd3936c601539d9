// Package ipfs normalizes content-addressed references to HTTP gateway URLs
// and fetches token metadata through the gateway.
package ipfs

import (
	"strings"

	"mintgate/internal/logger"

	"go.uber.org/zap"
)

const prefix = "ipfs://"

// GatewayURL converts an ipfs:// reference into an HTTP gateway URL.
// Some minted metadata carries a doubled ipfs://ipfs:// prefix; every
// occurrence of the scheme is stripped before exactly one gateway base is
// applied. http(s) URLs pass through unchanged.
func GatewayURL(raw string, gatewayBase string) string {
	if raw == "" {
		return ""
	}

	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}

	clean := raw
	if strings.Contains(raw, prefix+prefix) {
		logger.Warn("doubled ipfs scheme prefix detected", zap.String("uri", raw))
		clean = strings.ReplaceAll(raw, prefix, "")
	} else {
		clean = strings.TrimPrefix(raw, prefix)
	}

	if clean == "" {
		return ""
	}

	if gatewayBase == "" {
		gatewayBase = "https://ipfs.io/ipfs/"
	}
	if !strings.HasSuffix(gatewayBase, "/") {
		gatewayBase += "/"
	}

	return gatewayBase + clean
}
