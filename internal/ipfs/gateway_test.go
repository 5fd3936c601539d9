package ipfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGatewayURLNormalizes(t *testing.T) {
	assert.Equal(t,
		"https://ipfs.io/ipfs/abc123",
		GatewayURL("ipfs://abc123", "https://ipfs.io/ipfs/"),
	)
}

func TestGatewayURLDoubledPrefix(t *testing.T) {
	// Malformed metadata occasionally carries the scheme twice; exactly one
	// gateway prefix must come out the other side.
	assert.Equal(t,
		"https://ipfs.io/ipfs/abc123",
		GatewayURL("ipfs://ipfs://abc123", "https://ipfs.io/ipfs/"),
	)
}

func TestGatewayURLTriplePrefix(t *testing.T) {
	assert.Equal(t,
		"https://ipfs.io/ipfs/abc123",
		GatewayURL("ipfs://ipfs://ipfs://abc123", "https://ipfs.io/ipfs/"),
	)
}

func TestGatewayURLHTTPPassthrough(t *testing.T) {
	assert.Equal(t,
		"https://example.com/x.png",
		GatewayURL("https://example.com/x.png", "https://ipfs.io/ipfs/"),
	)
	assert.Equal(t,
		"http://example.com/x.png",
		GatewayURL("http://example.com/x.png", "https://ipfs.io/ipfs/"),
	)
}

func TestGatewayURLEmpty(t *testing.T) {
	assert.Equal(t, "", GatewayURL("", "https://ipfs.io/ipfs/"))
	assert.Equal(t, "", GatewayURL("ipfs://", "https://ipfs.io/ipfs/"))
	assert.Equal(t, "", GatewayURL("ipfs://ipfs://", "https://ipfs.io/ipfs/"))
}

func TestGatewayURLDefaultBase(t *testing.T) {
	assert.Equal(t, "https://ipfs.io/ipfs/abc", GatewayURL("ipfs://abc", ""))
}

func TestGatewayURLBaseWithoutSlash(t *testing.T) {
	assert.Equal(t,
		"https://gateway.example/ipfs/abc",
		GatewayURL("ipfs://abc", "https://gateway.example/ipfs"),
	)
}
