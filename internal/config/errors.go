package config

import "errors"

var (
	// ErrNotConfigured indicates no contract address is mapped for the
	// requested chain.
	ErrNotConfigured = errors.New("config: contract address not configured for chain")

	// ErrInvalidChainID indicates ACTIVE_CHAIN_ID could not be parsed.
	ErrInvalidChainID = errors.New("config: invalid chain id")

	// ErrInvalidDuration indicates a delay variable could not be parsed.
	ErrInvalidDuration = errors.New("config: invalid duration")

	// ErrMissingRPCURL indicates the active network has no RPC endpoint.
	ErrMissingRPCURL = errors.New("config: missing rpc url for active chain")

	// ErrInvalidLogLevel indicates an unknown log level string.
	ErrInvalidLogLevel = errors.New("config: invalid log level")
)
