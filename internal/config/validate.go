package config

import "strings"

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the loaded configuration is usable for the active
// network and returns the first error encountered, or nil if valid.
func Validate(cfg *Config) error {
	network, ok := cfg.Networks[cfg.ActiveChainID]
	if !ok {
		return ErrInvalidChainID
	}

	if network.RPCURL == "" {
		return ErrMissingRPCURL
	}

	if cfg.RefetchDelay <= 0 || cfg.GateRecheckDelay <= 0 {
		return ErrInvalidDuration
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return ErrInvalidLogLevel
	}

	return nil
}
