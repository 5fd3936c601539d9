// Package config resolves service configuration from the environment.
// A .env file is honored when present; real environment variables win.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Supported chain IDs. The collection is deployed on two test networks only.
const (
	ChainSepolia uint64 = 11155111
	ChainAmoy    uint64 = 80002
)

// DefaultGateway is the public IPFS gateway used when none is configured.
const DefaultGateway = "https://ipfs.io/ipfs/"

// Network holds the per-chain connection parameters.
type Network struct {
	ChainID         uint64
	Name            string
	RPCURL          string
	ContractAddress string
}

type Config struct {
	Networks map[uint64]Network

	// ActiveChainID selects which configured network the service talks to.
	ActiveChainID uint64

	// RefetchDelay is the wait between a confirmed mint and the follow-up
	// state refetch. The read path lags the write path by roughly this much.
	RefetchDelay time.Duration

	// GateRecheckDelay is the wait before an explicit gate re-evaluation.
	GateRecheckDelay time.Duration

	IPFSGateway string

	DatabasePath string

	LogLevel   string
	LogFile    string
	ErrorFile  string
	LogConsole bool
}

// Load reads configuration from the environment, falling back to defaults
// for everything except contract addresses and RPC URLs.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Networks: map[uint64]Network{
			ChainSepolia: {
				ChainID:         ChainSepolia,
				Name:            "Sepolia",
				RPCURL:          os.Getenv("RPC_URL_SEPOLIA"),
				ContractAddress: os.Getenv("NFT_CONTRACT_ADDRESS_SEPOLIA"),
			},
			ChainAmoy: {
				ChainID:         ChainAmoy,
				Name:            "Polygon Amoy",
				RPCURL:          os.Getenv("RPC_URL_AMOY"),
				ContractAddress: os.Getenv("NFT_CONTRACT_ADDRESS_AMOY"),
			},
		},
		ActiveChainID:    ChainSepolia,
		RefetchDelay:     3 * time.Second,
		GateRecheckDelay: time.Second,
		IPFSGateway:      DefaultGateway,
		DatabasePath:     "persistent.db",
		LogLevel:         "info",
		LogFile:          os.Getenv("LOG_FILE"),
		ErrorFile:        os.Getenv("ERROR_FILE"),
		LogConsole:       true,
	}

	if v := os.Getenv("ACTIVE_CHAIN_ID"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, ErrInvalidChainID
		}
		cfg.ActiveChainID = id
	}

	if v := os.Getenv("REFETCH_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, ErrInvalidDuration
		}
		cfg.RefetchDelay = d
	}

	if v := os.Getenv("GATE_RECHECK_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, ErrInvalidDuration
		}
		cfg.GateRecheckDelay = d
	}

	if v := os.Getenv("IPFS_GATEWAY"); v != "" {
		cfg.IPFSGateway = v
	}

	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("LOG_CONSOLE"); v != "" {
		cfg.LogConsole = v == "1" || v == "true"
	}

	return cfg, nil
}

// ContractAddress resolves the collection contract address for a chain.
// Returns ErrNotConfigured when the chain has no mapped address, mirroring
// the behavior of unsupported or unmapped wallet networks.
func (c *Config) ContractAddress(chainID uint64) (string, error) {
	network, ok := c.Networks[chainID]
	if !ok || network.ContractAddress == "" {
		return "", ErrNotConfigured
	}
	return network.ContractAddress, nil
}

// IsConfigured reports whether a contract address is mapped for the chain.
func (c *Config) IsConfigured(chainID uint64) bool {
	_, err := c.ContractAddress(chainID)
	return err == nil
}

// Active returns the selected network.
func (c *Config) Active() (Network, error) {
	network, ok := c.Networks[c.ActiveChainID]
	if !ok {
		return Network{}, ErrNotConfigured
	}
	return network, nil
}
