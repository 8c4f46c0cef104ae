package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"supply-chain"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Ledger struct {
		// RPCURL is the JSON-RPC endpoint of the wallet/provider node.
		RPCURL string `envconfig:"LEDGER_RPC_URL" default:"http://localhost:8545"`
		// Contracts maps a decimal chain id to the supply-chain contract
		// address deployed on that chain, e.g. "1337:0xabc...,11155111:0xdef...".
		Contracts map[string]string `envconfig:"LEDGER_CONTRACTS"`
		// From optionally pins the acting account instead of asking the
		// provider for one.
		From    string        `envconfig:"LEDGER_FROM"`
		Timeout time.Duration `envconfig:"LEDGER_TIMEOUT" default:"30s"`
	}

	Token struct {
		// Decimals is the ledger currency's fixed exponent.
		Decimals int32 `envconfig:"TOKEN_DECIMALS" default:"18"`
	}

	Gas struct {
		// FallbackLimit is the conservative gas ceiling used when the
		// provider's estimate fails.
		FallbackLimit uint64 `envconfig:"GAS_FALLBACK_LIMIT" default:"300000"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
