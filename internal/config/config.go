package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultRPCURL          = "https://sepolia.infura.io/v3/your-project-id"
	DefaultContractAddress = "0x6AE072C00BFB6c87d344969E2446DEc830104510"
	DefaultSecretKey       = "change-me"
	DefaultPort            = 8080
	DefaultExplorerURL     = "https://sepolia.etherscan.io"
)

// Config is the process-wide configuration. It is built once at startup and
// handed to every component that needs it.
type Config struct {
	RPCURL          string `validate:"required,url"`
	ContractAddress string `validate:"required,eth_addr"`
	SecretKey       string `validate:"required"`
	Port            int    `validate:"gte=0,lte=65535"`
	ExplorerURL     string `validate:"omitempty,url"`
	// RPCTimeout bounds every RPC round-trip. Zero disables the timeout.
	RPCTimeout time.Duration `validate:"gte=0"`
}

// Load reads the configuration from the environment, falling back to defaults
func Load() (*Config, error) {
	cfg := &Config{
		RPCURL:          getEnv("RPC_URL", DefaultRPCURL),
		ContractAddress: getEnv("CONTRACT_ADDRESS", DefaultContractAddress),
		SecretKey:       getEnv("SECRET_KEY", DefaultSecretKey),
		Port:            DefaultPort,
		ExplorerURL:     getEnv("EXPLORER_URL", DefaultExplorerURL),
	}

	if port := os.Getenv("PORT"); port != "" {
		parsedPort, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		cfg.Port = parsedPort
	}

	if timeout := os.Getenv("RPC_TIMEOUT"); timeout != "" {
		parsedTimeout, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid RPC_TIMEOUT: %w", err)
		}
		cfg.RPCTimeout = parsedTimeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// UsesDefaultSecret reports whether SECRET_KEY was left at its placeholder
func (c *Config) UsesDefaultSecret() bool {
	return c.SecretKey == DefaultSecretKey
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
