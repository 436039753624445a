// Package config provides configuration management for the oracle feeder
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/sljivkov/oraclefeeder/pricefeed"
)

// DefaultPriceAPIURL is CoinGecko's public simple price endpoint
const DefaultPriceAPIURL = "https://api.coingecko.com/api/v3/simple/price"

// Config holds the application configuration
type Config struct {
	RPCURL     string `envconfig:"RPC_URL" required:"true"`     // Chain JSON-RPC endpoint
	PrivateKey string `envconfig:"PRIVATE_KEY" required:"true"` // Hex key of the feed updater
	Network    string `envconfig:"NETWORK" default:"mantleSepolia"`
	ChainID    int64  `envconfig:"CHAIN_ID"` // 0 means ask the node

	PriceAPIURL string        `envconfig:"PRICE_API_URL" default:"https://api.coingecko.com/api/v3/simple/price"`
	PriceAPIKey string        `envconfig:"PRICE_API_KEY"`
	PriceAPIPro bool          `envconfig:"PRICE_API_PRO" default:"false"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`

	UpdateInterval time.Duration `envconfig:"UPDATE_INTERVAL" default:"30m"`

	TokensFile     string `envconfig:"TOKENS_FILE"` // Optional YAML token manifest
	DeploymentsDir string `envconfig:"DEPLOYMENTS_DIR" default:"deployments"`

	MetricsAddr string `envconfig:"METRICS_ADDR"` // Empty disables the metrics server
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"json"`

	// Tokens is filled from TokensFile or DefaultTokens
	Tokens []pricefeed.Token `ignored:"true"`

	envFiles []string
}

// Option is a function that modifies Config
type Option func(*Config) error

// WithEnvFile loads environment variables from a .env file before processing.
// Variables already present in the environment win.
func WithEnvFile(path string) Option {
	return func(c *Config) error {
		c.envFiles = append(c.envFiles, path)
		return nil
	}
}

// WithTokens replaces the token set
func WithTokens(tokens []pricefeed.Token) Option {
	return func(c *Config) error {
		c.Tokens = tokens
		return nil
	}
}

// WithUpdateInterval overrides the delay between update cycles
func WithUpdateInterval(d time.Duration) Option {
	return func(c *Config) error {
		c.UpdateInterval = d
		return nil
	}
}

// validate performs validation on the config values
func (c *Config) validate() error {
	for name, urlStr := range map[string]string{
		"price API": c.PriceAPIURL,
		"RPC":       c.RPCURL,
	} {
		if urlStr == "" {
			return fmt.Errorf("%s URL is required", name)
		}
		if _, err := url.ParseRequestURI(urlStr); err != nil {
			return fmt.Errorf("invalid %s URL: %s", name, urlStr)
		}
	}

	// Private key is 32 bytes of hex, 0x prefix allowed
	key := strings.TrimPrefix(c.PrivateKey, "0x")
	if len(key) != 64 || !isHex(key) {
		return fmt.Errorf("invalid private key format")
	}

	if c.UpdateInterval <= 0 {
		return fmt.Errorf("update interval must be positive, got %s", c.UpdateInterval)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be positive, got %s", c.HTTPTimeout)
	}
	if c.ChainID < 0 {
		return fmt.Errorf("invalid chain id: %d", c.ChainID)
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s", c.LogFormat)
	}

	return validateTokens(c.Tokens)
}

// isHex checks if a string is valid hexadecimal
func isHex(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}

	return true
}

// NewConfig creates a new validated Config instance
func NewConfig(opts ...Option) (*Config, error) {
	var pre Config
	for _, opt := range opts {
		if err := opt(&pre); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	for _, path := range pre.envFiles {
		// A missing .env is normal in containers
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.TokensFile != "" {
		tokens, err := LoadTokens(cfg.TokensFile)
		if err != nil {
			return nil, err
		}

		cfg.Tokens = tokens
	}

	// Apply user options last so they take precedence
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if len(cfg.Tokens) == 0 {
		cfg.Tokens = DefaultTokens()
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
