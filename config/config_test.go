package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sljivkov/oraclefeeder/pricefeed"
)

const testKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

func setRequired(t *testing.T) {
	t.Helper()

	t.Setenv("RPC_URL", "https://rpc.sepolia.mantle.xyz")
	t.Setenv("PRIVATE_KEY", testKey)
}

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := NewConfig()
		require.NoError(t, err)

		assert.Equal(t, "https://rpc.sepolia.mantle.xyz", cfg.RPCURL)
		assert.Equal(t, "mantleSepolia", cfg.Network)
		assert.Equal(t, DefaultPriceAPIURL, cfg.PriceAPIURL)
		assert.Equal(t, 30*time.Minute, cfg.UpdateInterval)
		assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "deployments", cfg.DeploymentsDir)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, DefaultTokens(), cfg.Tokens)
	})

	t.Run("with environment variables", func(t *testing.T) {
		setRequired(t)
		t.Setenv("PRIVATE_KEY", "0x"+testKey)
		t.Setenv("UPDATE_INTERVAL", "5m")
		t.Setenv("NETWORK", "mantle")
		t.Setenv("CHAIN_ID", "5000")
		t.Setenv("PRICE_API_KEY", "demo-key")

		cfg, err := NewConfig()
		require.NoError(t, err)

		assert.Equal(t, 5*time.Minute, cfg.UpdateInterval)
		assert.Equal(t, "mantle", cfg.Network)
		assert.Equal(t, int64(5000), cfg.ChainID)
		assert.Equal(t, "demo-key", cfg.PriceAPIKey)
	})

	t.Run("options take precedence", func(t *testing.T) {
		setRequired(t)
		t.Setenv("UPDATE_INTERVAL", "5m")

		tokens := []pricefeed.Token{{Symbol: "BTC", SourceID: "bitcoin"}}

		cfg, err := NewConfig(WithUpdateInterval(time.Minute), WithTokens(tokens))
		require.NoError(t, err)

		assert.Equal(t, time.Minute, cfg.UpdateInterval)
		assert.Equal(t, tokens, cfg.Tokens)
	})

	t.Run("env file", func(t *testing.T) {
		t.Setenv("RPC_URL", "")
		t.Setenv("PRIVATE_KEY", "")
		os.Unsetenv("RPC_URL")
		os.Unsetenv("PRIVATE_KEY")

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("RPC_URL=http://localhost:8545\nPRIVATE_KEY="+testKey+"\n"), 0o600))

		cfg, err := NewConfig(WithEnvFile(path))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8545", cfg.RPCURL)
	})

	t.Run("missing env file is ignored", func(t *testing.T) {
		setRequired(t)

		_, err := NewConfig(WithEnvFile(filepath.Join(t.TempDir(), "nope.env")))
		assert.NoError(t, err)
	})

	t.Run("tokens file", func(t *testing.T) {
		setRequired(t)

		path := filepath.Join(t.TempDir(), "tokens.yaml")
		manifest := `tokens:
  - symbol: USDC
    source_id: usd-coin
  - symbol: WETH
    source_id: ethereum
    feed: "0x5FbDB2315678afecb367f032d93F642f64180aa3"
`
		require.NoError(t, os.WriteFile(path, []byte(manifest), 0o600))
		t.Setenv("TOKENS_FILE", path)

		cfg, err := NewConfig()
		require.NoError(t, err)
		require.Len(t, cfg.Tokens, 2)
		assert.Equal(t, pricefeed.Symbol("USDC"), cfg.Tokens[0].Symbol)
		assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", cfg.Tokens[1].Feed)
	})
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad private key", env: map[string]string{"PRIVATE_KEY": "test-key"}},
		{name: "bad rpc url", env: map[string]string{"RPC_URL": "not a url"}},
		{name: "zero interval", env: map[string]string{"UPDATE_INTERVAL": "0s"}},
		{name: "bad log format", env: map[string]string{"LOG_FORMAT": "xml"}},
		{name: "unparsable interval", env: map[string]string{"UPDATE_INTERVAL": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := NewConfig()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadTokens_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{name: "empty", manifest: "tokens: []\n"},
		{name: "duplicate symbol", manifest: "tokens:\n  - {symbol: WETH, source_id: ethereum}\n  - {symbol: WETH, source_id: weth}\n"},
		{name: "duplicate source", manifest: "tokens:\n  - {symbol: WETH, source_id: ethereum}\n  - {symbol: ETH, source_id: ethereum}\n"},
		{name: "missing source", manifest: "tokens:\n  - {symbol: WETH}\n"},
		{name: "bad feed address", manifest: "tokens:\n  - {symbol: WETH, source_id: ethereum, feed: '0x123'}\n"},
		{name: "not yaml", manifest: "tokens: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tokens.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.manifest), 0o600))

			_, err := LoadTokens(path)
			assert.Error(t, err)
		})
	}
}
