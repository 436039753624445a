package config

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"

	"github.com/sljivkov/oraclefeeder/pricefeed"
)

// DefaultTokens returns the feeds the updater keeps in sync when no manifest is given
func DefaultTokens() []pricefeed.Token {
	return []pricefeed.Token{
		{Symbol: "WETH", SourceID: "ethereum"},
		{Symbol: "USDC", SourceID: "usd-coin"},
		{Symbol: "BTC", SourceID: "bitcoin"},
		{Symbol: "wstETH", SourceID: "wrapped-steth"},
	}
}

type tokenManifest struct {
	Tokens []struct {
		Symbol   string `yaml:"symbol"`
		SourceID string `yaml:"source_id"`
		Feed     string `yaml:"feed"`
	} `yaml:"tokens"`
}

// LoadTokens reads a YAML token manifest. Order in the file is the update order.
//
//	tokens:
//	  - symbol: WETH
//	    source_id: ethereum
//	    feed: "0x..."   # optional
func LoadTokens(path string) ([]pricefeed.Token, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token manifest: %w", err)
	}

	var m tokenManifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("failed to parse token manifest %s: %w", path, err)
	}

	tokens := make([]pricefeed.Token, 0, len(m.Tokens))
	for _, t := range m.Tokens {
		tokens = append(tokens, pricefeed.Token{
			Symbol:   pricefeed.Symbol(t.Symbol),
			SourceID: t.SourceID,
			Feed:     t.Feed,
		})
	}

	if err := validateTokens(tokens); err != nil {
		return nil, fmt.Errorf("invalid token manifest %s: %w", path, err)
	}

	return tokens, nil
}

// validateTokens checks the symbol to source id mapping is one-to-one
func validateTokens(tokens []pricefeed.Token) error {
	if len(tokens) == 0 {
		return fmt.Errorf("no tokens specified")
	}

	symbols := make(map[pricefeed.Symbol]struct{}, len(tokens))
	sources := make(map[string]struct{}, len(tokens))

	for _, t := range tokens {
		if t.Symbol == "" {
			return fmt.Errorf("empty token symbol")
		}
		if t.SourceID == "" {
			return fmt.Errorf("empty source id for %s", t.Symbol)
		}
		if _, dup := symbols[t.Symbol]; dup {
			return fmt.Errorf("duplicate token symbol: %s", t.Symbol)
		}
		if _, dup := sources[t.SourceID]; dup {
			return fmt.Errorf("duplicate source id: %s", t.SourceID)
		}
		if t.Feed != "" && !common.IsHexAddress(t.Feed) {
			return fmt.Errorf("invalid feed address for %s: %s", t.Symbol, t.Feed)
		}

		symbols[t.Symbol] = struct{}{}
		sources[t.SourceID] = struct{}{}
	}

	return nil
}
