// Package pricefeed provides price data structures and interfaces for the oracle feeder
package pricefeed

import (
	"context"
)

// Symbol is a token symbol as it appears in feed names (e.g. "WETH", "wstETH")
type Symbol string

// Token binds a symbol to its price-source id and, optionally, its feed address
type Token struct {
	Symbol   Symbol // Token symbol (e.g. "WETH")
	SourceID string // Id the price API expects (e.g. "ethereum")
	Feed     string // Feed contract address; empty means resolve from deployments
}

// Quote represents a token's USD price for one cycle
type Quote struct {
	Symbol Symbol
	USD    float64 // always > 0
}

// PriceSource defines the interface for services that quote USD prices
type PriceSource interface {
	// FetchPrices returns exactly one quote per requested token or an error
	// wrapping ErrSourceUnavailable or ErrIncompletePriceSet.
	FetchPrices(ctx context.Context, tokens []Token) (map[Symbol]Quote, error)
}

// Symbols returns the symbols of tokens in declaration order.
func Symbols(tokens []Token) []Symbol {
	out := make([]Symbol, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Symbol)
	}

	return out
}
