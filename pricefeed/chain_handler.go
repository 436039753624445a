// Package pricefeed provides price data structures and interfaces for the oracle feeder
package pricefeed

import (
	"context"
	"math/big"
)

// Feed is a handle to the on-chain contract holding one token's price
type Feed interface {
	// Address returns the hex address of the feed contract
	Address() string

	// SetPrice submits answer and blocks until the transaction is mined.
	// It returns the transaction hash.
	SetPrice(ctx context.Context, answer *big.Int) (string, error)
}

// Chain resolves feed handles for token symbols
type Chain interface {
	// ResolveFeed returns the feed for symbol or an error wrapping ErrFeedResolution
	ResolveFeed(ctx context.Context, symbol Symbol) (Feed, error)
}
