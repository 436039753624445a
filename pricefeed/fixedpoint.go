package pricefeed

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// FeedDecimals is the number of decimals the feed contracts store answers with.
const FeedDecimals = 8

// ToFixedPoint scales usd by 10^FeedDecimals and truncates toward zero.
// The float is taken at its shortest decimal representation, so 2500.123456789
// becomes 250012345678 rather than whatever usd*1e8 rounds to in binary.
func ToFixedPoint(usd float64) *big.Int {
	return decimal.NewFromFloat(usd).Shift(FeedDecimals).Truncate(0).BigInt()
}
