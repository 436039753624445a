package pricefeed

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFixedPoint(t *testing.T) {
	tests := []struct {
		name string
		usd  float64
		want string
	}{
		{name: "truncates extra digits", usd: 2500.123456789, want: "250012345678"},
		{name: "exact product", usd: 1234.5678901, want: "123456789010"},
		{name: "one dollar", usd: 1.0, want: "100000000"},
		{name: "below one unit", usd: 0.000000001, want: "0"},
		{name: "exactly one unit", usd: 0.00000001, want: "1"},
		{name: "never rounds up", usd: 0.999999999, want: "99999999"},
		{name: "binary-inexact decimal", usd: 0.29, want: "29000000"},
		{name: "large price", usd: 98765.4321, want: "9876543210000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, _ := new(big.Int).SetString(tt.want, 10)
			assert.Equal(t, 0, want.Cmp(ToFixedPoint(tt.usd)), "got %s", ToFixedPoint(tt.usd))
		})
	}
}

func TestCycleReport(t *testing.T) {
	report := CycleReport{
		Outcomes: []Outcome{
			{Symbol: "WETH", Success: false, Err: errors.New("reverted")},
			{Symbol: "USDC", Success: true, TxID: "0x01"},
			{Symbol: "BTC", Success: true, TxID: "0x02"},
		},
	}

	assert.Equal(t, 3, report.Attempted())
	assert.Equal(t, 2, report.Succeeded())
	assert.Len(t, report.Failed(), 1)
	assert.Equal(t, Symbol("WETH"), report.Failed()[0].Symbol)

	o, ok := report.Outcome("USDC")
	assert.True(t, ok)
	assert.Equal(t, "0x01", o.TxID)

	_, ok = report.Outcome("wstETH")
	assert.False(t, ok)
}

func TestSymbols(t *testing.T) {
	tokens := []Token{
		{Symbol: "WETH", SourceID: "ethereum"},
		{Symbol: "USDC", SourceID: "usd-coin"},
	}

	assert.Equal(t, []Symbol{"WETH", "USDC"}, Symbols(tokens))
}
