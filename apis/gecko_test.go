package apis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sljivkov/oraclefeeder/pricefeed"
)

// CurrencyPrice is the per-id object CoinGecko returns
type CurrencyPrice struct {
	USD float64 `json:"usd"`
}

var testTokens = []pricefeed.Token{
	{Symbol: "WETH", SourceID: "ethereum"},
	{Symbol: "USDC", SourceID: "usd-coin"},
	{Symbol: "BTC", SourceID: "bitcoin"},
	{Symbol: "wstETH", SourceID: "wrapped-steth"},
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, &calls
}

func TestNewCoinGecko(t *testing.T) {
	gecko := NewCoinGecko("http://test.com", WithAPIKey("k", true))
	assert.NotNil(t, gecko)
	assert.Equal(t, "http://test.com", gecko.url)
	assert.Equal(t, "k", gecko.apiKey)
	assert.True(t, gecko.pro)
	assert.NotNil(t, gecko.client)
}

func TestFetchPrices(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		// Verify query parameters
		query := r.URL.Query()
		assert.Equal(t, "ethereum,usd-coin,bitcoin,wrapped-steth", query.Get("ids"))
		assert.Equal(t, "usd", query.Get("vs_currencies"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "demo", r.Header.Get("x-cg-demo-api-key"))

		response := map[string]CurrencyPrice{
			"ethereum":      {USD: 2500.12},
			"usd-coin":      {USD: 1.0},
			"bitcoin":       {USD: 60000},
			"wrapped-steth": {USD: 2950.5},
			"dogecoin":      {USD: 0.1}, // not requested
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	gecko := NewCoinGecko(server.URL, WithAPIKey("demo", false))

	quotes, err := gecko.FetchPrices(context.Background(), testTokens)
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load(), "one batched request for all tokens")
	assert.Equal(t, map[pricefeed.Symbol]pricefeed.Quote{
		"WETH":   {Symbol: "WETH", USD: 2500.12},
		"USDC":   {Symbol: "USDC", USD: 1.0},
		"BTC":    {Symbol: "BTC", USD: 60000},
		"wstETH": {Symbol: "wstETH", USD: 2950.5},
	}, quotes)
}

func TestFetchPrices_ProKeyHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pro", r.Header.Get("x-cg-pro-api-key"))
		assert.Empty(t, r.Header.Get("x-cg-demo-api-key"))
		_, _ = w.Write([]byte(`{"bitcoin":{"usd":60000}}`))
	}))
	defer server.Close()

	gecko := NewCoinGecko(server.URL, WithAPIKey("pro", true))

	_, err := gecko.FetchPrices(context.Background(), []pricefeed.Token{{Symbol: "BTC", SourceID: "bitcoin"}})
	assert.NoError(t, err)
}

func TestFetchPrices_IncompletePriceSet(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing symbol",
			body: `{"ethereum":{"usd":2500},"usd-coin":{"usd":1},"bitcoin":{"usd":60000}}`,
		},
		{
			name: "zero price",
			body: `{"ethereum":{"usd":2500},"usd-coin":{"usd":0},"bitcoin":{"usd":60000},"wrapped-steth":{"usd":2900}}`,
		},
		{
			name: "negative price",
			body: `{"ethereum":{"usd":-1},"usd-coin":{"usd":1},"bitcoin":{"usd":60000},"wrapped-steth":{"usd":2900}}`,
		},
		{
			name: "missing usd field",
			body: `{"ethereum":{"eur":2300},"usd-coin":{"usd":1},"bitcoin":{"usd":60000},"wrapped-steth":{"usd":2900}}`,
		},
		{
			name: "non numeric price",
			body: `{"ethereum":{"usd":"2500"},"usd-coin":{"usd":1},"bitcoin":{"usd":60000},"wrapped-steth":{"usd":2900}}`,
		},
		{
			name: "empty object",
			body: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newServer(t, http.StatusOK, tt.body)

			quotes, err := NewCoinGecko(server.URL).FetchPrices(context.Background(), testTokens)
			assert.ErrorIs(t, err, pricefeed.ErrIncompletePriceSet)
			assert.NotErrorIs(t, err, pricefeed.ErrSourceUnavailable)
			assert.Nil(t, quotes)
		})
	}
}

func TestFetchPrices_SourceUnavailable(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		server, calls := newServer(t, http.StatusTooManyRequests, `{"status":{"error_code":429}}`)

		quotes, err := NewCoinGecko(server.URL).FetchPrices(context.Background(), testTokens)
		assert.ErrorIs(t, err, pricefeed.ErrSourceUnavailable)
		assert.Contains(t, err.Error(), "429")
		assert.Nil(t, quotes)
		assert.Equal(t, int32(1), calls.Load(), "no internal retry")
	})

	t.Run("malformed body", func(t *testing.T) {
		server, _ := newServer(t, http.StatusOK, `<html>maintenance</html>`)

		_, err := NewCoinGecko(server.URL).FetchPrices(context.Background(), testTokens)
		assert.ErrorIs(t, err, pricefeed.ErrSourceUnavailable)
	})

	t.Run("transport failure", func(t *testing.T) {
		server, _ := newServer(t, http.StatusOK, `{}`)
		url := server.URL
		server.Close()

		_, err := NewCoinGecko(url).FetchPrices(context.Background(), testTokens)
		assert.ErrorIs(t, err, pricefeed.ErrSourceUnavailable)
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		gecko := NewCoinGecko(server.URL, WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))

		_, err := gecko.FetchPrices(context.Background(), testTokens)
		assert.ErrorIs(t, err, pricefeed.ErrSourceUnavailable)
	})
}
