// Package apis provides external price source integrations
package apis

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/sljivkov/oraclefeeder/pricefeed"
)

// CoinGecko implements pricefeed.PriceSource using the CoinGecko simple price API
type CoinGecko struct {
	url    string
	apiKey string
	pro    bool
	client *http.Client
	log    *zap.Logger
}

// Option configures a CoinGecko client
type Option func(*CoinGecko)

// WithAPIKey sends key with every request. Pro keys use a different header.
func WithAPIKey(key string, pro bool) Option {
	return func(g *CoinGecko) {
		g.apiKey = key
		g.pro = pro
	}
}

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(g *CoinGecko) {
		g.client = client
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(log *zap.Logger) Option {
	return func(g *CoinGecko) {
		g.log = log
	}
}

// NewCoinGecko creates a new CoinGecko price source for the simple price endpoint at apiURL
func NewCoinGecko(apiURL string, opts ...Option) *CoinGecko {
	g := &CoinGecko{
		url: apiURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FetchPrices fetches USD prices for all tokens in a single request.
// Either every token gets a positive price or an error is returned.
func (g *CoinGecko) FetchPrices(ctx context.Context, tokens []pricefeed.Token) (map[pricefeed.Symbol]pricefeed.Quote, error) {
	body, err := g.get(ctx, tokens)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: malformed response body", pricefeed.ErrSourceUnavailable)
	}

	quotes := make(map[pricefeed.Symbol]pricefeed.Quote, len(tokens))

	for _, t := range tokens {
		res := gjson.GetBytes(body, gjson.Escape(t.SourceID)+".usd")
		if !res.Exists() || res.Type != gjson.Number {
			return nil, fmt.Errorf("%w: no USD price for %s (%s)", pricefeed.ErrIncompletePriceSet, t.Symbol, t.SourceID)
		}

		price := res.Float()
		if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
			return nil, fmt.Errorf("%w: invalid USD price %v for %s", pricefeed.ErrIncompletePriceSet, price, t.Symbol)
		}

		quotes[t.Symbol] = pricefeed.Quote{Symbol: t.Symbol, USD: price}
	}

	return quotes, nil
}

// get performs the request and returns the raw body of a 200 response
func (g *CoinGecko) get(ctx context.Context, tokens []pricefeed.Token) ([]byte, error) {
	ids := make([]string, 0, len(tokens))
	for _, t := range tokens {
		ids = append(ids, t.SourceID)
	}

	params := url.Values{}
	params.Add("ids", strings.Join(ids, ","))
	params.Add("vs_currencies", "usd")

	fullURL := fmt.Sprintf("%s?%s", g.url, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if g.apiKey != "" {
		if g.pro {
			req.Header.Set("x-cg-pro-api-key", g.apiKey)
		} else {
			req.Header.Set("x-cg-demo-api-key", g.apiKey)
		}
	}

	g.log.Debug("🌐 requesting prices", zap.String("url", fullURL), zap.Bool("api_key", g.apiKey != ""))

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pricefeed.ErrSourceUnavailable, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", pricefeed.ErrSourceUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: API returned non-200 status %d: %s",
			pricefeed.ErrSourceUnavailable, resp.StatusCode, truncate(strings.TrimSpace(string(body)), 240))
	}

	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "…"
}
