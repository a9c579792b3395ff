package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
)

const coingeckoBaseURL = "https://api.coingecko.com/api/v3"

// chartPoints bounds the market-chart series handed to the UI.
const chartPoints = 180

// chartCoins is the fixed allow-list for the chart endpoint.
var chartCoins = map[string]bool{
	"bitcoin":  true,
	"ethereum": true,
	"solana":   true,
}

// ChartCoinAllowed reports whether coin may be charted.
func ChartCoinAllowed(coin string) bool {
	return chartCoins[coin]
}

// CoinGeckoProvider fetches spot prices and price-history charts from the
// CoinGecko free API.
type CoinGeckoProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewCoinGeckoProvider creates a provider with built-in rate limiting.
// Rate limited to 8 requests per minute (one token every 7.5 seconds).
func NewCoinGeckoProvider(tracer trace.Tracer) *CoinGeckoProvider {
	return &CoinGeckoProvider{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: coingeckoBaseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(8, 7500*time.Millisecond),
	}
}

// SimplePrices fetches current USD prices with 24h volume and change for the
// tracked majors. The upstream payload is passed through to the client as-is.
func (p *CoinGeckoProvider) SimplePrices(ctx context.Context) (json.RawMessage, error) {
	_, span := p.tracer.Start(ctx, "coingecko.simple-prices")
	defer span.End()

	url := fmt.Sprintf("%s/simple/price?ids=bitcoin,ethereum,solana&vs_currencies=usd&include_24hr_vol=true&include_24hr_change=true",
		p.baseURL)

	body, err := p.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch prices: %w", err)
	}

	// Validate before passing through so a malformed upstream body never
	// reaches the client unnoticed.
	var raw map[string]map[string]float64
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse prices: %w", err)
	}

	return json.RawMessage(body), nil
}

// MarketChart fetches one day of price history for an allow-listed coin and
// returns the raw [timestampMs, price] series, truncated to the most recent
// chartPoints entries.
func (p *CoinGeckoProvider) MarketChart(ctx context.Context, coin string) ([][]float64, error) {
	_, span := p.tracer.Start(ctx, "coingecko.market-chart")
	defer span.End()

	if !ChartCoinAllowed(coin) {
		return nil, fmt.Errorf("unsupported coin: %s", coin)
	}

	url := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=usd&days=1", p.baseURL, coin)

	body, err := p.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch market chart for %s: %w", coin, err)
	}

	var raw struct {
		Prices [][]float64 `json:"prices"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse market chart for %s: %w", coin, err)
	}

	prices := raw.Prices
	if len(prices) > chartPoints {
		prices = prices[len(prices)-chartPoints:]
	}
	return prices, nil
}

func (p *CoinGeckoProvider) doRequest(ctx context.Context, url string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("coingecko API error %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
