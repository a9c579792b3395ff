package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"tokendeck/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const geckoTerminalBaseURL = "https://api.geckoterminal.com/api/v2"

// Candle parameters are fixed: hourly candles, no aggregation, two days'
// worth of points.
const (
	OHLCVTimeframe = "hour"
	OHLCVAggregate = 1
	OHLCVLimit     = 48
)

// Epoch values below this are seconds; at or above, already milliseconds.
// 2e9 seconds is May 2033, far beyond any candle this system will see.
const msEpochThreshold = 2_000_000_000

// candleListKeys are the field names GeckoTerminal has been observed using
// for the candle array, tried in order. The schema is not contractually
// stable.
var candleListKeys = []string{"ohlcv_list", "ohlcv", "candles"}

// GeckoTerminalProvider fetches pool OHLCV candles.
type GeckoTerminalProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewGeckoTerminalProvider creates a provider rate limited to the free tier's
// 30 calls per minute.
func NewGeckoTerminalProvider(tracer trace.Tracer) *GeckoTerminalProvider {
	return &GeckoTerminalProvider{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: geckoTerminalBaseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(30, 2*time.Second),
	}
}

// FetchOHLCV returns the raw candle rows for a pool. Rows are kept as raw
// JSON so malformed entries survive until normalization, where they are
// dropped individually instead of failing the whole fetch.
func (p *GeckoTerminalProvider) FetchOHLCV(ctx context.Context, network, pool string) ([]json.RawMessage, error) {
	_, span := p.tracer.Start(ctx, "geckoterminal.fetch-ohlcv")
	defer span.End()
	span.SetAttributes(attribute.String("network", network), attribute.String("pool", pool))

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := fmt.Sprintf("%s/networks/%s/pools/%s/ohlcv/%s?aggregate=%d&limit=%d",
		p.baseURL, url.PathEscape(network), url.PathEscape(pool), OHLCVTimeframe, OHLCVAggregate, OHLCVLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch ohlcv: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geckoterminal API error %d: %s", resp.StatusCode, string(body))
	}

	rows, ok := extractCandleList(body)
	if !ok {
		return nil, fmt.Errorf("no candle list in geckoterminal response")
	}
	return rows, nil
}

// extractCandleList tries each known candle-list location in order and uses
// the first that is present, under data.attributes first and then at the top
// level.
func extractCandleList(body []byte) ([]json.RawMessage, bool) {
	var envelope struct {
		Data struct {
			Attributes map[string]json.RawMessage `json:"attributes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if rows, ok := candleListFrom(envelope.Data.Attributes); ok {
			return rows, true
		}
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err == nil {
		if rows, ok := candleListFrom(top); ok {
			return rows, true
		}
	}
	return nil, false
}

func candleListFrom(fields map[string]json.RawMessage) ([]json.RawMessage, bool) {
	for _, key := range candleListKeys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var rows []json.RawMessage
		if err := json.Unmarshal(raw, &rows); err == nil {
			return rows, true
		}
	}
	return nil, false
}

// NormalizeCandles turns raw candle rows into the bounded close-price series.
// A row must decode as a numeric array of at least five elements
// [ts, open, high, low, close, ...]; anything else is dropped. Timestamps
// below msEpochThreshold are seconds and are scaled to milliseconds; larger
// values pass through. Output preserves order and keeps the most recent
// OHLCVLimit points.
func NormalizeCandles(rows []json.RawMessage) []domain.CandlePoint {
	points := make([]domain.CandlePoint, 0, len(rows))
	for _, row := range rows {
		var tuple []float64
		if err := json.Unmarshal(row, &tuple); err != nil || len(tuple) < 5 {
			continue
		}
		ts := int64(tuple[0])
		if ts < msEpochThreshold {
			ts *= 1000
		}
		points = append(points, domain.CandlePoint{TimestampMs: ts, Close: tuple[4]})
	}
	if len(points) > OHLCVLimit {
		points = points[len(points)-OHLCVLimit:]
	}
	return points
}
