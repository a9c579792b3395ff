package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
	}
}

func noopTracer() trace.Tracer {
	return trace.NewNoopTracerProvider().Tracer("test")
}

func TestChartCoinAllowed(t *testing.T) {
	for _, coin := range []string{"bitcoin", "ethereum", "solana"} {
		if !ChartCoinAllowed(coin) {
			t.Fatalf("expected %s to be allowed", coin)
		}
	}
	if ChartCoinAllowed("dogecoin") {
		t.Fatal("dogecoin must not be allowed")
	}
}

func TestSimplePricesPassthrough(t *testing.T) {
	t.Parallel()

	payload := `{"bitcoin":{"usd":97000,"usd_24h_vol":1,"usd_24h_change":2.3}}`
	p := NewCoinGeckoProvider(noopTracer())
	p.baseURL = "http://example"
	p.client = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if !strings.Contains(req.URL.Path, "/simple/price") {
				t.Fatalf("unexpected path: %s", req.URL.Path)
			}
			return jsonResponse(http.StatusOK, payload), nil
		}),
	}
	p.limiter = NewRateLimiter(10, time.Millisecond)

	raw, err := p.SimplePrices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != payload {
		t.Fatalf("expected passthrough payload, got %s", raw)
	}
}

func TestSimplePricesUpstreamError(t *testing.T) {
	t.Parallel()

	p := NewCoinGeckoProvider(noopTracer())
	p.baseURL = "http://example"
	p.client = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusTooManyRequests, `{"error":"rate limited"}`), nil
		}),
	}
	p.limiter = NewRateLimiter(10, time.Millisecond)

	_, err := p.SimplePrices(context.Background())
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestMarketChartTruncation(t *testing.T) {
	t.Parallel()

	prices := make([][]float64, 200)
	for i := range prices {
		prices[i] = []float64{float64(i), float64(i) * 2}
	}
	body, _ := json.Marshal(map[string]any{"prices": prices})

	p := NewCoinGeckoProvider(noopTracer())
	p.baseURL = "http://example"
	p.client = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if !strings.Contains(req.URL.Path, "/coins/solana/market_chart") {
				t.Fatalf("unexpected path: %s", req.URL.Path)
			}
			return jsonResponse(http.StatusOK, string(body)), nil
		}),
	}
	p.limiter = NewRateLimiter(10, time.Millisecond)

	got, err := p.MarketChart(context.Background(), "solana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 180 {
		t.Fatalf("expected 180 points, got %d", len(got))
	}
	if got[0][0] != 20 || got[179][0] != 199 {
		t.Fatalf("expected most recent points to be kept, got first=%v last=%v", got[0], got[179])
	}
}

func TestMarketChartRejectsUnknownCoin(t *testing.T) {
	p := NewCoinGeckoProvider(noopTracer())
	if _, err := p.MarketChart(context.Background(), "dogecoin"); err == nil {
		t.Fatal("expected unsupported coin error")
	}
}
