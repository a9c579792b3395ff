package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tokendeck/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const dexscreenerBaseURL = "https://api.dexscreener.com/latest/dex"

// DexscreenerProvider resolves a token query (symbol or contract address) to
// its best-known trading pair.
type DexscreenerProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

func NewDexscreenerProvider(tracer trace.Tracer) *DexscreenerProvider {
	return &DexscreenerProvider{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: dexscreenerBaseURL,
		tracer:  tracer,
	}
}

// looksLikeAddress decides between the token-lookup and free-text search
// endpoints. EVM addresses start with 0x; Solana mints are base58 strings
// longer than any plausible ticker symbol.
func looksLikeAddress(q string) bool {
	return strings.HasPrefix(q, "0x") || len(q) > 30
}

type dexPair struct {
	ChainID   string `json:"chainId"`
	DexID     string `json:"dexId"`
	URL       string `json:"url"`
	PairAddr  string `json:"pairAddress"`
	BaseToken struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"baseToken"`
	PriceUsd  string `json:"priceUsd"`
	Liquidity *struct {
		Usd float64 `json:"usd"`
	} `json:"liquidity"`
	Volume struct {
		H24 float64 `json:"h24"`
	} `json:"volume"`
	FDV float64 `json:"fdv"`
}

// FetchPair returns a snapshot of the first pair matching q, or nil when
// Dexscreener knows no pair for it. Taking the first result unranked is
// deliberate: it matches what the Dexscreener site itself surfaces on top.
func (p *DexscreenerProvider) FetchPair(ctx context.Context, q string) (*domain.DexSnapshot, error) {
	_, span := p.tracer.Start(ctx, "dexscreener.fetch-pair")
	defer span.End()
	span.SetAttributes(attribute.String("query", q))

	var endpoint string
	if looksLikeAddress(q) {
		endpoint = fmt.Sprintf("%s/tokens/%s", p.baseURL, url.PathEscape(q))
	} else {
		endpoint = fmt.Sprintf("%s/search?q=%s", p.baseURL, url.QueryEscape(q))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch pair: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("dexscreener API error %d: %s", resp.StatusCode, string(body))
	}

	var raw struct {
		Pairs []dexPair `json:"pairs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse pair response: %w", err)
	}
	if len(raw.Pairs) == 0 {
		return nil, nil
	}

	return snapshotFromPair(raw.Pairs[0]), nil
}

// snapshotFromPair trims a pair to the dashboard's view, substituting safe
// sentinels for anything the upstream omitted.
func snapshotFromPair(pair dexPair) *domain.DexSnapshot {
	snap := &domain.DexSnapshot{
		Name:        orUnknown(pair.BaseToken.Name),
		Symbol:      orUnknown(pair.BaseToken.Symbol),
		Chain:       pair.ChainID,
		Dex:         orUnknown(pair.DexID),
		PriceUsd:    pair.PriceUsd,
		Volume24h:   pair.Volume.H24,
		FDV:         pair.FDV,
		PairAddress: pair.PairAddr,
		URL:         pair.URL,
	}
	if snap.PriceUsd == "" {
		snap.PriceUsd = "N/A"
	}
	if snap.URL == "" {
		snap.URL = "N/A"
	}
	if pair.Liquidity != nil {
		snap.LiquidityUsd = pair.Liquidity.Usd
	}
	return snap
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
