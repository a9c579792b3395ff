package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tokendeck/internal/cache"
	"tokendeck/internal/domain"
	"tokendeck/internal/provider"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrNoPairs means Dexscreener knows no pair for the query. It is a normal
// outcome, rendered inline by the UI, not an exceptional one.
var ErrNoPairs = errors.New("no matching pairs found")

type PriceProvider interface {
	SimplePrices(ctx context.Context) (json.RawMessage, error)
	MarketChart(ctx context.Context, coin string) ([][]float64, error)
}

type PairProvider interface {
	FetchPair(ctx context.Context, q string) (*domain.DexSnapshot, error)
}

type CandleProvider interface {
	FetchOHLCV(ctx context.Context, network, pool string) ([]json.RawMessage, error)
}

type Analyzer interface {
	Analyze(ctx context.Context, snap *domain.DexSnapshot) (domain.AgentVerdict, string)
}

// MarketService fronts the market-data providers with the TTL cache. Every
// payload is assembled inside the cache producer, so `updated` reflects when
// the data was fetched, not when it was served.
type MarketService struct {
	tracer  trace.Tracer
	store   cache.Store
	prices  PriceProvider
	pairs   PairProvider
	candles CandleProvider
	agent   Analyzer
}

func NewMarketService(
	tracer trace.Tracer,
	store cache.Store,
	prices PriceProvider,
	pairs PairProvider,
	candles CandleProvider,
	agent Analyzer,
) *MarketService {
	return &MarketService{
		tracer:  tracer,
		store:   store,
		prices:  prices,
		pairs:   pairs,
		candles: candles,
		agent:   agent,
	}
}

type PricesPayload struct {
	OK      bool            `json:"ok"`
	Data    json.RawMessage `json:"data"`
	Updated string          `json:"updated"`
}

type ChartPayload struct {
	OK      bool        `json:"ok"`
	Coin    string      `json:"coin"`
	Prices  [][]float64 `json:"prices"`
	Updated string      `json:"updated"`
}

type PairPayload struct {
	OK      bool                `json:"ok"`
	Q       string              `json:"q"`
	Data    *domain.DexSnapshot `json:"data"`
	Updated string              `json:"updated"`
}

// GeckoMeta echoes the candle request parameters and the raw rows for
// diagnostics.
type GeckoMeta struct {
	Network   string            `json:"network"`
	Pool      string            `json:"pool"`
	Timeframe string            `json:"timeframe"`
	Aggregate int               `json:"aggregate"`
	Points    []json.RawMessage `json:"points"`
}

type TokenChartPayload struct {
	OK      bool                 `json:"ok"`
	Q       string               `json:"q"`
	Dex     *domain.DexSnapshot  `json:"dex"`
	Gecko   GeckoMeta            `json:"gecko"`
	Closes  []domain.CandlePoint `json:"closes"`
	Updated string               `json:"updated"`
}

type AgentPayload struct {
	OK      bool                `json:"ok"`
	Q       string              `json:"q"`
	Dex     *domain.DexSnapshot `json:"dex"`
	Agent   domain.AgentVerdict `json:"agent"`
	Updated string              `json:"updated"`
	Mode    string              `json:"mode"`
}

// Prices returns the cached CoinGecko simple-price passthrough.
func (s *MarketService) Prices(ctx context.Context) (any, error) {
	ctx, span := s.tracer.Start(ctx, "market-service.prices")
	defer span.End()

	return s.store.GetOrCompute(ctx, "prices", func(ctx context.Context) (any, error) {
		data, err := s.prices.SimplePrices(ctx)
		if err != nil {
			return nil, err
		}
		return PricesPayload{OK: true, Data: data, Updated: stamp()}, nil
	})
}

// Chart returns the cached one-day price series for an allow-listed coin.
func (s *MarketService) Chart(ctx context.Context, coin string) (any, error) {
	ctx, span := s.tracer.Start(ctx, "market-service.chart")
	defer span.End()
	span.SetAttributes(attribute.String("coin", coin))

	return s.store.GetOrCompute(ctx, "chart:"+coin, func(ctx context.Context) (any, error) {
		prices, err := s.prices.MarketChart(ctx, coin)
		if err != nil {
			return nil, err
		}
		return ChartPayload{OK: true, Coin: coin, Prices: prices, Updated: stamp()}, nil
	})
}

// Pair returns the cached Dexscreener snapshot for a query.
func (s *MarketService) Pair(ctx context.Context, q string) (any, error) {
	ctx, span := s.tracer.Start(ctx, "market-service.pair")
	defer span.End()
	span.SetAttributes(attribute.String("query", q))

	return s.store.GetOrCompute(ctx, "dex:"+q, func(ctx context.Context) (any, error) {
		snap, err := s.fetchSnapshot(ctx, q)
		if err != nil {
			return nil, err
		}
		return PairPayload{OK: true, Q: q, Data: snap, Updated: stamp()}, nil
	})
}

// TokenChart runs the full pipeline: pair resolution, chain-to-network
// mapping, candle fetch, close-series normalization.
func (s *MarketService) TokenChart(ctx context.Context, q string) (any, error) {
	ctx, span := s.tracer.Start(ctx, "market-service.token-chart")
	defer span.End()
	span.SetAttributes(attribute.String("query", q))

	return s.store.GetOrCompute(ctx, "token_chart:"+q, func(ctx context.Context) (any, error) {
		snap, err := s.fetchSnapshot(ctx, q)
		if err != nil {
			return nil, err
		}

		network, ok := domain.GeckoNetwork(snap.Chain)
		if !ok {
			return nil, fmt.Errorf("cannot resolve candle network for chain %q", snap.Chain)
		}
		if snap.PairAddress == "" {
			return nil, fmt.Errorf("pair has no pool address")
		}

		rows, err := s.candles.FetchOHLCV(ctx, network, snap.PairAddress)
		if err != nil {
			return nil, err
		}

		return TokenChartPayload{
			OK:  true,
			Q:   q,
			Dex: snap,
			Gecko: GeckoMeta{
				Network:   network,
				Pool:      snap.PairAddress,
				Timeframe: provider.OHLCVTimeframe,
				Aggregate: provider.OHLCVAggregate,
				Points:    rows,
			},
			Closes:  provider.NormalizeCandles(rows),
			Updated: stamp(),
		}, nil
	})
}

// Analyze returns the cached agent verdict for a query.
func (s *MarketService) Analyze(ctx context.Context, q string) (any, error) {
	ctx, span := s.tracer.Start(ctx, "market-service.analyze")
	defer span.End()
	span.SetAttributes(attribute.String("query", q))

	return s.store.GetOrCompute(ctx, "agent:"+q, func(ctx context.Context) (any, error) {
		snap, err := s.fetchSnapshot(ctx, q)
		if err != nil {
			return nil, err
		}
		verdict, mode := s.agent.Analyze(ctx, snap)
		return AgentPayload{
			OK:      true,
			Q:       q,
			Dex:     snap,
			Agent:   verdict,
			Updated: stamp(),
			Mode:    mode,
		}, nil
	})
}

func (s *MarketService) fetchSnapshot(ctx context.Context, q string) (*domain.DexSnapshot, error) {
	snap, err := s.pairs.FetchPair(ctx, q)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, ErrNoPairs
	}
	return snap, nil
}

func stamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
