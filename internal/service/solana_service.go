package service

import (
	"context"

	"tokendeck/internal/cache"
	"tokendeck/internal/provider"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type SolanaRPC interface {
	GetBalance(ctx context.Context, pubkey string) (float64, error)
	GetSignatures(ctx context.Context, pubkey string, limit int) ([]provider.SignatureInfo, error)
}

// SolanaService fronts the Solana RPC node with the TTL cache.
type SolanaService struct {
	tracer  trace.Tracer
	store   cache.Store
	rpc     SolanaRPC
	txLimit int
}

func NewSolanaService(tracer trace.Tracer, store cache.Store, rpc SolanaRPC, txLimit int) *SolanaService {
	return &SolanaService{
		tracer:  tracer,
		store:   store,
		rpc:     rpc,
		txLimit: txLimit,
	}
}

type BalancePayload struct {
	OK      bool    `json:"ok"`
	Pubkey  string  `json:"pubkey"`
	Sol     float64 `json:"sol"`
	Updated string  `json:"updated"`
}

type TxPayload struct {
	OK      bool                     `json:"ok"`
	Pubkey  string                   `json:"pubkey"`
	Sigs    []provider.SignatureInfo `json:"sigs"`
	Updated string                   `json:"updated"`
}

// Balance returns the cached SOL balance for pubkey.
func (s *SolanaService) Balance(ctx context.Context, pubkey string) (any, error) {
	ctx, span := s.tracer.Start(ctx, "solana-service.balance")
	defer span.End()
	span.SetAttributes(attribute.String("pubkey", pubkey))

	return s.store.GetOrCompute(ctx, "sol:balance:"+pubkey, func(ctx context.Context) (any, error) {
		sol, err := s.rpc.GetBalance(ctx, pubkey)
		if err != nil {
			return nil, err
		}
		return BalancePayload{OK: true, Pubkey: pubkey, Sol: sol, Updated: stamp()}, nil
	})
}

// Signatures returns the cached recent transaction signatures for pubkey.
func (s *SolanaService) Signatures(ctx context.Context, pubkey string) (any, error) {
	ctx, span := s.tracer.Start(ctx, "solana-service.signatures")
	defer span.End()
	span.SetAttributes(attribute.String("pubkey", pubkey))

	return s.store.GetOrCompute(ctx, "sol:tx:"+pubkey, func(ctx context.Context) (any, error) {
		sigs, err := s.rpc.GetSignatures(ctx, pubkey, s.txLimit)
		if err != nil {
			return nil, err
		}
		return TxPayload{OK: true, Pubkey: pubkey, Sigs: sigs, Updated: stamp()}, nil
	})
}
