package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tokendeck/internal/cache"
	"tokendeck/internal/provider"

	"go.opentelemetry.io/otel/trace"
)

type stubRPC struct {
	sol   float64
	sigs  []provider.SignatureInfo
	err   error
	calls int
	limit int
}

func (s *stubRPC) GetBalance(ctx context.Context, pubkey string) (float64, error) {
	s.calls++
	return s.sol, s.err
}

func (s *stubRPC) GetSignatures(ctx context.Context, pubkey string, limit int) ([]provider.SignatureInfo, error) {
	s.calls++
	s.limit = limit
	return s.sigs, s.err
}

func TestBalanceCaches(t *testing.T) {
	rpc := &stubRPC{sol: 1.25}
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	svc := NewSolanaService(tracer, cache.NewMemoryStore(time.Minute), rpc, 10)

	value, err := svc.Balance(context.Background(), "pubkey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload := value.(BalancePayload); payload.Sol != 1.25 || payload.Pubkey != "pubkey" {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	if _, err := svc.Balance(context.Background(), "pubkey"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rpc.calls != 1 {
		t.Fatalf("expected cached second call, rpc hit %d times", rpc.calls)
	}
}

func TestSignaturesUsesConfiguredLimit(t *testing.T) {
	rpc := &stubRPC{sigs: []provider.SignatureInfo{{Signature: "abc"}}}
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	svc := NewSolanaService(tracer, cache.NewMemoryStore(time.Minute), rpc, 25)

	value, err := svc.Signatures(context.Background(), "pubkey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rpc.limit != 25 {
		t.Fatalf("expected configured limit, got %d", rpc.limit)
	}
	if payload := value.(TxPayload); len(payload.Sigs) != 1 || payload.Sigs[0].Signature != "abc" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestBalanceErrorPropagates(t *testing.T) {
	rpc := &stubRPC{err: errors.New("rpc error -32602: Invalid param")}
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	svc := NewSolanaService(tracer, cache.NewMemoryStore(time.Minute), rpc, 10)

	if _, err := svc.Balance(context.Background(), "bad"); err == nil {
		t.Fatal("expected error")
	}
}
