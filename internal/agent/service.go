package agent

import (
	"context"

	"tokendeck/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	ModeAI       = "ai"
	ModeFallback = "fallback"
)

// Service produces a verdict for a pair snapshot, preferring the oracle and
// degrading to the deterministic heuristic.
type Service struct {
	tracer trace.Tracer
	oracle *Oracle
}

// NewService creates the agent service. A nil oracle disables the model path
// entirely; every analysis then reports fallback mode.
func NewService(tracer trace.Tracer, oracle *Oracle) *Service {
	return &Service{tracer: tracer, oracle: oracle}
}

// Analyze returns a verdict and the mode that produced it. An oracle verdict
// that passed shape validation is trusted as-is, overriding the heuristic.
func (s *Service) Analyze(ctx context.Context, snap *domain.DexSnapshot) (domain.AgentVerdict, string) {
	ctx, span := s.tracer.Start(ctx, "agent.analyze")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", snap.Symbol))

	if s.oracle != nil {
		if v := s.oracle.Verdict(ctx, snap); v != nil {
			span.SetAttributes(attribute.String("mode", ModeAI))
			return *v, ModeAI
		}
	}

	span.SetAttributes(attribute.String("mode", ModeFallback))
	return Heuristic(snap.LiquidityUsd, snap.Volume24h), ModeFallback
}
