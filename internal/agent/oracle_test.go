package agent

import (
	"context"
	"errors"
	"testing"

	"tokendeck/internal/domain"

	"github.com/openai/openai-go"
	"go.opentelemetry.io/otel/trace"
)

const validVerdictJSON = `{"signal":"BUY","why":["strong volume"],"risk":{"status":"SAFE","flags":[],"checklist":["check contract"]},"decision":"SMALL SIZE"}`

type llmStub struct {
	content string
	err     error
}

func (s llmStub) CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.content}},
		},
	}, nil
}

func testSnap() *domain.DexSnapshot {
	return &domain.DexSnapshot{Symbol: "PEPE", LiquidityUsd: 60000, Volume24h: 60000}
}

func TestParseVerdictStrict(t *testing.T) {
	v := ParseVerdict(validVerdictJSON)
	if v == nil || v.Signal != domain.SignalBuy || v.Risk.Status != domain.RiskSafe {
		t.Fatalf("unexpected verdict: %+v", v)
	}
}

func TestParseVerdictRecoversFromProse(t *testing.T) {
	text := "Sure! Here is the analysis:\n```json\n" + validVerdictJSON + "\n```\nHope that helps."
	v := ParseVerdict(text)
	if v == nil || v.Signal != domain.SignalBuy {
		t.Fatalf("expected recovery parse to succeed, got %+v", v)
	}
}

func TestParseVerdictRejectsMissingFields(t *testing.T) {
	cases := []string{
		`{"why":["no signal field"],"risk":{"status":"SAFE"}}`,
		`{"signal":"BUY","risk":{"flags":[]}}`,
		`not json at all`,
		`{}`,
	}
	for _, text := range cases {
		if v := ParseVerdict(text); v != nil {
			t.Fatalf("expected rejection of %q, got %+v", text, v)
		}
	}
}

func TestServiceFallbackWhenOracleDisabled(t *testing.T) {
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	svc := NewService(tracer, nil)

	verdict, mode := svc.Analyze(context.Background(), testSnap())
	if mode != ModeFallback {
		t.Fatalf("expected fallback mode, got %s", mode)
	}
	if verdict.Signal != domain.SignalHold {
		t.Fatalf("fallback must HOLD, got %s", verdict.Signal)
	}
}

func TestServiceFallbackWhenOracleErrors(t *testing.T) {
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	oracle := NewOracle(tracer, llmStub{err: errors.New("timeout")}, "test-model")
	svc := NewService(tracer, oracle)

	_, mode := svc.Analyze(context.Background(), testSnap())
	if mode != ModeFallback {
		t.Fatalf("expected fallback on oracle error, got %s", mode)
	}
}

func TestServiceFallbackWhenOracleMalformed(t *testing.T) {
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	oracle := NewOracle(tracer, llmStub{content: "I cannot answer that."}, "test-model")
	svc := NewService(tracer, oracle)

	verdict, mode := svc.Analyze(context.Background(), testSnap())
	if mode != ModeFallback || verdict.Signal != domain.SignalHold {
		t.Fatalf("expected heuristic fallback, got mode=%s verdict=%+v", mode, verdict)
	}
}

func TestServiceTrustsWellShapedOracle(t *testing.T) {
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	oracle := NewOracle(tracer, llmStub{content: validVerdictJSON}, "test-model")
	svc := NewService(tracer, oracle)

	verdict, mode := svc.Analyze(context.Background(), testSnap())
	if mode != ModeAI {
		t.Fatalf("expected ai mode, got %s", mode)
	}
	if verdict.Signal != domain.SignalBuy {
		t.Fatalf("oracle verdict must override heuristic, got %+v", verdict)
	}
}
