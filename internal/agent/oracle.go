package agent

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"tokendeck/internal/domain"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// LLMClient abstracts the chat completions API for testability.
type LLMClient interface {
	CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

// Oracle asks a hosted model for a verdict on a pair snapshot. It is strictly
// best-effort: any transport, parse, or shape problem yields a nil verdict
// and the caller falls back to the heuristic. Oracle failures are never
// surfaced to the API client.
type Oracle struct {
	tracer trace.Tracer
	llm    LLMClient
	model  string
}

func NewOracle(tracer trace.Tracer, llm LLMClient, model string) *Oracle {
	return &Oracle{tracer: tracer, llm: llm, model: model}
}

// Verdict returns the model's verdict for snap, or nil when unavailable.
func (o *Oracle) Verdict(ctx context.Context, snap *domain.DexSnapshot) *domain.AgentVerdict {
	ctx, span := o.tracer.Start(ctx, "oracle.verdict")
	defer span.End()
	span.SetAttributes(attribute.String("llm.model", o.model))

	completion, err := o.llm.CreateChatCompletion(ctx, openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(BuildUserPrompt(snap)),
		},
	})
	if err != nil {
		log.Printf("oracle call failed: %v", err)
		span.RecordError(err)
		return nil
	}
	if len(completion.Choices) == 0 {
		log.Println("oracle returned no choices")
		return nil
	}

	verdict := ParseVerdict(completion.Choices[0].Message.Content)
	if verdict == nil {
		log.Println("oracle returned malformed verdict, using fallback")
	}
	return verdict
}

// ParseVerdict runs the two-stage parse: strict JSON first, then a bounded
// recovery that takes the substring between the first '{' and the last '}'
// for models that wrap their JSON in prose or code fences. Shape validation
// is presence-only: signal and risk.status must be set, nothing else is
// checked.
func ParseVerdict(text string) *domain.AgentVerdict {
	if v := strictParse(text); v != nil {
		return v
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return strictParse(text[start : end+1])
	}
	return nil
}

func strictParse(s string) *domain.AgentVerdict {
	var v domain.AgentVerdict
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil
	}
	if v.Signal == "" || v.Risk.Status == "" {
		return nil
	}
	return &v
}

// groqClient wraps the official SDK pointed at Groq's OpenAI-compatible API.
type groqClient struct {
	client openai.Client
}

func NewGroqClient(apiKey, baseURL string) LLMClient {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)
	return &groqClient{client: client}
}

func (c *groqClient) CreateChatCompletion(
	ctx context.Context,
	params openai.ChatCompletionNewParams,
) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params)
}
