package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mr-tron/base58"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const lamportsPerSol = 1e9

// SolanaClient calls a Solana JSON-RPC endpoint for the handful of read-only
// methods the dashboard needs.
type SolanaClient struct {
	client   *http.Client
	endpoint string
	tracer   trace.Tracer
}

func NewSolanaClient(endpoint string, tracer trace.Tracer) *SolanaClient {
	return &SolanaClient{
		client:   &http.Client{Timeout: 15 * time.Second},
		endpoint: endpoint,
		tracer:   tracer,
	}
}

// ValidPubkey reports whether s decodes as a 32-byte base58 Solana public key.
func ValidPubkey(s string) bool {
	raw, err := base58.Decode(s)
	return err == nil && len(raw) == 32
}

// SignatureInfo mirrors one entry of a getSignaturesForAddress result. Fields
// are passed through to the client unmodified.
type SignatureInfo struct {
	Signature          string `json:"signature"`
	Slot               uint64 `json:"slot"`
	Err                any    `json:"err"`
	Memo               any    `json:"memo"`
	BlockTime          *int64 `json:"blockTime"`
	ConfirmationStatus string `json:"confirmationStatus,omitempty"`
}

// GetBalance returns the SOL balance of pubkey.
func (c *SolanaClient) GetBalance(ctx context.Context, pubkey string) (float64, error) {
	ctx, span := c.tracer.Start(ctx, "solana.get-balance")
	defer span.End()
	span.SetAttributes(attribute.String("pubkey", pubkey))

	var result struct {
		Value uint64 `json:"value"`
	}
	if err := c.call(ctx, "getBalance", []any{pubkey}, &result); err != nil {
		return 0, err
	}
	return float64(result.Value) / lamportsPerSol, nil
}

// GetSignatures returns the most recent transaction signatures for pubkey.
func (c *SolanaClient) GetSignatures(ctx context.Context, pubkey string, limit int) ([]SignatureInfo, error) {
	ctx, span := c.tracer.Start(ctx, "solana.get-signatures")
	defer span.End()
	span.SetAttributes(attribute.String("pubkey", pubkey), attribute.Int("limit", limit))

	var sigs []SignatureInfo
	params := []any{pubkey, map[string]any{"limit": limit}}
	if err := c.call(ctx, "getSignaturesForAddress", params, &sigs); err != nil {
		return nil, err
	}
	if sigs == nil {
		sigs = []SignatureInfo{}
	}
	return sigs, nil
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// call performs one JSON-RPC 2.0 request. RPC-level errors are reported with
// their code, distinct from transport errors which carry the HTTP status.
func (c *SolanaClient) call(ctx context.Context, method string, params []any, result any) error {
	payload, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("solana RPC HTTP error %d: %s", resp.StatusCode, string(body))
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
		Error  *rpcError       `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("parse %s response: %w", method, err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("rpc error %d: %s", envelope.Error.Code, envelope.Error.Message)
	}

	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("parse %s result: %w", method, err)
	}
	return nil
}
