package agent

import (
	"encoding/json"
	"strings"

	"tokendeck/internal/domain"
)

const systemPrompt = `You are a crypto token risk analyst. You receive one DEX pair snapshot and respond with a verdict.

Respond with STRICT JSON only, no prose, no markdown fences, exactly this shape:
{"signal":"BUY"|"SELL"|"HOLD","why":["..."],"risk":{"status":"SAFE"|"CAUTION"|"BLOCK","flags":["..."],"checklist":["..."]},"decision":"..."}

Rules:
- "why" holds at most 3 short reasons grounded in the snapshot numbers.
- "risk.flags" and "risk.checklist" hold at most 4 short strings each.
- Never fabricate data that is not in the snapshot.
- Liquidity under $5000 is a BLOCK, under $20000 at least a CAUTION.`

// BuildUserPrompt serializes the pair snapshot for the model.
func BuildUserPrompt(snap *domain.DexSnapshot) string {
	var sb strings.Builder
	sb.WriteString("Analyze this DEX pair snapshot:\n")
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return sb.String()
	}
	sb.Write(data)
	return sb.String()
}
