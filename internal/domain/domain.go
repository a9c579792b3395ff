package domain

// DexSnapshot is the trimmed view of the first Dexscreener pair matching a
// query. Fields are always populated: upstream omissions are replaced with
// sentinels so the client never sees null.
type DexSnapshot struct {
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	Chain        string  `json:"chain"`
	Dex          string  `json:"dex"`
	PriceUsd     string  `json:"priceUsd"`
	LiquidityUsd float64 `json:"liquidityUsd"`
	Volume24h    float64 `json:"volume24h"`
	FDV          float64 `json:"fdv"`
	PairAddress  string  `json:"pairAddress"`
	URL          string  `json:"url"`
}

type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

type RiskStatus string

const (
	RiskSafe    RiskStatus = "SAFE"
	RiskCaution RiskStatus = "CAUTION"
	RiskBlock   RiskStatus = "BLOCK"
)

type RiskReport struct {
	Status    RiskStatus `json:"status"`
	Flags     []string   `json:"flags"`
	Checklist []string   `json:"checklist"`
}

// AgentVerdict is the analysis result for a pair, produced either by the
// hosted model or by the deterministic fallback heuristic.
type AgentVerdict struct {
	Signal   Signal     `json:"signal"`
	Why      []string   `json:"why"`
	Risk     RiskReport `json:"risk"`
	Decision string     `json:"decision"`
}

// SwapInput are the parameters of a constant-product swap simulation.
type SwapInput struct {
	ReserveX float64 `json:"reserveX"`
	ReserveY float64 `json:"reserveY"`
	AmountIn float64 `json:"amountIn"`
	FeeBps   float64 `json:"feeBps"`
}

type SwapResult struct {
	AmountOut      float64 `json:"amountOut"`
	NewReserveX    float64 `json:"newReserveX"`
	NewReserveY    float64 `json:"newReserveY"`
	PriceImpactPct float64 `json:"priceImpactPct"`
}
