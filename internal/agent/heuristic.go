package agent

import "tokendeck/internal/domain"

// Liquidity/volume thresholds in USD for the fallback classifier.
const (
	blockLiquidity   = 5000
	cautionLiquidity = 20000
	cautionVolume    = 5000
	healthyLiquidity = 50000
	healthyVolume    = 50000
)

var checklist = []string{
	"Verify the contract address against the project's official channels.",
	"Check whether liquidity is locked and mint authority is revoked.",
	"Review holder distribution for whale concentration.",
	"Start with a test-sized transaction.",
}

// Heuristic classifies a pair from its liquidity and 24h volume alone. It is
// total and deterministic, and it never emits BUY or SELL: a trade signal
// requires the model, the heuristic only grades risk.
func Heuristic(liquidityUsd, volume24h float64) domain.AgentVerdict {
	status := domain.RiskSafe
	flags := []string{}

	switch {
	case liquidityUsd < blockLiquidity:
		status = domain.RiskBlock
		flags = append(flags, "very low liquidity")
	case liquidityUsd < cautionLiquidity:
		status = domain.RiskCaution
		flags = append(flags, "low liquidity")
	}

	if volume24h < cautionVolume {
		if status != domain.RiskBlock {
			status = domain.RiskCaution
		}
		flags = append(flags, "very low 24h volume")
	}

	why := make([]string, 0, 3)
	if liquidityUsd >= healthyLiquidity && volume24h >= healthyVolume {
		why = append(why, "Liquidity and 24h volume look healthy, though on-chain activity alone proves little.")
	} else {
		why = append(why, "Liquidity or 24h volume is too thin for a confident read.")
	}
	why = append(why,
		"This assessment covers market depth only, not contract safety.",
		"Thin markets move sharply on small trades.",
	)

	decision := "SMALL SIZE / WAIT"
	if status == domain.RiskBlock {
		decision = "DO NOT TRADE"
	}

	return domain.AgentVerdict{
		Signal: domain.SignalHold,
		Why:    why,
		Risk: domain.RiskReport{
			Status:    status,
			Flags:     flags,
			Checklist: checklist,
		},
		Decision: decision,
	}
}
