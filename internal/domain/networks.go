package domain

import "strings"

// geckoNetworks maps Dexscreener chain identifiers to the GeckoTerminal
// network identifiers used in its OHLCV URLs. Chains where the two providers
// already agree are listed for completeness.
var geckoNetworks = map[string]string{
	"ethereum":  "eth",
	"bsc":       "bsc",
	"polygon":   "polygon_pos",
	"avalanche": "avax",
	"arbitrum":  "arbitrum",
	"optimism":  "optimism",
	"base":      "base",
	"solana":    "solana",
	"fantom":    "ftm",
	"cronos":    "cro",
}

// GeckoNetwork resolves a Dexscreener chain identifier to a GeckoTerminal
// network. Unknown chains pass through unchanged on the assumption the two
// providers share the name; an empty chain resolves to nothing, meaning
// candles cannot be fetched.
func GeckoNetwork(chain string) (string, bool) {
	c := strings.ToLower(strings.TrimSpace(chain))
	if c == "" {
		return "", false
	}
	if network, ok := geckoNetworks[c]; ok {
		return network, true
	}
	return c, true
}
