// Package amm simulates swaps against a constant-product market maker.
package amm

import (
	"fmt"
	"math"

	"tokendeck/internal/domain"
)

const bpsDenominator = 10000

// Simulate computes the output of swapping amountIn of X against the pool
// (reserveX, reserveY) with a fee in basis points, holding x*y constant after
// the fee is deducted from the input.
func Simulate(in domain.SwapInput) (domain.SwapResult, error) {
	if err := validate(in); err != nil {
		return domain.SwapResult{}, err
	}

	amountInAfterFee := in.AmountIn * (1 - in.FeeBps/bpsDenominator)
	k := in.ReserveX * in.ReserveY
	newReserveX := in.ReserveX + amountInAfterFee
	newReserveY := k / newReserveX
	amountOut := in.ReserveY - newReserveY

	return domain.SwapResult{
		AmountOut:      amountOut,
		NewReserveX:    newReserveX,
		NewReserveY:    newReserveY,
		PriceImpactPct: amountOut / in.ReserveY * 100,
	}, nil
}

func validate(in domain.SwapInput) error {
	fields := map[string]float64{
		"reserveX": in.ReserveX,
		"reserveY": in.ReserveY,
		"amountIn": in.AmountIn,
	}
	for name, v := range fields {
		if !finite(v) {
			return fmt.Errorf("%s must be a finite number", name)
		}
		if v <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	if !finite(in.FeeBps) || in.FeeBps < 0 || in.FeeBps >= bpsDenominator {
		return fmt.Errorf("feeBps must be in [0, %d)", bpsDenominator)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
