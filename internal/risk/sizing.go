package risk

import "math"

// CalculatePositionSize computes a bounded position size in units of the
// traded asset.
//
// The size risks at most MaxRiskPerTradePct of the balance over the stop
// distance, is shrunk by 1/(1+volatility) when volatility adjustment is
// enabled, and is finally capped at MaxPositionSizePct of the balance. The
// cap is applied last, so the result is always in [0, max size].
//
// Degenerate inputs resolve to zero rather than an error: an unsized trade
// is the safe outcome when the stop distance or the balance is gone.
func (e *Engine) CalculatePositionSize(accountBalance, entryPrice, stopLoss, volatility float64) float64 {
	if accountBalance <= 0 || entryPrice <= 0 {
		return 0
	}

	params := e.Parameters()

	riskAmount := accountBalance * (params.MaxRiskPerTradePct / 100)

	riskPerUnit := math.Abs(entryPrice - stopLoss)
	if riskPerUnit == 0 {
		// No distance to the stop means sizing is undefined; signals a
		// caller error without blocking the pipeline.
		return 0
	}

	positionSize := riskAmount / riskPerUnit

	// Higher volatility strictly shrinks size, asymptotically toward zero
	if params.VolatilityAdjustment && volatility > 0 {
		positionSize *= 1 / (1 + volatility)
	}

	maxPositionSize := accountBalance * (params.MaxPositionSizePct / 100) / entryPrice
	return math.Min(positionSize, maxPositionSize)
}
