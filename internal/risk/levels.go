package risk

import (
	"fmt"
	"math"

	riskerrors "github.com/minhhoang04/crypto-risk-engine/internal/errors"
)

const (
	// DefaultStopLossPct is used when neither a fixed percentage nor a
	// volatility measure is supplied
	DefaultStopLossPct = 5.0

	// ATRStopMultiplier converts an ATR reading into a stop distance
	ATRStopMultiplier = 2.0

	// DefaultRiskRewardRatio targets twice the risked distance
	DefaultRiskRewardRatio = 2.0
)

// StopLossParams selects how the stop distance is derived. FixedPct wins
// when both are supplied; with neither, DefaultStopLossPct applies. ATR is
// an absolute price unit, FixedPct a percentage. Zero means "not supplied".
type StopLossParams struct {
	ATR      float64
	FixedPct float64
}

// StopLoss computes the protective stop price for an entry.
func (e *Engine) StopLoss(entryPrice float64, direction Direction, params StopLossParams) (float64, error) {
	if entryPrice <= 0 {
		return 0, riskerrors.NewInvalidInputError("risk", "stop_loss",
			fmt.Sprintf("entry price must be positive, got %.4f", entryPrice))
	}

	var stopPct float64
	switch {
	case params.FixedPct > 0:
		stopPct = params.FixedPct
	case params.ATR > 0:
		stopPct = (ATRStopMultiplier * params.ATR / entryPrice) * 100
	default:
		stopPct = DefaultStopLossPct
	}

	if direction == DirectionLong {
		return entryPrice * (1 - stopPct/100), nil
	}
	return entryPrice * (1 + stopPct/100), nil
}

// TakeProfit computes the profit target from the stop distance and the
// desired risk-reward ratio.
func (e *Engine) TakeProfit(entryPrice, stopLoss float64, direction Direction, riskRewardRatio float64) (float64, error) {
	if riskRewardRatio <= 0 {
		return 0, riskerrors.NewInvalidInputError("risk", "take_profit",
			fmt.Sprintf("risk-reward ratio must be positive, got %.4f", riskRewardRatio))
	}

	risk := math.Abs(entryPrice - stopLoss)
	reward := risk * riskRewardRatio

	if direction == DirectionLong {
		return entryPrice + reward, nil
	}
	return entryPrice - reward, nil
}

// UpdateTrailingStop moves the stop with a favorable price move. The stop
// only ever ratchets in the trade's favor: for longs the returned stop is
// never below currentStop, for shorts never above it, regardless of price
// reversals.
func (e *Engine) UpdateTrailingStop(entryPrice, currentPrice, currentStop float64, direction Direction) float64 {
	trailingPct := e.Parameters().TrailingStopPct

	if direction == DirectionLong {
		trailingStop := currentPrice * (1 - trailingPct/100)
		if trailingStop > currentStop {
			return trailingStop
		}
		return currentStop
	}

	trailingStop := currentPrice * (1 + trailingPct/100)
	if trailingStop < currentStop {
		return trailingStop
	}
	return currentStop
}
