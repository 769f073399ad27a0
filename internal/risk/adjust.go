package risk

import (
	"fmt"

	riskerrors "github.com/minhhoang04/crypto-risk-engine/internal/errors"
	"github.com/minhhoang04/crypto-risk-engine/internal/monitoring"
	"github.com/minhhoang04/crypto-risk-engine/internal/regime"
)

// AdjustForMarket maps a regime assessment to an advisory parameter
// update: size and risk limits scale down with the risk factor, and the
// trailing stop tightens by (2 - riskFactor). Since the risk factor is in
// (0, 1], the trailing multiplier is always >= 1, so trailing stops never
// widen beyond the base value.
//
// The adjustment is advisory: the caller decides whether to commit it via
// UpdateParameters.
func (e *Engine) AdjustForMarket(assessment regime.Assessment) (ParameterUpdate, error) {
	if assessment.RiskFactor <= 0 || assessment.RiskFactor > 1 {
		return ParameterUpdate{}, riskerrors.NewInvalidInputError("risk", "adjust_for_market",
			fmt.Sprintf("risk factor must be in (0, 1], got %.4f", assessment.RiskFactor))
	}

	params := e.Parameters()
	factor := assessment.RiskFactor

	update := ParameterUpdate{
		MaxPositionSizePct: Float64(params.MaxPositionSizePct * factor),
		MaxRiskPerTradePct: Float64(params.MaxRiskPerTradePct * factor),
		TrailingStopPct:    Float64(params.TrailingStopPct * (2 - factor)),
	}

	monitoring.RecordRegimeAssessment(factor)
	e.logRisk("Market regime %s (volatility %.3f): advisory size=%.2f%% risk=%.2f%% trail=%.2f%%",
		assessment.Regime, assessment.Volatility,
		*update.MaxPositionSizePct, *update.MaxRiskPerTradePct, *update.TrailingStopPct)

	return update, nil
}
