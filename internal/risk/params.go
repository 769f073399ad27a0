package risk

import (
	"fmt"

	riskerrors "github.com/minhhoang04/crypto-risk-engine/internal/errors"
)

// Default risk limits, applied when the engine is constructed without an
// operator-supplied configuration. Percentage fields are expressed in
// percent (5.0 = 5%).
const (
	DefaultMaxPositionSizePct = 5.0
	DefaultMaxRiskPerTradePct = 2.0
	DefaultMaxDailyLossPct    = 5.0
	DefaultMaxDrawdownPct     = 15.0
	DefaultTrailingStopPct    = 2.0
	DefaultMaxOpenPositions   = 3
)

// RiskParameters holds the limits every calculation reads. The engine owns
// the live copy; calls receive an immutable snapshot.
type RiskParameters struct {
	MaxPositionSizePct   float64 `json:"max_position_size_pct"`
	MaxRiskPerTradePct   float64 `json:"max_risk_per_trade_pct"`
	MaxDailyLossPct      float64 `json:"max_daily_loss_pct"`
	MaxDrawdownPct       float64 `json:"max_drawdown_pct"`
	TrailingStopPct      float64 `json:"trailing_stop_pct"`
	MaxOpenPositions     int     `json:"max_open_positions"`
	VolatilityAdjustment bool    `json:"volatility_adjustment"`
	CorrelationFilter    bool    `json:"correlation_filter"`
}

// DefaultRiskParameters returns the default risk limits
func DefaultRiskParameters() RiskParameters {
	return RiskParameters{
		MaxPositionSizePct:   DefaultMaxPositionSizePct,
		MaxRiskPerTradePct:   DefaultMaxRiskPerTradePct,
		MaxDailyLossPct:      DefaultMaxDailyLossPct,
		MaxDrawdownPct:       DefaultMaxDrawdownPct,
		TrailingStopPct:      DefaultTrailingStopPct,
		MaxOpenPositions:     DefaultMaxOpenPositions,
		VolatilityAdjustment: true,
		CorrelationFilter:    true,
	}
}

// Validate checks the parameter invariants: percentage fields must be
// non-negative and at least one open position must be allowed.
func (p RiskParameters) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"max_position_size_pct", p.MaxPositionSizePct},
		{"max_risk_per_trade_pct", p.MaxRiskPerTradePct},
		{"max_daily_loss_pct", p.MaxDailyLossPct},
		{"max_drawdown_pct", p.MaxDrawdownPct},
		{"trailing_stop_pct", p.TrailingStopPct},
	}

	for _, f := range fields {
		if f.value < 0 {
			return riskerrors.NewInvalidInputError("risk", "validate_parameters",
				fmt.Sprintf("%s must be >= 0, got %.4f", f.name, f.value))
		}
	}

	if p.MaxOpenPositions < 1 {
		return riskerrors.NewInvalidInputError("risk", "validate_parameters",
			fmt.Sprintf("max_open_positions must be >= 1, got %d", p.MaxOpenPositions))
	}

	return nil
}

// ParameterUpdate is an explicit partial update: only non-nil fields
// override the current value. This replaces an open-ended key/value merge
// with a typed contract.
type ParameterUpdate struct {
	MaxPositionSizePct   *float64
	MaxRiskPerTradePct   *float64
	MaxDailyLossPct      *float64
	MaxDrawdownPct       *float64
	TrailingStopPct      *float64
	MaxOpenPositions     *int
	VolatilityAdjustment *bool
	CorrelationFilter    *bool
}

// IsEmpty reports whether the update overrides no fields
func (u ParameterUpdate) IsEmpty() bool {
	return u.MaxPositionSizePct == nil &&
		u.MaxRiskPerTradePct == nil &&
		u.MaxDailyLossPct == nil &&
		u.MaxDrawdownPct == nil &&
		u.TrailingStopPct == nil &&
		u.MaxOpenPositions == nil &&
		u.VolatilityAdjustment == nil &&
		u.CorrelationFilter == nil
}

// applyTo merges the update into a copy of p, leaving unset fields unchanged
func (u ParameterUpdate) applyTo(p RiskParameters) RiskParameters {
	if u.MaxPositionSizePct != nil {
		p.MaxPositionSizePct = *u.MaxPositionSizePct
	}
	if u.MaxRiskPerTradePct != nil {
		p.MaxRiskPerTradePct = *u.MaxRiskPerTradePct
	}
	if u.MaxDailyLossPct != nil {
		p.MaxDailyLossPct = *u.MaxDailyLossPct
	}
	if u.MaxDrawdownPct != nil {
		p.MaxDrawdownPct = *u.MaxDrawdownPct
	}
	if u.TrailingStopPct != nil {
		p.TrailingStopPct = *u.TrailingStopPct
	}
	if u.MaxOpenPositions != nil {
		p.MaxOpenPositions = *u.MaxOpenPositions
	}
	if u.VolatilityAdjustment != nil {
		p.VolatilityAdjustment = *u.VolatilityAdjustment
	}
	if u.CorrelationFilter != nil {
		p.CorrelationFilter = *u.CorrelationFilter
	}
	return p
}

// Float64 returns a pointer to v, for building ParameterUpdate literals
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v, for building ParameterUpdate literals
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for building ParameterUpdate literals
func Bool(v bool) *bool { return &v }
