package regime

import (
	"fmt"
	"math"

	riskerrors "github.com/minhhoang04/crypto-risk-engine/internal/errors"
	"github.com/minhhoang04/crypto-risk-engine/pkg/types"
)

// Classifier assesses market conditions from a price series and an optional
// trend-strength reading supplied by the indicator layer. It holds no state
// between calls, so a single instance may be shared by concurrent callers.
type Classifier struct {
	lookback int
}

// NewClassifier creates a classifier with the given volatility lookback.
// A lookback <= 0 falls back to DefaultLookback.
func NewClassifier(lookback int) *Classifier {
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	return &Classifier{lookback: lookback}
}

// Assess classifies the current market regime from the candle series.
// trendStrength is an ADX-style reading from the indicator layer; pass a
// value <= 0 when it is unavailable.
//
// Classification is checked in priority order: high volatility first, then
// strong trend, then normal. The series must contain at least 2 closes.
func (c *Classifier) Assess(data []types.OHLCV, trendStrength float64) (Assessment, error) {
	if len(data) < 2 {
		return Assessment{}, riskerrors.NewInsufficientDataError("regime", "assess",
			fmt.Sprintf("need at least 2 price points, got %d", len(data)))
	}

	volatility := c.annualizedVolatility(data)

	assessment := Assessment{
		Volatility:    volatility,
		TrendStrength: trendStrength,
	}

	switch {
	case volatility > HighVolatilityThreshold:
		assessment.Regime = RegimeHighVolatility
		assessment.RiskFactor = HighVolatilityRiskFactor
	case trendStrength > StrongTrendThreshold:
		assessment.Regime = RegimeStrongTrend
		assessment.RiskFactor = StrongTrendRiskFactor
	default:
		assessment.Regime = RegimeNormal
		assessment.RiskFactor = NormalRiskFactor
	}

	return assessment, nil
}

// annualizedVolatility computes the sample std-dev of simple returns over
// the trailing lookback observations, annualized by sqrt(252).
func (c *Classifier) annualizedVolatility(data []types.OHLCV) float64 {
	returns := make([]float64, 0, len(data)-1)
	for i := 1; i < len(data); i++ {
		prev := data[i-1].Close
		if prev == 0 {
			continue
		}
		returns = append(returns, data[i].Close/prev-1)
	}

	if len(returns) > c.lookback {
		returns = returns[len(returns)-c.lookback:]
	}

	// Sample std-dev needs at least two returns; with fewer, volatility is
	// simply unknown and treated as zero.
	if len(returns) < 2 {
		return 0
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		diff := r - mean
		variance += diff * diff
	}
	variance /= float64(len(returns) - 1)

	return math.Sqrt(variance) * math.Sqrt(TradingDaysPerYear)
}
