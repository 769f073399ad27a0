package regime

// Regime is a categorical label for current market behavior
type Regime string

const (
	RegimeHighVolatility Regime = "High Volatility"
	RegimeStrongTrend    Regime = "Strong Trend"
	RegimeNormal         Regime = "Normal"
)

// Classification policy constants. These are fixed, not tunable per call:
// the classifier and the risk adjuster are tested against them, and a tuning
// change must happen here and nowhere else.
const (
	// Annualized return std-dev above which the market counts as high volatility
	HighVolatilityThreshold = 0.8

	// Trend strength (ADX-style, 0-100) above which the market counts as trending
	StrongTrendThreshold = 25.0

	// Risk factors applied to size/risk limits per regime
	HighVolatilityRiskFactor = 0.5
	StrongTrendRiskFactor    = 1.0
	NormalRiskFactor         = 0.75

	// DefaultLookback is the number of trailing observations used for the
	// volatility estimate
	DefaultLookback = 20

	// TradingDaysPerYear annualizes the per-bar return std-dev
	TradingDaysPerYear = 252
)

// Assessment is the result of a market condition check. Derived fresh on
// each call; the classifier never persists it.
type Assessment struct {
	Regime        Regime  `json:"market_regime"`
	Volatility    float64 `json:"volatility"`     // annualized return std-dev
	TrendStrength float64 `json:"trend_strength"` // <= 0 when unavailable
	RiskFactor    float64 `json:"risk_factor"`    // in (0, 1]
}
