package risk

import "github.com/minhhoang04/crypto-risk-engine/internal/regime"

// Recommendation thresholds for the advisory checks
const (
	LowWinRatePct          = 40.0
	MinFavorableRiskReward = 1.0
)

// Recommendations maps a risk report and a regime assessment to an ordered
// list of advisories. Every check is evaluated independently, in a fixed
// order, and all applicable messages are included. A clean report yields an
// empty list.
func (e *Engine) Recommendations(report RiskReport, assessment regime.Assessment) []string {
	params := e.Parameters()
	recommendations := []string{}

	if report.ExposurePct > HighRiskExposurePct {
		recommendations = append(recommendations,
			"Reduce overall exposure to decrease risk.")
	}

	if report.OpenPositionsCount >= params.MaxOpenPositions {
		recommendations = append(recommendations,
			"Maximum number of open positions reached. Close some positions before opening new ones.")
	}

	if report.WinRatePct < LowWinRatePct {
		recommendations = append(recommendations,
			"Win rate is low. Consider adjusting your strategy or taking a break.")
	}

	if report.RiskReward < MinFavorableRiskReward {
		recommendations = append(recommendations,
			"Risk-reward ratio is unfavorable. Aim for larger profit targets or tighter stop losses.")
	}

	if assessment.Regime == regime.RegimeHighVolatility {
		recommendations = append(recommendations,
			"Market volatility is high. Reduce position sizes and use wider stop losses.")
	}

	if report.Expectancy < 0 {
		recommendations = append(recommendations,
			"Trading expectancy is negative. Review your strategy or consider paper trading.")
	}

	return recommendations
}
