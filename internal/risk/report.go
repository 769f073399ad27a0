package risk

import (
	"math"

	"github.com/minhhoang04/crypto-risk-engine/internal/monitoring"
)

// Exposure thresholds for the overall risk status
const (
	HighRiskExposurePct   = 50.0
	MediumRiskExposurePct = 25.0
)

// GenerateRiskReport aggregates the trade history and open position
// snapshots into a risk report. Every field is computed from the given
// snapshot only; nothing accumulates across calls.
//
// Degenerate cases resolve to sentinels rather than errors: no trades
// yields zero rates, and no losing trades yields a +Inf risk-reward.
func (e *Engine) GenerateRiskReport(trades []TradeRecord, accountBalance float64, openPositions []OpenPosition) RiskReport {
	report := RiskReport{
		OpenPositionsCount: len(openPositions),
	}

	for _, pos := range openPositions {
		report.TotalExposure += pos.Value
	}
	if accountBalance > 0 {
		report.ExposurePct = (report.TotalExposure / accountBalance) * 100
	}

	var (
		wins, losses        int
		winTotal, lossTotal float64
	)
	for _, trade := range trades {
		switch {
		case trade.ProfitLoss > 0:
			wins++
			winTotal += trade.ProfitLoss
		case trade.ProfitLoss < 0:
			losses++
			lossTotal += trade.ProfitLoss
		}
	}

	if len(trades) > 0 {
		report.WinRatePct = float64(wins) / float64(len(trades)) * 100
	}
	if wins > 0 {
		report.AvgWin = winTotal / float64(wins)
	}
	if losses > 0 {
		report.AvgLoss = lossTotal / float64(losses)
	}

	if report.AvgLoss != 0 {
		report.RiskReward = math.Abs(report.AvgWin / report.AvgLoss)
	} else {
		report.RiskReward = math.Inf(1)
	}

	report.Expectancy = report.WinRatePct/100*report.AvgWin +
		(100-report.WinRatePct)/100*report.AvgLoss

	switch {
	case report.ExposurePct > HighRiskExposurePct:
		report.Status = RiskStatusHigh
	case report.ExposurePct > MediumRiskExposurePct:
		report.Status = RiskStatusMedium
	default:
		report.Status = RiskStatusLow
	}

	monitoring.RecordExposure(report.ExposurePct, string(report.Status))
	if h := e.healthChecker(); h != nil {
		h.ReportGenerated(report.ExposurePct)
	}

	return report
}
