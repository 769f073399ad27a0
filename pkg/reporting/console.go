package reporting

import (
	"fmt"
	"math"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/minhhoang04/crypto-risk-engine/internal/regime"
	"github.com/minhhoang04/crypto-risk-engine/internal/risk"
)

// ConsoleReporter renders risk reports and recommendations to stdout
type ConsoleReporter struct{}

// NewConsoleReporter creates a new console reporter
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{}
}

// PrintRiskReport prints the risk report as a table
func (r *ConsoleReporter) PrintRiskReport(report risk.RiskReport) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("RISK REPORT")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"💼 Total Exposure", fmt.Sprintf("$%.2f", report.TotalExposure)},
		{"🎯 Exposure", fmt.Sprintf("%.2f%%", report.ExposurePct)},
		{"📦 Open Positions", report.OpenPositionsCount},
		{"✅ Win Rate", fmt.Sprintf("%.1f%%", report.WinRatePct)},
		{"📈 Avg Win", fmt.Sprintf("$%.2f", report.AvgWin)},
		{"📉 Avg Loss", fmt.Sprintf("$%.2f", report.AvgLoss)},
		{"⚖️ Risk-Reward", formatRatio(report.RiskReward)},
		{"💹 Expectancy", fmt.Sprintf("$%.2f", report.Expectancy)},
		{"🚦 Risk Status", string(report.Status)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 18, Align: text.AlignLeft},
		{Number: 2, WidthMin: 15, Align: text.AlignRight},
	})

	t.Render()
	fmt.Println()
}

// PrintAssessment prints the market regime assessment as a table
func (r *ConsoleReporter) PrintAssessment(assessment regime.Assessment) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("MARKET CONDITIONS")
	t.SetStyle(table.StyleRounded)

	trend := "n/a"
	if assessment.TrendStrength > 0 {
		trend = fmt.Sprintf("%.1f", assessment.TrendStrength)
	}

	t.AppendRows([]table.Row{
		{"🌊 Regime", string(assessment.Regime)},
		{"📊 Volatility (ann.)", fmt.Sprintf("%.3f", assessment.Volatility)},
		{"📈 Trend Strength", trend},
		{"⚖️ Risk Factor", fmt.Sprintf("%.2f", assessment.RiskFactor)},
	})

	t.Render()
	fmt.Println()
}

// PrintParameters prints the active risk parameters as a table
func (r *ConsoleReporter) PrintParameters(params risk.RiskParameters) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("RISK PARAMETERS")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"📏 Max Position Size", fmt.Sprintf("%.2f%%", params.MaxPositionSizePct)},
		{"🎲 Max Risk / Trade", fmt.Sprintf("%.2f%%", params.MaxRiskPerTradePct)},
		{"📅 Max Daily Loss", fmt.Sprintf("%.2f%%", params.MaxDailyLossPct)},
		{"🕳️ Max Drawdown", fmt.Sprintf("%.2f%%", params.MaxDrawdownPct)},
		{"🪤 Trailing Stop", fmt.Sprintf("%.2f%%", params.TrailingStopPct)},
		{"📦 Max Open Positions", params.MaxOpenPositions},
		{"🌪️ Volatility Adjustment", onOff(params.VolatilityAdjustment)},
		{"🔗 Correlation Filter", onOff(params.CorrelationFilter)},
	})

	t.Render()
	fmt.Println()
}

// PrintRecommendations prints the advisory list, or an all-clear note
func (r *ConsoleReporter) PrintRecommendations(recommendations []string) {
	if len(recommendations) == 0 {
		fmt.Println("✅ No risk advisories.")
		fmt.Println()
		return
	}

	fmt.Println("⚠️ RISK ADVISORIES")
	for i, rec := range recommendations {
		fmt.Printf("  %d. %s\n", i+1, rec)
	}
	fmt.Println()
}

func formatRatio(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", v)
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
