package reporting

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/minhhoang04/crypto-risk-engine/internal/risk"
)

// ExcelReporter writes risk reports to an Excel workbook
type ExcelReporter struct{}

// NewExcelReporter creates a new Excel reporter
func NewExcelReporter() *ExcelReporter {
	return &ExcelReporter{}
}

// WriteRiskReportXLSX writes the report, trade history and open positions
// to a workbook with one sheet per section
func (r *ExcelReporter) WriteRiskReportXLSX(report risk.RiskReport, trades []risk.TradeRecord, positions []risk.OpenPosition, path string) error {
	// Ensure directory exists before creating file
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const reportSheet = "Risk Report"
	const tradesSheet = "Trades"
	const positionsSheet = "Positions"

	fx.SetSheetName(fx.GetSheetName(0), reportSheet)
	fx.NewSheet(tradesSheet)
	fx.NewSheet(positionsSheet)

	headerStyle, err := fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	if err := r.writeReportSheet(fx, reportSheet, report, headerStyle); err != nil {
		return err
	}
	if err := r.writeTradesSheet(fx, tradesSheet, trades, headerStyle); err != nil {
		return err
	}
	if err := r.writePositionsSheet(fx, positionsSheet, positions, headerStyle); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func (r *ExcelReporter) writeReportSheet(fx *excelize.File, sheet string, report risk.RiskReport, headerStyle int) error {
	fx.SetCellValue(sheet, "A1", "Metric")
	fx.SetCellValue(sheet, "B1", "Value")
	if err := fx.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
		return err
	}

	riskReward := "inf"
	if !math.IsInf(report.RiskReward, 1) {
		riskReward = fmt.Sprintf("%.4f", report.RiskReward)
	}

	rows := []struct {
		metric string
		value  interface{}
	}{
		{"Total Exposure", report.TotalExposure},
		{"Exposure %", report.ExposurePct},
		{"Open Positions", report.OpenPositionsCount},
		{"Win Rate %", report.WinRatePct},
		{"Avg Win", report.AvgWin},
		{"Avg Loss", report.AvgLoss},
		{"Risk-Reward", riskReward},
		{"Expectancy", report.Expectancy},
		{"Risk Status", string(report.Status)},
	}

	for i, row := range rows {
		fx.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row.metric)
		fx.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row.value)
	}

	return fx.SetColWidth(sheet, "A", "B", 18)
}

func (r *ExcelReporter) writeTradesSheet(fx *excelize.File, sheet string, trades []risk.TradeRecord, headerStyle int) error {
	headers := []string{"Symbol", "Action", "Price", "Size", "Profit/Loss"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(sheet, cell, h)
	}
	if err := fx.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return err
	}

	for i, trade := range trades {
		row := i + 2
		fx.SetCellValue(sheet, fmt.Sprintf("A%d", row), trade.Symbol)
		fx.SetCellValue(sheet, fmt.Sprintf("B%d", row), string(trade.Action))
		fx.SetCellValue(sheet, fmt.Sprintf("C%d", row), trade.Price)
		fx.SetCellValue(sheet, fmt.Sprintf("D%d", row), trade.Size)
		fx.SetCellValue(sheet, fmt.Sprintf("E%d", row), trade.ProfitLoss)
	}

	return fx.SetColWidth(sheet, "A", "E", 14)
}

func (r *ExcelReporter) writePositionsSheet(fx *excelize.File, sheet string, positions []risk.OpenPosition, headerStyle int) error {
	headers := []string{"Symbol", "Side", "Entry Price", "Size", "Value"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(sheet, cell, h)
	}
	if err := fx.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return err
	}

	for i, pos := range positions {
		row := i + 2
		fx.SetCellValue(sheet, fmt.Sprintf("A%d", row), pos.Symbol)
		fx.SetCellValue(sheet, fmt.Sprintf("B%d", row), string(pos.Side))
		fx.SetCellValue(sheet, fmt.Sprintf("C%d", row), pos.EntryPrice)
		fx.SetCellValue(sheet, fmt.Sprintf("D%d", row), pos.Size)
		fx.SetCellValue(sheet, fmt.Sprintf("E%d", row), pos.Value)
	}

	return fx.SetColWidth(sheet, "A", "E", 14)
}
