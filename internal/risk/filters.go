package risk

import (
	"fmt"

	riskerrors "github.com/minhhoang04/crypto-risk-engine/internal/errors"
	"github.com/minhhoang04/crypto-risk-engine/internal/monitoring"
)

// DefaultCorrelationThreshold flags asset pairs as too correlated to hold
// simultaneously
const DefaultCorrelationThreshold = 0.7

// CorrelationMatrix is a symmetric correlation matrix keyed by asset
// symbol. Symbols defines the row/column order; Coeffs must be square and
// aligned with it.
type CorrelationMatrix struct {
	Symbols []string
	Coeffs  [][]float64
}

// CorrelatedPair is an unordered pair of assets whose correlation exceeds
// the filter threshold
type CorrelatedPair struct {
	First       string
	Second      string
	Correlation float64
}

// DailyLossBreached reports whether the day's loss has reached the
// MaxDailyLossPct limit.
func (e *Engine) DailyLossBreached(dailyPnL, accountBalance float64) (bool, error) {
	if accountBalance == 0 {
		return false, riskerrors.NewInvalidInputError("risk", "daily_loss_breached",
			"account balance must be non-zero")
	}

	params := e.Parameters()
	dailyLossPct := (dailyPnL / accountBalance) * 100

	breached := dailyLossPct <= -params.MaxDailyLossPct
	if breached {
		monitoring.RecordBreach("daily_loss")
		e.logRisk("Daily loss limit breached: %.2f%% against limit %.2f%%", dailyLossPct, params.MaxDailyLossPct)
		if h := e.healthChecker(); h != nil {
			h.BreachDetected(fmt.Sprintf("daily loss %.2f%%", dailyLossPct))
		}
	}

	return breached, nil
}

// DrawdownBreached reports whether the drawdown from the peak balance has
// reached the MaxDrawdownPct limit.
func (e *Engine) DrawdownBreached(currentBalance, peakBalance float64) (bool, error) {
	if peakBalance == 0 {
		return false, riskerrors.NewInvalidInputError("risk", "drawdown_breached",
			"peak balance must be non-zero")
	}

	params := e.Parameters()
	drawdownPct := ((currentBalance - peakBalance) / peakBalance) * 100

	breached := drawdownPct <= -params.MaxDrawdownPct
	if breached {
		monitoring.RecordBreach("drawdown")
		e.logRisk("Drawdown limit breached: %.2f%% against limit %.2f%%", drawdownPct, params.MaxDrawdownPct)
		if h := e.healthChecker(); h != nil {
			h.BreachDetected(fmt.Sprintf("drawdown %.2f%%", drawdownPct))
		}
	}

	return breached, nil
}

// CorrelatedPairs scans the strict upper triangle of the matrix and
// returns every pair whose correlation exceeds the threshold, in column
// iteration order so the result is deterministic. A threshold <= 0 falls
// back to DefaultCorrelationThreshold. Returns nil when the correlation
// filter is disabled.
func (e *Engine) CorrelatedPairs(matrix CorrelationMatrix, threshold float64) ([]CorrelatedPair, error) {
	if !e.Parameters().CorrelationFilter {
		return nil, nil
	}

	n := len(matrix.Symbols)
	if len(matrix.Coeffs) != n {
		return nil, riskerrors.NewInvalidInputError("risk", "correlated_pairs",
			fmt.Sprintf("matrix has %d rows for %d symbols", len(matrix.Coeffs), n))
	}
	for i, row := range matrix.Coeffs {
		if len(row) != n {
			return nil, riskerrors.NewInvalidInputError("risk", "correlated_pairs",
				fmt.Sprintf("row %d has %d columns, want %d", i, len(row), n))
		}
	}

	if threshold <= 0 {
		threshold = DefaultCorrelationThreshold
	}

	var pairs []CorrelatedPair
	for col := 1; col < n; col++ {
		for row := 0; row < col; row++ {
			if matrix.Coeffs[row][col] > threshold {
				pairs = append(pairs, CorrelatedPair{
					First:       matrix.Symbols[row],
					Second:      matrix.Symbols[col],
					Correlation: matrix.Coeffs[row][col],
				})
			}
		}
	}

	return pairs, nil
}
