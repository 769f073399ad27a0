package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	riskerrors "github.com/minhhoang04/crypto-risk-engine/internal/errors"
)

// TestDailyLossBreached_UnderLimit tests that a small loss does not trip
// the daily limit
func TestDailyLossBreached_UnderLimit(t *testing.T) {
	engine := NewEngine() // 5% max daily loss

	breached, err := engine.DailyLossBreached(-400, 10000)
	assert.NoError(t, err)
	assert.False(t, breached)
}

// TestDailyLossBreached_AtLimit tests the boundary: a loss exactly at the
// limit counts as breached
func TestDailyLossBreached_AtLimit(t *testing.T) {
	engine := NewEngine()

	breached, err := engine.DailyLossBreached(-500, 10000)
	assert.NoError(t, err)
	assert.True(t, breached)
}

// TestDailyLossBreached_ProfitableDay tests that a profitable day never
// breaches
func TestDailyLossBreached_ProfitableDay(t *testing.T) {
	engine := NewEngine()

	breached, err := engine.DailyLossBreached(800, 10000)
	assert.NoError(t, err)
	assert.False(t, breached)
}

// TestDailyLossBreached_ZeroBalance tests that a zero balance is rejected
func TestDailyLossBreached_ZeroBalance(t *testing.T) {
	engine := NewEngine()

	_, err := engine.DailyLossBreached(-100, 0)
	assert.Error(t, err)
	assert.True(t, riskerrors.IsInvalidInput(err))
}

// TestDrawdownBreached_UnderLimit tests a drawdown inside the allowance
func TestDrawdownBreached_UnderLimit(t *testing.T) {
	engine := NewEngine() // 15% max drawdown

	breached, err := engine.DrawdownBreached(9000, 10000)
	assert.NoError(t, err)
	assert.False(t, breached)
}

// TestDrawdownBreached_OverLimit tests a drawdown past the allowance
func TestDrawdownBreached_OverLimit(t *testing.T) {
	engine := NewEngine()

	breached, err := engine.DrawdownBreached(8000, 10000)
	assert.NoError(t, err)
	assert.True(t, breached)
}

// TestDrawdownBreached_ZeroPeakBalance tests that a zero peak balance is
// rejected as invalid input
func TestDrawdownBreached_ZeroPeakBalance(t *testing.T) {
	engine := NewEngine()

	_, err := engine.DrawdownBreached(9000, 0)
	assert.Error(t, err)
	assert.True(t, riskerrors.IsInvalidInput(err))
}

// TestCorrelatedPairs_NoneAboveThreshold tests that a weakly correlated
// matrix yields no pairs
func TestCorrelatedPairs_NoneAboveThreshold(t *testing.T) {
	engine := NewEngine()

	matrix := CorrelationMatrix{
		Symbols: []string{"BTC", "ETH", "SOL"},
		Coeffs: [][]float64{
			{1.0, 0.4, 0.3},
			{0.4, 1.0, 0.5},
			{0.3, 0.5, 1.0},
		},
	}

	pairs, err := engine.CorrelatedPairs(matrix, DefaultCorrelationThreshold)
	assert.NoError(t, err)
	assert.Empty(t, pairs)
}

// TestCorrelatedPairs_OnePairAboveThreshold tests that exactly the flagged
// pair is returned when one off-diagonal value exceeds the threshold
func TestCorrelatedPairs_OnePairAboveThreshold(t *testing.T) {
	engine := NewEngine()

	matrix := CorrelationMatrix{
		Symbols: []string{"BTC", "ETH", "SOL"},
		Coeffs: [][]float64{
			{1.0, 0.95, 0.3},
			{0.95, 1.0, 0.5},
			{0.3, 0.5, 1.0},
		},
	}

	pairs, err := engine.CorrelatedPairs(matrix, DefaultCorrelationThreshold)
	assert.NoError(t, err)
	assert.Len(t, pairs, 1)
	assert.Equal(t, "BTC", pairs[0].First)
	assert.Equal(t, "ETH", pairs[0].Second)
	assert.Equal(t, 0.95, pairs[0].Correlation)
}

// TestCorrelatedPairs_ColumnOrderIsDeterministic tests that pairs come back
// in column iteration order over the strict upper triangle
func TestCorrelatedPairs_ColumnOrderIsDeterministic(t *testing.T) {
	engine := NewEngine()

	matrix := CorrelationMatrix{
		Symbols: []string{"BTC", "ETH", "SOL"},
		Coeffs: [][]float64{
			{1.0, 0.9, 0.8},
			{0.9, 1.0, 0.85},
			{0.8, 0.85, 1.0},
		},
	}

	pairs, err := engine.CorrelatedPairs(matrix, 0.7)
	assert.NoError(t, err)
	assert.Len(t, pairs, 3)

	// Column 2 first (BTC-ETH), then column 3 top-down (BTC-SOL, ETH-SOL)
	assert.Equal(t, CorrelatedPair{"BTC", "ETH", 0.9}, pairs[0])
	assert.Equal(t, CorrelatedPair{"BTC", "SOL", 0.8}, pairs[1])
	assert.Equal(t, CorrelatedPair{"ETH", "SOL", 0.85}, pairs[2])
}

// TestCorrelatedPairs_FilterDisabled tests that the check is skipped when
// the correlation filter toggle is off
func TestCorrelatedPairs_FilterDisabled(t *testing.T) {
	engine := NewEngine()
	_, err := engine.UpdateParameters(ParameterUpdate{CorrelationFilter: Bool(false)})
	assert.NoError(t, err)

	matrix := CorrelationMatrix{
		Symbols: []string{"BTC", "ETH"},
		Coeffs: [][]float64{
			{1.0, 0.99},
			{0.99, 1.0},
		},
	}

	pairs, err := engine.CorrelatedPairs(matrix, 0.7)
	assert.NoError(t, err)
	assert.Nil(t, pairs)
}

// TestCorrelatedPairs_MalformedMatrix tests that a non-square matrix is
// rejected
func TestCorrelatedPairs_MalformedMatrix(t *testing.T) {
	engine := NewEngine()

	matrix := CorrelationMatrix{
		Symbols: []string{"BTC", "ETH"},
		Coeffs:  [][]float64{{1.0, 0.5}},
	}

	_, err := engine.CorrelatedPairs(matrix, 0.7)
	assert.Error(t, err)
	assert.True(t, riskerrors.IsInvalidInput(err))
}
