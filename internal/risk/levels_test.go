package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	riskerrors "github.com/minhhoang04/crypto-risk-engine/internal/errors"
)

// TestStopLoss_FixedPct tests a fixed-percentage stop for a long entry
func TestStopLoss_FixedPct(t *testing.T) {
	engine := NewEngine()

	stop, err := engine.StopLoss(50000, DirectionLong, StopLossParams{FixedPct: 3.0})
	assert.NoError(t, err)
	assert.InDelta(t, 48500.0, stop, 1e-6)
}

// TestStopLoss_FixedPctShort tests a fixed-percentage stop for a short entry
func TestStopLoss_FixedPctShort(t *testing.T) {
	engine := NewEngine()

	stop, err := engine.StopLoss(50000, DirectionShort, StopLossParams{FixedPct: 3.0})
	assert.NoError(t, err)
	assert.InDelta(t, 51500.0, stop, 1e-6)
}

// TestStopLoss_ATRBased tests the ATR-derived stop distance (2x ATR)
func TestStopLoss_ATRBased(t *testing.T) {
	engine := NewEngine()

	// stop pct = 2*1000/50000*100 = 4% -> stop at 48000
	stop, err := engine.StopLoss(50000, DirectionLong, StopLossParams{ATR: 1000})
	assert.NoError(t, err)
	assert.InDelta(t, 48000.0, stop, 1e-6)
}

// TestStopLoss_FixedPctWinsOverATR tests that the fixed percentage takes
// precedence when both inputs are supplied
func TestStopLoss_FixedPctWinsOverATR(t *testing.T) {
	engine := NewEngine()

	stop, err := engine.StopLoss(50000, DirectionLong, StopLossParams{ATR: 1000, FixedPct: 3.0})
	assert.NoError(t, err)
	assert.InDelta(t, 48500.0, stop, 1e-6)
}

// TestStopLoss_DefaultPct tests the 5% fallback when neither input is supplied
func TestStopLoss_DefaultPct(t *testing.T) {
	engine := NewEngine()

	stop, err := engine.StopLoss(50000, DirectionLong, StopLossParams{})
	assert.NoError(t, err)
	assert.InDelta(t, 47500.0, stop, 1e-6)
}

// TestStopLoss_InvalidEntryPrice tests that a non-positive entry is rejected
func TestStopLoss_InvalidEntryPrice(t *testing.T) {
	engine := NewEngine()

	_, err := engine.StopLoss(0, DirectionLong, StopLossParams{})
	assert.Error(t, err)
	assert.True(t, riskerrors.IsInvalidInput(err))

	_, err = engine.StopLoss(-100, DirectionShort, StopLossParams{})
	assert.Error(t, err)
	assert.True(t, riskerrors.IsInvalidInput(err))
}

// TestStopLoss_OnCorrectSideOfEntry tests that the stop lands below a long
// entry and above a short entry
func TestStopLoss_OnCorrectSideOfEntry(t *testing.T) {
	engine := NewEngine()

	longStop, err := engine.StopLoss(100, DirectionLong, StopLossParams{ATR: 2})
	assert.NoError(t, err)
	assert.Less(t, longStop, 100.0)
	assert.Greater(t, longStop, 0.0)

	shortStop, err := engine.StopLoss(100, DirectionShort, StopLossParams{ATR: 2})
	assert.NoError(t, err)
	assert.Greater(t, shortStop, 100.0)
}

// TestTakeProfit_Long tests the profit target for a long position
func TestTakeProfit_Long(t *testing.T) {
	engine := NewEngine()

	// risk = 2000, reward = 4000 -> target 54000
	target, err := engine.TakeProfit(50000, 48000, DirectionLong, 2.0)
	assert.NoError(t, err)
	assert.InDelta(t, 54000.0, target, 1e-6)
}

// TestTakeProfit_Short tests the profit target for a short position
func TestTakeProfit_Short(t *testing.T) {
	engine := NewEngine()

	target, err := engine.TakeProfit(50000, 52000, DirectionShort, 2.0)
	assert.NoError(t, err)
	assert.InDelta(t, 46000.0, target, 1e-6)
}

// TestTakeProfit_InvalidRiskReward tests that a non-positive risk-reward
// ratio is rejected
func TestTakeProfit_InvalidRiskReward(t *testing.T) {
	engine := NewEngine()

	_, err := engine.TakeProfit(50000, 48000, DirectionLong, 0)
	assert.Error(t, err)
	assert.True(t, riskerrors.IsInvalidInput(err))

	_, err = engine.TakeProfit(50000, 48000, DirectionLong, -1.5)
	assert.Error(t, err)
	assert.True(t, riskerrors.IsInvalidInput(err))
}

// TestUpdateTrailingStop_LongFavorableMove tests that the stop tightens when
// price moves in the trade's favor
func TestUpdateTrailingStop_LongFavorableMove(t *testing.T) {
	engine := NewEngine() // trailing stop 2%

	// Price rose to 110: candidate stop = 110 * 0.98 = 107.8 > 95
	stop := engine.UpdateTrailingStop(100, 110, 95, DirectionLong)
	assert.InDelta(t, 107.8, stop, 1e-6)
}

// TestUpdateTrailingStop_LongAdverseMove tests that the stop holds when
// price reverses
func TestUpdateTrailingStop_LongAdverseMove(t *testing.T) {
	engine := NewEngine()

	// Price fell to 96: candidate stop = 94.08 < current 95, keep 95
	stop := engine.UpdateTrailingStop(100, 96, 95, DirectionLong)
	assert.Equal(t, 95.0, stop)
}

// TestUpdateTrailingStop_ShortFavorableMove tests tightening for a short
func TestUpdateTrailingStop_ShortFavorableMove(t *testing.T) {
	engine := NewEngine()

	// Price fell to 90: candidate stop = 90 * 1.02 = 91.8 < 105
	stop := engine.UpdateTrailingStop(100, 90, 105, DirectionShort)
	assert.InDelta(t, 91.8, stop, 1e-6)
}

// TestUpdateTrailingStop_ShortAdverseMove tests that the stop holds for a
// short when price rises
func TestUpdateTrailingStop_ShortAdverseMove(t *testing.T) {
	engine := NewEngine()

	stop := engine.UpdateTrailingStop(100, 104, 105, DirectionShort)
	assert.Equal(t, 105.0, stop)
}

// TestUpdateTrailingStop_RatchetIsMonotonic tests that over an arbitrary
// price path the long stop sequence never decreases and the short sequence
// never increases
func TestUpdateTrailingStop_RatchetIsMonotonic(t *testing.T) {
	engine := NewEngine()

	prices := []float64{100, 105, 103, 110, 102, 115, 90, 120}

	longStop := 95.0
	for _, price := range prices {
		next := engine.UpdateTrailingStop(100, price, longStop, DirectionLong)
		assert.GreaterOrEqual(t, next, longStop, "long stop loosened at price %.2f", price)
		longStop = next
	}

	shortStop := 105.0
	for _, price := range prices {
		next := engine.UpdateTrailingStop(100, price, shortStop, DirectionShort)
		assert.LessOrEqual(t, next, shortStop, "short stop loosened at price %.2f", price)
		shortStop = next
	}
}
