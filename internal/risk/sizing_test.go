package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCalculatePositionSize_CapBinds tests the reference sizing scenario:
// the raw size survives the volatility shrink but the position cap binds
func TestCalculatePositionSize_CapBinds(t *testing.T) {
	engine := NewEngine() // 2% risk per trade, 5% max position size

	// risk amount = 200, risk per unit = 2000, raw size = 0.1
	// volatility factor = 1/1.5 -> 0.0667
	// cap = 10000 * 0.05 / 50000 = 0.01 -> final 0.01
	size := engine.CalculatePositionSize(10000, 50000, 48000, 0.5)
	assert.InDelta(t, 0.01, size, 1e-9)
}

// TestCalculatePositionSize_UncappedWithVolatility tests the volatility
// shrink when the cap does not bind
func TestCalculatePositionSize_UncappedWithVolatility(t *testing.T) {
	engine := NewEngine()

	// Widen the cap so only the volatility shrink is in play
	_, err := engine.UpdateParameters(ParameterUpdate{MaxPositionSizePct: Float64(50.0)})
	assert.NoError(t, err)

	// risk amount = 200, risk per unit = 10000, raw size = 0.02
	// volatility factor = 1/1.5

	size := engine.CalculatePositionSize(10000, 50000, 40000, 0.5)
	assert.InDelta(t, 0.02/1.5, size, 1e-9)
}

// TestCalculatePositionSize_NoVolatilityAdjustmentWhenDisabled tests that
// the volatility shrink is skipped when the toggle is off
func TestCalculatePositionSize_NoVolatilityAdjustmentWhenDisabled(t *testing.T) {
	engine := NewEngine()
	_, err := engine.UpdateParameters(ParameterUpdate{
		VolatilityAdjustment: Bool(false),
		MaxPositionSizePct:   Float64(50.0),
	})
	assert.NoError(t, err)

	size := engine.CalculatePositionSize(10000, 50000, 40000, 0.5)
	assert.InDelta(t, 0.02, size, 1e-9)
}

// TestCalculatePositionSize_ZeroRiskDistance tests the degenerate case
// where entry equals stop: sizing is undefined, resolve to zero
func TestCalculatePositionSize_ZeroRiskDistance(t *testing.T) {
	engine := NewEngine()

	size := engine.CalculatePositionSize(10000, 50000, 50000, 0)
	assert.Equal(t, 0.0, size)
}

// TestCalculatePositionSize_NonPositiveBalance tests that a drained
// account sizes to zero instead of going negative
func TestCalculatePositionSize_NonPositiveBalance(t *testing.T) {
	engine := NewEngine()

	assert.Equal(t, 0.0, engine.CalculatePositionSize(0, 50000, 48000, 0))
	assert.Equal(t, 0.0, engine.CalculatePositionSize(-500, 50000, 48000, 0))
}

// TestCalculatePositionSize_MonotonicInVolatility tests that higher
// volatility never yields a larger position
func TestCalculatePositionSize_MonotonicInVolatility(t *testing.T) {
	engine := NewEngine()
	_, err := engine.UpdateParameters(ParameterUpdate{MaxPositionSizePct: Float64(100.0)})
	assert.NoError(t, err)

	previous := engine.CalculatePositionSize(10000, 50000, 40000, 0)
	for _, volatility := range []float64{0.1, 0.5, 1.0, 2.0, 5.0} {
		size := engine.CalculatePositionSize(10000, 50000, 40000, volatility)
		assert.LessOrEqual(t, size, previous, "size grew at volatility %.1f", volatility)
		assert.GreaterOrEqual(t, size, 0.0)
		previous = size
	}
}

// TestCalculatePositionSize_NeverExceedsCap tests the upper bound across a
// range of stop distances
func TestCalculatePositionSize_NeverExceedsCap(t *testing.T) {
	engine := NewEngine()

	maxSize := 10000 * (DefaultMaxPositionSizePct / 100) / 50000.0
	for _, stop := range []float64{49990, 49900, 49000, 45000, 25000} {
		size := engine.CalculatePositionSize(10000, 50000, stop, 0)
		assert.LessOrEqual(t, size, maxSize+1e-12, "cap exceeded with stop %.0f", stop)
	}
}
