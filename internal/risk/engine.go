package risk

import (
	"sync"

	"github.com/minhhoang04/crypto-risk-engine/internal/logger"
	"github.com/minhhoang04/crypto-risk-engine/internal/monitoring"
)

// Engine is the risk-control layer between a strategy signal generator and
// the order-execution layer. It owns the live RiskParameters; every
// calculation reads an immutable snapshot, and updates go through
// UpdateParameters under a single-writer discipline. All calculation
// methods are safe for concurrent use.
type Engine struct {
	mu     sync.RWMutex
	params RiskParameters
	log    *logger.Logger
	health *monitoring.HealthChecker
}

// NewEngine creates a risk engine with default parameters
func NewEngine() *Engine {
	return &Engine{
		params: DefaultRiskParameters(),
	}
}

// NewEngineWithParameters creates a risk engine with operator-supplied
// parameters, validating the invariants first
func NewEngineWithParameters(params RiskParameters) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Engine{params: params}, nil
}

// SetLogger attaches a file logger for risk events. A nil logger disables
// event logging.
func (e *Engine) SetLogger(l *logger.Logger) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log = l
}

// SetHealthChecker attaches a health checker fed on report generation and
// breach detection
func (e *Engine) SetHealthChecker(h *monitoring.HealthChecker) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.health = h
}

// Parameters returns a snapshot of the current risk parameters
func (e *Engine) Parameters() RiskParameters {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.params
}

// UpdateParameters merges the partial update into the current parameters.
// Fields left nil keep their prior value. The merged result is validated
// before it is committed; on failure the prior parameters stay in effect.
// Returns the committed parameters.
func (e *Engine) UpdateParameters(update ParameterUpdate) (RiskParameters, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	merged := update.applyTo(e.params)
	if err := merged.Validate(); err != nil {
		return e.params, err
	}

	e.params = merged
	monitoring.RecordParameterUpdate()

	if e.log != nil {
		e.log.Param("Parameters updated: size=%.2f%% risk=%.2f%% daily=%.2f%% dd=%.2f%% trail=%.2f%% positions=%d",
			merged.MaxPositionSizePct, merged.MaxRiskPerTradePct, merged.MaxDailyLossPct,
			merged.MaxDrawdownPct, merged.TrailingStopPct, merged.MaxOpenPositions)
	}

	return merged, nil
}

// logRisk logs a risk event when a logger is attached
func (e *Engine) logRisk(format string, args ...interface{}) {
	e.mu.RLock()
	l := e.log
	e.mu.RUnlock()

	if l != nil {
		l.Risk(format, args...)
	}
}

// healthChecker returns the attached health checker, if any
func (e *Engine) healthChecker() *monitoring.HealthChecker {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.health
}
