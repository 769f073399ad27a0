package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/minhhoang04/crypto-risk-engine/internal/risk"
)

// RiskConfig is the operator-facing configuration for the risk engine.
// Files may be JSON or YAML; individual fields can be overridden with
// RISK_* environment variables.
type RiskConfig struct {
	MaxPositionSizePct   float64 `json:"max_position_size_pct" yaml:"max_position_size_pct"`
	MaxRiskPerTradePct   float64 `json:"max_risk_per_trade_pct" yaml:"max_risk_per_trade_pct"`
	MaxDailyLossPct      float64 `json:"max_daily_loss_pct" yaml:"max_daily_loss_pct"`
	MaxDrawdownPct       float64 `json:"max_drawdown_pct" yaml:"max_drawdown_pct"`
	TrailingStopPct      float64 `json:"trailing_stop_pct" yaml:"trailing_stop_pct"`
	MaxOpenPositions     int     `json:"max_open_positions" yaml:"max_open_positions"`
	VolatilityAdjustment *bool   `json:"volatility_adjustment,omitempty" yaml:"volatility_adjustment,omitempty"`
	CorrelationFilter    *bool   `json:"correlation_filter,omitempty" yaml:"correlation_filter,omitempty"`
}

// DefaultRiskConfig returns a config mirroring the engine defaults
func DefaultRiskConfig() *RiskConfig {
	params := risk.DefaultRiskParameters()
	return &RiskConfig{
		MaxPositionSizePct:   params.MaxPositionSizePct,
		MaxRiskPerTradePct:   params.MaxRiskPerTradePct,
		MaxDailyLossPct:      params.MaxDailyLossPct,
		MaxDrawdownPct:       params.MaxDrawdownPct,
		TrailingStopPct:      params.TrailingStopPct,
		MaxOpenPositions:     params.MaxOpenPositions,
		VolatilityAdjustment: boolPtr(params.VolatilityAdjustment),
		CorrelationFilter:    boolPtr(params.CorrelationFilter),
	}
}

// LoadEnvFile loads environment variables from a file before config
// resolution. A missing file is not an error; the system environment is
// used as-is.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}

// Load reads a risk configuration file, chooses the decoder from the file
// extension, applies environment overrides, and validates the result.
// An empty path yields the defaults with environment overrides applied.
func Load(path string) (*RiskConfig, error) {
	cfg := DefaultRiskConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
			}
		default:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse JSON config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Parameters().Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parameters converts the configuration into engine risk parameters
func (c *RiskConfig) Parameters() risk.RiskParameters {
	params := risk.RiskParameters{
		MaxPositionSizePct:   c.MaxPositionSizePct,
		MaxRiskPerTradePct:   c.MaxRiskPerTradePct,
		MaxDailyLossPct:      c.MaxDailyLossPct,
		MaxDrawdownPct:       c.MaxDrawdownPct,
		TrailingStopPct:      c.TrailingStopPct,
		MaxOpenPositions:     c.MaxOpenPositions,
		VolatilityAdjustment: true,
		CorrelationFilter:    true,
	}
	if c.VolatilityAdjustment != nil {
		params.VolatilityAdjustment = *c.VolatilityAdjustment
	}
	if c.CorrelationFilter != nil {
		params.CorrelationFilter = *c.CorrelationFilter
	}
	return params
}

// applyEnvOverrides overrides individual fields from RISK_* environment
// variables
func (c *RiskConfig) applyEnvOverrides() {
	if v, ok := envFloat("RISK_MAX_POSITION_SIZE_PCT"); ok {
		c.MaxPositionSizePct = v
	}
	if v, ok := envFloat("RISK_MAX_RISK_PER_TRADE_PCT"); ok {
		c.MaxRiskPerTradePct = v
	}
	if v, ok := envFloat("RISK_MAX_DAILY_LOSS_PCT"); ok {
		c.MaxDailyLossPct = v
	}
	if v, ok := envFloat("RISK_MAX_DRAWDOWN_PCT"); ok {
		c.MaxDrawdownPct = v
	}
	if v, ok := envFloat("RISK_TRAILING_STOP_PCT"); ok {
		c.TrailingStopPct = v
	}
	if v, ok := envInt("RISK_MAX_OPEN_POSITIONS"); ok {
		c.MaxOpenPositions = v
	}
	if v, ok := envBool("RISK_VOLATILITY_ADJUSTMENT"); ok {
		c.VolatilityAdjustment = boolPtr(v)
	}
	if v, ok := envBool("RISK_CORRELATION_FILTER"); ok {
		c.CorrelationFilter = boolPtr(v)
	}
}

func envFloat(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envBool(key string) (bool, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

func boolPtr(v bool) *bool { return &v }
