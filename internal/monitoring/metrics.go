package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Portfolio metrics
	exposurePct = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "risk_engine_exposure_pct",
			Help: "Open position exposure as percentage of account balance",
		},
	)

	riskStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "risk_engine_risk_status",
			Help: "Current risk status (1 for the active status, 0 otherwise)",
		},
		[]string{"status"},
	)

	// Regime metrics
	regimeRiskFactor = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "risk_engine_regime_risk_factor",
			Help: "Risk scaling factor from the last market regime assessment",
		},
	)

	// Limit breach metrics
	breachesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risk_engine_breaches_total",
			Help: "Total number of risk limit breaches detected",
		},
		[]string{"type"},
	)

	// Parameter metrics
	parameterUpdatesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "risk_engine_parameter_updates_total",
			Help: "Total number of committed risk parameter updates",
		},
	)
)

func init() {
	// Register metrics
	prometheus.MustRegister(exposurePct)
	prometheus.MustRegister(riskStatus)
	prometheus.MustRegister(regimeRiskFactor)
	prometheus.MustRegister(breachesTotal)
	prometheus.MustRegister(parameterUpdatesTotal)
}

// MetricsHandler handles the Prometheus metrics endpoint for host processes
// that embed the engine
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordExposure records exposure and risk status from a generated report
func RecordExposure(pct float64, status string) {
	exposurePct.Set(pct)
	for _, s := range []string{"Low", "Medium", "High"} {
		value := 0.0
		if s == status {
			value = 1.0
		}
		riskStatus.WithLabelValues(s).Set(value)
	}
}

// RecordRegimeAssessment records the risk factor of a regime assessment
func RecordRegimeAssessment(riskFactor float64) {
	regimeRiskFactor.Set(riskFactor)
}

// RecordBreach records a risk limit breach (daily_loss or drawdown)
func RecordBreach(breachType string) {
	breachesTotal.WithLabelValues(breachType).Inc()
}

// RecordParameterUpdate records a committed parameter update
func RecordParameterUpdate() {
	parameterUpdatesTotal.Inc()
}
