package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

var startTime = time.Now()

// HealthChecker reports engine liveness for host processes. It is fed by
// the engine on every generated report and breach check.
type HealthChecker struct {
	mu           sync.RWMutex
	lastReport   time.Time
	lastExposure float64
	breaches     []string
}

type HealthStatus struct {
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	LastReport   time.Time `json:"last_report"`
	LastExposure float64   `json:"last_exposure_pct"`
	Uptime       string    `json:"uptime"`
	Breaches     []string  `json:"breaches,omitempty"`
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		breaches: make([]string, 0),
	}
}

// ReportGenerated records that a risk report was produced
func (h *HealthChecker) ReportGenerated(exposurePct float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastReport = time.Now()
	h.lastExposure = exposurePct
}

// BreachDetected records a risk limit breach
func (h *HealthChecker) BreachDetected(description string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.breaches = append(h.breaches, description)
	if len(h.breaches) > 20 {
		h.breaches = h.breaches[1:]
	}
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "healthy"
	if len(h.breaches) > 0 {
		status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	health := HealthStatus{
		Status:       status,
		Timestamp:    time.Now(),
		LastReport:   h.lastReport,
		LastExposure: h.lastExposure,
		Uptime:       time.Since(startTime).String(),
		Breaches:     h.breaches,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}
