package handlers

import (
	"net/http"
	"time"

	"github.com/nyc-taxis/dashboard/models"
)

// DatasetDescriber reports the loaded dataset
type DatasetDescriber interface {
	Info() models.DatasetInfo
}

// HealthHandler handles liveness endpoints
type HealthHandler struct {
	dataset DatasetDescriber
	started time.Time
}

// NewHealthHandler creates a new handler; uptime is measured from now
func NewHealthHandler(dataset DatasetDescriber) *HealthHandler {
	return &HealthHandler{dataset: dataset, started: time.Now()}
}

// GetHealth handles GET /health
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	// The session is immutable and never empty, so a running server is healthy
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    models.StatusOK,
		Dataset:   h.dataset.Info(),
		Uptime:    time.Since(h.started).Round(time.Second).String(),
		Timestamp: time.Now().UTC(),
	})
}

// Healthz handles GET /healthz
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Ping handles GET /api/ping
func Ping(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
