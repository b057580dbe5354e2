package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/nyc-taxis/dashboard/internal/dashboard"
	"github.com/nyc-taxis/dashboard/models"
)

// Interactor turns selections into statistics views
type Interactor interface {
	Handle(ev *models.ClickEvent) dashboard.View
	HandleLocation(lon, lat float64) dashboard.View
}

// DashboardHandler handles HTTP requests for the statistics panel
type DashboardHandler struct {
	ctrl Interactor
}

// NewDashboardHandler creates a new handler with the given controller
func NewDashboardHandler(ctrl Interactor) *DashboardHandler {
	return &DashboardHandler{ctrl: ctrl}
}

// GetStats handles GET /api/stats
// Without a code query parameter it returns the idle view
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("code")
	if raw == "" {
		writeJSON(w, http.StatusOK, h.ctrl.Handle(nil))
		return
	}

	code, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid region code", map[string]interface{}{
			"code": raw,
		})
		return
	}

	writeJSON(w, http.StatusOK, h.ctrl.Handle(&models.ClickEvent{RegionCode: code}))
}

// PostClick handles POST /api/click
// Body: {"regionCode": 1}; {} or null means no selection
func (h *DashboardHandler) PostClick(w http.ResponseWriter, r *http.Request) {
	var msg clickMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid click event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, h.ctrl.Handle(msg.event()))
}

// LocateRegion handles GET /api/regions/locate?lat=&lon=
// Selects the region containing the point
func (h *DashboardHandler) LocateRegion(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
	if latErr != nil || lonErr != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		writeError(w, http.StatusBadRequest, "Invalid coordinates", map[string]interface{}{
			"lat": q.Get("lat"),
			"lon": q.Get("lon"),
		})
		return
	}

	writeJSON(w, http.StatusOK, h.ctrl.HandleLocation(lon, lat))
}
