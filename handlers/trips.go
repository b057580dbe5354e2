package handlers

import (
	"net/http"
	"strconv"

	"github.com/nyc-taxis/dashboard/models"
)

// TripPager returns pages of the trip table
type TripPager interface {
	TripPage(page, size int) models.TripPageResponse
}

// TripHandler handles HTTP requests for the trip table preview
type TripHandler struct {
	pager    TripPager
	pageSize int
}

// NewTripHandler creates a new handler serving pages of pageSize rows
func NewTripHandler(pager TripPager, pageSize int) *TripHandler {
	return &TripHandler{pager: pager, pageSize: pageSize}
}

// GetTrips handles GET /api/trips?page=0
func (h *TripHandler) GetTrips(w http.ResponseWriter, r *http.Request) {
	page := 0
	if raw := r.URL.Query().Get("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 0 {
			writeError(w, http.StatusBadRequest, "Invalid page", map[string]interface{}{
				"page": raw,
			})
			return
		}
		page = p
	}

	writeJSON(w, http.StatusOK, h.pager.TripPage(page, h.pageSize))
}
