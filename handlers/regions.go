package handlers

import (
	"net/http"

	"github.com/paulmach/orb/geojson"
)

// RegionHandler serves the choropleth boundaries
type RegionHandler struct {
	choropleth *geojson.FeatureCollection
}

// NewRegionHandler creates a handler for a choropleth built at layout time
func NewRegionHandler(choropleth *geojson.FeatureCollection) *RegionHandler {
	return &RegionHandler{choropleth: choropleth}
}

// GetRegions handles GET /api/regions
func (h *RegionHandler) GetRegions(w http.ResponseWriter, r *http.Request) {
	data, err := h.choropleth.MarshalJSON()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode regions", nil)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
