package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/nyc-taxis/dashboard/internal/dashboard"
	"github.com/nyc-taxis/dashboard/web"
)

// MapConfig is the initial map viewport passed to the page script
type MapConfig struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Zoom    int     `json:"zoom"`
	Opacity float64 `json:"opacity"`
	Tiles   string  `json:"tiles"`
}

type pageData struct {
	*dashboard.Layout
	Map MapConfig
}

// PageHandler renders the dashboard page. The page is rendered once, since
// the layout never changes after startup.
type PageHandler struct {
	body []byte
}

// NewPageHandler renders the layout into the embedded page template
func NewPageHandler(layout *dashboard.Layout) (*PageHandler, error) {
	tmpl, err := template.New(web.IndexTemplate).Funcs(template.FuncMap{
		"timestamp": func(t time.Time) string { return t.Format("2006-01-02 15:04:05") },
	}).ParseFS(web.FS, web.IndexTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	data := pageData{
		Layout: layout,
		Map: MapConfig{
			Lat:     dashboard.MapCenterLat,
			Lon:     dashboard.MapCenterLon,
			Zoom:    dashboard.MapZoom,
			Opacity: dashboard.MapOpacity,
			Tiles:   dashboard.MapTiles,
		},
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}

	return &PageHandler{body: buf.Bytes()}, nil
}

// GetIndex handles GET /
func (h *PageHandler) GetIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.body); err != nil {
		log.Printf("Warning: failed to write page: %v", err)
	}
}
