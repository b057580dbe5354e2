package dashboard

import (
	"github.com/paulmach/orb/geojson"

	"github.com/nyc-taxis/dashboard/models"
)

// Map defaults of the choropleth
const (
	MapCenterLat = 40.7128
	MapCenterLon = -74.0060
	MapZoom      = 9
	MapOpacity   = 0.5
	MapTiles     = "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png"
)

// regionPalette colours regions by name, in region table order
var regionPalette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Layout is built once at startup and does not change afterwards
type Layout struct {
	Title      string
	Heading    string
	Choropleth *geojson.FeatureCollection
	Preview    models.TripPageResponse
	Idle       View
}

// BuildLayout prepares the choropleth and the first page of the trip table
func (s *Session) BuildLayout(pageSize int) *Layout {
	return &Layout{
		Title:      "Taxis Dashboard",
		Heading:    "NYC Taxi Dashboard",
		Choropleth: s.Choropleth(),
		Preview:    s.TripPage(0, pageSize),
		Idle:       IdleView(),
	}
}

// Choropleth returns the regions as a FeatureCollection keyed by BoroCode
func (s *Session) Choropleth() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, r := range s.regions {
		f := geojson.NewFeature(r.Geometry)
		f.ID = r.Code
		f.Properties["BoroCode"] = r.Code
		f.Properties["BoroName"] = r.Name
		f.Properties["color"] = regionPalette[i%len(regionPalette)]
		fc.Append(f)
	}
	return fc
}

// TripPage returns one page of the trip table
func (s *Session) TripPage(page, size int) models.TripPageResponse {
	rows := s.trips.Page(page, size)
	return models.TripPageResponse{
		Trips:     rows,
		Page:      page,
		PageSize:  size,
		PageCount: s.trips.PageCount(size),
		Total:     len(s.trips),
	}
}
