package dashboard

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/nyc-taxis/dashboard/models"
)

// ErrInvalidSelection is returned when a click refers to a region that is
// not in the session's region table
var ErrInvalidSelection = errors.New("invalid selection")

// ResolveRegion maps a clicked region code to its region name
func (s *Session) ResolveRegion(code int) (string, error) {
	i, ok := s.byCode[code]
	if !ok {
		return "", fmt.Errorf("%w: unknown region code %d", ErrInvalidSelection, code)
	}
	return s.regions[i].Name, nil
}

// LocateRegion returns the region whose polygon contains the lon/lat point
func (s *Session) LocateRegion(lon, lat float64) (models.Region, error) {
	pt := orb.Point{lon, lat}
	for _, r := range s.regions {
		if r.Geometry == nil || !r.Geometry.Bound().Contains(pt) {
			continue
		}
		if geometryContains(r.Geometry, pt) {
			return r, nil
		}
	}
	return models.Region{}, fmt.Errorf("%w: no region contains point (%f, %f)", ErrInvalidSelection, lon, lat)
}

func geometryContains(g orb.Geometry, pt orb.Point) bool {
	switch geom := g.(type) {
	case orb.Polygon:
		return planar.PolygonContains(geom, pt)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(geom, pt)
	}
	return false
}
