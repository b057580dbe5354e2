package dataset

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// EncodeGeometry serialises a region geometry as a GeoJSON geometry object
// for storage in a text column
func EncodeGeometry(g orb.Geometry) (string, error) {
	data, err := geojson.NewGeometry(g).MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("failed to encode geometry: %w", err)
	}
	return string(data), nil
}

// DecodeGeometry is the inverse of EncodeGeometry
func DecodeGeometry(s string) (orb.Geometry, error) {
	g, err := geojson.UnmarshalGeometry([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid stored geometry: %v", ErrMalformedInput, err)
	}
	switch g.Geometry().(type) {
	case orb.Polygon, orb.MultiPolygon:
		return g.Geometry(), nil
	}
	return nil, fmt.Errorf("%w: stored geometry is %s, want Polygon or MultiPolygon", ErrMalformedInput, g.Type)
}
