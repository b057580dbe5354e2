package dataset

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/nyc-taxis/dashboard/models"
)

// LoadRegions reads the borough boundaries GeoJSON at path
func LoadRegions(path string) (models.RegionTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read boundaries file: %w", err)
	}

	regions, err := ParseRegions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return regions, nil
}

// ParseRegions parses a GeoJSON FeatureCollection of boroughs.
// Every feature needs BoroCode, BoroName and a Polygon/MultiPolygon geometry
// in WGS84 lon/lat. Regions are returned sorted by code.
func ParseRegions(data []byte) (models.RegionTable, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid GeoJSON: %v", ErrMalformedInput, err)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("%w: boundaries file has no features", ErrMalformedInput)
	}

	regions := make(models.RegionTable, 0, len(fc.Features))
	for i, f := range fc.Features {
		region, err := parseRegionFeature(f)
		if err != nil {
			return nil, fmt.Errorf("%w: feature %d: %v", ErrMalformedInput, i, err)
		}
		regions = append(regions, region)
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Code < regions[j].Code
	})

	return regions, nil
}

func parseRegionFeature(f *geojson.Feature) (models.Region, error) {
	var r models.Region

	code, ok := propertyInt(f.Properties, PropCode)
	if !ok {
		return r, fmt.Errorf("missing or non-numeric %s property", PropCode)
	}
	name := strings.TrimSpace(f.Properties.MustString(PropName, ""))
	if name == "" {
		return r, fmt.Errorf("missing %s property", PropName)
	}

	switch f.Geometry.(type) {
	case orb.Polygon, orb.MultiPolygon:
	case nil:
		return r, fmt.Errorf("region %s has no geometry", name)
	default:
		return r, fmt.Errorf("region %s has unsupported geometry %s", name, f.Geometry.GeoJSONType())
	}

	if !isLonLat(f.Geometry.Bound()) {
		return r, fmt.Errorf("region %s coordinates are not WGS84 lon/lat", name)
	}

	r.Code = code
	r.Name = name
	r.Geometry = f.Geometry
	return r, nil
}

// propertyInt accepts both numeric and string codes ("1" or 1)
func propertyInt(p geojson.Properties, key string) (int, bool) {
	switch v := p[key].(type) {
	case float64:
		return int(v), v == float64(int(v))
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}

func isLonLat(b orb.Bound) bool {
	return b.Min.Lon() >= -180 && b.Max.Lon() <= 180 &&
		b.Min.Lat() >= -90 && b.Max.Lat() <= 90
}
