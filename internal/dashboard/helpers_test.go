package dashboard

import (
	"testing"
	"time"

	"github.com/paulmach/orb"

	"github.com/nyc-taxis/dashboard/models"
)

func square(minLon, minLat, maxLon, maxLat float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{minLon, minLat}, {maxLon, minLat}, {maxLon, maxLat}, {minLon, maxLat}, {minLon, minLat},
	}}
}

func testRegions() models.RegionTable {
	return models.RegionTable{
		{Code: 1, Name: "Manhattan", Geometry: orb.MultiPolygon{square(-74.02, 40.70, -73.93, 40.88)}},
		{Code: 2, Name: "Bronx", Geometry: square(-73.93, 40.80, -73.75, 40.92)},
		{Code: 3, Name: "Brooklyn", Geometry: square(-74.05, 40.57, -73.85, 40.70)},
		{Code: 4, Name: "Queens", Geometry: square(-73.85, 40.54, -73.70, 40.80)},
		{Code: 5, Name: "Staten Island", Geometry: square(-74.25, 40.50, -74.05, 40.65)},
	}
}

func trip(region string, fare, distance float64) models.Trip {
	return models.Trip{
		Pickup:        time.Date(2019, 3, 1, 12, 0, 0, 0, time.UTC),
		PickupBorough: region,
		Fare:          fare,
		Distance:      distance,
	}
}

// scenarioSession is the two-trip Manhattan table plus an empty Brooklyn
func scenarioSession(t *testing.T) *Session {
	t.Helper()
	regions := models.RegionTable{
		{Code: 1, Name: "Manhattan", Geometry: square(-74.02, 40.70, -73.93, 40.88)},
		{Code: 3, Name: "Brooklyn", Geometry: square(-74.05, 40.57, -73.85, 40.70)},
	}
	trips := models.TripTable{
		trip("Manhattan", 10.00, 2),
		trip("Manhattan", 20.00, 4),
	}
	s, err := NewSession(trips, regions, nil, models.SourceFiles)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func defaultSession(t *testing.T, trips models.TripTable) *Session {
	t.Helper()
	s, err := NewSession(trips, testRegions(), []string{"Manhattan", "Brooklyn", "Bronx", "Queens"}, models.SourceFiles)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}
