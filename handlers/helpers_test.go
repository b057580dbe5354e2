package handlers

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/paulmach/orb"

	"github.com/nyc-taxis/dashboard/internal/dashboard"
	"github.com/nyc-taxis/dashboard/models"
)

func square(minLon, minLat, maxLon, maxLat float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{minLon, minLat}, {maxLon, minLat}, {maxLon, maxLat}, {minLon, maxLat}, {minLon, minLat},
	}}
}

func testSession(t *testing.T) *dashboard.Session {
	t.Helper()
	regions := models.RegionTable{
		{Code: 1, Name: "Manhattan", Geometry: square(-74.02, 40.70, -73.93, 40.88)},
		{Code: 3, Name: "Brooklyn", Geometry: square(-74.05, 40.57, -73.85, 40.70)},
	}
	pickup := time.Date(2019, 3, 23, 20, 21, 9, 0, time.UTC)
	trips := models.TripTable{
		{Pickup: pickup, PickupBorough: "Manhattan", Fare: 10, Distance: 2},
		{Pickup: pickup.Add(time.Hour), PickupBorough: "Manhattan", Fare: 20, Distance: 4},
		{Pickup: pickup.Add(2 * time.Hour), PickupBorough: "Queens", Fare: 52, Distance: 17.5},
	}
	s, err := dashboard.NewSession(trips, regions, nil, models.SourceFiles)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func testController(t *testing.T) *dashboard.Controller {
	t.Helper()
	return dashboard.NewController(testSession(t), dashboard.WithLogger(log.New(io.Discard, "", 0)))
}
