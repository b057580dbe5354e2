package dataset

import (
	"log"
)

// LoadFiles loads the trips CSV and the boundaries GeoJSON.
// Any error is a startup fault.
func LoadFiles(tripsPath, boundariesPath string) (*Data, error) {
	trips, err := LoadTrips(tripsPath)
	if err != nil {
		return nil, err
	}

	regions, err := LoadRegions(boundariesPath)
	if err != nil {
		return nil, err
	}

	log.Printf("Dataset parsed: %d trips, %d regions", len(trips), len(regions))
	return &Data{Trips: trips, Regions: regions}, nil
}
