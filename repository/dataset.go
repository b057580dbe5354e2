package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nyc-taxis/dashboard/internal/dataset"
	"github.com/nyc-taxis/dashboard/models"
)

// datasetReader is implemented by the SQLite and Postgres repositories
type datasetReader interface {
	LatestImport(ctx context.Context) (*models.Import, error)
	LoadTrips(ctx context.Context, importID string) (models.TripTable, error)
	LoadRegions(ctx context.Context, importID string) (models.RegionTable, error)
}

func loadLatest(ctx context.Context, r datasetReader) (*dataset.Data, *models.Import, error) {
	imp, err := r.LatestImport(ctx)
	if err != nil {
		return nil, nil, err
	}

	trips, err := r.LoadTrips(ctx, imp.ImportID)
	if err != nil {
		return nil, nil, err
	}

	regions, err := r.LoadRegions(ctx, imp.ImportID)
	if err != nil {
		return nil, nil, err
	}
	if len(regions) == 0 {
		return nil, nil, fmt.Errorf("%w: import %s has no boroughs", dataset.ErrMalformedInput, imp.ImportID)
	}

	return &dataset.Data{Trips: trips, Regions: regions}, imp, nil
}

// tripRow holds the nullable columns of a taxi_trips row
type tripRow struct {
	pickup         string
	dropoff        *string
	passengers     *int
	distance       float64
	fare           float64
	tip            *float64
	tolls          *float64
	total          *float64
	color          sql.NullString
	payment        sql.NullString
	pickupZone     sql.NullString
	dropoffZone    sql.NullString
	pickupBorough  sql.NullString
	dropoffBorough sql.NullString
}

func (row tripRow) toTrip() (models.Trip, error) {
	pickup := parseTimeString(&row.pickup)
	if pickup == nil {
		return models.Trip{}, fmt.Errorf("%w: invalid stored pickup %q", dataset.ErrMalformedInput, row.pickup)
	}

	return models.Trip{
		Pickup:         *pickup,
		PickupBorough:  row.pickupBorough.String,
		Fare:           row.fare,
		Distance:       row.distance,
		Dropoff:        parseTimeString(row.dropoff),
		Passengers:     row.passengers,
		Tip:            row.tip,
		Tolls:          row.tolls,
		Total:          row.total,
		Color:          row.color.String,
		Payment:        row.payment.String,
		PickupZone:     row.pickupZone.String,
		DropoffZone:    row.dropoffZone.String,
		DropoffBorough: row.dropoffBorough.String,
	}, nil
}

// parseTimeString converts an RFC3339 string to *time.Time
// Returns nil if the input is nil or empty
func parseTimeString(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}
