package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nyc-taxis/dashboard/internal/dataset"
	"github.com/nyc-taxis/dashboard/models"
)

// ImportSource names the files an import was read from
type ImportSource struct {
	TripsPath      string
	BoundariesPath string
}

// TripArgs returns the insert arguments for a trip row, in taxi_trips column order
// after import_id and row_number
func TripArgs(t models.Trip) []interface{} {
	var dropoff *string
	if t.Dropoff != nil {
		s := t.Dropoff.UTC().Format(time.RFC3339)
		dropoff = &s
	}
	return []interface{}{
		t.Pickup.UTC().Format(time.RFC3339), dropoff, t.Passengers,
		t.Distance, t.Fare, t.Tip, t.Tolls, t.Total,
		nullString(t.Color), nullString(t.Payment),
		nullString(t.PickupZone), nullString(t.DropoffZone),
		nullString(t.PickupBorough), nullString(t.DropoffBorough),
	}
}

// ImportDataset writes trips and regions as a new import in a single transaction
// and returns the import ID
func (db *DB) ImportDataset(ctx context.Context, src ImportSource, data *dataset.Data) (string, error) {
	importID := uuid.New().String()
	importedAt := time.Now().UTC().Format(time.RFC3339)

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO dataset_imports (
			import_id, imported_at_utc, trips_source, boundaries_source, trip_count, region_count
		) VALUES (?, ?, ?, ?, ?, ?)
	`, importID, importedAt, src.TripsPath, src.BoundariesPath, len(data.Trips), len(data.Regions))
	if err != nil {
		return "", fmt.Errorf("failed to create import: %w", err)
	}

	tripStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO taxi_trips (
			import_id, row_number, pickup, dropoff, passengers, distance, fare,
			tip, tolls, total, color, payment, pickup_zone, dropoff_zone,
			pickup_borough, dropoff_borough
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare trip statement: %w", err)
	}
	defer tripStmt.Close()

	for i, t := range data.Trips {
		args := append([]interface{}{importID, i}, TripArgs(t)...)
		if _, err := tripStmt.ExecContext(ctx, args...); err != nil {
			return "", fmt.Errorf("failed to insert trip %d: %w", i, err)
		}
	}

	regionStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO boroughs (import_id, boro_code, boro_name, geometry_geojson)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare borough statement: %w", err)
	}
	defer regionStmt.Close()

	for _, r := range data.Regions {
		geom, err := dataset.EncodeGeometry(r.Geometry)
		if err != nil {
			return "", fmt.Errorf("borough %d: %w", r.Code, err)
		}
		if _, err := regionStmt.ExecContext(ctx, importID, r.Code, r.Name, geom); err != nil {
			return "", fmt.Errorf("failed to insert borough %d: %w", r.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit import: %w", err)
	}

	return importID, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
