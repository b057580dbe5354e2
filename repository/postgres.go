package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nyc-taxis/dashboard/internal/dataset"
	"github.com/nyc-taxis/dashboard/internal/db"
	"github.com/nyc-taxis/dashboard/models"
)

// PostgresDatasetRepository stores and reads the dataset in Postgres
type PostgresDatasetRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresDatasetRepository connects to databaseURL
func NewPostgresDatasetRepository(ctx context.Context, databaseURL string) (*PostgresDatasetRepository, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresDatasetRepository{pool: pool}, nil
}

func (r *PostgresDatasetRepository) Close() {
	r.pool.Close()
}

// EnsureSchema applies the shared dataset schema
func (r *PostgresDatasetRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, db.SchemaSQL()); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// ImportDataset bulk-loads trips and regions as a new import and removes
// older imports in the same transaction
func (r *PostgresDatasetRepository) ImportDataset(ctx context.Context, src db.ImportSource, data *dataset.Data) (string, error) {
	importID := uuid.New().String()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO dataset_imports (
			import_id, imported_at_utc, trips_source, boundaries_source, trip_count, region_count
		) VALUES ($1, $2, $3, $4, $5, $6)
	`, importID, time.Now().UTC().Format(time.RFC3339), src.TripsPath, src.BoundariesPath, len(data.Trips), len(data.Regions))
	if err != nil {
		return "", fmt.Errorf("failed to create import: %w", err)
	}

	tripRows := make([][]interface{}, 0, len(data.Trips))
	for i, t := range data.Trips {
		tripRows = append(tripRows, append([]interface{}{importID, i}, db.TripArgs(t)...))
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"taxi_trips"},
		[]string{
			"import_id", "row_number", "pickup", "dropoff", "passengers", "distance", "fare",
			"tip", "tolls", "total", "color", "payment", "pickup_zone", "dropoff_zone",
			"pickup_borough", "dropoff_borough",
		},
		pgx.CopyFromRows(tripRows),
	)
	if err != nil {
		return "", fmt.Errorf("failed to copy trips: %w", err)
	}

	for _, region := range data.Regions {
		geom, err := dataset.EncodeGeometry(region.Geometry)
		if err != nil {
			return "", fmt.Errorf("borough %d: %w", region.Code, err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO boroughs (import_id, boro_code, boro_name, geometry_geojson)
			VALUES ($1, $2, $3, $4)
		`, importID, region.Code, region.Name, geom)
		if err != nil {
			return "", fmt.Errorf("failed to insert borough %d: %w", region.Code, err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM dataset_imports WHERE import_id <> $1`, importID); err != nil {
		return "", fmt.Errorf("failed to prune imports: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit import: %w", err)
	}

	return importID, nil
}

// LatestImport returns the most recent import
func (r *PostgresDatasetRepository) LatestImport(ctx context.Context) (*models.Import, error) {
	query := `
		SELECT import_id, imported_at_utc, trip_count, region_count
		FROM dataset_imports
		ORDER BY imported_at_utc DESC
		LIMIT 1
	`

	var imp models.Import
	var importedAt string
	err := r.pool.QueryRow(ctx, query).Scan(&imp.ImportID, &importedAt, &imp.TripCount, &imp.RegionCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoImport
		}
		return nil, fmt.Errorf("failed to query latest import: %w", err)
	}

	if t := parseTimeString(&importedAt); t != nil {
		imp.ImportedAt = *t
	}
	return &imp, nil
}

// LoadTrips returns the trips of an import in file order
func (r *PostgresDatasetRepository) LoadTrips(ctx context.Context, importID string) (models.TripTable, error) {
	query := `
		SELECT
			pickup, dropoff, passengers, distance, fare, tip, tolls, total,
			color, payment, pickup_zone, dropoff_zone, pickup_borough, dropoff_borough
		FROM taxi_trips
		WHERE import_id = $1
		ORDER BY row_number
	`

	rows, err := r.pool.Query(ctx, query, importID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	trips := models.TripTable{}
	for rows.Next() {
		var row tripRow
		err := rows.Scan(
			&row.pickup, &row.dropoff, &row.passengers, &row.distance, &row.fare,
			&row.tip, &row.tolls, &row.total, &row.color, &row.payment,
			&row.pickupZone, &row.dropoffZone, &row.pickupBorough, &row.dropoffBorough,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip row: %w", err)
		}

		trip, err := row.toTrip()
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trip rows: %w", err)
	}

	return trips, nil
}

// LoadRegions returns the boroughs of an import ordered by code
func (r *PostgresDatasetRepository) LoadRegions(ctx context.Context, importID string) (models.RegionTable, error) {
	query := `
		SELECT boro_code, boro_name, geometry_geojson
		FROM boroughs
		WHERE import_id = $1
		ORDER BY boro_code
	`

	rows, err := r.pool.Query(ctx, query, importID)
	if err != nil {
		return nil, fmt.Errorf("failed to query boroughs: %w", err)
	}
	defer rows.Close()

	regions := models.RegionTable{}
	for rows.Next() {
		var region models.Region
		var geom string
		if err := rows.Scan(&region.Code, &region.Name, &geom); err != nil {
			return nil, fmt.Errorf("failed to scan borough row: %w", err)
		}
		region.Geometry, err = dataset.DecodeGeometry(geom)
		if err != nil {
			return nil, fmt.Errorf("borough %d: %w", region.Code, err)
		}
		regions = append(regions, region)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating borough rows: %w", err)
	}

	return regions, nil
}

// LoadLatest loads trips and regions of the most recent import
func (r *PostgresDatasetRepository) LoadLatest(ctx context.Context) (*dataset.Data, *models.Import, error) {
	return loadLatest(ctx, r)
}
