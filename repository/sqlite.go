package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nyc-taxis/dashboard/internal/dataset"
	"github.com/nyc-taxis/dashboard/models"

	_ "modernc.org/sqlite"
)

// ErrNoImport is returned when the database holds no imported dataset
var ErrNoImport = errors.New("no dataset imported")

// SQLiteDB wraps a read-only SQL database connection for SQLite
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens an existing SQLite dataset database
func NewSQLiteDB(dbPath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_pragma=query_only(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database connection
func (s *SQLiteDB) GetDB() *sql.DB {
	return s.db
}

// SQLiteDatasetRepository reads the latest imported dataset from SQLite
type SQLiteDatasetRepository struct {
	db *sql.DB
}

// NewSQLiteDatasetRepository creates a new SQLiteDatasetRepository
func NewSQLiteDatasetRepository(db *sql.DB) *SQLiteDatasetRepository {
	return &SQLiteDatasetRepository{db: db}
}

// LatestImport returns the most recent import
func (r *SQLiteDatasetRepository) LatestImport(ctx context.Context) (*models.Import, error) {
	query := `
		SELECT import_id, imported_at_utc, trip_count, region_count
		FROM dataset_imports
		ORDER BY imported_at_utc DESC, rowid DESC
		LIMIT 1
	`

	var imp models.Import
	var importedAt string
	err := r.db.QueryRowContext(ctx, query).Scan(&imp.ImportID, &importedAt, &imp.TripCount, &imp.RegionCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
func (r *SQLiteDatasetRepository) LoadTrips(ctx context.Context, importID string) (models.TripTable, error) {
	query := `
		SELECT
			pickup, dropoff, passengers, distance, fare, tip, tolls, total,
			color, payment, pickup_zone, dropoff_zone, pickup_borough, dropoff_borough
		FROM taxi_trips
		WHERE import_id = ?
		ORDER BY row_number
	`

	rows, err := r.db.QueryContext(ctx, query, importID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	trips := models.TripTable{}
	for rows.Next() {
		var row tripRow
		// SQLite stores timestamps as RFC3339 strings
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
func (r *SQLiteDatasetRepository) LoadRegions(ctx context.Context, importID string) (models.RegionTable, error) {
	query := `
		SELECT boro_code, boro_name, geometry_geojson
		FROM boroughs
		WHERE import_id = ?
		ORDER BY boro_code
	`

	rows, err := r.db.QueryContext(ctx, query, importID)
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
func (r *SQLiteDatasetRepository) LoadLatest(ctx context.Context) (*dataset.Data, *models.Import, error) {
	return loadLatest(ctx, r)
}
