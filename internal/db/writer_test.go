package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/paulmach/orb"

	"github.com/nyc-taxis/dashboard/internal/dataset"
	"github.com/nyc-taxis/dashboard/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Connect(filepath.Join(t.TempDir(), "taxis.db"))
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := database.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	return database
}

func testData() *dataset.Data {
	passengers := 2
	tip := 1.5
	dropoff := time.Date(2019, 3, 1, 12, 20, 0, 0, time.UTC)
	return &dataset.Data{
		Trips: models.TripTable{
			{
				Pickup:        time.Date(2019, 3, 1, 12, 0, 0, 0, time.UTC),
				Dropoff:       &dropoff,
				PickupBorough: "Manhattan",
				Fare:          12.5,
				Distance:      2.1,
				Passengers:    &passengers,
				Tip:           &tip,
				Color:         "yellow",
			},
			{
				Pickup:   time.Date(2019, 3, 2, 8, 30, 0, 0, time.UTC),
				Fare:     7,
				Distance: 0.9,
			},
		},
		Regions: models.RegionTable{
			{Code: 1, Name: "Manhattan", Geometry: orb.Polygon{orb.Ring{{-74, 40.7}, {-73.9, 40.7}, {-73.9, 40.8}, {-74, 40.7}}}},
		},
	}
}

func countRows(t *testing.T, database *DB, table string) int {
	t.Helper()
	var n int
	if err := database.Conn().QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s failed: %v", table, err)
	}
	return n
}

func TestImportDataset(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	importID, err := database.ImportDataset(ctx, ImportSource{TripsPath: "taxis.csv", BoundariesPath: "nybb.geojson"}, testData())
	if err != nil {
		t.Fatalf("ImportDataset failed: %v", err)
	}
	if importID == "" {
		t.Fatal("import id is empty")
	}

	if got := countRows(t, database, "taxi_trips"); got != 2 {
		t.Errorf("taxi_trips rows = %d, want 2", got)
	}
	if got := countRows(t, database, "boroughs"); got != 1 {
		t.Errorf("boroughs rows = %d, want 1", got)
	}

	var tripCount, regionCount int
	var tripsSource string
	err = database.Conn().QueryRow(
		`SELECT trip_count, region_count, trips_source FROM dataset_imports WHERE import_id = ?`, importID,
	).Scan(&tripCount, &regionCount, &tripsSource)
	if err != nil {
		t.Fatalf("query import failed: %v", err)
	}
	if tripCount != 2 || regionCount != 1 || tripsSource != "taxis.csv" {
		t.Errorf("import = (%d, %d, %q), want (2, 1, taxis.csv)", tripCount, regionCount, tripsSource)
	}

	// Empty optional values are stored as NULL
	var nullBoroughs int
	if err := database.Conn().QueryRow(`SELECT COUNT(*) FROM taxi_trips WHERE pickup_borough IS NULL`).Scan(&nullBoroughs); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if nullBoroughs != 1 {
		t.Errorf("NULL pickup_borough rows = %d, want 1", nullBoroughs)
	}
}

func TestPruneImports(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	var lastID string
	for i := 0; i < 3; i++ {
		id, err := database.ImportDataset(ctx, ImportSource{}, testData())
		if err != nil {
			t.Fatalf("ImportDataset %d failed: %v", i, err)
		}
		lastID = id
	}

	if err := database.PruneImports(ctx, 1); err != nil {
		t.Fatalf("PruneImports failed: %v", err)
	}

	if got := countRows(t, database, "dataset_imports"); got != 1 {
		t.Fatalf("imports = %d, want 1", got)
	}
	var kept string
	if err := database.Conn().QueryRow(`SELECT import_id FROM dataset_imports`).Scan(&kept); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if kept != lastID {
		t.Errorf("kept import %s, want newest %s", kept, lastID)
	}

	// Cascade removes the rows of pruned imports
	if got := countRows(t, database, "taxi_trips"); got != 2 {
		t.Errorf("taxi_trips rows = %d, want 2", got)
	}
	if got := countRows(t, database, "boroughs"); got != 1 {
		t.Errorf("boroughs rows = %d, want 1", got)
	}
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	database := setupTestDB(t)
	if err := database.EnsureSchema(context.Background()); err != nil {
		t.Errorf("second EnsureSchema failed: %v", err)
	}
}
