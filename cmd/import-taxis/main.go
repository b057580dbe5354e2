package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/nyc-taxis/dashboard/internal/config"
	"github.com/nyc-taxis/dashboard/internal/dataset"
	"github.com/nyc-taxis/dashboard/internal/db"
	"github.com/nyc-taxis/dashboard/repository"
)

type options struct {
	dbPath         string
	tripsPath      string
	boundariesPath string
	databaseURL    string
	keep           int
	skipSQLite     bool
}

func main() {
	config.LoadEnvFiles(".")
	cfg := config.Load()

	// Command line flags, defaulting to the environment configuration
	var opts options
	flag.StringVar(&opts.dbPath, "db", cfg.SQLitePath, "Path to SQLite database")
	flag.StringVar(&opts.tripsPath, "trips", cfg.TripsCSV, "Trips CSV file")
	flag.StringVar(&opts.boundariesPath, "boundaries", cfg.BoundariesGeoJSON, "Borough boundaries GeoJSON file")
	flag.StringVar(&opts.databaseURL, "database-url", cfg.DatabaseURL, "If set, also import into this Postgres database")
	flag.IntVar(&opts.keep, "keep", 1, "Number of SQLite imports to keep")
	flag.BoolVar(&opts.skipSQLite, "skip-sqlite", false, "Only import into Postgres")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	log.Println("Import complete!")
}

func run(ctx context.Context, opts options) error {
	data, err := dataset.LoadFiles(opts.tripsPath, opts.boundariesPath)
	if err != nil {
		return err
	}
	src := db.ImportSource{TripsPath: opts.tripsPath, BoundariesPath: opts.boundariesPath}

	if !opts.skipSQLite {
		if err := importSQLite(ctx, opts, src, data); err != nil {
			return err
		}
	}

	if opts.databaseURL != "" {
		if err := importPostgres(ctx, opts.databaseURL, src, data); err != nil {
			return err
		}
	}

	return nil
}

func importSQLite(ctx context.Context, opts options, src db.ImportSource, data *dataset.Data) error {
	database, err := db.Connect(opts.dbPath)
	if err != nil {
		return err
	}
	defer database.Close()

	// Ensure schema exists (creates tables if needed)
	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	importID, err := database.ImportDataset(ctx, src, data)
	if err != nil {
		return err
	}
	log.Printf("SQLite: imported %d trips and %d boroughs as %s", len(data.Trips), len(data.Regions), importID)

	return database.PruneImports(ctx, opts.keep)
}

func importPostgres(ctx context.Context, databaseURL string, src db.ImportSource, data *dataset.Data) error {
	repo, err := repository.NewPostgresDatasetRepository(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	importID, err := repo.ImportDataset(ctx, src, data)
	if err != nil {
		return err
	}
	log.Printf("Postgres: imported %d trips and %d boroughs as %s", len(data.Trips), len(data.Regions), importID)
	return nil
}
