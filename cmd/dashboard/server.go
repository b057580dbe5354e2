package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nyc-taxis/dashboard/handlers"
	"github.com/nyc-taxis/dashboard/internal/config"
	"github.com/nyc-taxis/dashboard/internal/dashboard"
	"github.com/nyc-taxis/dashboard/internal/dataset"
	"github.com/nyc-taxis/dashboard/internal/metrics"
	"github.com/nyc-taxis/dashboard/models"
	"github.com/nyc-taxis/dashboard/repository"
)

// loadDataset reads the trip and boundary tables from the configured source
func loadDataset(ctx context.Context, cfg *config.Config) (*dataset.Data, error) {
	switch cfg.DataSource {
	case models.SourceFiles:
		log.Printf("Loading dataset from %s and %s", cfg.TripsCSV, cfg.BoundariesGeoJSON)
		return dataset.LoadFiles(cfg.TripsCSV, cfg.BoundariesGeoJSON)

	case models.SourceSQLite:
		log.Printf("Loading dataset from SQLite database: %s", cfg.SQLitePath)
		sqliteDB, err := repository.NewSQLiteDB(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		defer sqliteDB.Close()

		data, imp, err := repository.NewSQLiteDatasetRepository(sqliteDB.GetDB()).LoadLatest(ctx)
		if err != nil {
			return nil, err
		}
		log.Printf("Using import %s from %s", imp.ImportID, imp.ImportedAt.Format("2006-01-02 15:04:05"))
		return data, nil

	case models.SourcePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when DATA_SOURCE=postgres")
		}
		log.Println("Loading dataset from Postgres")
		repo, err := repository.NewPostgresDatasetRepository(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer repo.Close()

		data, imp, err := repo.LoadLatest(ctx)
		if err != nil {
			return nil, err
		}
		log.Printf("Using import %s from %s", imp.ImportID, imp.ImportedAt.Format("2006-01-02 15:04:05"))
		return data, nil

	default:
		return nil, fmt.Errorf("unknown DATA_SOURCE %q (want files, sqlite or postgres)", cfg.DataSource)
	}
}

// newRouter mounts every dashboard route on a chi router
func newRouter(cfg *config.Config, ctrl *dashboard.Controller) (http.Handler, error) {
	session := ctrl.Session()
	layout := session.BuildLayout(cfg.PreviewPageSize)

	pageHandler, err := handlers.NewPageHandler(layout)
	if err != nil {
		return nil, err
	}
	dashboardHandler := handlers.NewDashboardHandler(ctrl)
	regionHandler := handlers.NewRegionHandler(layout.Choropleth)
	tripHandler := handlers.NewTripHandler(session, cfg.PreviewPageSize)
	healthHandler := handlers.NewHealthHandler(session)
	wsHandler := handlers.NewWebSocketHandler(ctrl, metrics.WebSocketConnections, cfg.CORSOrigins)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if cfg.Debug {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/", pageHandler.GetIndex)

	// Health
	r.Get("/health", healthHandler.GetHealth)
	r.Get("/healthz", handlers.Healthz)
	r.Get("/api/ping", handlers.Ping)
	r.Handle("/metrics", metrics.Handler())

	// Dashboard API
	r.Get("/api/regions", regionHandler.GetRegions)
	r.Get("/api/regions/locate", dashboardHandler.LocateRegion)
	r.Get("/api/stats", dashboardHandler.GetStats)
	r.Post("/api/click", dashboardHandler.PostClick)
	r.Get("/api/trips", tripHandler.GetTrips)
	r.Get("/ws", wsHandler.Serve)

	// Static file serving (if configured)
	if cfg.StaticDir != "" {
		fs := http.FileServer(http.Dir(cfg.StaticDir))
		r.Handle("/*", fs)
	}

	return r, nil
}
