package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/nyc-taxis/dashboard/internal/config"
	"github.com/nyc-taxis/dashboard/internal/dashboard"
	"github.com/nyc-taxis/dashboard/internal/metrics"
)

func main() {
	// Load base .env first, then .env.local (which overrides for local development)
	config.LoadEnvFiles(".")
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	data, err := loadDataset(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	session, err := dashboard.NewSession(data.Trips, data.Regions, cfg.RegionAllowList, cfg.DataSource)
	if err != nil {
		log.Fatalf("Failed to build session: %v", err)
	}
	info := session.Info()
	log.Printf("Dataset loaded from %s: %d trips, %d regions %v (snapshot %s)",
		info.Source, info.TripCount, info.RegionCount, info.Regions, info.SnapshotID)

	ctrl := dashboard.NewController(session, dashboard.WithRecorder(metrics.Recorder{}))

	r, err := newRouter(cfg, ctrl)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	log.Printf("Dashboard server starting on :%s", cfg.Port)
	log.Println("Endpoints:")
	log.Println("  GET  /")
	log.Println("  GET  /api/regions")
	log.Println("  GET  /api/regions/locate?lat=&lon=")
	log.Println("  GET  /api/stats?code=")
	log.Println("  POST /api/click")
	log.Println("  GET  /api/trips?page=")
	log.Println("  GET  /ws")
	log.Println("  GET  /health, /metrics")

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
