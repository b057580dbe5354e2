package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nyc-taxis/dashboard/models"
)

// DefaultRegions is the borough allow-list of the reference deployment
var DefaultRegions = []string{"Manhattan", "Brooklyn", "Bronx", "Queens"}

// Config holds all configuration for the dashboard server and importer
type Config struct {
	// HTTP
	Port        string
	CORSOrigins []string
	StaticDir   string
	Debug       bool

	// Dataset
	DataSource        models.DataSource
	TripsCSV          string
	BoundariesGeoJSON string
	SQLitePath        string
	DatabaseURL       string

	// Presentation
	RegionAllowList []string
	PreviewPageSize int
}

// LoadEnvFiles loads .env then lets .env.local override it.
// Missing files are ignored.
func LoadEnvFiles(dir string) {
	_ = godotenv.Load(dir + "/.env")
	_ = godotenv.Overload(dir + "/.env.local") // Overload forces override of existing values
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	cfg := &Config{
		// HTTP
		Port:        getEnv("PORT", "8050"),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"http://localhost:5173"}),
		StaticDir:   getEnv("STATIC_DIR", ""),
		Debug:       getEnvBool("DEBUG", false),

		// Dataset
		DataSource:        models.DataSource(strings.ToLower(getEnv("DATA_SOURCE", string(models.SourceFiles)))),
		TripsCSV:          getEnv("TRIPS_CSV", "data/taxis.csv"),
		BoundariesGeoJSON: getEnv("BOUNDARIES_GEOJSON", "data/nybb.geojson"),
		SQLitePath:        getEnv("SQLITE_DATABASE", "data/taxis.db"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),

		// Presentation
		RegionAllowList: getEnvList("REGION_ALLOW_LIST", DefaultRegions),
		PreviewPageSize: getEnvInt("PREVIEW_PAGE_SIZE", 5),
	}

	if cfg.PreviewPageSize <= 0 {
		cfg.PreviewPageSize = 5
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated value, dropping blanks
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return append([]string(nil), defaultValue...)
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), defaultValue...)
	}
	return out
}
