package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nyc-taxis/dashboard/models"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_SOURCE", "REGION_ALLOW_LIST", "PREVIEW_PAGE_SIZE", "DEBUG"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8050" {
		t.Errorf("Port = %q, want 8050", cfg.Port)
	}
	if cfg.DataSource != models.SourceFiles {
		t.Errorf("DataSource = %q, want %q", cfg.DataSource, models.SourceFiles)
	}
	if !reflect.DeepEqual(cfg.RegionAllowList, DefaultRegions) {
		t.Errorf("RegionAllowList = %v, want %v", cfg.RegionAllowList, DefaultRegions)
	}
	if cfg.PreviewPageSize != 5 {
		t.Errorf("PreviewPageSize = %d, want 5", cfg.PreviewPageSize)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_SOURCE", "SQLite")
	t.Setenv("REGION_ALLOW_LIST", " Manhattan , ,Queens")
	t.Setenv("PREVIEW_PAGE_SIZE", "-3")
	t.Setenv("DEBUG", "true")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.DataSource != models.SourceSQLite {
		t.Errorf("DataSource = %q, want sqlite", cfg.DataSource)
	}
	if want := []string{"Manhattan", "Queens"}; !reflect.DeepEqual(cfg.RegionAllowList, want) {
		t.Errorf("RegionAllowList = %v, want %v", cfg.RegionAllowList, want)
	}
	if cfg.PreviewPageSize != 5 {
		t.Errorf("non-positive page size should fall back to 5, got %d", cfg.PreviewPageSize)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
}

func TestLoadEnvFiles_LocalOverrides(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7000\n"), 0644)
	os.WriteFile(filepath.Join(dir, ".env.local"), []byte("PORT=7001\n"), 0644)

	t.Setenv("PORT", "")
	LoadEnvFiles(dir)

	if got := Load().Port; got != "7001" {
		t.Errorf("Port = %q, want .env.local value 7001", got)
	}
}
