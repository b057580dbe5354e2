package models

import "time"

// DataSource identifies where the session tables were loaded from
type DataSource string

const (
	SourceFiles    DataSource = "files"
	SourceSQLite   DataSource = "sqlite"
	SourcePostgres DataSource = "postgres"
)

// DatasetInfo describes the loaded session dataset
type DatasetInfo struct {
	SnapshotID  string     `json:"snapshotId"`
	Source      DataSource `json:"source"`
	TripCount   int        `json:"tripCount"`
	RegionCount int        `json:"regionCount"`
	Regions     []string   `json:"regions"`
	LoadedAt    time.Time  `json:"loadedAt"`
}

// HealthResponse is the response for GET /health
type HealthResponse struct {
	Status    string      `json:"status"` // always "ok"
	Dataset   DatasetInfo `json:"dataset"`
	Uptime    string      `json:"uptime"`
	Timestamp time.Time   `json:"timestamp"`
}

// StatusOK is the status of a healthy server
const StatusOK = "ok"
