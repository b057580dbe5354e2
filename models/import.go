package models

import "time"

// Import describes one dataset import stored in the database
type Import struct {
	ImportID    string    `json:"importId"`
	ImportedAt  time.Time `json:"importedAt"`
	TripCount   int       `json:"tripCount"`
	RegionCount int       `json:"regionCount"`
}
