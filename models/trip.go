package models

import (
	"errors"
	"math"
	"time"
)

// Trip represents one completed taxi trip from the trips dataset
// Maps 1:1 to rows of the taxi_trips table and to the taxis.csv columns
type Trip struct {
	// Required columns
	Pickup        time.Time `db:"pickup" json:"pickup"`
	PickupBorough string    `db:"pickup_borough" json:"pickupBorough"` // empty when the source value is null
	Fare          float64   `db:"fare" json:"fare"`
	Distance      float64   `db:"distance" json:"distance"` // miles

	// Optional columns (only used by the table preview)
	Dropoff        *time.Time `db:"dropoff" json:"dropoff,omitempty"`
	Passengers     *int       `db:"passengers" json:"passengers,omitempty"`
	Tip            *float64   `db:"tip" json:"tip,omitempty"`
	Tolls          *float64   `db:"tolls" json:"tolls,omitempty"`
	Total          *float64   `db:"total" json:"total,omitempty"`
	Color          string     `db:"color" json:"color,omitempty"`
	Payment        string     `db:"payment" json:"payment,omitempty"`
	PickupZone     string     `db:"pickup_zone" json:"pickupZone,omitempty"`
	DropoffZone    string     `db:"dropoff_zone" json:"dropoffZone,omitempty"`
	DropoffBorough string     `db:"dropoff_borough" json:"dropoffBorough,omitempty"`
}

// Validate checks if the Trip model has valid data
func (t *Trip) Validate() error {
	if t.Pickup.IsZero() {
		return errors.New("pickup is required")
	}
	if !finite(t.Fare) || !finite(t.Distance) {
		return errors.New("fare and distance must be finite numbers")
	}
	if t.Fare < 0 {
		return errors.New("fare must not be negative")
	}
	if t.Distance < 0 {
		return errors.New("distance must not be negative")
	}
	if t.Dropoff != nil && t.Dropoff.Before(t.Pickup) {
		return errors.New("dropoff must not be before pickup")
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// TripTable is the ordered, read-only collection of trips loaded at startup
type TripTable []Trip

// Page returns the rows of the given zero-based page.
// Out of range pages return an empty slice.
func (t TripTable) Page(page, size int) []Trip {
	if size <= 0 || page < 0 {
		return []Trip{}
	}
	start := page * size
	if start >= len(t) {
		return []Trip{}
	}
	end := start + size
	if end > len(t) {
		end = len(t)
	}
	return t[start:end]
}

// PageCount returns how many pages of the given size the table spans
func (t TripTable) PageCount(size int) int {
	if size <= 0 || len(t) == 0 {
		return 0
	}
	return (len(t) + size - 1) / size
}

// TripPageResponse is the response for GET /api/trips
type TripPageResponse struct {
	Trips     []Trip `json:"trips"`
	Page      int    `json:"page"`
	PageSize  int    `json:"pageSize"`
	PageCount int    `json:"pageCount"`
	Total     int    `json:"total"`
}
