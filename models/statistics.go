package models

// Statistics is the aggregate computed for one region on every click.
// It is never cached or stored.
type Statistics struct {
	Region          string  `json:"region"`
	TripCount       int     `json:"tripCount"`
	TotalFare       float64 `json:"totalFare"`
	TotalDistance   float64 `json:"totalDistance"`
	AverageFare     float64 `json:"averageFare"`     // 0 when TripCount is 0
	AverageDistance float64 `json:"averageDistance"` // 0 when TripCount is 0
}

// HasTrips reports whether the averages were computed from at least one trip
func (s Statistics) HasTrips() bool {
	return s.TripCount > 0
}
