package dashboard

import (
	"github.com/nyc-taxis/dashboard/models"
)

// Aggregate computes trip count, fare and distance totals and averages over
// the trips picked up in region (exact, case-sensitive match).
// With no matching trips the averages stay zero and no division happens.
func Aggregate(region string, trips models.TripTable) models.Statistics {
	stats := models.Statistics{Region: region}

	for i := range trips {
		if trips[i].PickupBorough != region {
			continue
		}
		stats.TripCount++
		stats.TotalFare += trips[i].Fare
		stats.TotalDistance += trips[i].Distance
	}

	if stats.TripCount > 0 {
		n := float64(stats.TripCount)
		stats.AverageFare = stats.TotalFare / n
		stats.AverageDistance = stats.TotalDistance / n
	}

	return stats
}

// Statistics aggregates the session's trips for region
func (s *Session) Statistics(region string) models.Statistics {
	return Aggregate(region, s.trips)
}
