package dashboard

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/nyc-taxis/dashboard/models"
)

// Panel texts
const (
	PromptMessage  = "Click on the map to show statistics for the region."
	NoTripsMessage = "No trips recorded for this region."

	LabelRegion          = "Borough"
	LabelTotalRevenue    = "Total revenue"
	LabelTripCount       = "Number of trips"
	LabelTotalDistance   = "Total distance"
	LabelAverageFare     = "Average fare"
	LabelAverageDistance = "Average distance"

	distanceUnit = "miles"
)

// FormatIdle is shown before any region has been selected
func FormatIdle() []models.DisplayBlock {
	return []models.DisplayBlock{models.MessageBlock(PromptMessage)}
}

// FormatStatistics renders the statistics panel for one region.
// When the region has no trips the two averages are replaced by NoTripsMessage.
func FormatStatistics(s models.Statistics) []models.DisplayBlock {
	name := models.StatBlock(LabelRegion, s.Region)
	name.Emphasis = true

	blocks := []models.DisplayBlock{
		name,
		models.StatBlock(LabelTotalRevenue, formatCurrency(s.TotalFare, true)),
		models.StatBlock(LabelTripCount, humanize.Comma(int64(s.TripCount))),
		models.StatBlock(LabelTotalDistance, formatDistance(s.TotalDistance, true)),
	}

	if !s.HasTrips() {
		return append(blocks, models.MessageBlock(NoTripsMessage))
	}

	return append(blocks,
		models.StatBlock(LabelAverageFare, formatCurrency(s.AverageFare, false)),
		models.StatBlock(LabelAverageDistance, formatDistance(s.AverageDistance, false)),
	)
}

// formatCurrency renders "$1,234.56"; grouped=false drops the thousands separator
func formatCurrency(v float64, grouped bool) string {
	return "$" + formatFixed(v, 2, grouped)
}

// formatDistance renders "1,234 miles" with zero decimals
func formatDistance(v float64, grouped bool) string {
	return formatFixed(v, 0, grouped) + " " + distanceUnit
}

// formatFixed rounds v to prec decimals with round-half-even on the exact
// binary value (2.5 -> "2", 0.125 -> "0.12") and optionally groups thousands
func formatFixed(v float64, prec int, grouped bool) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if !grouped {
		return s
	}

	intPart, frac := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, frac = s[:dot], s[dot:]
	}
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		// Out of int64 range
		return s
	}
	if n == 0 && strings.HasPrefix(intPart, "-") {
		return "-" + humanize.Comma(n) + frac
	}
	return humanize.Comma(n) + frac
}
