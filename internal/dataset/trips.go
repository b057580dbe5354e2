package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nyc-taxis/dashboard/models"
)

// timestamp layouts accepted for pickup/dropoff, tried in order
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// LoadTrips reads the trips CSV at path
func LoadTrips(path string) (models.TripTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trips file: %w", err)
	}
	defer f.Close()

	trips, err := ParseTrips(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return trips, nil
}

// ParseTrips parses a trips CSV. The header must contain every column in
// RequiredTripColumns; rows whose required values cannot be parsed are skipped.
func ParseTrips(r io.Reader) (models.TripTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: trips file is empty", ErrMalformedInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read trips header: %v", ErrMalformedInput, err)
	}

	idx := makeIndex(header)
	if missing := missingColumns(idx, RequiredTripColumns); len(missing) > 0 {
		return nil, fmt.Errorf("%w: trips file is missing required columns: %s",
			ErrMalformedInput, strings.Join(missing, ", "))
	}

	trips := make(models.TripTable, 0, 1024)
	skipped := 0
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			skipped++
			continue
		}

		trip, err := parseTripRecord(record, idx)
		if err != nil {
			if skipped < 5 {
				log.Printf("Warning: skipping trips row %d: %v", line, err)
			}
			skipped++
			continue
		}
		trips = append(trips, trip)
	}

	if skipped > 0 {
		log.Printf("Warning: skipped %d malformed trip rows", skipped)
	}

	return trips, nil
}

func parseTripRecord(record []string, idx map[string]int) (models.Trip, error) {
	var t models.Trip

	pickup, err := parseTime(getField(record, idx, ColPickup))
	if err != nil {
		return t, fmt.Errorf("pickup: %w", err)
	}
	fare, err := strconv.ParseFloat(getField(record, idx, ColFare), 64)
	if err != nil {
		return t, fmt.Errorf("fare: %w", err)
	}
	distance, err := strconv.ParseFloat(getField(record, idx, ColDistance), 64)
	if err != nil {
		return t, fmt.Errorf("distance: %w", err)
	}

	t.Pickup = pickup
	t.Fare = fare
	t.Distance = distance
	t.PickupBorough = nullable(getField(record, idx, ColPickupBorough))

	// Optional columns
	if v := getField(record, idx, ColDropoff); v != "" {
		if d, err := parseTime(v); err == nil {
			t.Dropoff = &d
		}
	}
	if v := getField(record, idx, ColPassengers); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			t.Passengers = &n
		}
	}
	t.Tip = optionalFloat(getField(record, idx, ColTip))
	t.Tolls = optionalFloat(getField(record, idx, ColTolls))
	t.Total = optionalFloat(getField(record, idx, ColTotal))
	t.Color = nullable(getField(record, idx, ColColor))
	t.Payment = nullable(getField(record, idx, ColPayment))
	t.PickupZone = nullable(getField(record, idx, ColPickupZone))
	t.DropoffZone = nullable(getField(record, idx, ColDropoffZone))
	t.DropoffBorough = nullable(getField(record, idx, ColDropoffBorough))

	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

func optionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// nullable maps the textual null markers pandas writes to an empty string
func nullable(s string) string {
	switch strings.ToLower(s) {
	case "nan", "null", "none", "na":
		return ""
	}
	return s
}

func makeIndex(header []string) map[string]int {
	idx := make(map[string]int)
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	return idx
}

func getField(record []string, idx map[string]int, field string) string {
	if i, ok := idx[field]; ok && i < len(record) {
		return strings.TrimSpace(record[i])
	}
	return ""
}

func missingColumns(idx map[string]int, required []string) []string {
	var missing []string
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}
