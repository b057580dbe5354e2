package dashboard

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nyc-taxis/dashboard/models"
)

func blockTexts(blocks []models.DisplayBlock) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.Text()
	}
	return out
}

func TestFormatIdle(t *testing.T) {
	blocks := FormatIdle()
	if len(blocks) != 1 {
		t.Fatalf("expected a single block, got %d", len(blocks))
	}
	if blocks[0].Kind != models.BlockMessage {
		t.Errorf("Kind = %q, want message", blocks[0].Kind)
	}
	if blocks[0].Text() != "Click on the map to show statistics for the region." {
		t.Errorf("unexpected prompt %q", blocks[0].Text())
	}
}

func TestFormatStatistics_Order(t *testing.T) {
	blocks := FormatStatistics(models.Statistics{
		Region:          "Manhattan",
		TripCount:       2,
		TotalFare:       30,
		TotalDistance:   6,
		AverageFare:     15,
		AverageDistance: 3,
	})

	want := []string{
		"Borough: Manhattan",
		"Total revenue: $30.00",
		"Number of trips: 2",
		"Total distance: 6 miles",
		"Average fare: $15.00",
		"Average distance: 3 miles",
	}
	if got := blockTexts(blocks); !reflect.DeepEqual(got, want) {
		t.Errorf("blocks = %q, want %q", got, want)
	}
	if !blocks[0].Emphasis {
		t.Error("region name should be emphasized")
	}
	for _, b := range blocks[1:] {
		if b.Emphasis {
			t.Errorf("block %q should not be emphasized", b.Text())
		}
	}
}

func TestFormatStatistics_ThousandsSeparators(t *testing.T) {
	blocks := FormatStatistics(models.Statistics{
		Region:          "Manhattan",
		TripCount:       5268,
		TotalFare:       66174.37,
		TotalDistance:   11643.21,
		AverageFare:     12.561581,
		AverageDistance: 2.2101,
	})

	want := []string{
		"Borough: Manhattan",
		"Total revenue: $66,174.37",
		"Number of trips: 5,268",
		"Total distance: 11,643 miles",
		"Average fare: $12.56",
		"Average distance: 2 miles",
	}
	if got := blockTexts(blocks); !reflect.DeepEqual(got, want) {
		t.Errorf("blocks = %q, want %q", got, want)
	}
}

func TestFormatStatistics_NoTrips(t *testing.T) {
	blocks := FormatStatistics(models.Statistics{Region: "Brooklyn"})

	texts := blockTexts(blocks)
	if texts[0] != "Borough: Brooklyn" {
		t.Errorf("first block = %q", texts[0])
	}
	if last := blocks[len(blocks)-1]; last.Kind != models.BlockMessage || last.Message != NoTripsMessage {
		t.Errorf("last block should be the no-trips message, got %+v", last)
	}
	for _, text := range texts {
		if strings.HasPrefix(text, LabelAverageFare) || strings.HasPrefix(text, LabelAverageDistance) {
			t.Errorf("no average may be shown without trips, got %q", text)
		}
	}
}

func TestFormatFixed_Rounding(t *testing.T) {
	tests := []struct {
		v       float64
		prec    int
		grouped bool
		want    string
	}{
		{2.5, 0, false, "2"},
		{3.5, 0, false, "4"},
		{0.125, 2, false, "0.12"},
		{2.675, 2, false, "2.67"},
		{1234.5, 0, true, "1,234"},
		{1234567.125, 2, true, "1,234,567.12"},
		{999.999, 2, true, "1,000.00"},
		{1234.56, 2, false, "1234.56"},
		{0, 2, true, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatFixed(tt.v, tt.prec, tt.grouped); got != tt.want {
				t.Errorf("formatFixed(%v, %d, %v) = %q, want %q", tt.v, tt.prec, tt.grouped, got, tt.want)
			}
		})
	}
}

func TestFormatStatistics_HalfwayAverages(t *testing.T) {
	blocks := FormatStatistics(models.Statistics{
		Region:          "Queens",
		TripCount:       8,
		TotalFare:       1,
		TotalDistance:   20,
		AverageFare:     0.125,
		AverageDistance: 2.5,
	})

	texts := blockTexts(blocks)
	if texts[4] != "Average fare: $0.12" {
		t.Errorf("average fare = %q, want $0.12", texts[4])
	}
	if texts[5] != "Average distance: 2 miles" {
		t.Errorf("average distance = %q, want 2 miles", texts[5])
	}
}
