// Package dashboard implements the click-to-statistics interaction:
// a region code is resolved to a region name, the trips picked up in that
// region are aggregated, and the result is formatted into display blocks.
//
// All state lives in a Session built once at startup and never mutated, so
// every operation is safe for concurrent use without locking.
package dashboard

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nyc-taxis/dashboard/internal/dataset"
	"github.com/nyc-taxis/dashboard/models"
)

// Session holds the read-only tables of one dashboard process
type Session struct {
	trips   models.TripTable
	regions models.RegionTable
	byCode  map[int]int // region code -> index into regions
	info    models.DatasetInfo
}

// NewSession filters regions to the allow-list and indexes them by code.
// Duplicate codes or an empty region table after filtering are malformed input.
func NewSession(trips models.TripTable, regions models.RegionTable, allowList []string, source models.DataSource) (*Session, error) {
	filtered := regions.FilterByNames(allowList)
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: no regions left after applying allow-list %v", dataset.ErrMalformedInput, allowList)
	}

	byCode := make(map[int]int, len(filtered))
	for i, r := range filtered {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: region %d has no name", dataset.ErrMalformedInput, r.Code)
		}
		if prev, ok := byCode[r.Code]; ok {
			return nil, fmt.Errorf("%w: region code %d used by both %q and %q",
				dataset.ErrMalformedInput, r.Code, filtered[prev].Name, r.Name)
		}
		byCode[r.Code] = i
	}

	// Private copy so callers cannot mutate the session tables
	tripsCopy := make(models.TripTable, len(trips))
	copy(tripsCopy, trips)

	return &Session{
		trips:   tripsCopy,
		regions: filtered,
		byCode:  byCode,
		info: models.DatasetInfo{
			SnapshotID:  uuid.New().String(),
			Source:      source,
			TripCount:   len(tripsCopy),
			RegionCount: len(filtered),
			Regions:     filtered.Names(),
			LoadedAt:    time.Now().UTC(),
		},
	}, nil
}

// Info describes the loaded dataset
func (s *Session) Info() models.DatasetInfo {
	info := s.info
	info.Regions = append([]string(nil), s.info.Regions...)
	return info
}
