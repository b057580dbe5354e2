package dashboard

import (
	"errors"
	"testing"
)

func TestResolveRegion_AllCodesInAllowList(t *testing.T) {
	s := defaultSession(t, nil)
	allowed := map[string]bool{"Manhattan": true, "Brooklyn": true, "Bronx": true, "Queens": true}

	for _, r := range s.regions {
		name, err := s.ResolveRegion(r.Code)
		if err != nil {
			t.Fatalf("ResolveRegion(%d) failed: %v", r.Code, err)
		}
		if name == "" {
			t.Errorf("ResolveRegion(%d) returned an empty name", r.Code)
		}
		if !allowed[name] {
			t.Errorf("ResolveRegion(%d) = %q, not in allow-list", r.Code, name)
		}
	}
}

func TestResolveRegion_UnknownCode(t *testing.T) {
	s := defaultSession(t, nil)

	// 5 is Staten Island, filtered out by the allow-list
	for _, code := range []int{0, 5, 42, -1} {
		if _, err := s.ResolveRegion(code); !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("ResolveRegion(%d): expected ErrInvalidSelection, got %v", code, err)
		}
	}
}

func TestLocateRegion(t *testing.T) {
	s := defaultSession(t, nil)

	tests := []struct {
		name     string
		lon, lat float64
		want     string
	}{
		{"midtown", -73.97, 40.78, "Manhattan"},
		{"fordham", -73.88, 40.86, "Bronx"},
		{"park slope", -73.98, 40.67, "Brooklyn"},
		{"jamaica", -73.80, 40.70, "Queens"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := s.LocateRegion(tc.lon, tc.lat)
			if err != nil {
				t.Fatalf("LocateRegion failed: %v", err)
			}
			if r.Name != tc.want {
				t.Errorf("LocateRegion(%v, %v) = %q, want %q", tc.lon, tc.lat, r.Name, tc.want)
			}
		})
	}
}

func TestLocateRegion_Outside(t *testing.T) {
	s := defaultSession(t, nil)

	// Staten Island is not allow-listed; the Atlantic has no borough
	for _, pt := range [][2]float64{{-74.15, 40.58}, {-72.0, 40.0}} {
		if _, err := s.LocateRegion(pt[0], pt[1]); !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("LocateRegion(%v): expected ErrInvalidSelection, got %v", pt, err)
		}
	}
}
