package models

import (
	"github.com/paulmach/orb"
)

// Region represents a named geographic area (a borough) from the boundary dataset
type Region struct {
	Code     int          `json:"code"` // BoroCode, unique within a RegionTable
	Name     string       `json:"name"` // BoroName
	Geometry orb.Geometry `json:"-"`    // orb.Polygon or orb.MultiPolygon in lon/lat
}

// RegionTable is the ordered, read-only collection of regions loaded at startup
type RegionTable []Region

// Names returns the region names in table order
func (t RegionTable) Names() []string {
	names := make([]string, 0, len(t))
	for _, r := range t {
		names = append(names, r.Name)
	}
	return names
}

// FilterByNames keeps only the regions whose name is in allow.
// An empty allow-list keeps every region.
func (t RegionTable) FilterByNames(allow []string) RegionTable {
	if len(allow) == 0 {
		out := make(RegionTable, len(t))
		copy(out, t)
		return out
	}
	allowed := make(map[string]struct{}, len(allow))
	for _, name := range allow {
		allowed[name] = struct{}{}
	}
	out := make(RegionTable, 0, len(t))
	for _, r := range t {
		if _, ok := allowed[r.Name]; ok {
			out = append(out, r)
		}
	}
	return out
}

// ClickEvent carries the region code of a clicked map feature.
// A nil *ClickEvent means no region has been selected yet.
type ClickEvent struct {
	RegionCode int `json:"regionCode"`
}
