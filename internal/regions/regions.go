package regions

import (
	"strconv"
	"strings"
)

// Region is a marketplace region.
type Region struct {
	ID     int    `json:"id"`
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	Alpha2 string `json:"alpha2,omitempty"`
	MCC    string `json:"mcc,omitempty"`
}

// RestOfWorld is the catch-all region.
var RestOfWorld = Region{ID: 1, Slug: "restofworld", Name: "Rest of World"}

var (
	bySlug   = map[string]Region{}
	byID     = map[int]Region{}
	byAlpha2 = map[string]Region{}
	byName   = map[string]Region{}
)

func init() {
	for _, r := range append([]Region{RestOfWorld}, countries...) {
		bySlug[r.Slug] = r
		byID[r.ID] = r
		byName[strings.ToLower(r.Name)] = r
		if r.Alpha2 != "" {
			byAlpha2[strings.ToLower(r.Alpha2)] = r
		}
	}
	// Aliases accepted in ?region=.
	bySlug["worldwide"] = RestOfWorld
	bySlug["gb"] = bySlug["gbr"]
}

// BySlug looks a region up by slug or alias.
func BySlug(slug string) (Region, bool) {
	r, ok := bySlug[slug]
	return r, ok
}

func ByID(id int) (Region, bool) {
	r, ok := byID[id]
	return r, ok
}

// All returns RestOfWorld followed by the country regions.
func All() []Region {
	return append([]Region{RestOfWorld}, countries...)
}

// Parse accepts a region id, slug, alpha-2 code or name, the last three
// case-insensitively.
func Parse(s string) (Region, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Region{}, false
	}
	if id, err := strconv.Atoi(s); err == nil {
		return ByID(id)
	}
	key := strings.ToLower(s)
	if r, ok := bySlug[key]; ok {
		return r, true
	}
	if r, ok := byAlpha2[key]; ok {
		return r, true
	}
	r, ok := byName[key]
	return r, ok
}
