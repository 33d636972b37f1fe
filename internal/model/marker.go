// Package model defines the data structures shared across the markhound CLI.
package model

import (
	"sort"
	"strings"
)

// Path represents a file system path.
type Path string

// Marker is a pytest marker identifier (e.g. "unit", "slow").
// Markers are compared case-sensitively by exact string match.
type Marker string

// MarkerSet is an unordered set of markers.
type MarkerSet map[Marker]struct{}

// NewMarkerSet builds a MarkerSet from the given markers.
func NewMarkerSet(markers ...Marker) MarkerSet {
	set := make(MarkerSet, len(markers))
	for _, marker := range markers {
		set[marker] = struct{}{}
	}

	return set
}

// ParseMarkerSet builds a MarkerSet from a comma-separated list of marker
// names. Empty segments and surrounding whitespace are dropped.
func ParseMarkerSet(list string) MarkerSet {
	set := make(MarkerSet)

	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		set[Marker(name)] = struct{}{}
	}

	return set
}

// Add inserts a marker into the set.
func (s MarkerSet) Add(marker Marker) {
	s[marker] = struct{}{}
}

// Has reports whether the marker is present.
func (s MarkerSet) Has(marker Marker) bool {
	_, ok := s[marker]
	return ok
}

// Intersects reports whether the two sets share at least one marker.
func (s MarkerSet) Intersects(other MarkerSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	for marker := range small {
		if large.Has(marker) {
			return true
		}
	}

	return false
}

// Sorted returns the markers as a sorted slice, for deterministic output.
func (s MarkerSet) Sorted() []Marker {
	markers := make([]Marker, 0, len(s))
	for marker := range s {
		markers = append(markers, marker)
	}

	sort.Slice(markers, func(i, j int) bool { return markers[i] < markers[j] })

	return markers
}

// DefaultExcludedMarkers is the built-in marker set a test must carry to be
// considered categorized.
func DefaultExcludedMarkers() MarkerSet {
	return NewMarkerSet("unit", "integration", "component", "skip", "slow")
}
