// Package domain contains the core marker analysis engine and the scan
// workflow for markhound.
package domain

import (
	"regexp"

	m "markhound.dev/pkg/markhound/internal/model"
)

// markerPattern matches pytest decorator lines in either the namespaced or
// the bare form:
//
//	@pytest.mark.unit
//	@pytest.mark.parametrize(...)
//	@unit
//
// The pattern is deliberately unanchored: it captures the first identifier
// run after the sigil, skipping the optional "pytest.mark." prefix, and
// ignores any trailing call arguments.
var markerPattern = regexp.MustCompile(`@(?:pytest\.mark\.)?(\w+)`)

// ExtractMarker returns the marker declared on a decorator line, if any.
// The line is expected to already start with "@" after trimming.
func ExtractMarker(line string) (m.Marker, bool) {
	groups := markerPattern.FindStringSubmatch(line)
	if groups == nil {
		return "", false
	}

	return m.Marker(groups[1]), true
}
