package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "markhound.dev/pkg/markhound/internal/model"
)

func TestExtractMarker(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		marker m.Marker
		ok     bool
	}{
		{"namespaced", "@pytest.mark.unit", "unit", true},
		{"namespaced slow", "@pytest.mark.slow", "slow", true},
		{"bare", "@unit", "unit", true},
		{"bare skip", "@skip", "skip", true},
		{"with arguments", "@pytest.mark.parametrize('x', [1, 2])", "parametrize", true},
		{"underscore identifier", "@pytest.mark.my_marker_2", "my_marker_2", true},
		{"other pytest decorator keeps first token", "@pytest.fixture", "pytest", true},
		{"sigil only", "@", "", false},
		{"no identifier", "@ (", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marker, ok := ExtractMarker(tt.line)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.marker, marker)
		})
	}
}

func TestExtractMarker_SameIdentifierBothForms(t *testing.T) {
	namespaced, ok := ExtractMarker("@pytest.mark.integration")
	assert.True(t, ok)

	bare, ok2 := ExtractMarker("@integration")
	assert.True(t, ok2)

	assert.Equal(t, namespaced, bare)
}
