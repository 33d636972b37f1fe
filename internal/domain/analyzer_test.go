package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "markhound.dev/pkg/markhound/internal/model"
)

func TestAnalyze_MixOfMarkedAndUnmarked(t *testing.T) {
	content := `
import pytest

@pytest.mark.unit
def test_marked_function():
    pass

def test_unmarked_function():
    pass

@pytest.mark.skip
def test_skipped_function():
    pass

def test_another_unmarked():
    pass
`

	result := NewAnalyzer().Analyze(content, m.NewMarkerSet("unit", "skip"))

	assert.Equal(t, []string{"test_unmarked_function", "test_another_unmarked"}, result)
}

func TestAnalyze_NoDecoratorsAtAll(t *testing.T) {
	content := `
def test_unmarked_function():
    pass

def test_another_unmarked():
    pass
`

	result := NewAnalyzer().Analyze(content, m.DefaultExcludedMarkers())

	assert.Equal(t, []string{"test_unmarked_function", "test_another_unmarked"}, result)
}

func TestAnalyze_MultiLineDecorator(t *testing.T) {
	content := `
import pytest

@pytest.mark.unit
@pytest.mark.parametrize(
    "arg1, arg2",
    [
        pytest.param("a", "b"),
        pytest.param("c", "d"),
    ],
)
def test_with_multiline_decorator():
    pass

def test_unmarked():
    pass
`

	result := NewAnalyzer().Analyze(content, m.NewMarkerSet("unit"))

	assert.Equal(t, []string{"test_unmarked"}, result)
}

func TestAnalyze_ClassMethods(t *testing.T) {
	content := `
import pytest

class TestExample:
    @pytest.mark.unit
    def test_marked_method(self):
        pass

    def test_unmarked_method(self):
        pass

    @pytest.mark.integration
    def test_another_marked_method(self):
        pass

def test_function_level():
    pass

class TestAnother:
    def test_unmarked_in_class(self):
        pass
`

	result := NewAnalyzer().Analyze(content, m.NewMarkerSet("unit", "integration"))

	assert.Equal(t, []string{
		"test_unmarked_method",
		"test_function_level",
		"test_unmarked_in_class",
	}, result)
}

func TestAnalyze_ClassLevelMarkersPropagate(t *testing.T) {
	content := `
import pytest

@pytest.mark.unit
class TestMarkedClass:
    def test_method_in_marked_class(self):
        pass

    @pytest.mark.integration
    def test_method_with_own_marker(self):
        pass

class TestUnmarkedClass:
    def test_method_in_unmarked_class(self):
        pass

def test_function_level():
    pass
`

	result := NewAnalyzer().Analyze(content, m.NewMarkerSet("unit", "integration"))

	assert.Equal(t, []string{"test_method_in_unmarked_class", "test_function_level"}, result)
}

func TestAnalyze_ClassScopeClosesAtSameIndent(t *testing.T) {
	content := `
@pytest.mark.unit
class TestMarked:
    def test_inside(self):
        pass

class TestFollowing:
    def test_after_scope_closed(self):
        pass
`

	result := NewAnalyzer().Analyze(content, m.NewMarkerSet("unit"))

	assert.Equal(t, []string{"test_after_scope_closed"}, result)
}

func TestAnalyze_BareMarkerForm(t *testing.T) {
	content := `
@unit
def test_bare_marked():
    pass

def test_clean():
    pass
`

	result := NewAnalyzer().Analyze(content, m.NewMarkerSet("unit"))

	assert.Equal(t, []string{"test_clean"}, result)
}

func TestAnalyze_NonTestFunctionsIgnored(t *testing.T) {
	content := `
def helper():
    pass

def testing_something():
    pass

def test_real():
    pass
`

	result := NewAnalyzer().Analyze(content, m.DefaultExcludedMarkers())

	assert.Equal(t, []string{"test_real"}, result)
}

func TestAnalyze_EmptyContent(t *testing.T) {
	assert.Empty(t, NewAnalyzer().Analyze("", m.DefaultExcludedMarkers()))
}

func TestAnalyze_Idempotent(t *testing.T) {
	content := `
class TestExample:
    @pytest.mark.slow
    def test_slow(self):
        pass

    def test_fast(self):
        pass
`
	excluded := m.NewMarkerSet("slow")
	analyzer := NewAnalyzer()

	first := analyzer.Analyze(content, excluded)
	second := analyzer.Analyze(content, excluded)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"test_fast"}, first)
}

func TestReport_CountsAllTests(t *testing.T) {
	content := `
@pytest.mark.unit
def test_marked():
    pass

def test_unmarked():
    pass
`

	total, unmarked := NewAnalyzer().Report(content, m.NewMarkerSet("unit"))

	assert.Equal(t, 2, total)
	assert.Equal(t, []string{"test_unmarked"}, unmarked)
}

func TestAnalyze_MarkerNotInExcludedSet(t *testing.T) {
	content := `
@pytest.mark.wip
def test_wip():
    pass
`

	result := NewAnalyzer().Analyze(content, m.NewMarkerSet("unit"))

	assert.Equal(t, []string{"test_wip"}, result)
}
