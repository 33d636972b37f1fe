package controller

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "markhound.dev/pkg/markhound/internal/model"
)

func TestTUI_FileStatsFallBackToPlainOutput(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out, &bytes.Buffer{})

	// A bytes.Buffer has no terminal size, so the table prints directly.
	err := ui.DisplayFileStats(context.Background(), []m.FileResult{
		{File: "tests/test_a.py", TestCount: 2},
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "tests/test_a.py")
}

func TestTUI_SummaryFormatsMatchSimpleUI(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	ui := NewTUI(out, errOut)

	err := ui.DisplaySummary(context.Background(), &m.ScanSummary{
		Files: []m.FileResult{{
			File:      "tests/test_a.py",
			TestCount: 1,
			Unmarked:  []m.UnmarkedTest{{File: "tests/test_a.py", Function: "test_x"}},
		}},
	})
	require.NoError(t, err)

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Found 1 unmarked test(s):")
	assert.Contains(t, errOut.String(), "  tests/test_a.py::test_x\n")
}

func TestTUI_CleanSummaryGoesToStdout(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	ui := NewTUI(out, errOut)

	err := ui.DisplaySummary(context.Background(), &m.ScanSummary{})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "No unmarked tests found.")
	assert.Empty(t, errOut.String())
}

func TestStatsPagerModel_QuitKeys(t *testing.T) {
	model := newStatsPagerModel("line1\nline2\n", 80, 10)

	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}

	for _, key := range keys {
		updated, cmd := model.Update(key)

		pager, ok := updated.(statsPagerModel)
		require.True(t, ok)
		assert.True(t, pager.quitting, "key %q should quit", key.String())
		assert.NotNil(t, cmd)
	}
}

func TestStatsPagerModel_WindowResize(t *testing.T) {
	model := newStatsPagerModel("content", 80, 10)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	pager, ok := updated.(statsPagerModel)
	require.True(t, ok)
	assert.Equal(t, 100, pager.viewport.Width)
	assert.Equal(t, 39, pager.viewport.Height)
}
