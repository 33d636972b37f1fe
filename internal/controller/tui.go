package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "markhound.dev/pkg/markhound/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display of long file
// listings. Check summaries are always printed plainly so the CI-facing
// stderr format stays stable.
type TUI struct {
	output io.Writer
	errOut io.Writer
}

// NewTUI creates a TUI writing to the given streams.
func NewTUI(output, errOut io.Writer) *TUI {
	return &TUI{output: output, errOut: errOut}
}

// DisplayFileStats shows per-file test counts, paginating through a viewport
// when the listing does not fit on screen.
func (t *TUI) DisplayFileStats(ctx context.Context, results []m.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := renderStatsTable(results)

	width, height := t.terminalSize()
	if height <= 0 || strings.Count(content, "\n") < height-1 {
		_, err := fmt.Fprint(t.output, content)
		return err
	}

	model := newStatsPagerModel(content, width, height)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplaySummary prints the check outcome without any interactive chrome so
// the stderr format stays machine-parseable; only the headline is styled.
func (t *TUI) DisplaySummary(ctx context.Context, summary *m.ScanSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	unmarked := summary.UnmarkedTests()
	if len(unmarked) == 0 {
		_, err := fmt.Fprintln(t.output, okStyle.Render("No unmarked tests found."))
		return err
	}

	headline := failStyle.Render(fmt.Sprintf("Found %d unmarked test(s):", len(unmarked)))
	if _, err := fmt.Fprintln(t.errOut, headline); err != nil {
		return err
	}

	for _, test := range unmarked {
		if _, err := fmt.Fprintf(t.errOut, "  %s\n", test); err != nil {
			return err
		}
	}

	return nil
}

func (t *TUI) terminalSize() (width, height int) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

// statsPagerModel is the Bubble Tea model that scrolls through the stats
// table when it overflows the terminal.
type statsPagerModel struct {
	viewport viewport.Model
	quitting bool
}

func newStatsPagerModel(content string, width, height int) statsPagerModel {
	vp := viewport.New(width, height-1)
	vp.SetContent(content)

	return statsPagerModel{viewport: vp}
}

func (p statsPagerModel) Init() tea.Cmd {
	return nil
}

func (p statsPagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			p.quitting = true
			return p, tea.Quit
		}

	case tea.WindowSizeMsg:
		p.viewport.Width = msg.Width
		p.viewport.Height = msg.Height - 1
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p statsPagerModel) View() string {
	if p.quitting {
		return ""
	}

	return p.viewport.View() + "\n  ↑/↓ scroll · q quit"
}
