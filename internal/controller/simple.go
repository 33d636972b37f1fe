package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "markhound.dev/pkg/markhound/internal/model"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// SimpleUI implements UI on top of a cobra command's output streams.
type SimpleUI struct {
	cmd   *cobra.Command
	color bool
}

// NewSimpleUI creates a SimpleUI. When color is false the summary is printed
// without styling (non-TTY output, CI logs).
func NewSimpleUI(cmd *cobra.Command, color bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, color: color}
}

// DisplayFileStats renders a per-file table of test counts.
func (s *SimpleUI) DisplayFileStats(ctx context.Context, results []m.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.outPrintf("%s", renderStatsTable(results))

	return nil
}

func renderStatsTable(results []m.FileResult) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"File", "Tests", "Unmarked"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	totalTests := 0
	totalUnmarked := 0

	for _, result := range results {
		table.Append([]string{
			string(result.File),
			fmt.Sprintf("%d", result.TestCount),
			fmt.Sprintf("%d", len(result.Unmarked)),
		})

		totalTests += result.TestCount
		totalUnmarked += len(result.Unmarked)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("%d", totalTests),
		fmt.Sprintf("%d", totalUnmarked),
	})

	table.Render()

	return buf.String()
}

// DisplaySummary prints the check outcome in the CI-facing format: a success
// line on stdout, or the findings on stderr preceded by a count line.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary *m.ScanSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	unmarked := summary.UnmarkedTests()
	if len(unmarked) == 0 {
		s.outPrintf("%s\n", s.styled(okStyle, "No unmarked tests found."))
		return nil
	}

	s.errPrintf("%s\n", s.styled(failStyle, fmt.Sprintf("Found %d unmarked test(s):", len(unmarked))))

	for _, test := range unmarked {
		s.errPrintf("  %s\n", test)
	}

	return nil
}

func (s *SimpleUI) styled(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) outPrintf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errPrintf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
