package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"markhound.dev/pkg/markhound/internal/domain"
	m "markhound.dev/pkg/markhound/internal/model"
)

// errNoReportsDir is returned when report viewing is requested without a
// configured reports directory.
var errNoReportsDir = errors.New("no reports directory configured, pass --output")

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "View a previously saved scan report",
		Long:  "Load the scan report from the reports directory and display its findings.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			if reportsPath == "" {
				return errNoReportsDir
			}

			return workflow.Report(context.Background(), domain.ReportArgs{Reports: reportsPath})
		},
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
