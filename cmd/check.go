package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"markhound.dev/pkg/markhound/internal/domain"
	m "markhound.dev/pkg/markhound/internal/model"
)

// ErrUnmarkedTests signals that the scan found at least one test without an
// excluded marker. The findings are already on stderr by the time it is
// returned; Execute turns it into exit code 1 without extra output.
var ErrUnmarkedTests = errors.New("unmarked tests found")

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [dir]",
		Short: "Report tests without category markers",
		Long:  checkLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := workflow.Check(context.Background(), domain.CheckArgs{
				ScanArgs: scanArgsFromFlags(args),
				Reports:  m.Path(viper.GetString(outputFlagName)),
			})
			if err != nil {
				return err
			}

			if len(summary.UnmarkedTests()) > 0 {
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true

				return ErrUnmarkedTests
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
