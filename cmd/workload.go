package cmd

import (
	"fmt"

	"github.com/bnema/schedlab/internal/domain"
	"github.com/spf13/cobra"
)

func newWorkloadCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "workload",
		Short: "Print the fixed process set used by every practice session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rendered, err := app.workloadRenderer(domain.Workload())
			if err != nil {
				return fmt.Errorf("render workload: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}
