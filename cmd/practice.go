package cmd

import (
	"fmt"

	"github.com/bnema/schedlab/internal/adapters/tui/wizard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPracticeCmd(app *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Run the guided scheduling-practice wizard",
		Long:  "Walks through one timeline page and one survey page per scheduling policy (FIFO, Round Robin, STCF, MLFQ), then offers to export the collected session as a text report.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.closeLogger()

			reportPath := app.cfg.ReportPath
			if outPath != "" {
				reportPath = outPath
			}

			model := wizard.New(wizard.Options{
				Service:    app.newService(),
				Logger:     app.logger,
				Ctx:        cmd.Context(),
				ReportPath: reportPath,
				GridWindow: app.cfg.GridWindow,
			})

			p := tea.NewProgram(
				model,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run practice wizard: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "default report path offered on the summary page")

	return cmd
}
