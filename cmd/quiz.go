package cmd

import (
	"fmt"

	"github.com/bnema/schedlab/internal/adapters/tui/quiz"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newQuizCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "quiz",
		Short: "Run the single-screen grid-input quiz",
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.closeLogger()

			p := tea.NewProgram(
				quiz.New(quiz.Options{Logger: app.logger}),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)

			finalModel, err := p.Run()
			if err != nil {
				return fmt.Errorf("run quiz: %w", err)
			}

			final, ok := finalModel.(quiz.Model)
			if !ok {
				return fmt.Errorf("unexpected final quiz model type %T", finalModel)
			}

			// The captured answer is the program's one output.
			if captured, done := final.Captured(); done {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), captured)
				return err
			}

			return nil
		},
	}
}
