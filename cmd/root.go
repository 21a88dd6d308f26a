package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "schedlab",
		Short:         "schedlab: CPU-scheduling practice drills in the terminal",
		Long:          "schedlab runs two interactive practice drills: a single-screen grid-input quiz and a guided wizard that collects a hand-filled CPU timeline plus survey answers per scheduling policy, exporting everything as a text report.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newQuizCmd(app),
		newPracticeCmd(app),
		newWorkloadCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
