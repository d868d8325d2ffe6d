package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/luca/internal/progress"
)

var rootCmd = &cobra.Command{
	Use:   "luca",
	Short: "AI-assisted learning companion for kids",
	Long:  "Luca is a terminal learning companion that walks elementary students through lessons, quizzes, and progress tracking.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Directory for progress files (overrides LUCA_DATA env var)")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataDir returns the progress directory using --data (highest
// priority), then LUCA_DATA, then the default XDG path.
func resolveDataDir(cmd *cobra.Command) (string, error) {
	if d, _ := cmd.Flags().GetString("data"); d != "" {
		return d, nil
	}
	return progress.DefaultDir()
}
