package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/luca/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress <student>",
	Short: "Print a student's stored progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := resolveDataDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}

		store := progress.NewFileStore(dataDir)
		record, err := store.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Student: %s\n\n", record.StudentID)

		fmt.Println("Completed lessons:")
		if len(record.CompletedLessons) == 0 {
			fmt.Println("  No lessons completed yet.")
		}
		for _, l := range record.CompletedLessons {
			fmt.Printf("  - %s grade %d: %s\n", l.Subject, l.Grade, l.Topic)
		}

		fmt.Println("\nQuiz history:")
		if len(record.CompletedTests) == 0 {
			fmt.Println("  No quizzes taken yet.")
		}
		for _, t := range record.CompletedTests {
			fmt.Printf("  - %s grade %d: %s (score %d/%d)\n", t.Subject, t.Grade, t.Topic, t.Score, t.Total)
		}

		return nil
	},
}
