package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/luca/internal/content"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the available grades, subjects, and topics",
	Run: func(cmd *cobra.Command, args []string) {
		for _, grade := range content.Grades() {
			fmt.Printf("Grade %d\n", grade)
			for _, subject := range content.SubjectsForGrade(grade) {
				fmt.Printf("  %s\n", subject)
				for _, topic := range content.Topics(subject, grade) {
					fmt.Printf("    - %s\n", topic)
				}
			}
		}
	},
}
