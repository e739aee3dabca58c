package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutorloop/tutorloop/internal/wrongbook"
)

var wrongbookCmd = &cobra.Command{
	Use:   "wrongbook",
	Short: "Inspect and manage the wrong-answer ledger",
}

var wrongbookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List unresolved wrong answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser(cmd)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ledger := wrongbook.NewLedger(s.WrongAnswerRepo(), newLogger(cmd))
		entries, err := ledger.Unresolved(cmd.Context(), user)
		if err != nil {
			return fmt.Errorf("load wrong answers: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No unresolved wrong answers.")
			return nil
		}

		fmt.Printf("%-20s  %-6s  %-12s  %s\n", "Question", "Misses", "Status", "Last Missed")
		for _, e := range entries {
			fmt.Printf("%-20s  %-6d  %-12s  %s\n",
				e.QuestionID, e.RepeatCount, e.Status,
				e.LastWrongAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var wrongbookResolveCmd = &cobra.Command{
	Use:   "resolve <question-id>",
	Short: "Mark a wrong answer as mastered or needing review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser(cmd)
		if err != nil {
			return err
		}
		status, _ := cmd.Flags().GetString("status")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ledger := wrongbook.NewLedger(s.WrongAnswerRepo(), newLogger(cmd))
		if err := ledger.Resolve(cmd.Context(), user, args[0], status); err != nil {
			return err
		}

		fmt.Printf("Marked %s as %s.\n", args[0], status)
		return nil
	},
}

func init() {
	wrongbookListCmd.Flags().StringP("user", "u", "", "Learner id (required)")

	wrongbookResolveCmd.Flags().StringP("user", "u", "", "Learner id (required)")
	wrongbookResolveCmd.Flags().String("status", wrongbook.StatusMastered,
		"New status: mastered or needs_review")

	wrongbookCmd.AddCommand(wrongbookListCmd)
	wrongbookCmd.AddCommand(wrongbookResolveCmd)
}
