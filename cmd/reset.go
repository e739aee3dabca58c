package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase a learner's progress (mastery, wrong-answer book, answer history)",
	Long: `Deletes all mastery records, wrong-answer entries and answer events
for the given learner. Curriculum content is not touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser(cmd)
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			fmt.Printf("This will permanently erase all progress for %q. Continue? [y/N] ", user)
			reader := bufio.NewReader(os.Stdin)
			line, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.ResetUser(cmd.Context(), user)
		if err != nil {
			return fmt.Errorf("reset learner: %w", err)
		}

		fmt.Printf("Deleted %d records for %s.\n", n, user)
		return nil
	},
}

func init() {
	resetCmd.Flags().StringP("user", "u", "", "Learner id (required)")
	resetCmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")
}
