package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tutorloop/tutorloop/internal/knowledge"
	"github.com/tutorloop/tutorloop/internal/mastery"
	"github.com/tutorloop/tutorloop/internal/store"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show a learner's mastery across the curriculum",
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

		ctx := cmd.Context()
		graph, err := knowledge.Load(ctx, s.GraphRepo())
		if err != nil {
			return fmt.Errorf("load knowledge graph: %w", err)
		}

		scores, err := s.MasteryRepo().ForUser(ctx, user)
		if err != nil {
			return fmt.Errorf("load mastery scores: %w", err)
		}

		modules := graph.Modules()
		if len(modules) == 0 {
			fmt.Println("The curriculum is empty. Run 'tutorloop seed' first.")
			return nil
		}

		for _, module := range modules {
			nodes := graph.ModuleNodes(module.ID)
			mastered := 0
			for _, n := range nodes {
				if scores[n.ID] >= mastery.Threshold {
					mastered++
				}
			}
			fmt.Printf("%s  (%d/%d mastered)\n", module.Name, mastered, len(nodes))

			for _, n := range nodes {
				fmt.Printf("  %-24s %s %.2f\n", n.Name, bar(scores[n.ID]), scores[n.ID])
			}
			fmt.Println()
		}

		answers, err := s.EventRepo().AnswersForUser(ctx, user, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("load answer history: %w", err)
		}
		if len(answers) > 0 {
			correct := 0
			for _, a := range answers {
				if a.Correct {
					correct++
				}
			}
			fmt.Printf("Answered %d questions, %d correct (%.0f%%).\n",
				len(answers), correct, 100*float64(correct)/float64(len(answers)))
		}

		return nil
	},
}

// bar renders a 10-cell mastery bar.
func bar(score float64) string {
	filled := int(score * 10)
	if filled > 10 {
		filled = 10
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", 10-filled) + "]"
}

func init() {
	progressCmd.Flags().StringP("user", "u", "", "Learner id (required)")
}
