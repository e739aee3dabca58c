package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tutorloop/tutorloop/internal/diagnosis"
	"github.com/tutorloop/tutorloop/internal/mastery"
)

var submitCmd = &cobra.Command{
	Use:   "submit <question-id> <answer>",
	Short: "Submit an answer for grading",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser(cmd)
		if err != nil {
			return err
		}
		timeSpent, _ := cmd.Flags().GetInt("time-ms")
		confidence, _ := cmd.Flags().GetFloat64("confidence")

		ctx := cmd.Context()
		p, err := buildPipeline(ctx, cmd)
		if err != nil {
			return err
		}
		defer p.Close()

		engine := diagnosis.New(p.provider, p.store.QuestionRepo(), p.graph,
			p.tracker, p.ledger, p.store.EventRepo(), p.log)

		result, err := engine.Submit(ctx, diagnosis.Submission{
			UserID:      user,
			QuestionID:  args[0],
			RawAnswer:   args[1],
			TimeSpentMs: timeSpent,
			Confidence:  confidence,
		})
		if err != nil {
			return err
		}

		if result.Correct {
			fmt.Println("Correct!")
		} else {
			fmt.Println("Incorrect.")
		}
		fmt.Println(result.Rationale)

		if len(result.DimensionScores) > 0 {
			fmt.Println()
			dims := make([]string, 0, len(result.DimensionScores))
			for d := range result.DimensionScores {
				dims = append(dims, d)
			}
			sort.Strings(dims)
			for _, d := range dims {
				fmt.Printf("  %-12s %.2f\n", d, result.DimensionScores[d])
			}
		}

		if len(result.NodeIDs) > 0 {
			fmt.Println()
			for _, nodeID := range result.NodeIDs {
				score, err := p.tracker.Score(ctx, user, nodeID)
				if err != nil {
					continue
				}
				node, err := p.graph.Node(nodeID)
				if err != nil {
					continue
				}
				marker := ""
				if score >= mastery.Threshold {
					marker = "  (mastered)"
				}
				fmt.Printf("  %s: %.2f%s\n", node.Name, score, marker)
			}
		}

		return nil
	},
}

func init() {
	submitCmd.Flags().StringP("user", "u", "", "Learner id (required)")
	submitCmd.Flags().Int("time-ms", 0, "Time spent answering, in milliseconds")
	submitCmd.Flags().Float64("confidence", 0, "Self-reported confidence, 0.0 to 1.0")
}
