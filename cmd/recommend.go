package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutorloop/tutorloop/internal/mission"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend the next knowledge point to learn",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser(cmd)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		p, err := buildPipeline(ctx, cmd)
		if err != nil {
			return err
		}
		defer p.Close()

		m, err := p.packager.NewKnowledge(ctx, user)
		if err != nil {
			return fmt.Errorf("build recommendation: %w", err)
		}

		printMission(m)
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringP("user", "u", "", "Learner id (required)")
}

func printMission(m *mission.Mission) {
	switch m.Kind {
	case mission.KindComplete, mission.KindEmpty:
		fmt.Println(m.Rationale)
		return
	}

	fmt.Printf("Mission %s\n", m.ID)
	if m.Target != nil {
		fmt.Printf("Target:  %s (difficulty %.2f)\n", m.Target.Name, m.Target.Difficulty)
	}
	fmt.Printf("Why:     %s\n", m.Rationale)
	fmt.Println()

	for i, step := range m.Steps {
		label := "practice"
		switch step.Kind {
		case mission.StepConceptReview:
			label = "review"
		case mission.StepWrongReview:
			label = "retry"
		}
		fmt.Printf("%d. [%s] %s\n", i+1, label, step.Prompt)
		if step.QuestionID != "" {
			fmt.Printf("   question: %s\n", step.QuestionID)
		}
	}
}
