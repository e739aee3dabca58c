package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutorloop/tutorloop/internal/mission"
)

var weakpointCmd = &cobra.Command{
	Use:   "weakpoint <node-id>",
	Short: "Build a targeted drill for a weak knowledge point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser(cmd)
		if err != nil {
			return err
		}

		min, _ := cmd.Flags().GetFloat64("min-difficulty")
		max, _ := cmd.Flags().GetFloat64("max-difficulty")
		if min < 0 || max > 1 || min > max {
			return fmt.Errorf("difficulty band [%.2f, %.2f] is invalid", min, max)
		}

		ctx := cmd.Context()
		p, err := buildPipeline(ctx, cmd)
		if err != nil {
			return err
		}
		defer p.Close()

		m, err := p.packager.WeakPoint(ctx, user, args[0], mission.Band{Min: min, Max: max})
		if err != nil {
			return fmt.Errorf("build weak-point drill: %w", err)
		}

		printMission(m)
		return nil
	},
}

func init() {
	weakpointCmd.Flags().StringP("user", "u", "", "Learner id (required)")
	weakpointCmd.Flags().Float64("min-difficulty", 0.0, "Lower bound of the question difficulty band")
	weakpointCmd.Flags().Float64("max-difficulty", 1.0, "Upper bound of the question difficulty band")
}
