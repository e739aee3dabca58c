package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tutorloop/tutorloop/internal/knowledge"
	"github.com/tutorloop/tutorloop/internal/store"
)

// curriculumFile is the JSON shape the seed command ingests.
type curriculumFile struct {
	Nodes []struct {
		ID         string  `json:"id"`
		Name       string  `json:"name"`
		Difficulty float64 `json:"difficulty"`
		Level      int     `json:"level"`
		Summary    string  `json:"summary"`
		Kind       string  `json:"kind"`
		Position   int     `json:"position"`
	} `json:"nodes"`
	Edges []struct {
		Source   string `json:"source"`
		Target   string `json:"target"`
		Relation string `json:"relation"`
	} `json:"edges"`
	Questions []struct {
		ID         string   `json:"id"`
		Text       string   `json:"text"`
		Answer     string   `json:"answer"`
		Difficulty float64  `json:"difficulty"`
		NodeIDs    []string `json:"node_ids"`
	} `json:"questions"`
}

var seedCmd = &cobra.Command{
	Use:   "seed <curriculum.json>",
	Short: "Load a curriculum file into the knowledge graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read curriculum file: %w", err)
		}

		var file curriculumFile
		if err := json.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse curriculum file: %w", err)
		}

		nodes := make([]knowledge.Node, len(file.Nodes))
		for i, n := range file.Nodes {
			nodes[i] = knowledge.Node{
				ID:         n.ID,
				Name:       n.Name,
				Difficulty: n.Difficulty,
				Level:      n.Level,
				Summary:    n.Summary,
				Kind:       knowledge.Kind(n.Kind),
				Position:   n.Position,
			}
		}
		edges := make([]knowledge.Edge, len(file.Edges))
		for i, e := range file.Edges {
			edges[i] = knowledge.Edge{
				Source:   e.Source,
				Target:   e.Target,
				Relation: knowledge.Relation(e.Relation),
			}
		}

		if err := knowledge.Validate(nodes, edges); err != nil {
			return fmt.Errorf("invalid curriculum: %w", err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		graphRepo := s.GraphRepo()
		for _, n := range nodes {
			err := graphRepo.SaveNode(ctx, store.NodeRow{
				NodeID:     n.ID,
				Name:       n.Name,
				Difficulty: n.Difficulty,
				Level:      n.Level,
				Summary:    n.Summary,
				Kind:       string(n.Kind),
				Position:   n.Position,
			})
			if err != nil {
				return fmt.Errorf("save node %q: %w", n.ID, err)
			}
		}
		for _, e := range edges {
			err := graphRepo.SaveEdge(ctx, store.EdgeRow{
				SourceID: e.Source,
				TargetID: e.Target,
				Relation: string(e.Relation),
			})
			if err != nil {
				return fmt.Errorf("save edge %s->%s: %w", e.Source, e.Target, err)
			}
		}

		questionRepo := s.QuestionRepo()
		for _, q := range file.Questions {
			err := questionRepo.Save(ctx, store.QuestionRow{
				QuestionID: q.ID,
				Text:       q.Text,
				Answer:     q.Answer,
				Difficulty: q.Difficulty,
				NodeIDs:    q.NodeIDs,
			})
			if err != nil {
				return fmt.Errorf("save question %q: %w", q.ID, err)
			}
		}

		fmt.Printf("Seeded %d nodes, %d edges, %d questions.\n",
			len(nodes), len(edges), len(file.Questions))

		// Prerequisite cycles are legal (the fallback tier handles them at
		// recommendation time) but worth surfacing to the curriculum author.
		if cyclic := knowledge.New(nodes, edges).CyclicNodes(); len(cyclic) > 0 {
			fmt.Printf("Warning: prerequisite cycle involving: %s\n", strings.Join(cyclic, ", "))
		}

		return nil
	},
}
