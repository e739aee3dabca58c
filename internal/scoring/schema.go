package scoring

import "github.com/tutorloop/tutorloop/internal/llm"

// SuitabilitySchema defines the JSON schema for batch suitability judgments.
// The judge returns one entry per candidate node.
var SuitabilitySchema = &llm.Schema{
	Name:        "suitability-scores",
	Description: "Per-candidate suitability scores for a learner",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"node_name": map[string]any{
					"type":        "string",
					"description": "The candidate knowledge point name, exactly as given",
				},
				"suitability_score": map[string]any{
					"type":        "number",
					"minimum":     0,
					"maximum":     1,
					"description": "How well this node fits the learner right now, 0 to 1",
				},
			},
			"required":             []any{"node_name", "suitability_score"},
			"additionalProperties": false,
		},
	},
}
