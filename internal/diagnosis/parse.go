package diagnosis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// fieldSeparator splits the judge's three response segments.
const fieldSeparator = "##"

// dimensionScore is one entry of the judge's scores segment.
type dimensionScore struct {
	Dimension string  `json:"dimension"`
	Score     float64 `json:"score"`
}

// parseJudgment decodes the judge's delimited response. The format is
// strict: exactly three non-empty segments separated by "##", with the
// third segment a JSON array of dimension scores. Anything else is an
// error and the submission is not graded.
func parseJudgment(raw string) (correct bool, rationale string, scores map[string]float64, err error) {
	raw = strings.TrimSpace(raw)

	parts := strings.Split(raw, fieldSeparator)
	if len(parts) != 3 {
		return false, "", nil, fmt.Errorf("expected 3 segments, got %d", len(parts))
	}

	verdict := strings.ToLower(strings.TrimSpace(parts[0]))
	if verdict == "" {
		return false, "", nil, fmt.Errorf("empty correctness segment")
	}

	rationale = strings.TrimSpace(parts[1])
	if rationale == "" {
		return false, "", nil, fmt.Errorf("empty rationale segment")
	}

	var list []dimensionScore
	if jsonErr := json.Unmarshal([]byte(strings.TrimSpace(parts[2])), &list); jsonErr != nil {
		return false, "", nil, fmt.Errorf("parse dimension scores: %w", jsonErr)
	}

	scores = make(map[string]float64, len(list))
	for _, d := range list {
		if d.Dimension == "" {
			return false, "", nil, fmt.Errorf("dimension score with empty name")
		}
		scores[d.Dimension] = d.Score
	}

	// Only the exact word "yes" counts as correct.
	return verdict == "yes", rationale, scores, nil
}
