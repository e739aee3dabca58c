package scoring

import (
	"fmt"
	"strings"

	"github.com/tutorloop/tutorloop/internal/discovery"
)

const systemPrompt = `You are a learning-path advisor for an adaptive tutoring system.

Rules:
- You are given a list of candidate knowledge points a learner could study next, with difficulty (0.0 easy to 1.0 hard) and how the candidate was reached.
- For each candidate, judge how suitable it is for the learner RIGHT NOW and return a suitability score between 0.0 and 1.0.
- The learner's already-mastered knowledge is listed; prefer candidates that build directly on it.
- Prefer candidates whose prerequisites are fully mastered over candidates reached by skipping ahead.
- Prefer moderate difficulty over extremes. A learner grows fastest slightly above their comfort zone.
- A candidate marked "fallback" has unmet prerequisites. Score it low unless nothing else is available.
- Return exactly one entry per candidate, using the node name exactly as given.`

// buildUserMessage lists the learner's mastered knowledge and the
// candidates for the suitability judge.
func buildUserMessage(moduleName string, mastered []string, cands []discovery.Candidate) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Current module: %s\n", moduleName)
	if len(mastered) > 0 {
		fmt.Fprintf(&b, "Already mastered: %s\n", strings.Join(mastered, ", "))
	} else {
		b.WriteString("Already mastered: (nothing yet)\n")
	}
	fmt.Fprintf(&b, "Candidates (%d):\n", len(cands))

	for i, c := range cands {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c.Node.Name)
		fmt.Fprintf(&b, "   Difficulty: %.2f\n", c.Node.Difficulty)
		fmt.Fprintf(&b, "   Reached: %s\n", c.Tier.String())
		if c.Node.Summary != "" {
			fmt.Fprintf(&b, "   Summary: %s\n", c.Node.Summary)
		}
	}

	return b.String()
}
