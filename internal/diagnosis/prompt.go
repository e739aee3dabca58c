package diagnosis

import (
	"fmt"
	"strings"

	"github.com/tutorloop/tutorloop/internal/store"
)

const systemPrompt = `You are a grading assistant for an adaptive tutoring system.

Rules:
- You are given a question, its reference answer, and a student's submitted answer.
- Judge whether the student's answer is correct. Accept mathematically or semantically equivalent forms of the reference answer.
- Write a short rationale (one or two sentences) explaining your judgment, addressed to the student.
- Score the answer on each listed ability dimension from 0.0 (no evidence) to 1.0 (strong evidence).
- Respond in EXACTLY this format, with no other text:

<correctness>##<rationale>##<scores>

where <correctness> is the single word "yes" or "no", <rationale> is the explanation, and <scores> is a JSON array of objects with "dimension" (string) and "score" (number) fields.

Example:
yes##Correct, 3/4 and 0.75 are the same value.##[{"dimension":"knowledge","score":0.9},{"dimension":"calculation","score":0.8}]`

// gradingDimensions are the ability dimensions every answer is scored on.
var gradingDimensions = []string{"knowledge", "logic", "calculation", "behavior"}

// nominalTimeBudgetSec is the reference solving time handed to the judge
// so the behavior dimension can weigh pace against the norm.
const nominalTimeBudgetSec = 300

// buildUserMessage constructs the grading request for one submission.
func buildUserMessage(q *store.QuestionRow, rawAnswer string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", q.Text)
	fmt.Fprintf(&b, "Reference answer: %s\n", q.Answer)
	fmt.Fprintf(&b, "Student answer: %s\n", rawAnswer)
	fmt.Fprintf(&b, "Time budget: %d seconds\n", nominalTimeBudgetSec)
	fmt.Fprintf(&b, "Dimensions: %s\n", strings.Join(gradingDimensions, ", "))

	return b.String()
}
