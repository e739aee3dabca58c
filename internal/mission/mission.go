// Package mission assembles user-facing learning tasks. A mission is an
// ephemeral recommendation artifact, built fresh per request, never stored:
// a target node, a rationale, and an ordered list of steps that reference
// questions by id.
package mission

import "github.com/tutorloop/tutorloop/internal/knowledge"

// StepKind classifies a mission step.
type StepKind string

const (
	// StepConceptReview asks the learner to read the node's summary
	// before practicing.
	StepConceptReview StepKind = "concept_review"
	// StepPractice is a fresh practice question.
	StepPractice StepKind = "practice"
	// StepWrongReview revisits a previously missed question.
	StepWrongReview StepKind = "wrong_review"
)

// Kind classifies the overall mission shape.
type Kind string

const (
	// KindNewKnowledge advances the learner to a newly recommended node.
	KindNewKnowledge Kind = "new_knowledge"
	// KindWeakPoint drills an explicitly targeted weak node.
	KindWeakPoint Kind = "weak_point"
	// KindComplete means the curriculum holds nothing left to learn.
	KindComplete Kind = "complete"
	// KindEmpty means no content was available for the request. Terminal
	// and user-visible, not an error.
	KindEmpty Kind = "empty"
)

// Step is one unit of work inside a mission.
type Step struct {
	Kind StepKind

	// QuestionID references the question to answer, empty for
	// concept-review steps.
	QuestionID string

	// Prompt is the user-facing instruction for this step.
	Prompt string
}

// Mission is the packaged recommendation handed to the caller.
type Mission struct {
	ID        string
	Kind      Kind
	Rationale string

	// Target is the node this mission works toward. Nil for complete and
	// empty missions.
	Target *knowledge.Node

	Steps []Step
}
