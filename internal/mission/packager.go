package mission

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/tutorloop/tutorloop/internal/discovery"
	"github.com/tutorloop/tutorloop/internal/knowledge"
	"github.com/tutorloop/tutorloop/internal/scoring"
	"github.com/tutorloop/tutorloop/internal/sequencer"
	"github.com/tutorloop/tutorloop/internal/store"
	"github.com/tutorloop/tutorloop/internal/wrongbook"
)

const (
	// maxPracticeSteps caps practice questions in a new-knowledge mission.
	maxPracticeSteps = 3
	// maxWeakPointQuestions caps the targeted drill in a weak-point mission.
	maxWeakPointQuestions = 5
	// maxFreshAfterReview caps the fresh practice appended after a review.
	maxFreshAfterReview = 2
)

// Band is a caller-supplied inclusive difficulty range for weak-point
// question selection.
type Band struct {
	Min float64
	Max float64
}

// Contains reports whether the difficulty falls inside the band.
func (b Band) Contains(d float64) bool {
	return d >= b.Min && d <= b.Max
}

// Packager builds missions from the recommendation pipeline's outputs.
type Packager struct {
	sequencer  *sequencer.Sequencer
	discoverer *discovery.Discoverer
	scorer     *scoring.Scorer
	graph      *knowledge.Graph
	questions  store.QuestionRepo
	ledger     *wrongbook.Ledger
	log        *slog.Logger
}

// New creates a Packager. A nil logger falls back to slog.Default().
func New(seq *sequencer.Sequencer, disc *discovery.Discoverer, scorer *scoring.Scorer,
	graph *knowledge.Graph, questions store.QuestionRepo, ledger *wrongbook.Ledger, log *slog.Logger) *Packager {
	if log == nil {
		log = slog.Default()
	}
	return &Packager{
		sequencer:  seq,
		discoverer: disc,
		scorer:     scorer,
		graph:      graph,
		questions:  questions,
		ledger:     ledger,
		log:        log,
	}
}

// NewKnowledge runs the full recommendation pipeline and packages the
// winning node into a mission. Degenerate pipeline outcomes (finished
// curriculum, empty module, no questions) become terminal missions, never
// errors.
func (p *Packager) NewKnowledge(ctx context.Context, userID string) (*Mission, error) {
	module, err := p.sequencer.CurrentModule(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("determine current module: %w", err)
	}
	if module == nil {
		return &Mission{
			ID:        uuid.NewString(),
			Kind:      KindComplete,
			Rationale: "Every module in the curriculum is mastered. There is nothing left to learn.",
		}, nil
	}

	cands, err := p.discoverer.Discover(ctx, userID, *module)
	if err != nil {
		return nil, fmt.Errorf("discover candidates: %w", err)
	}

	best, err := p.scorer.Select(ctx, userID, module.Name, cands)
	if err != nil {
		return nil, fmt.Errorf("score candidates: %w", err)
	}
	if best == nil {
		return p.emptyMission("No learnable content was found in the current module."), nil
	}

	node := best.Candidate.Node

	steps := make([]Step, 0, maxPracticeSteps+1)
	if node.Summary != "" {
		steps = append(steps, Step{
			Kind:   StepConceptReview,
			Prompt: fmt.Sprintf("Review the concept: %s", node.Summary),
		})
	}

	practice, err := p.practiceSteps(ctx, node.ID, maxPracticeSteps, nil)
	if err != nil {
		return nil, err
	}
	steps = append(steps, practice...)

	if len(practice) == 0 && node.Summary == "" {
		return p.emptyMission(fmt.Sprintf("No questions are available yet for %s.", node.Name)), nil
	}

	return &Mission{
		ID:        uuid.NewString(),
		Kind:      KindNewKnowledge,
		Rationale: fmt.Sprintf("Recommended next: %s (%s candidate).", node.Name, best.Candidate.Tier),
		Target:    &node,
		Steps:     steps,
	}, nil
}

// WeakPoint packages a drill for an explicitly targeted node. Question
// selection is limited to the difficulty band; the user's most recent
// unresolved wrong question, if any, leads the mission as a review step.
func (p *Packager) WeakPoint(ctx context.Context, userID, nodeID string, band Band) (*Mission, error) {
	node, err := p.graph.Node(nodeID)
	if err != nil {
		return nil, fmt.Errorf("look up target node: %w", err)
	}

	linked, err := p.questions.ByNode(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("load questions for node %q: %w", nodeID, err)
	}

	var inBand []store.QuestionRow
	for _, q := range linked {
		if band.Contains(q.Difficulty) {
			inBand = append(inBand, q)
		}
	}
	sort.SliceStable(inBand, func(i, j int) bool {
		return inBand[i].Difficulty < inBand[j].Difficulty
	})
	if len(inBand) > maxWeakPointQuestions {
		inBand = inBand[:maxWeakPointQuestions]
	}

	var steps []Step
	used := make(map[string]bool)

	// Lead with the latest unresolved miss so the learner closes the old
	// gap before drilling fresh material.
	if review := p.reviewStep(ctx, userID); review != nil {
		steps = append(steps, *review)
		used[review.QuestionID] = true
	}

	for _, q := range inBand {
		if used[q.QuestionID] {
			continue
		}
		steps = append(steps, Step{
			Kind:       StepPractice,
			QuestionID: q.QuestionID,
			Prompt:     q.Text,
		})
		used[q.QuestionID] = true
	}

	fresh, err := p.practiceSteps(ctx, nodeID, maxFreshAfterReview, used)
	if err != nil {
		return nil, err
	}
	steps = append(steps, fresh...)

	if len(steps) == 0 {
		return p.emptyMission(fmt.Sprintf("No questions are available for %s in the requested difficulty range.", node.Name)), nil
	}

	return &Mission{
		ID:        uuid.NewString(),
		Kind:      KindWeakPoint,
		Rationale: fmt.Sprintf("Targeted practice for %s.", node.Name),
		Target:    &node,
		Steps:     steps,
	}, nil
}

// practiceSteps builds up to max practice steps from the node's questions
// in ascending difficulty, skipping already-used question ids.
func (p *Packager) practiceSteps(ctx context.Context, nodeID string, max int, used map[string]bool) ([]Step, error) {
	qs, err := p.questions.ByNode(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("load questions for node %q: %w", nodeID, err)
	}

	sort.SliceStable(qs, func(i, j int) bool {
		return qs[i].Difficulty < qs[j].Difficulty
	})

	var steps []Step
	for _, q := range qs {
		if len(steps) >= max {
			break
		}
		if used[q.QuestionID] {
			continue
		}
		steps = append(steps, Step{
			Kind:       StepPractice,
			QuestionID: q.QuestionID,
			Prompt:     q.Text,
		})
	}
	return steps, nil
}

// reviewStep fetches the user's most recent unresolved wrong question, or
// nil when the ledger is clean or unavailable.
func (p *Packager) reviewStep(ctx context.Context, userID string) *Step {
	entry, err := p.ledger.LatestUnresolved(ctx, userID)
	if err != nil {
		p.log.Warn("failed to read wrong-answer ledger", "error", err)
		return nil
	}
	if entry == nil {
		return nil
	}

	q, err := p.questions.Get(ctx, entry.QuestionID)
	if err != nil {
		p.log.Warn("wrong-answer entry references missing question",
			"question", entry.QuestionID, "error", err)
		return nil
	}

	return &Step{
		Kind:       StepWrongReview,
		QuestionID: q.QuestionID,
		Prompt:     fmt.Sprintf("You missed this before. Try again: %s", q.Text),
	}
}

func (p *Packager) emptyMission(rationale string) *Mission {
	return &Mission{
		ID:        uuid.NewString(),
		Kind:      KindEmpty,
		Rationale: rationale,
	}
}
