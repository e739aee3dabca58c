package discovery

import "github.com/tutorloop/tutorloop/internal/knowledge"

// Tier classifies how reachable a candidate is from the learner's current
// mastery frontier.
type Tier int

const (
	// TierOneHop means every prerequisite is already mastered.
	TierOneHop Tier = iota
	// TierTwoHop means exactly one prerequisite is missing and that
	// prerequisite is itself a one-hop candidate: learn the gateway node
	// first and this one opens up.
	TierTwoHop
	// TierFallback is the cycle-safe escape hatch: nothing was reachable,
	// so the first unmastered node in module order is offered anyway.
	TierFallback
)

// Hop-distance weights fed into the composite suitability score.
const (
	WeightOneHop   = 0.8
	WeightTwoHop   = 0.5
	WeightFallback = 0.3
)

func (t Tier) String() string {
	switch t {
	case TierOneHop:
		return "one-hop"
	case TierTwoHop:
		return "two-hop"
	case TierFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Weight returns the hop weight for the tier.
func (t Tier) Weight() float64 {
	switch t {
	case TierOneHop:
		return WeightOneHop
	case TierTwoHop:
		return WeightTwoHop
	default:
		return WeightFallback
	}
}

// Candidate is a learnable node discovered for a user, tagged with its
// reachability tier. All candidates of a tier are kept; ranking happens in
// the scoring step, not here.
type Candidate struct {
	Node      knowledge.Node
	Tier      Tier
	HopWeight float64

	// Unresolved marks a fallback candidate whose prerequisites could not
	// be satisfied, typically because of a prerequisite cycle.
	Unresolved bool
}
