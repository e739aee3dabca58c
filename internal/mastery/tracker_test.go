package mastery

import (
	"context"
	"math"
	"testing"
)

// fakeMasteryRepo implements store.MasteryRepo in memory.
type fakeMasteryRepo struct {
	scores map[string]float64 // key: user|node
	failAt string             // node id whose writes fail
	err    error
}

func newFakeMasteryRepo() *fakeMasteryRepo {
	return &fakeMasteryRepo{scores: make(map[string]float64)}
}

func (f *fakeMasteryRepo) Score(_ context.Context, userID, nodeID string) (float64, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	s, ok := f.scores[userID+"|"+nodeID]
	return s, ok, nil
}

func (f *fakeMasteryRepo) Upsert(_ context.Context, userID, nodeID string, score float64) error {
	if f.err != nil {
		return f.err
	}
	f.scores[userID+"|"+nodeID] = score
	return nil
}

func (f *fakeMasteryRepo) ForUser(_ context.Context, userID string) (map[string]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]float64)
	for k, v := range f.scores {
		if len(k) > len(userID) && k[:len(userID)+1] == userID+"|" {
			out[k[len(userID)+1:]] = v
		}
	}
	return out, nil
}

func TestDeltaRanges(t *testing.T) {
	// The range endpoints are hit exactly at difficulty 0 and 1, where
	// float addition lands one ulp off the decimal literal.
	const eps = 1e-9
	for d := 0.0; d <= 1.0; d += 0.05 {
		correct := Delta(d, true)
		if correct < 0.05-eps || correct > 0.15+eps {
			t.Errorf("Delta(%v, correct) = %v, want in [0.05, 0.15]", d, correct)
		}
		wrong := Delta(d, false)
		if wrong < -0.12-eps || wrong > -0.02+eps {
			t.Errorf("Delta(%v, incorrect) = %v, want in [-0.12, -0.02]", d, wrong)
		}
	}

	// Harder items reward more, easier items punish more.
	if Delta(1, true) <= Delta(0, true) {
		t.Error("correct delta should grow with difficulty")
	}
	if Delta(0, false) >= Delta(1, false) {
		t.Error("incorrect delta should be harsher for easy items")
	}
}

func TestApplyOutcomeFirstExposure(t *testing.T) {
	repo := newFakeMasteryRepo()
	tr := NewTracker(repo, nil)
	ctx := context.Background()

	// No prior record: base is 0.5, then the delta applies.
	got, err := tr.ApplyOutcome(ctx, "u1", "a", 0.5, true)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := 0.5 + 0.05 + 0.5*0.10
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("first exposure score = %v, want %v", got, want)
	}
}

func TestApplyOutcomeExistingRecord(t *testing.T) {
	repo := newFakeMasteryRepo()
	repo.scores["u1|a"] = 0.3
	tr := NewTracker(repo, nil)
	ctx := context.Background()

	got, err := tr.ApplyOutcome(ctx, "u1", "a", 0.0, false)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := 0.3 - 0.12
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("score = %v, want %v", got, want)
	}
}

func TestApplyOutcomeClamped(t *testing.T) {
	repo := newFakeMasteryRepo()
	tr := NewTracker(repo, nil)
	ctx := context.Background()

	repo.scores["u1|hi"] = 0.99
	got, _ := tr.ApplyOutcome(ctx, "u1", "hi", 1.0, true)
	if got != 1.0 {
		t.Errorf("score = %v, want clamped to 1", got)
	}

	repo.scores["u1|lo"] = 0.01
	got, _ = tr.ApplyOutcome(ctx, "u1", "lo", 0.0, false)
	if got != 0.0 {
		t.Errorf("score = %v, want clamped to 0", got)
	}

	// Repeated wrong answers never escape [0,1].
	for i := 0; i < 50; i++ {
		got, _ = tr.ApplyOutcome(ctx, "u1", "lo", 0.2, false)
		if got < 0 || got > 1 {
			t.Fatalf("score left [0,1]: %v", got)
		}
	}
}

func TestApplyOutcomeNotIdempotent(t *testing.T) {
	repo := newFakeMasteryRepo()
	tr := NewTracker(repo, nil)
	ctx := context.Background()

	first, _ := tr.ApplyOutcome(ctx, "u1", "a", 0.5, true)
	second, _ := tr.ApplyOutcome(ctx, "u1", "a", 0.5, true)
	if second <= first {
		t.Errorf("re-applying the same outcome must move the score again: %v then %v", first, second)
	}
}

func TestIsMasteredThreshold(t *testing.T) {
	repo := newFakeMasteryRepo()
	repo.scores["u1|a"] = 0.8
	repo.scores["u1|b"] = 0.79
	tr := NewTracker(repo, nil)
	ctx := context.Background()

	tests := []struct {
		node string
		want bool
	}{
		{"a", true},
		{"b", false},
		{"never-seen", false}, // absent record reads as 0
	}
	for _, tt := range tests {
		got, err := tr.IsMastered(ctx, "u1", tt.node)
		if err != nil {
			t.Fatalf("is mastered %s: %v", tt.node, err)
		}
		if got != tt.want {
			t.Errorf("IsMastered(%s) = %v, want %v", tt.node, got, tt.want)
		}
	}
}

func TestMasteredSet(t *testing.T) {
	repo := newFakeMasteryRepo()
	repo.scores["u1|a"] = 0.9
	repo.scores["u1|b"] = 0.5
	repo.scores["u2|c"] = 1.0
	tr := NewTracker(repo, nil)

	set, err := tr.MasteredSet(context.Background(), "u1")
	if err != nil {
		t.Fatalf("mastered set: %v", err)
	}
	if len(set) != 1 || !set["a"] {
		t.Errorf("set = %v, want {a}", set)
	}
}
