package socratic

import (
	"math/rand/v2"
	"testing"

	"github.com/abhisek/socratiq/internal/assess"
)

func newTestSelector(seed uint64) *Selector {
	return New(rand.New(rand.NewPCG(seed, seed)))
}

func TestInitialType(t *testing.T) {
	tests := []struct {
		name    string
		problem string
		want    QuestionType
	}{
		{"solve keyword", "Solve for x: 2x + 4 = 10", TypeClarification},
		{"find keyword", "Find the area of the triangle", TypeClarification},
		{"why keyword", "Why is the sum of two odds even?", TypeEvidence},
		{"explain keyword", "Explain how fractions are added", TypeEvidence},
		{"compare keyword", "Compare these two strategies", TypePerspective},
		{"evaluate keyword", "Evaluate which estimate is better", TypePerspective},
		{"no keyword", "A train leaves the station at 3pm", TypeClarification},
		{"solve beats why", "Solve this and explain why it works", TypeClarification},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InitialType(tt.problem); got != tt.want {
				t.Errorf("InitialType(%q) = %q, want %q", tt.problem, got, tt.want)
			}
		})
	}
}

func TestNextType_MidBandIsEvidence(t *testing.T) {
	s := newTestSelector(1)
	for _, conf := range []float64{0.3, 0.5, 0.7} {
		got := s.NextType(assess.Assessment{ConfidenceLevel: conf})
		if got != TypeEvidence {
			t.Errorf("NextType(conf=%.2f) = %q, want evidence", conf, got)
		}
	}
}

func TestNextType_LowBandDistribution(t *testing.T) {
	s := newTestSelector(42)
	counts := map[QuestionType]int{}
	for range 1000 {
		got := s.NextType(assess.Assessment{ConfidenceLevel: 0.1})
		counts[got]++
	}
	if len(counts) != 2 {
		t.Fatalf("low band produced types %v, want clarification and assumptions only", counts)
	}
	if counts[TypeClarification] < 600 || counts[TypeClarification] > 800 {
		t.Errorf("clarification count = %d, want roughly 700 of 1000", counts[TypeClarification])
	}
	if counts[TypeAssumptions] == 0 {
		t.Error("assumptions never chosen in low band")
	}
}

func TestNextType_HighBandDeepTypes(t *testing.T) {
	s := newTestSelector(7)
	deep := map[QuestionType]bool{
		TypeImplications:    true,
		TypePerspective:     true,
		TypeMetaQuestioning: true,
	}
	seen := map[QuestionType]bool{}
	for range 500 {
		got := s.NextType(assess.Assessment{ConfidenceLevel: 0.9})
		if !deep[got] {
			t.Fatalf("high band chose %q, want a deep type", got)
		}
		seen[got] = true
	}
	if len(seen) != 3 {
		t.Errorf("high band only produced %v, want all three deep types", seen)
	}
}

func TestNextType_Deterministic(t *testing.T) {
	a := newTestSelector(99)
	b := newTestSelector(99)
	for i := range 50 {
		asmt := assess.Assessment{ConfidenceLevel: 0.1}
		if i%2 == 0 {
			asmt.ConfidenceLevel = 0.9
		}
		if got, want := a.NextType(asmt), b.NextType(asmt); got != want {
			t.Fatalf("same seed diverged at draw %d: %q vs %q", i, got, want)
		}
	}
}

func TestUnderstandingCheckType(t *testing.T) {
	tests := []struct {
		name     string
		conf     float64
		thinking int
		want     QuestionType
	}{
		{"high confidence", 0.8, 1, TypeEvidence},
		{"low confidence", 0.3, 4, TypeClarification},
		{"deep reasoning", 0.5, 3, TypeImplications},
		{"deepest reasoning mid confidence", 0.5, 5, TypeImplications},
		{"shallow reasoning mid confidence", 0.5, 2, TypeEvidence},
		{"high confidence trumps deep reasoning", 0.9, 5, TypeEvidence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnderstandingCheckType(assess.Assessment{ConfidenceLevel: tt.conf, DepthOfThinking: tt.thinking})
			if got != tt.want {
				t.Errorf("UnderstandingCheckType(conf=%.2f, thinking=%d) = %q, want %q",
					tt.conf, tt.thinking, got, tt.want)
			}
		})
	}
}

func TestContextualType_RecoveryOverride(t *testing.T) {
	s := newTestSelector(3)
	got := s.ContextualType(assess.Assessment{ConfidenceLevel: 0.1, ReadinessForAdvancement: true}, TypeImplications)
	if got != TypeClarification {
		t.Errorf("ContextualType at conf 0.1 = %q, want clarification", got)
	}
}

func TestContextualType_RepeatsWhenNotReady(t *testing.T) {
	s := newTestSelector(3)
	got := s.ContextualType(assess.Assessment{ConfidenceLevel: 0.5}, TypeAssumptions)
	if got != TypeAssumptions {
		t.Errorf("ContextualType not-ready = %q, want previous type repeated", got)
	}
}

func TestContextualType_AdvancesWhenReady(t *testing.T) {
	s := newTestSelector(3)
	got := s.ContextualType(assess.Assessment{ConfidenceLevel: 0.5, ReadinessForAdvancement: true}, TypeAssumptions)
	if got != TypeEvidence {
		t.Errorf("ContextualType ready mid-band = %q, want evidence", got)
	}
}
