package assess

import (
	"strings"
	"testing"

	"github.com/abhisek/socratiq/internal/catalog"
)

func newAssessor() *Assessor {
	return New(catalog.Default())
}

func TestAssess_UncertaintyDominates(t *testing.T) {
	a := newAssessor()
	got := a.Assess("I don't know, maybe x is 8?")
	if got.ConfidenceLevel > 0.2 {
		t.Errorf("confidence = %v, want <= 0.2 (uncertainty pattern dominates hedging)", got.ConfidenceLevel)
	}
	if got.ReadinessForAdvancement {
		t.Error("uncertain student must not be ready for advancement")
	}
}

func TestAssess_ConfidencePattern(t *testing.T) {
	a := newAssessor()
	got := a.Assess("I'm sure the variable equals four")
	if got.ConfidenceLevel != 0.9 {
		t.Errorf("confidence = %v, want 0.9", got.ConfidenceLevel)
	}
	if !got.ReadinessForAdvancement {
		t.Error("confident, misconception-free answer should be ready")
	}
}

func TestAssess_HedgingPattern(t *testing.T) {
	a := newAssessor()
	got := a.Assess("Maybe it has something to do with the slope")
	if got.ConfidenceLevel != 0.6 {
		t.Errorf("confidence = %v, want 0.6", got.ConfidenceLevel)
	}
	if got.ReadinessForAdvancement {
		t.Error("0.6 is not above the readiness threshold")
	}
}

func TestAssess_ShortAnswerCapped(t *testing.T) {
	a := newAssessor()
	got := a.Assess("yes")
	if got.ConfidenceLevel != 0.4 {
		t.Errorf("confidence = %v, want 0.4 for a short answer", got.ConfidenceLevel)
	}
}

func TestAssess_ShortButAssuredNotCapped(t *testing.T) {
	a := newAssessor()
	// "I know" is under 10 chars but carries an explicit confidence marker.
	got := a.Assess("I know")
	if got.ConfidenceLevel != 0.9 {
		t.Errorf("confidence = %v, want 0.9 (explicit confidence beats the short-answer cap)", got.ConfidenceLevel)
	}
}

func TestAssess_EmptyUtterance(t *testing.T) {
	a := newAssessor()
	got := a.Assess("")
	if got.ConfidenceLevel != 0.4 {
		t.Errorf("confidence = %v, want 0.4", got.ConfidenceLevel)
	}
	if got.ConceptualUnderstanding != 1 {
		t.Errorf("understanding = %d, want 1", got.ConceptualUnderstanding)
	}
	if got.DepthOfThinking != 1 {
		t.Errorf("depth = %d, want 1", got.DepthOfThinking)
	}
}

func TestAssess_Misconceptions(t *testing.T) {
	a := newAssessor()
	got := a.Assess("Multiplying always makes numbers bigger, every time")
	if len(got.Misconceptions) != 2 {
		t.Fatalf("got %d misconceptions, want 2: %v", len(got.Misconceptions), got.Misconceptions)
	}
	if got.ReadinessForAdvancement {
		t.Error("flagged misconceptions must block readiness")
	}
}

func TestAssess_UnderstandingTiers(t *testing.T) {
	a := newAssessor()
	pad := func(s string, n int) string {
		return s + strings.Repeat(" and then I checked the numbers again", 10)[:n-len(s)]
	}

	tests := []struct {
		name string
		text string
		want int
	}{
		{"tiny", "it is 4", 1},
		{"length only", pad("I moved the x to the other side of the equation", 60), 2},
		{"connective at 100", pad("I moved the x because both sides must stay balanced", 110), 3},
		{
			"connective and example at 220 stays at 4",
			pad("I moved the x because both sides must stay balanced, for example when you subtract three from the left you also subtract it from the right", 220),
			4,
		},
		{
			"generalization unlocks 5",
			pad("I moved the x because both sides must stay balanced, for example subtracting three from both sides, and in general the rule is the same operation on both sides", 230),
			5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Assess(tt.text)
			if got.ConceptualUnderstanding != tt.want {
				t.Errorf("understanding = %d, want %d (len %d)", got.ConceptualUnderstanding, tt.want, len(tt.text))
			}
		})
	}
}

func TestAssess_DepthOfThinking(t *testing.T) {
	a := newAssessor()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"no indicators", "it is twelve", 1},
		{"one class", "why does that happen", 2},
		{"three classes", "why is that true, because the value depends on the difference", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Assess(tt.text)
			if got.DepthOfThinking != tt.want {
				t.Errorf("depth = %d, want %d", got.DepthOfThinking, tt.want)
			}
		})
	}
}

func TestAssess_BoundsHoldForArbitraryInput(t *testing.T) {
	a := newAssessor()
	inputs := []string{
		"", " ", "????", strings.Repeat("a", 5000),
		"I'm sure I don't know", "always never maybe because",
		"\x00\x01 binary junk", strings.Repeat("why because pattern compare best ", 50),
	}
	for _, in := range inputs {
		got := a.Assess(in)
		if got.ConfidenceLevel < 0 || got.ConfidenceLevel > 1 {
			t.Errorf("confidence %v out of [0,1] for %q", got.ConfidenceLevel, in)
		}
		if got.ConceptualUnderstanding < 1 || got.ConceptualUnderstanding > 5 {
			t.Errorf("understanding %d out of [1,5] for %q", got.ConceptualUnderstanding, in)
		}
		if got.DepthOfThinking < 1 || got.DepthOfThinking > 5 {
			t.Errorf("depth %d out of [1,5] for %q", got.DepthOfThinking, in)
		}
	}
}

func TestAssess_TransferAttempt(t *testing.T) {
	a := newAssessor()
	if !a.Assess("what if we tried the same thing on a bigger number?").TransferAttempt {
		t.Error("expected transfer attempt to be detected")
	}
	if a.Assess("the total is twelve").TransferAttempt {
		t.Error("unexpected transfer attempt")
	}
}
