package socratic

import (
	"math/rand/v2"
	"strings"

	"github.com/abhisek/socratiq/internal/assess"
)

// Confidence bands used by NextType and ContextualType.
const (
	lowBand      = 0.3
	highBand     = 0.7
	recoveryBand = 0.2
	checkLowBand = 0.4
)

// Probability of clarification (vs assumptions) in the low band.
const lowBandClarificationP = 0.7

// Selector picks question types. Randomized branches draw from the
// injected source so tests can seed it.
type Selector struct {
	rng *rand.Rand
}

// New returns a Selector drawing from rng.
func New(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// InitialType chooses the opening question type from surface features
// of the problem statement.
func InitialType(problemText string) QuestionType {
	text := strings.ToLower(problemText)
	switch {
	case strings.Contains(text, "solve") || strings.Contains(text, "find"):
		return TypeClarification
	case strings.Contains(text, "why") || strings.Contains(text, "explain"):
		return TypeEvidence
	case strings.Contains(text, "compare") || strings.Contains(text, "evaluate"):
		return TypePerspective
	}
	return TypeClarification
}

// NextType maps the student's confidence band to a question type.
// Low confidence favors clarification with an occasional assumptions
// probe; mid confidence asks for evidence; high confidence pushes
// toward deeper categories chosen uniformly.
func (s *Selector) NextType(a assess.Assessment) QuestionType {
	switch {
	case a.ConfidenceLevel < lowBand:
		if s.rng.Float64() < lowBandClarificationP {
			return TypeClarification
		}
		return TypeAssumptions
	case a.ConfidenceLevel > highBand:
		deep := []QuestionType{TypeImplications, TypePerspective, TypeMetaQuestioning}
		return deep[s.rng.IntN(len(deep))]
	}
	return TypeEvidence
}

// UnderstandingCheckType picks the type for an explicit understanding
// check. A student already reasoning deeply is asked for implications;
// otherwise confidence decides between evidence and clarification.
func UnderstandingCheckType(a assess.Assessment) QuestionType {
	switch {
	case a.ConfidenceLevel > highBand:
		return TypeEvidence
	case a.ConfidenceLevel < checkLowBand:
		return TypeClarification
	case a.DepthOfThinking >= 3:
		return TypeImplications
	}
	return TypeEvidence
}

// ContextualType chooses the next type given the previous one. Very
// low confidence always recovers with clarification. A student ready
// to advance moves on via NextType; otherwise the previous type is
// repeated so the same thread is not abandoned mid-struggle.
func (s *Selector) ContextualType(a assess.Assessment, prev QuestionType) QuestionType {
	if a.ConfidenceLevel < recoveryBand {
		return TypeClarification
	}
	if a.ReadinessForAdvancement {
		return s.NextType(a)
	}
	if prev.Valid() {
		return prev
	}
	return s.NextType(a)
}
