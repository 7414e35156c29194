// Package assess scores student utterances with deterministic pattern
// matching against the catalog's indicator tables. Scoring is a pure
// function of the text: same utterance, same assessment.
package assess

import (
	"strings"

	"github.com/abhisek/socratiq/internal/catalog"
)

// Confidence scores assigned by the indicator ladder. Empirically chosen
// constants; treat as configuration, not values to tune per call site.
const (
	confidenceNeutral   = 0.5
	confidenceUncertain = 0.2
	confidenceAssured   = 0.9
	confidenceHedged    = 0.6
	confidenceShortCap  = 0.4

	// shortUtteranceLen is the trimmed length below which an answer
	// reads as low confidence even without uncertainty language.
	shortUtteranceLen = 10
)

// Understanding tier thresholds: an utterance must reach the character
// count and carry the qualitative markers of a tier to score it.
const (
	tierBasicLen       = 50
	tierConnectedLen   = 100
	tierIllustratedLen = 150
	tierGeneralizedLen = 200
)

// Assessor scores student utterances against an injected catalog.
type Assessor struct {
	catalog *catalog.Catalog
}

// New creates an Assessor over the given catalog.
func New(c *catalog.Catalog) *Assessor {
	return &Assessor{catalog: c}
}

// Assess scores one utterance. It never fails: malformed or empty input
// degrades to a moderate/low default so the dialogue can continue.
func (a *Assessor) Assess(utterance string) Assessment {
	trimmed := strings.TrimSpace(utterance)
	lower := strings.ToLower(trimmed)

	confidence := confidenceNeutral
	assured := false
	switch {
	case catalog.ContainsAny(lower, a.catalog.Uncertainty):
		confidence = confidenceUncertain
	case catalog.ContainsAny(lower, a.catalog.Confidence):
		confidence = confidenceAssured
		assured = true
	case catalog.ContainsAny(lower, a.catalog.Hedging):
		confidence = confidenceHedged
	}

	// Short answers read as low confidence unless explicitly assured.
	if len(trimmed) < shortUtteranceLen && !assured {
		confidence = min(confidence, confidenceShortCap)
	}

	var misconceptions []string
	for _, p := range a.catalog.Overgeneralization {
		if strings.Contains(lower, p) {
			misconceptions = append(misconceptions, "overgeneralization:"+p)
		}
	}

	return Assessment{
		ConfidenceLevel:         confidence,
		Misconceptions:          misconceptions,
		ReadinessForAdvancement: confidence > 0.6 && len(misconceptions) == 0,
		ConceptualUnderstanding: a.understanding(trimmed, lower),
		DepthOfThinking:         a.depth(lower),
		TransferAttempt:         catalog.ContainsAny(lower, a.catalog.Transfer),
	}
}

// understanding rates the explanation on the 1-5 tier ladder. Length
// alone earns tier 2; higher tiers also need explanatory connectives,
// worked examples, and finally generalization language.
func (a *Assessor) understanding(trimmed, lower string) int {
	n := len(trimmed)
	connected := catalog.ContainsAny(lower, a.catalog.Connectives)
	illustrated := catalog.ContainsAny(lower, a.catalog.Exemplars)
	generalized := catalog.ContainsAny(lower, a.catalog.Depth.Abstraction)

	switch {
	case n >= tierGeneralizedLen && connected && illustrated && generalized:
		return 5
	case n >= tierIllustratedLen && connected && illustrated:
		return 4
	case n >= tierConnectedLen && connected:
		return 3
	case n >= tierBasicLen:
		return 2
	default:
		return 1
	}
}

// depth counts how many of the five indicator classes appear in the
// utterance; the score is min(5, max(1, matches+1)).
func (a *Assessor) depth(lower string) int {
	matches := 0
	for _, class := range a.catalog.Depth.Classes() {
		if catalog.ContainsAny(lower, class) {
			matches++
		}
	}
	return min(5, max(1, matches+1))
}
