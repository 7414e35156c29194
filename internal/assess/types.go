package assess

// Assessment scores one student utterance. It is derived fresh per turn
// and never mutated; the engine copies what it needs into the turn log.
type Assessment struct {
	// ConfidenceLevel is the student's apparent confidence (0.0-1.0).
	ConfidenceLevel float64

	// Misconceptions lists the misconception tags detected in the
	// utterance, one per matched overgeneralization pattern.
	Misconceptions []string

	// ReadinessForAdvancement is true when the student is confident and
	// no misconception was flagged.
	ReadinessForAdvancement bool

	// ConceptualUnderstanding rates how developed the explanation is (1-5).
	ConceptualUnderstanding int

	// DepthOfThinking rates metacognitive engagement (1-5).
	DepthOfThinking int

	// TransferAttempt is true when the student tried to apply the idea
	// to a new case.
	TransferAttempt bool
}
