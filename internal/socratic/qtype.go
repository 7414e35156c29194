// Package socratic holds the question taxonomy and the pure policy
// functions that pick the next question type from an assessment.
package socratic

// QuestionType is one of the six Socratic question categories.
type QuestionType string

const (
	TypeClarification   QuestionType = "clarification"
	TypeAssumptions     QuestionType = "assumptions"
	TypeEvidence        QuestionType = "evidence"
	TypePerspective     QuestionType = "perspective"
	TypeImplications    QuestionType = "implications"
	TypeMetaQuestioning QuestionType = "meta-questioning"
)

// AllTypes returns the six question types in canonical order.
func AllTypes() []QuestionType {
	return []QuestionType{
		TypeClarification,
		TypeAssumptions,
		TypeEvidence,
		TypePerspective,
		TypeImplications,
		TypeMetaQuestioning,
	}
}

// Valid reports whether t is one of the six known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeClarification, TypeAssumptions, TypeEvidence,
		TypePerspective, TypeImplications, TypeMetaQuestioning:
		return true
	}
	return false
}
