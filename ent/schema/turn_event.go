package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnEvent records one message in a tutoring dialogue. The conversation
// history of a session is the ordered sequence of its turn events; rows
// are appended once and never updated.
type TurnEvent struct {
	ent.Schema
}

func (TurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping turns in a session"),
		field.String("role").
			NotEmpty().
			Comment("student or tutor"),
		field.Text("content").
			Comment("Utterance text"),
		field.String("question_type").
			Default("").
			Comment("Socratic question type for tutor turns"),
		field.Int("depth_level").
			Default(0).
			Comment("Dialogue depth (1-5) when the turn was recorded"),
		field.JSON("targeted_concepts", []string{}).
			Optional().
			Comment("Concept tags this turn touched"),
		field.Float("student_confidence").
			Default(0).
			Comment("Assessed confidence for student turns (0-1)"),
		field.Bool("understanding_check").
			Default(false).
			Comment("Whether this tutor turn was an understanding check"),
		field.Float("confidence_delta").
			Default(0).
			Comment("Change in confidence vs. the previous student turn"),
		field.Int("reasoning_score").
			Default(0).
			Comment("Depth-of-thinking score (1-5) for student turns"),
		field.Int("teach_back_score").
			Default(0).
			Comment("Conceptual-understanding tier (1-5) for student turns"),
		field.Bool("transfer_attempt").
			Default(false).
			Comment("Student tried to apply the concept to a new case"),
		field.Bool("breakthrough").
			Default(false).
			Comment("Large confidence jump after a misconception"),
	}
}

func (TurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("role"),
	}
}
