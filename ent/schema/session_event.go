package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end). The end
// event carries the finalized performance aggregate consumed by the
// adaptive controller and analytics.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("problem_type").
			Default("").
			Comment("Classified problem type"),
		field.Int("avg_response_ms").
			Default(0).
			Comment("Mean student response time (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
		field.Int("interactions").
			Default(0).
			Comment("Total student turns (on end only)"),
		field.Float("completion_rate").
			Default(0).
			Comment("Fraction of the inquiry cycle completed (on end only)"),
		field.Float("mastery_score").
			Default(0).
			Comment("0-1 summary of session success (on end only)"),
		field.JSON("concepts_learned", []string{}).
			Optional().
			Comment("Concepts the student demonstrated understanding of"),
		field.JSON("concepts_struggled", []string{}).
			Optional().
			Comment("Concepts with repeated misconceptions"),
		field.Int("hints_used").
			Default(0).
			Comment("Metacognitive prompts issued (on end only)"),
		field.Int("direct_answer_count").
			Default(0).
			Comment("Policy violations detected during the session"),
		field.Int("max_depth").
			Default(0).
			Comment("Deepest dialogue level reached (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
