package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ViolationEvent records a tutor utterance that leaked a direct answer.
// Violations are counted, not fatal; the rows feed analytics and the
// session compliance summary.
type ViolationEvent struct {
	ent.Schema
}

func (ViolationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ViolationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session the violation occurred in"),
		field.Text("utterance").
			Comment("The offending tutor utterance"),
		field.String("pattern").
			Default("").
			Comment("Which leak pattern matched"),
	}
}

func (ViolationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
