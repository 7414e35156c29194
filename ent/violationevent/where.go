// Code generated by ent, DO NOT EDIT.

package violationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/socratiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldSessionID, v))
}

// Utterance applies equality check predicate on the "utterance" field. It's identical to UtteranceEQ.
func Utterance(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldUtterance, v))
}

// Pattern applies equality check predicate on the "pattern" field. It's identical to PatternEQ.
func Pattern(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldPattern, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// UtteranceEQ applies the EQ predicate on the "utterance" field.
func UtteranceEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldUtterance, v))
}

// UtteranceNEQ applies the NEQ predicate on the "utterance" field.
func UtteranceNEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldUtterance, v))
}

// UtteranceIn applies the In predicate on the "utterance" field.
func UtteranceIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldUtterance, vs...))
}

// UtteranceNotIn applies the NotIn predicate on the "utterance" field.
func UtteranceNotIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldUtterance, vs...))
}

// UtteranceGT applies the GT predicate on the "utterance" field.
func UtteranceGT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldUtterance, v))
}

// UtteranceGTE applies the GTE predicate on the "utterance" field.
func UtteranceGTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldUtterance, v))
}

// UtteranceLT applies the LT predicate on the "utterance" field.
func UtteranceLT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldUtterance, v))
}

// UtteranceLTE applies the LTE predicate on the "utterance" field.
func UtteranceLTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldUtterance, v))
}

// UtteranceContains applies the Contains predicate on the "utterance" field.
func UtteranceContains(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContains(FieldUtterance, v))
}

// UtteranceHasPrefix applies the HasPrefix predicate on the "utterance" field.
func UtteranceHasPrefix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasPrefix(FieldUtterance, v))
}

// UtteranceHasSuffix applies the HasSuffix predicate on the "utterance" field.
func UtteranceHasSuffix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasSuffix(FieldUtterance, v))
}

// UtteranceEqualFold applies the EqualFold predicate on the "utterance" field.
func UtteranceEqualFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEqualFold(FieldUtterance, v))
}

// UtteranceContainsFold applies the ContainsFold predicate on the "utterance" field.
func UtteranceContainsFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContainsFold(FieldUtterance, v))
}

// PatternEQ applies the EQ predicate on the "pattern" field.
func PatternEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldPattern, v))
}

// PatternNEQ applies the NEQ predicate on the "pattern" field.
func PatternNEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldPattern, v))
}

// PatternIn applies the In predicate on the "pattern" field.
func PatternIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldPattern, vs...))
}

// PatternNotIn applies the NotIn predicate on the "pattern" field.
func PatternNotIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldPattern, vs...))
}

// PatternGT applies the GT predicate on the "pattern" field.
func PatternGT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldPattern, v))
}

// PatternGTE applies the GTE predicate on the "pattern" field.
func PatternGTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldPattern, v))
}

// PatternLT applies the LT predicate on the "pattern" field.
func PatternLT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldPattern, v))
}

// PatternLTE applies the LTE predicate on the "pattern" field.
func PatternLTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldPattern, v))
}

// PatternContains applies the Contains predicate on the "pattern" field.
func PatternContains(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContains(FieldPattern, v))
}

// PatternHasPrefix applies the HasPrefix predicate on the "pattern" field.
func PatternHasPrefix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasPrefix(FieldPattern, v))
}

// PatternHasSuffix applies the HasSuffix predicate on the "pattern" field.
func PatternHasSuffix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasSuffix(FieldPattern, v))
}

// PatternEqualFold applies the EqualFold predicate on the "pattern" field.
func PatternEqualFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEqualFold(FieldPattern, v))
}

// PatternContainsFold applies the ContainsFold predicate on the "pattern" field.
func PatternContainsFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContainsFold(FieldPattern, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ViolationEvent) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ViolationEvent) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ViolationEvent) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.NotPredicates(p))
}
