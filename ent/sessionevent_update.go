// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/socratiq/ent/predicate"
	"github.com/abhisek/socratiq/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetProblemType sets the "problem_type" field.
func (_u *SessionEventUpdate) SetProblemType(v string) *SessionEventUpdate {
	_u.mutation.SetProblemType(v)
	return _u
}

// SetNillableProblemType sets the "problem_type" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableProblemType(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetProblemType(*v)
	}
	return _u
}

// SetAvgResponseMs sets the "avg_response_ms" field.
func (_u *SessionEventUpdate) SetAvgResponseMs(v int) *SessionEventUpdate {
	_u.mutation.ResetAvgResponseMs()
	_u.mutation.SetAvgResponseMs(v)
	return _u
}

// SetNillableAvgResponseMs sets the "avg_response_ms" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAvgResponseMs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetAvgResponseMs(*v)
	}
	return _u
}

// AddAvgResponseMs adds value to the "avg_response_ms" field.
func (_u *SessionEventUpdate) AddAvgResponseMs(v int) *SessionEventUpdate {
	_u.mutation.AddAvgResponseMs(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdate) SetDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDurationSecs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdate) AddDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetInteractions sets the "interactions" field.
func (_u *SessionEventUpdate) SetInteractions(v int) *SessionEventUpdate {
	_u.mutation.ResetInteractions()
	_u.mutation.SetInteractions(v)
	return _u
}

// SetNillableInteractions sets the "interactions" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableInteractions(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetInteractions(*v)
	}
	return _u
}

// AddInteractions adds value to the "interactions" field.
func (_u *SessionEventUpdate) AddInteractions(v int) *SessionEventUpdate {
	_u.mutation.AddInteractions(v)
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *SessionEventUpdate) SetCompletionRate(v float64) *SessionEventUpdate {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableCompletionRate(v *float64) *SessionEventUpdate {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *SessionEventUpdate) AddCompletionRate(v float64) *SessionEventUpdate {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *SessionEventUpdate) SetMasteryScore(v float64) *SessionEventUpdate {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableMasteryScore(v *float64) *SessionEventUpdate {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *SessionEventUpdate) AddMasteryScore(v float64) *SessionEventUpdate {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetConceptsLearned sets the "concepts_learned" field.
func (_u *SessionEventUpdate) SetConceptsLearned(v []string) *SessionEventUpdate {
	_u.mutation.SetConceptsLearned(v)
	return _u
}

// AppendConceptsLearned appends value to the "concepts_learned" field.
func (_u *SessionEventUpdate) AppendConceptsLearned(v []string) *SessionEventUpdate {
	_u.mutation.AppendConceptsLearned(v)
	return _u
}

// ClearConceptsLearned clears the value of the "concepts_learned" field.
func (_u *SessionEventUpdate) ClearConceptsLearned() *SessionEventUpdate {
	_u.mutation.ClearConceptsLearned()
	return _u
}

// SetConceptsStruggled sets the "concepts_struggled" field.
func (_u *SessionEventUpdate) SetConceptsStruggled(v []string) *SessionEventUpdate {
	_u.mutation.SetConceptsStruggled(v)
	return _u
}

// AppendConceptsStruggled appends value to the "concepts_struggled" field.
func (_u *SessionEventUpdate) AppendConceptsStruggled(v []string) *SessionEventUpdate {
	_u.mutation.AppendConceptsStruggled(v)
	return _u
}

// ClearConceptsStruggled clears the value of the "concepts_struggled" field.
func (_u *SessionEventUpdate) ClearConceptsStruggled() *SessionEventUpdate {
	_u.mutation.ClearConceptsStruggled()
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *SessionEventUpdate) SetHintsUsed(v int) *SessionEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableHintsUsed(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *SessionEventUpdate) AddHintsUsed(v int) *SessionEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetDirectAnswerCount sets the "direct_answer_count" field.
func (_u *SessionEventUpdate) SetDirectAnswerCount(v int) *SessionEventUpdate {
	_u.mutation.ResetDirectAnswerCount()
	_u.mutation.SetDirectAnswerCount(v)
	return _u
}

// SetNillableDirectAnswerCount sets the "direct_answer_count" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDirectAnswerCount(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetDirectAnswerCount(*v)
	}
	return _u
}

// AddDirectAnswerCount adds value to the "direct_answer_count" field.
func (_u *SessionEventUpdate) AddDirectAnswerCount(v int) *SessionEventUpdate {
	_u.mutation.AddDirectAnswerCount(v)
	return _u
}

// SetMaxDepth sets the "max_depth" field.
func (_u *SessionEventUpdate) SetMaxDepth(v int) *SessionEventUpdate {
	_u.mutation.ResetMaxDepth()
	_u.mutation.SetMaxDepth(v)
	return _u
}

// SetNillableMaxDepth sets the "max_depth" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableMaxDepth(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetMaxDepth(*v)
	}
	return _u
}

// AddMaxDepth adds value to the "max_depth" field.
func (_u *SessionEventUpdate) AddMaxDepth(v int) *SessionEventUpdate {
	_u.mutation.AddMaxDepth(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemType(); ok {
		_spec.SetField(sessionevent.FieldProblemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AvgResponseMs(); ok {
		_spec.SetField(sessionevent.FieldAvgResponseMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvgResponseMs(); ok {
		_spec.AddField(sessionevent.FieldAvgResponseMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Interactions(); ok {
		_spec.SetField(sessionevent.FieldInteractions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInteractions(); ok {
		_spec.AddField(sessionevent.FieldInteractions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(sessionevent.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(sessionevent.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(sessionevent.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(sessionevent.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConceptsLearned(); ok {
		_spec.SetField(sessionevent.FieldConceptsLearned, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptsLearned(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldConceptsLearned, value)
		})
	}
	if _u.mutation.ConceptsLearnedCleared() {
		_spec.ClearField(sessionevent.FieldConceptsLearned, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConceptsStruggled(); ok {
		_spec.SetField(sessionevent.FieldConceptsStruggled, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptsStruggled(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldConceptsStruggled, value)
		})
	}
	if _u.mutation.ConceptsStruggledCleared() {
		_spec.ClearField(sessionevent.FieldConceptsStruggled, field.TypeJSON)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(sessionevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(sessionevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DirectAnswerCount(); ok {
		_spec.SetField(sessionevent.FieldDirectAnswerCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDirectAnswerCount(); ok {
		_spec.AddField(sessionevent.FieldDirectAnswerCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxDepth(); ok {
		_spec.SetField(sessionevent.FieldMaxDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDepth(); ok {
		_spec.AddField(sessionevent.FieldMaxDepth, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetProblemType sets the "problem_type" field.
func (_u *SessionEventUpdateOne) SetProblemType(v string) *SessionEventUpdateOne {
	_u.mutation.SetProblemType(v)
	return _u
}

// SetNillableProblemType sets the "problem_type" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableProblemType(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetProblemType(*v)
	}
	return _u
}

// SetAvgResponseMs sets the "avg_response_ms" field.
func (_u *SessionEventUpdateOne) SetAvgResponseMs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetAvgResponseMs()
	_u.mutation.SetAvgResponseMs(v)
	return _u
}

// SetNillableAvgResponseMs sets the "avg_response_ms" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAvgResponseMs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAvgResponseMs(*v)
	}
	return _u
}

// AddAvgResponseMs adds value to the "avg_response_ms" field.
func (_u *SessionEventUpdateOne) AddAvgResponseMs(v int) *SessionEventUpdateOne {
	_u.mutation.AddAvgResponseMs(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdateOne) SetDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDurationSecs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdateOne) AddDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetInteractions sets the "interactions" field.
func (_u *SessionEventUpdateOne) SetInteractions(v int) *SessionEventUpdateOne {
	_u.mutation.ResetInteractions()
	_u.mutation.SetInteractions(v)
	return _u
}

// SetNillableInteractions sets the "interactions" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableInteractions(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetInteractions(*v)
	}
	return _u
}

// AddInteractions adds value to the "interactions" field.
func (_u *SessionEventUpdateOne) AddInteractions(v int) *SessionEventUpdateOne {
	_u.mutation.AddInteractions(v)
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *SessionEventUpdateOne) SetCompletionRate(v float64) *SessionEventUpdateOne {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableCompletionRate(v *float64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *SessionEventUpdateOne) AddCompletionRate(v float64) *SessionEventUpdateOne {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *SessionEventUpdateOne) SetMasteryScore(v float64) *SessionEventUpdateOne {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableMasteryScore(v *float64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *SessionEventUpdateOne) AddMasteryScore(v float64) *SessionEventUpdateOne {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetConceptsLearned sets the "concepts_learned" field.
func (_u *SessionEventUpdateOne) SetConceptsLearned(v []string) *SessionEventUpdateOne {
	_u.mutation.SetConceptsLearned(v)
	return _u
}

// AppendConceptsLearned appends value to the "concepts_learned" field.
func (_u *SessionEventUpdateOne) AppendConceptsLearned(v []string) *SessionEventUpdateOne {
	_u.mutation.AppendConceptsLearned(v)
	return _u
}

// ClearConceptsLearned clears the value of the "concepts_learned" field.
func (_u *SessionEventUpdateOne) ClearConceptsLearned() *SessionEventUpdateOne {
	_u.mutation.ClearConceptsLearned()
	return _u
}

// SetConceptsStruggled sets the "concepts_struggled" field.
func (_u *SessionEventUpdateOne) SetConceptsStruggled(v []string) *SessionEventUpdateOne {
	_u.mutation.SetConceptsStruggled(v)
	return _u
}

// AppendConceptsStruggled appends value to the "concepts_struggled" field.
func (_u *SessionEventUpdateOne) AppendConceptsStruggled(v []string) *SessionEventUpdateOne {
	_u.mutation.AppendConceptsStruggled(v)
	return _u
}

// ClearConceptsStruggled clears the value of the "concepts_struggled" field.
func (_u *SessionEventUpdateOne) ClearConceptsStruggled() *SessionEventUpdateOne {
	_u.mutation.ClearConceptsStruggled()
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *SessionEventUpdateOne) SetHintsUsed(v int) *SessionEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableHintsUsed(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *SessionEventUpdateOne) AddHintsUsed(v int) *SessionEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetDirectAnswerCount sets the "direct_answer_count" field.
func (_u *SessionEventUpdateOne) SetDirectAnswerCount(v int) *SessionEventUpdateOne {
	_u.mutation.ResetDirectAnswerCount()
	_u.mutation.SetDirectAnswerCount(v)
	return _u
}

// SetNillableDirectAnswerCount sets the "direct_answer_count" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDirectAnswerCount(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDirectAnswerCount(*v)
	}
	return _u
}

// AddDirectAnswerCount adds value to the "direct_answer_count" field.
func (_u *SessionEventUpdateOne) AddDirectAnswerCount(v int) *SessionEventUpdateOne {
	_u.mutation.AddDirectAnswerCount(v)
	return _u
}

// SetMaxDepth sets the "max_depth" field.
func (_u *SessionEventUpdateOne) SetMaxDepth(v int) *SessionEventUpdateOne {
	_u.mutation.ResetMaxDepth()
	_u.mutation.SetMaxDepth(v)
	return _u
}

// SetNillableMaxDepth sets the "max_depth" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableMaxDepth(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetMaxDepth(*v)
	}
	return _u
}

// AddMaxDepth adds value to the "max_depth" field.
func (_u *SessionEventUpdateOne) AddMaxDepth(v int) *SessionEventUpdateOne {
	_u.mutation.AddMaxDepth(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemType(); ok {
		_spec.SetField(sessionevent.FieldProblemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AvgResponseMs(); ok {
		_spec.SetField(sessionevent.FieldAvgResponseMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvgResponseMs(); ok {
		_spec.AddField(sessionevent.FieldAvgResponseMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Interactions(); ok {
		_spec.SetField(sessionevent.FieldInteractions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInteractions(); ok {
		_spec.AddField(sessionevent.FieldInteractions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(sessionevent.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(sessionevent.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(sessionevent.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(sessionevent.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConceptsLearned(); ok {
		_spec.SetField(sessionevent.FieldConceptsLearned, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptsLearned(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldConceptsLearned, value)
		})
	}
	if _u.mutation.ConceptsLearnedCleared() {
		_spec.ClearField(sessionevent.FieldConceptsLearned, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConceptsStruggled(); ok {
		_spec.SetField(sessionevent.FieldConceptsStruggled, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptsStruggled(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldConceptsStruggled, value)
		})
	}
	if _u.mutation.ConceptsStruggledCleared() {
		_spec.ClearField(sessionevent.FieldConceptsStruggled, field.TypeJSON)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(sessionevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(sessionevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DirectAnswerCount(); ok {
		_spec.SetField(sessionevent.FieldDirectAnswerCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDirectAnswerCount(); ok {
		_spec.AddField(sessionevent.FieldDirectAnswerCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxDepth(); ok {
		_spec.SetField(sessionevent.FieldMaxDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDepth(); ok {
		_spec.AddField(sessionevent.FieldMaxDepth, field.TypeInt, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
