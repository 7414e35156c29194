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
	"github.com/abhisek/socratiq/ent/turnevent"
)

// TurnEventUpdate is the builder for updating TurnEvent entities.
type TurnEventUpdate struct {
	config
	hooks    []Hook
	mutation *TurnEventMutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdate) Where(ps ...predicate.TurnEvent) *TurnEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdate) SetSessionID(v string) *TurnEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableSessionID(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *TurnEventUpdate) SetRole(v string) *TurnEventUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableRole(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *TurnEventUpdate) SetContent(v string) *TurnEventUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableContent(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *TurnEventUpdate) SetQuestionType(v string) *TurnEventUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableQuestionType(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetDepthLevel sets the "depth_level" field.
func (_u *TurnEventUpdate) SetDepthLevel(v int) *TurnEventUpdate {
	_u.mutation.ResetDepthLevel()
	_u.mutation.SetDepthLevel(v)
	return _u
}

// SetNillableDepthLevel sets the "depth_level" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableDepthLevel(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetDepthLevel(*v)
	}
	return _u
}

// AddDepthLevel adds value to the "depth_level" field.
func (_u *TurnEventUpdate) AddDepthLevel(v int) *TurnEventUpdate {
	_u.mutation.AddDepthLevel(v)
	return _u
}

// SetTargetedConcepts sets the "targeted_concepts" field.
func (_u *TurnEventUpdate) SetTargetedConcepts(v []string) *TurnEventUpdate {
	_u.mutation.SetTargetedConcepts(v)
	return _u
}

// AppendTargetedConcepts appends value to the "targeted_concepts" field.
func (_u *TurnEventUpdate) AppendTargetedConcepts(v []string) *TurnEventUpdate {
	_u.mutation.AppendTargetedConcepts(v)
	return _u
}

// ClearTargetedConcepts clears the value of the "targeted_concepts" field.
func (_u *TurnEventUpdate) ClearTargetedConcepts() *TurnEventUpdate {
	_u.mutation.ClearTargetedConcepts()
	return _u
}

// SetStudentConfidence sets the "student_confidence" field.
func (_u *TurnEventUpdate) SetStudentConfidence(v float64) *TurnEventUpdate {
	_u.mutation.ResetStudentConfidence()
	_u.mutation.SetStudentConfidence(v)
	return _u
}

// SetNillableStudentConfidence sets the "student_confidence" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableStudentConfidence(v *float64) *TurnEventUpdate {
	if v != nil {
		_u.SetStudentConfidence(*v)
	}
	return _u
}

// AddStudentConfidence adds value to the "student_confidence" field.
func (_u *TurnEventUpdate) AddStudentConfidence(v float64) *TurnEventUpdate {
	_u.mutation.AddStudentConfidence(v)
	return _u
}

// SetUnderstandingCheck sets the "understanding_check" field.
func (_u *TurnEventUpdate) SetUnderstandingCheck(v bool) *TurnEventUpdate {
	_u.mutation.SetUnderstandingCheck(v)
	return _u
}

// SetNillableUnderstandingCheck sets the "understanding_check" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableUnderstandingCheck(v *bool) *TurnEventUpdate {
	if v != nil {
		_u.SetUnderstandingCheck(*v)
	}
	return _u
}

// SetConfidenceDelta sets the "confidence_delta" field.
func (_u *TurnEventUpdate) SetConfidenceDelta(v float64) *TurnEventUpdate {
	_u.mutation.ResetConfidenceDelta()
	_u.mutation.SetConfidenceDelta(v)
	return _u
}

// SetNillableConfidenceDelta sets the "confidence_delta" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableConfidenceDelta(v *float64) *TurnEventUpdate {
	if v != nil {
		_u.SetConfidenceDelta(*v)
	}
	return _u
}

// AddConfidenceDelta adds value to the "confidence_delta" field.
func (_u *TurnEventUpdate) AddConfidenceDelta(v float64) *TurnEventUpdate {
	_u.mutation.AddConfidenceDelta(v)
	return _u
}

// SetReasoningScore sets the "reasoning_score" field.
func (_u *TurnEventUpdate) SetReasoningScore(v int) *TurnEventUpdate {
	_u.mutation.ResetReasoningScore()
	_u.mutation.SetReasoningScore(v)
	return _u
}

// SetNillableReasoningScore sets the "reasoning_score" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableReasoningScore(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetReasoningScore(*v)
	}
	return _u
}

// AddReasoningScore adds value to the "reasoning_score" field.
func (_u *TurnEventUpdate) AddReasoningScore(v int) *TurnEventUpdate {
	_u.mutation.AddReasoningScore(v)
	return _u
}

// SetTeachBackScore sets the "teach_back_score" field.
func (_u *TurnEventUpdate) SetTeachBackScore(v int) *TurnEventUpdate {
	_u.mutation.ResetTeachBackScore()
	_u.mutation.SetTeachBackScore(v)
	return _u
}

// SetNillableTeachBackScore sets the "teach_back_score" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableTeachBackScore(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetTeachBackScore(*v)
	}
	return _u
}

// AddTeachBackScore adds value to the "teach_back_score" field.
func (_u *TurnEventUpdate) AddTeachBackScore(v int) *TurnEventUpdate {
	_u.mutation.AddTeachBackScore(v)
	return _u
}

// SetTransferAttempt sets the "transfer_attempt" field.
func (_u *TurnEventUpdate) SetTransferAttempt(v bool) *TurnEventUpdate {
	_u.mutation.SetTransferAttempt(v)
	return _u
}

// SetNillableTransferAttempt sets the "transfer_attempt" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableTransferAttempt(v *bool) *TurnEventUpdate {
	if v != nil {
		_u.SetTransferAttempt(*v)
	}
	return _u
}

// SetBreakthrough sets the "breakthrough" field.
func (_u *TurnEventUpdate) SetBreakthrough(v bool) *TurnEventUpdate {
	_u.mutation.SetBreakthrough(v)
	return _u
}

// SetNillableBreakthrough sets the "breakthrough" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableBreakthrough(v *bool) *TurnEventUpdate {
	if v != nil {
		_u.SetBreakthrough(*v)
	}
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdate) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := turnevent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.role": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(turnevent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(turnevent.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(turnevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DepthLevel(); ok {
		_spec.SetField(turnevent.FieldDepthLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepthLevel(); ok {
		_spec.AddField(turnevent.FieldDepthLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TargetedConcepts(); ok {
		_spec.SetField(turnevent.FieldTargetedConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, turnevent.FieldTargetedConcepts, value)
		})
	}
	if _u.mutation.TargetedConceptsCleared() {
		_spec.ClearField(turnevent.FieldTargetedConcepts, field.TypeJSON)
	}
	if value, ok := _u.mutation.StudentConfidence(); ok {
		_spec.SetField(turnevent.FieldStudentConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStudentConfidence(); ok {
		_spec.AddField(turnevent.FieldStudentConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UnderstandingCheck(); ok {
		_spec.SetField(turnevent.FieldUnderstandingCheck, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfidenceDelta(); ok {
		_spec.SetField(turnevent.FieldConfidenceDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceDelta(); ok {
		_spec.AddField(turnevent.FieldConfidenceDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReasoningScore(); ok {
		_spec.SetField(turnevent.FieldReasoningScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReasoningScore(); ok {
		_spec.AddField(turnevent.FieldReasoningScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TeachBackScore(); ok {
		_spec.SetField(turnevent.FieldTeachBackScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTeachBackScore(); ok {
		_spec.AddField(turnevent.FieldTeachBackScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TransferAttempt(); ok {
		_spec.SetField(turnevent.FieldTransferAttempt, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Breakthrough(); ok {
		_spec.SetField(turnevent.FieldBreakthrough, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnEventUpdateOne is the builder for updating a single TurnEvent entity.
type TurnEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdateOne) SetSessionID(v string) *TurnEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableSessionID(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *TurnEventUpdateOne) SetRole(v string) *TurnEventUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableRole(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *TurnEventUpdateOne) SetContent(v string) *TurnEventUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableContent(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *TurnEventUpdateOne) SetQuestionType(v string) *TurnEventUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableQuestionType(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetDepthLevel sets the "depth_level" field.
func (_u *TurnEventUpdateOne) SetDepthLevel(v int) *TurnEventUpdateOne {
	_u.mutation.ResetDepthLevel()
	_u.mutation.SetDepthLevel(v)
	return _u
}

// SetNillableDepthLevel sets the "depth_level" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableDepthLevel(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetDepthLevel(*v)
	}
	return _u
}

// AddDepthLevel adds value to the "depth_level" field.
func (_u *TurnEventUpdateOne) AddDepthLevel(v int) *TurnEventUpdateOne {
	_u.mutation.AddDepthLevel(v)
	return _u
}

// SetTargetedConcepts sets the "targeted_concepts" field.
func (_u *TurnEventUpdateOne) SetTargetedConcepts(v []string) *TurnEventUpdateOne {
	_u.mutation.SetTargetedConcepts(v)
	return _u
}

// AppendTargetedConcepts appends value to the "targeted_concepts" field.
func (_u *TurnEventUpdateOne) AppendTargetedConcepts(v []string) *TurnEventUpdateOne {
	_u.mutation.AppendTargetedConcepts(v)
	return _u
}

// ClearTargetedConcepts clears the value of the "targeted_concepts" field.
func (_u *TurnEventUpdateOne) ClearTargetedConcepts() *TurnEventUpdateOne {
	_u.mutation.ClearTargetedConcepts()
	return _u
}

// SetStudentConfidence sets the "student_confidence" field.
func (_u *TurnEventUpdateOne) SetStudentConfidence(v float64) *TurnEventUpdateOne {
	_u.mutation.ResetStudentConfidence()
	_u.mutation.SetStudentConfidence(v)
	return _u
}

// SetNillableStudentConfidence sets the "student_confidence" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableStudentConfidence(v *float64) *TurnEventUpdateOne {
	if v != nil {
		_u.SetStudentConfidence(*v)
	}
	return _u
}

// AddStudentConfidence adds value to the "student_confidence" field.
func (_u *TurnEventUpdateOne) AddStudentConfidence(v float64) *TurnEventUpdateOne {
	_u.mutation.AddStudentConfidence(v)
	return _u
}

// SetUnderstandingCheck sets the "understanding_check" field.
func (_u *TurnEventUpdateOne) SetUnderstandingCheck(v bool) *TurnEventUpdateOne {
	_u.mutation.SetUnderstandingCheck(v)
	return _u
}

// SetNillableUnderstandingCheck sets the "understanding_check" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableUnderstandingCheck(v *bool) *TurnEventUpdateOne {
	if v != nil {
		_u.SetUnderstandingCheck(*v)
	}
	return _u
}

// SetConfidenceDelta sets the "confidence_delta" field.
func (_u *TurnEventUpdateOne) SetConfidenceDelta(v float64) *TurnEventUpdateOne {
	_u.mutation.ResetConfidenceDelta()
	_u.mutation.SetConfidenceDelta(v)
	return _u
}

// SetNillableConfidenceDelta sets the "confidence_delta" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableConfidenceDelta(v *float64) *TurnEventUpdateOne {
	if v != nil {
		_u.SetConfidenceDelta(*v)
	}
	return _u
}

// AddConfidenceDelta adds value to the "confidence_delta" field.
func (_u *TurnEventUpdateOne) AddConfidenceDelta(v float64) *TurnEventUpdateOne {
	_u.mutation.AddConfidenceDelta(v)
	return _u
}

// SetReasoningScore sets the "reasoning_score" field.
func (_u *TurnEventUpdateOne) SetReasoningScore(v int) *TurnEventUpdateOne {
	_u.mutation.ResetReasoningScore()
	_u.mutation.SetReasoningScore(v)
	return _u
}

// SetNillableReasoningScore sets the "reasoning_score" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableReasoningScore(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetReasoningScore(*v)
	}
	return _u
}

// AddReasoningScore adds value to the "reasoning_score" field.
func (_u *TurnEventUpdateOne) AddReasoningScore(v int) *TurnEventUpdateOne {
	_u.mutation.AddReasoningScore(v)
	return _u
}

// SetTeachBackScore sets the "teach_back_score" field.
func (_u *TurnEventUpdateOne) SetTeachBackScore(v int) *TurnEventUpdateOne {
	_u.mutation.ResetTeachBackScore()
	_u.mutation.SetTeachBackScore(v)
	return _u
}

// SetNillableTeachBackScore sets the "teach_back_score" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableTeachBackScore(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetTeachBackScore(*v)
	}
	return _u
}

// AddTeachBackScore adds value to the "teach_back_score" field.
func (_u *TurnEventUpdateOne) AddTeachBackScore(v int) *TurnEventUpdateOne {
	_u.mutation.AddTeachBackScore(v)
	return _u
}

// SetTransferAttempt sets the "transfer_attempt" field.
func (_u *TurnEventUpdateOne) SetTransferAttempt(v bool) *TurnEventUpdateOne {
	_u.mutation.SetTransferAttempt(v)
	return _u
}

// SetNillableTransferAttempt sets the "transfer_attempt" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableTransferAttempt(v *bool) *TurnEventUpdateOne {
	if v != nil {
		_u.SetTransferAttempt(*v)
	}
	return _u
}

// SetBreakthrough sets the "breakthrough" field.
func (_u *TurnEventUpdateOne) SetBreakthrough(v bool) *TurnEventUpdateOne {
	_u.mutation.SetBreakthrough(v)
	return _u
}

// SetNillableBreakthrough sets the "breakthrough" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableBreakthrough(v *bool) *TurnEventUpdateOne {
	if v != nil {
		_u.SetBreakthrough(*v)
	}
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdateOne) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdateOne) Where(ps ...predicate.TurnEvent) *TurnEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnEventUpdateOne) Select(field string, fields ...string) *TurnEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TurnEvent entity.
func (_u *TurnEventUpdateOne) Save(ctx context.Context) (*TurnEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdateOne) SaveX(ctx context.Context) *TurnEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := turnevent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.role": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdateOne) sqlSave(ctx context.Context) (_node *TurnEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TurnEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turnevent.FieldID)
		for _, f := range fields {
			if !turnevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turnevent.FieldID {
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
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(turnevent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(turnevent.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(turnevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DepthLevel(); ok {
		_spec.SetField(turnevent.FieldDepthLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepthLevel(); ok {
		_spec.AddField(turnevent.FieldDepthLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TargetedConcepts(); ok {
		_spec.SetField(turnevent.FieldTargetedConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, turnevent.FieldTargetedConcepts, value)
		})
	}
	if _u.mutation.TargetedConceptsCleared() {
		_spec.ClearField(turnevent.FieldTargetedConcepts, field.TypeJSON)
	}
	if value, ok := _u.mutation.StudentConfidence(); ok {
		_spec.SetField(turnevent.FieldStudentConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStudentConfidence(); ok {
		_spec.AddField(turnevent.FieldStudentConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UnderstandingCheck(); ok {
		_spec.SetField(turnevent.FieldUnderstandingCheck, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfidenceDelta(); ok {
		_spec.SetField(turnevent.FieldConfidenceDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceDelta(); ok {
		_spec.AddField(turnevent.FieldConfidenceDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReasoningScore(); ok {
		_spec.SetField(turnevent.FieldReasoningScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReasoningScore(); ok {
		_spec.AddField(turnevent.FieldReasoningScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TeachBackScore(); ok {
		_spec.SetField(turnevent.FieldTeachBackScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTeachBackScore(); ok {
		_spec.AddField(turnevent.FieldTeachBackScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TransferAttempt(); ok {
		_spec.SetField(turnevent.FieldTransferAttempt, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Breakthrough(); ok {
		_spec.SetField(turnevent.FieldBreakthrough, field.TypeBool, value)
	}
	_node = &TurnEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
